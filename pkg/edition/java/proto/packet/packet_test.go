package packet

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mc "go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/key"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/config"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/cookie"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/plugin"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/title"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// All packets to test.
// Empty packets are being initialized with random fake data at runtime.
// Those types that contain interface fields, arrays, item slots or have constraints
// like max. length strings can't be filled by fake data and are initialized here.
var packets = []proto.Packet{
	&plugin.Message{},
	&chat.SystemChat{Content: *chat.FromText("hello"), Overlay: true},
	&chat.UnsignedPlayerCommand{},
	&chat.SessionPlayerChat{
		Message:   "hello",
		Timestamp: time.UnixMilli(1700000000000),
		Salt:      42,
		Signature: bytes.Repeat([]byte{7}, 256),
		LastSeenMessages: chat.LastSeenMessages{
			Offset:       2,
			Acknowledged: [3]byte{1, 2, 3},
		},
	},
	&chat.PlayerChat{
		Sender:           testUUID,
		Index:            3,
		Message:          "hi",
		Timestamp:        time.UnixMilli(1700000000000),
		PreviousMessages: []chat.PreviousMessage{{ID: 4}, {Signature: bytes.Repeat([]byte{1}, 256)}},
		UnsignedContent:  chat.FromText("hi!"),
		FilterType:       chat.FilterPartiallyFiltered,
		FilterMask:       []int64{5},
		ChatType:         chat.ChatTypeHolder{ID: 1},
		SenderName:       *chat.FromText("Bob"),
	},
	&chat.DisguisedChat{
		Message:    *chat.FromText("say"),
		ChatType:   chat.ChatTypeHolder{ID: 0},
		SenderName: *chat.FromComponent(&mc.Text{Content: "Server", S: mc.Style{Color: color.Red}}),
		TargetName: chat.FromText("Alice"),
	},
	&TabCompleteRequest{},
	&TabCompleteResponse{},
	&ClientSettings{Locale: "en_us", ViewDistance: 12, ChatColors: true, SkinParts: 0x7F, MainHand: 1},
	&Disconnect{Reason: *chat.FromComponent(&mc.Translation{Key: "disconnect.timeout"})},
	&LoginDisconnect{Reason: *chat.FromText("bye")},
	&Transfer{},
	&Handshake{ProtocolVersion: 766, ServerAddress: "localhost", Port: 25565, Intent: IntentLogin},
	&KeepAlive{},
	&Ping{},
	&Pong{},
	&ServerLogin{Username: "Steve", PlayerID: testUUID},
	&EncryptionRequest{
		ServerID:    "984hgf8097c4gh8734hr",
		PublicKey:   []byte("9wh90fh23dh203d2b23b3"),
		VerifyToken: []byte("32f8d89dh3di"),
	},
	&LoginPluginResponse{},
	&ServerLoginSuccess{
		UUID:     testUUID,
		Username: "Steve",
		Properties: []Property{
			{Name: "textures", Value: "e30=", Signature: "sig"},
			{Name: "other", Value: "v"},
		},
		StrictErrorHandling: true,
	},
	&SetCompression{},
	&LoginPluginMessage{},
	&LoginAcknowledged{},
	&ResourcePackRequest{
		ID:     testUUID,
		URL:    "https://example.com/pack.zip",
		Hash:   "0123456789abcdef0123456789abcdef01234567",
		Prompt: strPtr("Prompt"),
	},
	&RemoveResourcePack{ID: &testUUID},
	&ResourcePackResponse{ID: testUUID, Status: AcceptedResourcePackResponseStatus},
	&SyncPlayerPosition{X: 30, Y: 20, Z: -5, Flags: RelativeYaw, TeleportID: 7},
	&ConfirmTeleport{},
	&PlayerPosition{},
	&PlayerPositionRotation{},
	&PlayerRotation{},
	&JoinGame{},
	&Respawn{},
	&ClientStatus{},
	&GameEvent{},
	&StatusRequest{},
	&StatusResponse{},
	&StatusPing{},
	&title.Clear{Action: title.Reset},
	&title.Times{FadeIn: 1, Stay: 2, FadeOut: 3},
	&cookie.CookieRequest{Key: key.New("corncraft", "session")},
	&cookie.CookieResponse{Key: key.New("corncraft", "session"), Payload: []byte{1, 2}},
	&cookie.CookieStore{Key: key.New("corncraft", "session"), Payload: []byte("value")},
	&config.ActiveFeatures{ActiveFeatures: []key.Key{key.New(key.MinecraftNamespace, "vanilla")}},
	&config.KnownPacks{Packs: []config.KnownPack{{Namespace: "minecraft", ID: "core", Version: "1.21"}}},
	&config.RegistryData{
		RegistryID: "minecraft:worldgen/biome",
		Entries: []config.RegistryEntry{
			{ID: "minecraft:plains"},
			{ID: "minecraft:custom", HasData: true, Data: util.StringTag("data")},
		},
	},
	&OpenScreen{},
	&CloseContainer{},
	&ContainerContent{
		WindowID: 1,
		StateID:  5,
		Slots:    []component.Slot{{}, testSlot(), {}},
		Carried:  testSlot(),
	},
	&ContainerSlot{WindowID: -1, StateID: 2, Slot: 36, Item: testSlot()},
	&ContainerProperty{},
	&ClickContainer{
		WindowID:     1,
		StateID:      3,
		Slot:         10,
		Mode:         ClickQuickMove,
		ChangedSlots: []ChangedSlot{{Slot: 10}, {Slot: 40, Item: testSlot()}},
	},
	&ClickContainerButton{},
	&CreativeSlot{Slot: 36, Item: testSlot()},
	&HeldItem{},
	&HeldItemChange{},
	&MerchantOffers{
		WindowID: 2,
		Trades: []Trade{
			{
				Input:  TradeItem{ItemID: 800, Count: 12},
				Output: testSlot(),
				Input2: &TradeItem{ItemID: 801, Count: 1, Components: []component.Component{
					&component.DyedColor{Color: 0xFF, ShowInTooltip: true},
				}},
				MaxUses:         12,
				PriceMultiplier: 0.05,
			},
		},
		VillagerLevel:     2,
		IsRegularVillager: true,
	},
	&SelectTrade{},
	&RenameItem{Name: "Excalibur"},
	&BeaconEffect{},
	&SpawnEntity{EntityID: 12, EntityUUID: testUUID, Type: 5, X: 1.5, Y: 64, Z: -3, Yaw: 64},
	&EntityAnimation{},
	&BlockDestroyStage{},
	&SetEquipment{EntityID: 1, Equipment: []Equipment{{Slot: 0, Item: testSlot()}, {Slot: 5}}},
	&RemoveEntities{},
	&EntityPosition{},
	&EntityPositionRotation{},
	&EntityRotation{},
	&HeadRotation{},
	&TeleportEntity{},
	&UpdateAttributes{
		EntityID: 9,
		Attributes: []Attribute{
			{ID: 16, Value: 0.1, Modifiers: []AttributeModifier{
				{UUID: testUUID, Key: "minecraft:sprinting", Amount: 0.3, Operation: 2},
			}},
			{ID: 1, Value: 20},
		},
	},
	&EntityEvent{},
	&EntityMetadata{},
	&EntityEffect{},
	&UpdateTime{},
	&SetHealth{},
	&SetExperience{},
	&Explosion{},
	&MapData{},
	&CombatDeath{},
	&ServerData{},
	&ServerLinks{ServerLinks: []*ServerLink{{ID: 3, URL: "https://example.com"}, {ID: -1, Label: "Wiki", URL: "https://wiki"}}},
	&CustomReportDetails{Details: []ReportDetail{{Title: "server", Description: "test"}}},
	&UpdateObjectives{Name: "kills", Mode: ObjectiveCreate, Value: "Kills", Format: &NumberFormat{Type: NumberFormatFixed, Fixed: "-"}},
	&UpdateObjectives{Name: "kills", Mode: ObjectiveRemove},
	&UpdateScore{EntityName: "Steve", Objective: "kills", Value: 3, DisplayName: strPtr("S"), Format: &NumberFormat{Type: NumberFormatBlank}},
	&Interact{EntityID: 3, Type: InteractAt, TargetX: 0.5, Hand: OffHand},
	&Interact{EntityID: 3, Type: AttackEntity, Sneaking: true},
	&Interact{EntityID: 3, Type: InteractEntity, Hand: MainHand},
	&SwingArm{},
	&EntityAction{},
	&PlayerAction{},
	&UseItemOn{},
	&UseItem{Hand: OffHand, Sequence: 2, Yaw: 90, Pitch: -10},
	&PickItem{},
	&Spectate{Target: testUUID},
	&UpdateSign{Location: util.Position{X: 1, Y: 2, Z: 3}, IsFrontText: true, Lines: [4]string{"a", "", "c", "d"}},
	&PlayerSession{SessionID: testUUID, ExpiresAt: 1, PublicKey: []byte{1, 2, 3}, KeySignature: []byte{4, 5}},
	&BundleDelimiter{},
}

// fill packets with fake data
func init() {
	packets = append(packets, titlePackets()...)
	for _, p := range packets {
		// Skip already filled packet
		if !reflect.ValueOf(p).Elem().IsZero() {
			continue
		}
		// Fill fake data
		if err := faker.FakeData(p); err != nil {
			panic(fmt.Sprintf("error fake %T: %v", p, err))
		}
	}
}

func TestPackets(t *testing.T) {
	PacketCodings(t,
		[]proto.Direction{proto.ServerBound, proto.ClientBound},
		version.SessionVersions,
		packets...)
}

// PacketCodings compares encoding vs. decoding for the versions and packet samples.
func PacketCodings(t *testing.T,
	directions []proto.Direction,
	versions []*proto.Version,
	samples ...proto.Packet,
) {
	t.Helper()

	message := func(direction proto.Direction, v *proto.Version, packet reflect.Type) string {
		return fmt.Sprintf("Type: %s, Direction: %s, Version: %s", packet.String(), direction, v)
	}
	encode := func(p proto.Packet, c *proto.PacketContext, wr io.Writer) error {
		return util.RecoverFunc(func() error { return p.Encode(c, wr) })
	}
	decode := func(p proto.Packet, c *proto.PacketContext, rd io.Reader) error {
		return util.RecoverFunc(func() error { return p.Decode(c, rd) })
	}

	bufA1, bufA2 := new(bytes.Buffer), new(bytes.Buffer)
	bufB1, bufB2 := new(bytes.Buffer), new(bytes.Buffer)
	for _, direction := range directions {
		for _, v := range versions {
			c := &proto.PacketContext{Direction: direction, Protocol: v.Protocol}
			for _, sample := range samples {
				packetType := reflect.TypeOf(sample).Elem()
				msg := message(direction, v, packetType)

				// Encode sample at protocol version to drop unnecessary data for that version
				require.NoError(t, encode(sample, c, io.MultiWriter(bufA1, bufA2)), msg, "sample encode")
				// Decode bytes to get versioned packet
				a := reflect.New(packetType).Interface().(proto.Packet)
				require.NoError(t, decode(a, c, bufA1), msg, "a decode from bufA1")

				// Now encode it again
				require.NoError(t, encode(a, c, io.MultiWriter(bufB1, bufB2)), msg, "a encode")
				b := reflect.New(packetType).Interface().(proto.Packet)
				// And decode it again.
				require.NoError(t, decode(b, c, bufB1), msg, "b decode from bufB1")

				// Both encode buffs should be equal
				assert.Equal(t, bufA2.Bytes(), bufB2.Bytes(), msg, "re-encoded bytes differ")

				// Both decode buffs should be emptied by packets decode method
				assert.Equal(t, 0, bufA1.Len(), msg, "bufA1 not empty")
				assert.Equal(t, 0, bufB1.Len(), msg, "bufB1 not empty")

				bufA1.Reset()
				bufA2.Reset()
				bufB1.Reset()
				bufB2.Reset()
			}
		}
	}
}

func TestRemoveAllResourcePacks(t *testing.T) {
	PacketCodings(t, []proto.Direction{proto.ClientBound}, version.SessionVersions, &RemoveResourcePack{})
}

func TestUseItemLookSince121(t *testing.T) {
	p := &UseItem{Hand: MainHand, Sequence: 1, Yaw: 1, Pitch: 2}
	for _, tc := range []struct {
		v    *proto.Version
		size int
	}{
		{version.Minecraft_1_20_5, 2},
		{version.Minecraft_1_21, 10},
	} {
		t.Run(tc.v.String(), func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, p.Encode(&proto.PacketContext{Protocol: tc.v.Protocol}, buf))
			assert.Equal(t, tc.size, buf.Len())
		})
	}
}

func TestInteractLayouts(t *testing.T) {
	c := &proto.PacketContext{Protocol: version.Minecraft_1_20_5.Protocol}
	tests := []struct {
		name string
		p    *Interact
		want []byte
	}{
		{"attack", &Interact{EntityID: 1, Type: AttackEntity}, []byte{1, 1, 0}},
		{"interact", &Interact{EntityID: 1, Type: InteractEntity, Hand: OffHand, Sneaking: true}, []byte{1, 0, 1, 1}},
		{"interact at", &Interact{EntityID: 1, Type: InteractAt}, []byte{1, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, tt.p.Encode(c, buf))
			assert.Equal(t, tt.want, buf.Bytes())
		})
	}
}

func TestSetEquipmentContinuationBit(t *testing.T) {
	c := &proto.PacketContext{Protocol: version.Minecraft_1_20_5.Protocol}
	p := &SetEquipment{EntityID: 2, Equipment: []Equipment{{Slot: 1}, {Slot: 4}}}
	buf := new(bytes.Buffer)
	require.NoError(t, util.RecoverFunc(func() error { return p.Encode(c, buf) }))
	assert.Equal(t, []byte{2, 0x81, 0, 0x04, 0}, buf.Bytes())

	empty := &SetEquipment{EntityID: 2}
	err := empty.Encode(c, new(bytes.Buffer))
	assert.Equal(t, errs.KindMissingField, errs.KindOf(err))
}

func TestSyncPlayerPositionApply(t *testing.T) {
	p := &SyncPlayerPosition{X: 1, Y: 2, Z: 3, Yaw: 10, Pitch: 5, Flags: RelativeX | RelativeYaw}
	x, y, z, yaw, pitch := p.Apply(100, 64, -20, 90, 45)
	assert.Equal(t, 101.0, x)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, 3.0, z)
	assert.Equal(t, float32(100), yaw)
	assert.Equal(t, float32(5), pitch)
}

func TestResourcePackValidURL(t *testing.T) {
	for url, valid := range map[string]bool{
		"https://example.com/pack.zip": true,
		"http://example.com/pack.zip":  true,
		"level://x":                    false,
		"httpx":                        false,
		"":                             false,
	} {
		assert.Equal(t, valid, (&ResourcePackRequest{URL: url}).ValidURL(), url)
	}
}

func TestDimensionTypes(t *testing.T) {
	overworld, err := util.NBTToTag(util.NBT{
		"min_y":          int32(-64),
		"height":         int32(384),
		"logical_height": int32(384),
		"ambient_light":  float32(0),
		"has_skylight":   uint8(1),
		"has_ceiling":    uint8(0),
		"natural":        uint8(1),
		"effects":        "minecraft:overworld",
	})
	require.NoError(t, err)
	broken, err := util.NBTToTag(util.NBT{"min_y": int32(0)})
	require.NoError(t, err)

	types, err := DimensionTypes(&config.RegistryData{
		RegistryID: DimensionTypeRegistry,
		Entries: []config.RegistryEntry{
			{ID: "minecraft:overworld", HasData: true, Data: overworld},
			{ID: "minecraft:the_nether"},
		},
	})
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "minecraft:overworld", types[0].Name)
	assert.Equal(t, int32(-64), types[0].MinY)
	assert.Equal(t, int32(384), types[0].Height)
	assert.True(t, types[0].HasSkylight)
	assert.True(t, types[0].Natural)
	assert.Equal(t, 1.0, types[0].CoordinateScale)
	assert.Equal(t, "minecraft:the_nether", types[1].Name)

	_, err = DimensionTypes(&config.RegistryData{
		RegistryID: DimensionTypeRegistry,
		Entries:    []config.RegistryEntry{{ID: "x", HasData: true, Data: broken}},
	})
	assert.Equal(t, errs.KindMissingField, errs.KindOf(err))

	_, err = DimensionTypes(&config.RegistryData{RegistryID: "minecraft:chat_type"})
	assert.Equal(t, errs.KindUnsupported, errs.KindOf(err))
}

func titlePackets() []proto.Packet {
	text, sub, bar := new(title.Text), new(title.Subtitle), new(title.Actionbar)
	text.Component = *chat.FromText("Welcome")
	sub.Component = *chat.FromComponent(&mc.Text{Content: "to the ", Extra: []mc.Component{
		&mc.Text{Content: "server", S: mc.Style{Bold: mc.True}},
	}})
	bar.Component = *chat.FromText("Health low")
	return []proto.Packet{text, sub, bar}
}

func TestLoginDisconnectAlwaysJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	c := &proto.PacketContext{Protocol: version.Minecraft_1_21.Protocol}
	require.NoError(t, (&LoginDisconnect{Reason: *chat.FromText("bye")}).Encode(c, buf))
	s, err := util.ReadString(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Contains(t, s, "bye")

	d := new(LoginDisconnect)
	require.NoError(t, d.Decode(c, buf))
	assert.Equal(t, "bye", d.Reason.String())
}

func TestDisconnectKeepsComponent(t *testing.T) {
	reason := `{"translate":"multiplayer.disconnect.kicked","color":"red"}`
	for _, v := range []*proto.Version{version.Minecraft_1_20_2, version.Minecraft_1_21} {
		t.Run(v.String(), func(t *testing.T) {
			c := &proto.PacketContext{Protocol: v.Protocol}
			sample := &Disconnect{Reason: chat.ComponentHolder{Protocol: v.Protocol, JSON: []byte(reason)}}
			buf := new(bytes.Buffer)
			require.NoError(t, sample.Encode(c, buf))

			d := new(Disconnect)
			require.NoError(t, d.Decode(c, bytes.NewReader(buf.Bytes())))
			comp, err := d.Reason.AsComponent()
			require.NoError(t, err)
			tr, ok := comp.(*mc.Translation)
			require.True(t, ok, "got %T", comp)
			assert.Equal(t, "multiplayer.disconnect.kicked", tr.Key)
			assert.Contains(t, d.Reason.Legacy(util.DefaultTranslations), "§c")
		})
	}
}

var testUUID, _ = uuid.Parse(`123e4567-e89b-12d3-a456-426614174000`)

func testSlot() component.Slot {
	return component.Slot{
		Count:      3,
		ItemID:     812,
		Components: []component.Component{&component.DyedColor{Color: 0xFF00FF}},
		Removed:    []int{7},
	}
}

func strPtr(s string) *string { return &s }

func TestBundle(t *testing.T) {
	var b Bundle
	require.NoError(t, b.Add(), "packets outside a bundle are not counted")
	assert.Equal(t, 0, b.Toggle())
	assert.True(t, b.Open())
	for range 3 {
		require.NoError(t, b.Add())
	}
	assert.Equal(t, 3, b.Toggle())
	assert.False(t, b.Open())

	b.Toggle()
	for range MaxBundlePackets {
		require.NoError(t, b.Add())
	}
	err := b.Add()
	assert.ErrorIs(t, err, errs.ErrDesync)
}

func TestHandshakeIntent(t *testing.T) {
	c := &proto.PacketContext{Direction: proto.ServerBound, Protocol: version.Minecraft_1_21.Protocol}
	tests := []struct {
		intent Intent
		valid  bool
	}{
		{intent: IntentStatus, valid: true},
		{intent: IntentLogin, valid: true},
		{intent: IntentTransfer, valid: true},
		{intent: 0},
		{intent: 4},
	}
	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, (&Handshake{ProtocolVersion: 767, ServerAddress: "mc.example.com", Port: 25565, Intent: tt.intent}).Encode(c, buf))
			h := new(Handshake)
			err := util.RecoverFunc(func() error { return h.Decode(c, buf) })
			if !tt.valid {
				assert.ErrorIs(t, err, errs.ErrDesync)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.intent, h.Intent)
			assert.Equal(t, 25565, h.Port)
		})
	}
}
