package state

import (
	p "github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/config"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/cookie"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/playerinfo"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/plugin"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/title"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// The registries storing the packets for a connection state.
var (
	Handshake = NewRegistry(proto.HandshakeState)
	Status    = NewRegistry(proto.StatusState)
	Login     = NewRegistry(proto.LoginState)
	Config    = NewRegistry(proto.ConfigState)
	Play      = NewRegistry(proto.PlayState)
)

// ForState returns the registry of a connection state.
func ForState(s proto.State) *Registry {
	switch s {
	case proto.HandshakeState:
		return Handshake
	case proto.StatusState:
		return Status
	case proto.LoginState:
		return Login
	case proto.ConfigState:
		return Config
	default:
		return Play
	}
}

func init() {
	Handshake.ServerBound.Register(&p.Handshake{},
		m(0x00, version.Minecraft_1_20_5))

	Status.ServerBound.Register(&p.StatusRequest{},
		m(0x00, version.Minecraft_1_20_5))
	Status.ServerBound.Register(&p.StatusPing{},
		m(0x01, version.Minecraft_1_20_5))
	Status.ClientBound.Register(&p.StatusResponse{},
		m(0x00, version.Minecraft_1_20_5))
	Status.ClientBound.Register(&p.StatusPing{},
		m(0x01, version.Minecraft_1_20_5))

	Login.ServerBound.Register(&p.ServerLogin{},
		m(0x00, version.Minecraft_1_20_5))
	Login.ServerBound.Register(&p.LoginPluginResponse{},
		m(0x02, version.Minecraft_1_20_5))
	Login.ServerBound.Register(&p.LoginAcknowledged{},
		m(0x03, version.Minecraft_1_20_5))
	Login.ServerBound.Register(&cookie.CookieResponse{},
		m(0x04, version.Minecraft_1_20_5))

	Login.ClientBound.Register(&p.LoginDisconnect{},
		m(0x00, version.Minecraft_1_20_5))
	Login.ClientBound.Register(&p.EncryptionRequest{},
		m(0x01, version.Minecraft_1_20_5))
	Login.ClientBound.Register(&p.ServerLoginSuccess{},
		m(0x02, version.Minecraft_1_20_5))
	Login.ClientBound.Register(&p.SetCompression{},
		m(0x03, version.Minecraft_1_20_5))
	Login.ClientBound.Register(&p.LoginPluginMessage{},
		m(0x04, version.Minecraft_1_20_5))
	Login.ClientBound.Register(&cookie.CookieRequest{},
		m(0x05, version.Minecraft_1_20_5))

	Config.ServerBound.Register(&p.ClientSettings{},
		m(0x00, version.Minecraft_1_20_5))
	Config.ServerBound.Register(&cookie.CookieResponse{},
		m(0x01, version.Minecraft_1_20_5))
	Config.ServerBound.Register(&plugin.Message{},
		m(0x02, version.Minecraft_1_20_5))
	Config.ServerBound.Register(&config.FinishedUpdate{},
		m(0x03, version.Minecraft_1_20_5))
	Config.ServerBound.Register(&p.KeepAlive{},
		m(0x04, version.Minecraft_1_20_5))
	Config.ServerBound.Register(&p.Pong{},
		m(0x05, version.Minecraft_1_20_5))
	Config.ServerBound.Register(&p.ResourcePackResponse{},
		m(0x06, version.Minecraft_1_20_5))
	Config.ServerBound.Register(&config.KnownPacks{},
		m(0x07, version.Minecraft_1_20_5))

	Config.ClientBound.Register(&cookie.CookieRequest{},
		m(0x00, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&plugin.Message{},
		m(0x01, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&p.Disconnect{},
		m(0x02, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&config.FinishedUpdate{},
		m(0x03, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&p.KeepAlive{},
		m(0x04, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&p.Ping{},
		m(0x05, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&config.RegistryData{},
		m(0x07, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&p.RemoveResourcePack{},
		m(0x08, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&p.ResourcePackRequest{},
		m(0x09, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&cookie.CookieStore{},
		m(0x0A, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&p.Transfer{},
		m(0x0B, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&config.ActiveFeatures{},
		m(0x0C, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&config.KnownPacks{},
		m(0x0E, version.Minecraft_1_20_5))
	Config.ClientBound.Register(&p.CustomReportDetails{},
		m(0x0F, version.Minecraft_1_21))
	Config.ClientBound.Register(&p.ServerLinks{},
		m(0x10, version.Minecraft_1_21))

	registerPlay()
}

func registerPlay() {
	sb := Play.ServerBound.Register
	sb(&p.ConfirmTeleport{}, m(0x00, version.Minecraft_1_20_5))
	sb(&chat.UnsignedPlayerCommand{}, m(0x04, version.Minecraft_1_20_5))
	sb(&chat.SessionPlayerChat{}, m(0x06, version.Minecraft_1_20_5))
	sb(&p.PlayerSession{}, m(0x07, version.Minecraft_1_20_5))
	sb(&p.ClientStatus{}, m(0x09, version.Minecraft_1_20_5))
	sb(&p.ClientSettings{}, m(0x0A, version.Minecraft_1_20_5))
	sb(&p.TabCompleteRequest{}, m(0x0B, version.Minecraft_1_20_5))
	sb(&config.StartUpdate{}, m(0x0C, version.Minecraft_1_20_5))
	sb(&p.ClickContainerButton{}, m(0x0D, version.Minecraft_1_20_5))
	sb(&p.ClickContainer{}, m(0x0E, version.Minecraft_1_20_5))
	sb(&p.CloseContainer{}, m(0x0F, version.Minecraft_1_20_5))
	sb(&cookie.CookieResponse{}, m(0x11, version.Minecraft_1_20_5))
	sb(&plugin.Message{}, m(0x12, version.Minecraft_1_20_5))
	sb(&p.Interact{}, m(0x16, version.Minecraft_1_20_5))
	sb(&p.KeepAlive{}, m(0x18, version.Minecraft_1_20_5))
	sb(&p.PlayerPosition{}, m(0x1A, version.Minecraft_1_20_5))
	sb(&p.PlayerPositionRotation{}, m(0x1B, version.Minecraft_1_20_5))
	sb(&p.PlayerRotation{}, m(0x1C, version.Minecraft_1_20_5))
	sb(&p.PickItem{}, m(0x20, version.Minecraft_1_20_5))
	sb(&p.PlayerAction{}, m(0x24, version.Minecraft_1_20_5))
	sb(&p.EntityAction{}, m(0x25, version.Minecraft_1_20_5))
	sb(&p.Pong{}, m(0x27, version.Minecraft_1_20_5))
	sb(&p.RenameItem{}, m(0x2A, version.Minecraft_1_20_5))
	sb(&p.ResourcePackResponse{}, m(0x2B, version.Minecraft_1_20_5))
	sb(&p.SelectTrade{}, m(0x2D, version.Minecraft_1_20_5))
	sb(&p.BeaconEffect{}, m(0x2E, version.Minecraft_1_20_5))
	sb(&p.HeldItemChange{}, m(0x2F, version.Minecraft_1_20_5))
	sb(&p.CreativeSlot{}, m(0x32, version.Minecraft_1_20_5))
	sb(&p.UpdateSign{}, m(0x35, version.Minecraft_1_20_5))
	sb(&p.SwingArm{}, m(0x36, version.Minecraft_1_20_5))
	sb(&p.Spectate{}, m(0x37, version.Minecraft_1_20_5))
	sb(&p.UseItemOn{}, m(0x38, version.Minecraft_1_20_5))
	sb(&p.UseItem{}, m(0x39, version.Minecraft_1_20_5))

	cb := Play.ClientBound.Register
	cb(&p.BundleDelimiter{}, m(0x00, version.Minecraft_1_20_5))
	cb(&p.SpawnEntity{}, m(0x01, version.Minecraft_1_20_5))
	cb(&p.EntityAnimation{}, m(0x03, version.Minecraft_1_20_5))
	cb(&p.BlockDestroyStage{}, m(0x06, version.Minecraft_1_20_5))
	cb(&title.Clear{}, m(0x0F, version.Minecraft_1_20_5))
	cb(&p.TabCompleteResponse{}, m(0x10, version.Minecraft_1_20_5))
	cb(&p.CloseContainer{}, m(0x12, version.Minecraft_1_20_5))
	cb(&p.ContainerContent{}, m(0x13, version.Minecraft_1_20_5))
	cb(&p.ContainerProperty{}, m(0x14, version.Minecraft_1_20_5))
	cb(&p.ContainerSlot{}, m(0x15, version.Minecraft_1_20_5))
	cb(&cookie.CookieRequest{}, m(0x16, version.Minecraft_1_20_5))
	cb(&plugin.Message{}, m(0x19, version.Minecraft_1_20_5))
	cb(&p.Disconnect{}, m(0x1D, version.Minecraft_1_20_5))
	cb(&chat.DisguisedChat{}, m(0x1E, version.Minecraft_1_20_5))
	cb(&p.EntityEvent{}, m(0x1F, version.Minecraft_1_20_5))
	cb(&p.Explosion{}, m(0x20, version.Minecraft_1_20_5))
	cb(&p.GameEvent{}, m(0x22, version.Minecraft_1_20_5))
	cb(&p.KeepAlive{}, m(0x26, version.Minecraft_1_20_5))
	cb(&p.JoinGame{}, m(0x2B, version.Minecraft_1_20_5))
	cb(&p.MapData{}, m(0x2C, version.Minecraft_1_20_5))
	cb(&p.MerchantOffers{}, m(0x2D, version.Minecraft_1_20_5))
	cb(&p.EntityPosition{}, m(0x2E, version.Minecraft_1_20_5))
	cb(&p.EntityPositionRotation{}, m(0x2F, version.Minecraft_1_20_5))
	cb(&p.EntityRotation{}, m(0x30, version.Minecraft_1_20_5))
	cb(&p.OpenScreen{}, m(0x33, version.Minecraft_1_20_5))
	cb(&p.Ping{}, m(0x35, version.Minecraft_1_20_5))
	cb(&chat.PlayerChat{}, m(0x39, version.Minecraft_1_20_5))
	cb(&p.CombatDeath{}, m(0x3C, version.Minecraft_1_20_5))
	cb(&playerinfo.Remove{}, m(0x3D, version.Minecraft_1_20_5))
	cb(&playerinfo.Upsert{}, m(0x3E, version.Minecraft_1_20_5))
	cb(&p.SyncPlayerPosition{}, m(0x40, version.Minecraft_1_20_5))
	cb(&p.RemoveEntities{}, m(0x42, version.Minecraft_1_20_5))
	cb(&p.RemoveResourcePack{}, m(0x45, version.Minecraft_1_20_5))
	cb(&p.ResourcePackRequest{}, m(0x46, version.Minecraft_1_20_5))
	cb(&p.Respawn{}, m(0x47, version.Minecraft_1_20_5))
	cb(&p.HeadRotation{}, m(0x48, version.Minecraft_1_20_5))
	cb(&p.ServerData{}, m(0x4B, version.Minecraft_1_20_5))
	cb(&title.Actionbar{}, m(0x4C, version.Minecraft_1_20_5))
	cb(&p.HeldItem{}, m(0x53, version.Minecraft_1_20_5))
	cb(&p.EntityMetadata{}, m(0x58, version.Minecraft_1_20_5))
	cb(&p.SetEquipment{}, m(0x5B, version.Minecraft_1_20_5))
	cb(&p.SetExperience{}, m(0x5C, version.Minecraft_1_20_5))
	cb(&p.SetHealth{}, m(0x5D, version.Minecraft_1_20_5))
	cb(&p.UpdateObjectives{}, m(0x5E, version.Minecraft_1_20_5))
	cb(&p.UpdateScore{}, m(0x61, version.Minecraft_1_20_5))
	cb(&title.Subtitle{}, m(0x63, version.Minecraft_1_20_5))
	cb(&p.UpdateTime{}, m(0x64, version.Minecraft_1_20_5))
	cb(&title.Text{}, m(0x65, version.Minecraft_1_20_5))
	cb(&title.Times{}, m(0x66, version.Minecraft_1_20_5))
	cb(&config.StartUpdate{}, m(0x69, version.Minecraft_1_20_5))
	cb(&cookie.CookieStore{}, m(0x6B, version.Minecraft_1_20_5))
	cb(&chat.SystemChat{}, m(0x6C, version.Minecraft_1_20_5))
	cb(&p.TeleportEntity{}, m(0x70, version.Minecraft_1_20_5))
	cb(&p.Transfer{}, m(0x73, version.Minecraft_1_20_5))
	cb(&p.UpdateAttributes{}, m(0x75, version.Minecraft_1_20_5))
	cb(&p.EntityEffect{}, m(0x76, version.Minecraft_1_20_5))
	cb(&p.CustomReportDetails{}, m(0x7A, version.Minecraft_1_21))
	cb(&p.ServerLinks{}, m(0x7B, version.Minecraft_1_21))
}
