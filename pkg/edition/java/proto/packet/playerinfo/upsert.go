package playerinfo

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

const maxEntries = 1 << 12

type (
	// Upsert is the player info update packet. Every entry carries
	// the fields of all actions in ActionSet, in action order.
	Upsert struct {
		ActionSet []UpsertAction
		Entries   []*Entry
	}
	Entry struct {
		ProfileID   uuid.UUID
		Name        string
		Properties  []packet.Property
		Listed      bool
		Latency     int // in milliseconds
		GameMode    int
		DisplayName *string      // nil-able
		ChatSession *ChatSession // nil-able
	}
	// ChatSession is the chat signing session of a remote player.
	ChatSession struct {
		SessionID    uuid.UUID
		ExpiresAt    int64
		PublicKey    []byte
		KeySignature []byte
	}
)

func (u *Upsert) Encode(c *proto.PacketContext, wr io.Writer) error {
	var set byte
	for i, action := range UpsertActions {
		if ContainsAction(u.ActionSet, action) {
			set |= 1 << uint(i)
		}
	}
	w := util.PanicWriter(wr)
	w.Byte(set)
	w.VarInt(len(u.Entries))
	for _, entry := range u.Entries {
		w.UUID(entry.ProfileID)
		// wire order is the order of UpsertActions
		for _, action := range UpsertActions {
			if set&(1<<uint(indexOf(action))) != 0 {
				action.encode(c, w, entry)
			}
		}
	}
	return nil
}

// ContainsAction returns true if the given action is contained in the given action set.
func ContainsAction(actions []UpsertAction, action UpsertAction) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

func indexOf(action UpsertAction) int {
	for i, a := range UpsertActions {
		if a == action {
			return i
		}
	}
	return -1
}

func (u *Upsert) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	var set byte
	r.Byte(&set)
	if set>>uint(len(UpsertActions)) != 0 {
		panic(errs.Unsupportedf("player info actions %08b", set))
	}
	u.ActionSet = nil
	for i, action := range UpsertActions {
		if set&(1<<uint(i)) != 0 {
			u.ActionSet = append(u.ActionSet, action)
		}
	}
	u.Entries = make([]*Entry, r.Count(maxEntries))
	for i := range u.Entries {
		entry := new(Entry)
		r.UUID(&entry.ProfileID)
		for _, action := range u.ActionSet {
			action.decode(c, r, entry)
		}
		u.Entries[i] = entry
	}
	return nil
}

var _ proto.Packet = (*Upsert)(nil)

// UpsertActions
var (
	AddPlayerAction         UpsertAction = &addAction{}
	InitializeChatAction    UpsertAction = &initChatAction{}
	UpdateGameModeAction    UpsertAction = &updateGameModeAction{}
	UpdateListedAction      UpsertAction = &updateListedAction{}
	UpdateLatencyAction     UpsertAction = &updateLatencyAction{}
	UpdateDisplayNameAction UpsertAction = &updateDisplayNameAction{}

	UpsertActions = []UpsertAction{
		AddPlayerAction,
		InitializeChatAction,
		UpdateGameModeAction,
		UpdateListedAction,
		UpdateLatencyAction,
		UpdateDisplayNameAction,
	}
)

// UpsertAction is one of the actions of an Upsert.
type UpsertAction interface {
	encode(c *proto.PacketContext, w *util.PWriter, info *Entry)
	decode(c *proto.PacketContext, r *util.PReader, info *Entry)
}

type addAction struct{}

func (a *addAction) encode(_ *proto.PacketContext, w *util.PWriter, info *Entry) {
	w.String(info.Name)
	packet.WriteProperties(w.Writer(), info.Properties)
}

func (a *addAction) decode(_ *proto.PacketContext, r *util.PReader, info *Entry) {
	const maxUsernameLength = 16
	r.StringMax(&info.Name, maxUsernameLength)
	info.Properties = packet.ReadProperties(r.Reader())
}

type initChatAction struct{}

func (a *initChatAction) encode(_ *proto.PacketContext, w *util.PWriter, info *Entry) {
	if s := info.ChatSession; w.Bool(s != nil) {
		w.UUID(s.SessionID)
		w.Int64(s.ExpiresAt)
		w.Bytes(s.PublicKey)
		w.Bytes(s.KeySignature)
	}
}

func (a *initChatAction) decode(_ *proto.PacketContext, r *util.PReader, info *Entry) {
	info.ChatSession = nil
	if !r.Ok() {
		return
	}
	s := new(ChatSession)
	r.UUID(&s.SessionID)
	r.Int64(&s.ExpiresAt)
	r.Bytes(&s.PublicKey)
	r.Bytes(&s.KeySignature)
	info.ChatSession = s
}

type updateGameModeAction struct{}

func (a *updateGameModeAction) encode(_ *proto.PacketContext, w *util.PWriter, info *Entry) {
	w.VarInt(info.GameMode)
}

func (a *updateGameModeAction) decode(_ *proto.PacketContext, r *util.PReader, info *Entry) {
	r.VarInt(&info.GameMode)
}

type updateListedAction struct{}

func (a *updateListedAction) encode(_ *proto.PacketContext, w *util.PWriter, info *Entry) {
	w.Bool(info.Listed)
}

func (a *updateListedAction) decode(_ *proto.PacketContext, r *util.PReader, info *Entry) {
	r.Bool(&info.Listed)
}

type updateLatencyAction struct{}

func (a *updateLatencyAction) encode(_ *proto.PacketContext, w *util.PWriter, info *Entry) {
	w.VarInt(info.Latency)
}

func (a *updateLatencyAction) decode(_ *proto.PacketContext, r *util.PReader, info *Entry) {
	r.VarInt(&info.Latency)
}

type updateDisplayNameAction struct{}

func (a *updateDisplayNameAction) encode(c *proto.PacketContext, w *util.PWriter, info *Entry) {
	if w.Bool(info.DisplayName != nil) {
		w.Text(*info.DisplayName, c.Protocol)
	}
}

func (a *updateDisplayNameAction) decode(c *proto.PacketContext, r *util.PReader, info *Entry) {
	info.DisplayName = nil
	if r.Ok() {
		info.DisplayName = new(string)
		r.Text(info.DisplayName, c.Protocol)
	}
}
