package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Chat visibility modes of ClientSettings.
const (
	ChatEnabled = iota
	ChatCommandsOnly
	ChatHidden
)

// ClientSettings is the client information packet of the configuration and play state.
type ClientSettings struct {
	Locale         string // may be empty
	ViewDistance   byte
	ChatVisibility int
	ChatColors     bool
	SkinParts      byte
	MainHand       int // 0 left, 1 right
	TextFiltering  bool
	ClientListing  bool // overwrites server-list "anonymous" mode
}

func (s *ClientSettings) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.String(s.Locale)
	w.Byte(s.ViewDistance)
	w.VarInt(s.ChatVisibility)
	w.Bool(s.ChatColors)
	w.Byte(s.SkinParts)
	w.VarInt(s.MainHand)
	w.Bool(s.TextFiltering)
	w.Bool(s.ClientListing)
	return nil
}

func (s *ClientSettings) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.StringMax(&s.Locale, 16)
	r.Byte(&s.ViewDistance)
	r.VarInt(&s.ChatVisibility)
	r.Bool(&s.ChatColors)
	r.Byte(&s.SkinParts)
	r.VarInt(&s.MainHand)
	r.Bool(&s.TextFiltering)
	r.Bool(&s.ClientListing)
	return nil
}

var _ proto.Packet = (*ClientSettings)(nil)
