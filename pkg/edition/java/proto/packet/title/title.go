// Package title contains title packets.
package title

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Action tells which part of a title a packet updates.
type Action int

// Title actions as reported to handlers.
const (
	SetTitle Action = iota
	SetSubtitle
	SetActionBar
	SetTimes
	Hide
	Reset
)

type textPacket struct {
	Component chat.ComponentHolder
}

func (t *textPacket) Encode(c *proto.PacketContext, wr io.Writer) error {
	return t.Component.Write(wr, c.Protocol)
}

func (t *textPacket) Decode(c *proto.PacketContext, rd io.Reader) error {
	h, err := chat.ReadComponentHolder(rd, c.Protocol)
	if err != nil {
		return err
	}
	t.Component = *h
	return nil
}

type (
	// Text sets the title text.
	Text struct{ textPacket }
	// Subtitle sets the subtitle text.
	Subtitle struct{ textPacket }
	// Actionbar sets the action bar text.
	Actionbar struct{ textPacket }
)

// Times sets the fade and stay times in ticks.
type Times struct {
	FadeIn  int32
	Stay    int32
	FadeOut int32
}

func (t *Times) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Int32(t.FadeIn)
	w.Int32(t.Stay)
	w.Int32(t.FadeOut)
	return nil
}

func (t *Times) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Int32(&t.FadeIn)
	r.Int32(&t.Stay)
	r.Int32(&t.FadeOut)
	return nil
}

// Clear hides the title, resetting its texts and times if Action is Reset.
type Clear struct {
	Action Action // Hide or Reset
}

func (c *Clear) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteBool(wr, c.Action == Reset)
}

func (c *Clear) Decode(_ *proto.PacketContext, rd io.Reader) error {
	reset, err := util.ReadBool(rd)
	if err != nil {
		return err
	}
	c.Action = Hide
	if reset {
		c.Action = Reset
	}
	return nil
}

var (
	_ proto.Packet = (*Text)(nil)
	_ proto.Packet = (*Subtitle)(nil)
	_ proto.Packet = (*Actionbar)(nil)
	_ proto.Packet = (*Times)(nil)
	_ proto.Packet = (*Clear)(nil)
)
