package chat

import (
	"io"
	"time"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// Filter types of a player chat message.
const (
	FilterPassThrough = iota
	FilterFullyFiltered
	FilterPartiallyFiltered
)

// PreviousMessage references an earlier message by id
// or carries its full signature.
type PreviousMessage struct {
	ID        int    // used if Signature is nil
	Signature []byte // 256 bytes
}

// PlayerChat is a chat message sent by a player.
type PlayerChat struct {
	Sender           uuid.UUID
	Index            int
	Signature        []byte // nil if unsigned
	Message          string
	Timestamp        time.Time
	Salt             int64
	PreviousMessages []PreviousMessage
	UnsignedContent  *ComponentHolder
	FilterType       int
	FilterMask       []int64 // bit set, only for FilterPartiallyFiltered
	ChatType         ChatTypeHolder
	SenderName       ComponentHolder
	TargetName       *ComponentHolder
}

func (p *PlayerChat) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.UUID(p.Sender)
	w.VarInt(p.Index)
	if w.Bool(p.Signature != nil) {
		w.Raw(p.Signature)
	}
	w.String(p.Message)
	w.Int64(p.Timestamp.UnixMilli())
	w.Int64(p.Salt)
	w.VarInt(len(p.PreviousMessages))
	for _, m := range p.PreviousMessages {
		if m.Signature != nil {
			w.VarInt(0)
			w.Raw(m.Signature)
		} else {
			w.VarInt(m.ID + 1)
		}
	}
	if w.Bool(p.UnsignedContent != nil) {
		writeHolder(c, wr, p.UnsignedContent)
	}
	w.VarInt(p.FilterType)
	if p.FilterType == FilterPartiallyFiltered {
		w.VarInt(len(p.FilterMask))
		for _, l := range p.FilterMask {
			w.Int64(l)
		}
	}
	p.ChatType.write(c, wr)
	writeHolder(c, wr, &p.SenderName)
	if w.Bool(p.TargetName != nil) {
		writeHolder(c, wr, p.TargetName)
	}
	return nil
}

func (p *PlayerChat) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.UUID(&p.Sender)
	r.VarInt(&p.Index)
	p.Signature = readSignature(r)
	r.StringMax(&p.Message, MaxMessageLength)
	var millis int64
	r.Int64(&millis)
	p.Timestamp = time.UnixMilli(millis)
	r.Int64(&p.Salt)
	p.PreviousMessages = make([]PreviousMessage, r.Count(20))
	for i := range p.PreviousMessages {
		id := r.VarIntVal()
		if id != 0 {
			p.PreviousMessages[i].ID = id - 1
			continue
		}
		sig := make([]byte, signatureLength)
		if err := util.ReadFull(rd, sig); err != nil {
			return err
		}
		p.PreviousMessages[i].Signature = sig
	}
	p.UnsignedContent = readOptionalHolder(c, r)
	r.VarInt(&p.FilterType)
	p.FilterMask = nil
	if p.FilterType == FilterPartiallyFiltered {
		p.FilterMask = make([]int64, r.Count(1024))
		for i := range p.FilterMask {
			r.Int64(&p.FilterMask[i])
		}
	}
	p.ChatType.read(c, rd)
	p.SenderName = readHolder(c, rd)
	p.TargetName = readOptionalHolder(c, r)
	return nil
}

// DisguisedChat is a player message without signature, e.g. from /say.
type DisguisedChat struct {
	Message    ComponentHolder
	ChatType   ChatTypeHolder
	SenderName ComponentHolder
	TargetName *ComponentHolder
}

func (p *DisguisedChat) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	writeHolder(c, wr, &p.Message)
	p.ChatType.write(c, wr)
	writeHolder(c, wr, &p.SenderName)
	if w.Bool(p.TargetName != nil) {
		writeHolder(c, wr, p.TargetName)
	}
	return nil
}

func (p *DisguisedChat) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.Message = readHolder(c, rd)
	p.ChatType.read(c, rd)
	p.SenderName = readHolder(c, rd)
	p.TargetName = readOptionalHolder(c, r)
	return nil
}

var (
	_ proto.Packet = (*PlayerChat)(nil)
	_ proto.Packet = (*DisguisedChat)(nil)
)
