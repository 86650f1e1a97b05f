package chat

import (
	"io"
	"time"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// MaxMessageLength is the longest chat message a client may send.
const MaxMessageLength = 256

const signatureLength = 256

// SessionPlayerChat is a chat message sent by the client.
// Unsigned messages have a nil Signature.
type SessionPlayerChat struct {
	Message          string
	Timestamp        time.Time
	Salt             int64
	Signature        []byte
	LastSeenMessages LastSeenMessages
}

var _ proto.Packet = (*SessionPlayerChat)(nil)

func (p *SessionPlayerChat) Encode(c *proto.PacketContext, wr io.Writer) error {
	if p.Signature != nil && len(p.Signature) != signatureLength {
		return errs.Desyncf("chat signature must be %d bytes, got %d", signatureLength, len(p.Signature))
	}
	w := util.PanicWriter(wr)
	w.String(p.Message)
	w.Int64(p.Timestamp.UnixMilli())
	w.Int64(p.Salt)
	if w.Bool(p.Signature != nil) {
		w.Raw(p.Signature)
	}
	return p.LastSeenMessages.Encode(c, wr)
}

func (p *SessionPlayerChat) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.StringMax(&p.Message, MaxMessageLength)
	var millis int64
	r.Int64(&millis)
	p.Timestamp = time.UnixMilli(millis)
	r.Int64(&p.Salt)
	p.Signature = readSignature(r)
	return p.LastSeenMessages.Decode(c, rd)
}

func readSignature(r *util.PReader) []byte {
	if !r.Ok() {
		return nil
	}
	sig := make([]byte, signatureLength)
	if err := util.ReadFull(r.Reader(), sig); err != nil {
		panic(err)
	}
	return sig
}

// LastSeenMessages acknowledges the last 20 messages the client has seen.
type LastSeenMessages struct {
	Offset       int
	Acknowledged [3]byte // fixed bit set of 20 bits
}

func (l *LastSeenMessages) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(l.Offset)
	w.Raw(l.Acknowledged[:])
	return nil
}

func (l *LastSeenMessages) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	l.Offset, err = util.ReadVarInt(rd)
	if err != nil {
		return err
	}
	return util.ReadFull(rd, l.Acknowledged[:])
}
