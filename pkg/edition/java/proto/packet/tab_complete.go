package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

const (
	MaxTabCompleteLen = 32500
	maxTabOffers      = 1024
)

// TabCompleteRequest asks the server for command suggestions.
type TabCompleteRequest struct {
	TransactionID int
	Command       string
}

func (t *TabCompleteRequest) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(t.TransactionID)
	w.String(t.Command)
	return nil
}

func (t *TabCompleteRequest) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&t.TransactionID)
	r.StringMax(&t.Command, MaxTabCompleteLen)
	return nil
}

// TabCompleteOffer is a suggestion replacing the text from Start to Start+Length.
type TabCompleteOffer struct {
	Text    string
	Tooltip *string // nil-able
}

// TabCompleteResponse answers a TabCompleteRequest.
type TabCompleteResponse struct {
	TransactionID int
	Start         int
	Length        int
	Offers        []TabCompleteOffer
}

// Texts returns the suggested texts.
func (t *TabCompleteResponse) Texts() []string {
	texts := make([]string, len(t.Offers))
	for i, o := range t.Offers {
		texts[i] = o.Text
	}
	return texts
}

func (t *TabCompleteResponse) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(t.TransactionID)
	w.VarInt(t.Start)
	w.VarInt(t.Length)
	w.VarInt(len(t.Offers))
	for _, o := range t.Offers {
		w.String(o.Text)
		if w.Bool(o.Tooltip != nil) {
			w.Text(*o.Tooltip, c.Protocol)
		}
	}
	return nil
}

func (t *TabCompleteResponse) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&t.TransactionID)
	r.VarInt(&t.Start)
	r.VarInt(&t.Length)
	t.Offers = make([]TabCompleteOffer, r.Count(maxTabOffers))
	for i := range t.Offers {
		o := &t.Offers[i]
		r.String(&o.Text)
		if r.Ok() {
			o.Tooltip = new(string)
			r.Text(o.Tooltip, c.Protocol)
		}
	}
	return nil
}

var (
	_ proto.Packet = (*TabCompleteRequest)(nil)
	_ proto.Packet = (*TabCompleteResponse)(nil)
)
