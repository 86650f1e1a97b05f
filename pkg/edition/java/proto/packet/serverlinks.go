package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// ServerLinks lists links shown in the pause menu.
type ServerLinks struct {
	ServerLinks []*ServerLink
}

func (p *ServerLinks) Encode(c *proto.PacketContext, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(len(p.ServerLinks))
	for _, link := range p.ServerLinks {
		if err := link.Encode(c, wr); err != nil {
			return err
		}
	}
	return nil
}

func (p *ServerLinks) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	r := util.PanicReader(rd)
	p.ServerLinks = make([]*ServerLink, r.Count(256))
	for i := range p.ServerLinks {
		p.ServerLinks[i] = new(ServerLink)
		if err = p.ServerLinks[i].Decode(c, rd); err != nil {
			return err
		}
	}
	return nil
}

// ServerLink is a link with a built-in label (ID >= 0) or a custom one.
type ServerLink struct {
	ID    int
	Label string
	URL   string
}

func (p *ServerLink) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if w.Bool(p.ID >= 0) {
		w.VarInt(p.ID)
	} else {
		w.Text(p.Label, c.Protocol)
	}
	w.String(p.URL)
	return nil
}

func (p *ServerLink) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	if r.Ok() {
		r.VarInt(&p.ID)
	} else {
		p.ID = -1
		r.Text(&p.Label, c.Protocol)
	}
	r.String(&p.URL)
	return nil
}

var _ proto.Packet = (*ServerLinks)(nil)
