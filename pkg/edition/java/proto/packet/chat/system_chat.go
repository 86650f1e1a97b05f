package chat

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// SystemChat is a server message not sent by a player.
// Overlay messages are shown above the hotbar.
type SystemChat struct {
	Content ComponentHolder
	Overlay bool
}

func (p *SystemChat) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	writeHolder(c, wr, &p.Content)
	w.Bool(p.Overlay)
	return nil
}

func (p *SystemChat) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.Content = readHolder(c, rd)
	r.Bool(&p.Overlay)
	return nil
}

var _ proto.Packet = (*SystemChat)(nil)
