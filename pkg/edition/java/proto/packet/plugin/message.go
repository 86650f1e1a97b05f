package plugin

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// MaxDataLength bounds the payload of a plugin message sent by the server.
const MaxDataLength = 1 << 20

// Message is a Minecraft plugin message packet.
type Message struct {
	Channel string
	Data    []byte
}

func (p *Message) Encode(_ *proto.PacketContext, wr io.Writer) (err error) {
	if err = util.WriteString(wr, p.Channel); err != nil {
		return err
	}
	return util.WriteRawBytes(wr, p.Data)
}

func (p *Message) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.Channel, err = util.ReadIdentifier(rd)
	if err != nil {
		return err
	}
	p.Data, err = util.ReadRemaining(rd)
	if err != nil {
		return err
	}
	if len(p.Data) > MaxDataLength {
		return errs.Desyncf("plugin message of %d bytes exceeds %d", len(p.Data), MaxDataLength)
	}
	return nil
}

var _ proto.Packet = (*Message)(nil)
