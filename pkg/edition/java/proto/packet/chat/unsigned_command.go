package chat

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// UnsignedPlayerCommand runs a command without argument signatures.
// Command excludes the leading slash.
type UnsignedPlayerCommand struct {
	Command string
}

func (u *UnsignedPlayerCommand) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteString(wr, u.Command)
}

func (u *UnsignedPlayerCommand) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	u.Command, err = util.ReadStringMax(rd, 32767)
	return err
}

var _ proto.Packet = (*UnsignedPlayerCommand)(nil)
