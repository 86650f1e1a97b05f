package config

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// StartUpdate moves a play connection back to the configuration state.
// The client acknowledges with the same empty packet.
type StartUpdate struct{}

var _ proto.Packet = (*StartUpdate)(nil)

func (p *StartUpdate) Encode(*proto.PacketContext, io.Writer) error {
	return nil
}

func (p *StartUpdate) Decode(*proto.PacketContext, io.Reader) (err error) {
	return nil
}
