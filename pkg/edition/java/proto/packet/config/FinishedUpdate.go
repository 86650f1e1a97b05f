package config

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// FinishedUpdate ends the configuration state. The server sends it
// and the client acknowledges with the same empty packet.
type FinishedUpdate struct{}

var _ proto.Packet = (*FinishedUpdate)(nil)

func (p *FinishedUpdate) Encode(*proto.PacketContext, io.Writer) error {
	return nil
}

func (p *FinishedUpdate) Decode(*proto.PacketContext, io.Reader) (err error) {
	return nil
}
