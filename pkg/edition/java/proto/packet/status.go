package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Packets of the status state, used to query a server list entry.

const maxStatusLength = 32767

// StatusRequest asks the server for its status.
type StatusRequest struct{}

func (*StatusRequest) Encode(*proto.PacketContext, io.Writer) error { return nil }
func (*StatusRequest) Decode(*proto.PacketContext, io.Reader) error { return nil }

// StatusResponse carries the server list entry as JSON.
type StatusResponse struct {
	Status string
}

func (s *StatusResponse) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteString(wr, s.Status)
}

func (s *StatusResponse) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	s.Status, err = util.ReadStringMax(rd, maxStatusLength)
	return
}

// StatusPing is echoed back unchanged by the server, the round trip
// is the latency shown in the server list.
type StatusPing struct {
	Payload int64
}

func (s *StatusPing) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteInt64(wr, s.Payload)
}

func (s *StatusPing) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	s.Payload, err = util.ReadInt64(rd)
	return
}

var (
	_ proto.Packet = (*StatusRequest)(nil)
	_ proto.Packet = (*StatusResponse)(nil)
	_ proto.Packet = (*StatusPing)(nil)
)
