package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Relative flags of SyncPlayerPosition.
// A set bit means the value is an offset to the current one.
const (
	RelativeX byte = 1 << iota
	RelativeY
	RelativeZ
	RelativeYaw
	RelativePitch
)

// SyncPlayerPosition sets the player position and look direction
// and dismisses the "loading terrain" screen when joining.
type SyncPlayerPosition struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      byte
	// TeleportID must be confirmed with ConfirmTeleport.
	TeleportID int
}

// Apply resolves the relative fields against the current location.
func (s *SyncPlayerPosition) Apply(x, y, z float64, yaw, pitch float32) (float64, float64, float64, float32, float32) {
	rel := func(flag byte, cur, v float64) float64 {
		if s.Flags&flag != 0 {
			return cur + v
		}
		return v
	}
	relf := func(flag byte, cur, v float32) float32 {
		if s.Flags&flag != 0 {
			return cur + v
		}
		return v
	}
	return rel(RelativeX, x, s.X), rel(RelativeY, y, s.Y), rel(RelativeZ, z, s.Z),
		relf(RelativeYaw, yaw, s.Yaw), relf(RelativePitch, pitch, s.Pitch)
}

func (s *SyncPlayerPosition) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Float64(s.X)
	w.Float64(s.Y)
	w.Float64(s.Z)
	w.Float32(s.Yaw)
	w.Float32(s.Pitch)
	w.Byte(s.Flags)
	w.VarInt(s.TeleportID)
	return nil
}

func (s *SyncPlayerPosition) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Float64(&s.X)
	r.Float64(&s.Y)
	r.Float64(&s.Z)
	r.Float32(&s.Yaw)
	r.Float32(&s.Pitch)
	r.Byte(&s.Flags)
	r.VarInt(&s.TeleportID)
	return nil
}

// ConfirmTeleport acknowledges a SyncPlayerPosition.
type ConfirmTeleport struct {
	TeleportID int
}

func (c *ConfirmTeleport) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteVarInt(wr, c.TeleportID)
}

func (c *ConfirmTeleport) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	c.TeleportID, err = util.ReadVarInt(rd)
	return
}

// PlayerPosition updates the player location on the server.
type PlayerPosition struct {
	X, FeetY, Z float64
	OnGround    bool
}

func (p *PlayerPosition) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Float64(p.X)
	w.Float64(p.FeetY)
	w.Float64(p.Z)
	w.Bool(p.OnGround)
	return nil
}

func (p *PlayerPosition) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Float64(&p.X)
	r.Float64(&p.FeetY)
	r.Float64(&p.Z)
	r.Bool(&p.OnGround)
	return nil
}

// PlayerPositionRotation updates the player location and look direction.
type PlayerPositionRotation struct {
	X, FeetY, Z float64
	Yaw, Pitch  float32
	OnGround    bool
}

func (p *PlayerPositionRotation) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Float64(p.X)
	w.Float64(p.FeetY)
	w.Float64(p.Z)
	w.Float32(p.Yaw)
	w.Float32(p.Pitch)
	w.Bool(p.OnGround)
	return nil
}

func (p *PlayerPositionRotation) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Float64(&p.X)
	r.Float64(&p.FeetY)
	r.Float64(&p.Z)
	r.Float32(&p.Yaw)
	r.Float32(&p.Pitch)
	r.Bool(&p.OnGround)
	return nil
}

// PlayerRotation updates the player look direction.
type PlayerRotation struct {
	Yaw, Pitch float32
	OnGround   bool
}

func (p *PlayerRotation) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Float32(p.Yaw)
	w.Float32(p.Pitch)
	w.Bool(p.OnGround)
	return nil
}

func (p *PlayerRotation) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Float32(&p.Yaw)
	r.Float32(&p.Pitch)
	r.Bool(&p.OnGround)
	return nil
}

var (
	_ proto.Packet = (*SyncPlayerPosition)(nil)
	_ proto.Packet = (*ConfirmTeleport)(nil)
	_ proto.Packet = (*PlayerPosition)(nil)
	_ proto.Packet = (*PlayerPositionRotation)(nil)
	_ proto.Packet = (*PlayerRotation)(nil)
)
