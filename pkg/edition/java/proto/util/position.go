package util

import (
	"fmt"
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Position is a block location packed into a single 64 bit integer on the wire.
// X and Z are 26 bit, Y is 12 bit, all signed.
type Position struct {
	X, Y, Z int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Pack returns the wire encoding of p for the protocol.
// Since 1.14 the layout is x|z|y, before it was x|y|z.
func (p Position) Pack(protocol proto.Protocol) int64 {
	x := int64(p.X) & 0x3FFFFFF
	y := int64(p.Y) & 0xFFF
	z := int64(p.Z) & 0x3FFFFFF
	if protocol.GreaterEqual(version.Minecraft_1_14) {
		return x<<38 | z<<12 | y
	}
	return x<<38 | y<<26 | z
}

// UnpackPosition decodes a packed position.
func UnpackPosition(protocol proto.Protocol, val int64) Position {
	if protocol.GreaterEqual(version.Minecraft_1_14) {
		return Position{
			X: int(val >> 38),
			Y: int(val << 52 >> 52),
			Z: int(val << 26 >> 38),
		}
	}
	return Position{
		X: int(val >> 38),
		Y: int(val << 26 >> 52),
		Z: int(val << 38 >> 38),
	}
}

func ReadPosition(rd io.Reader, protocol proto.Protocol) (Position, error) {
	val, err := ReadInt64(rd)
	if err != nil {
		return Position{}, err
	}
	return UnpackPosition(protocol, val), nil
}

func WritePosition(wr io.Writer, protocol proto.Protocol, p Position) error {
	return WriteInt64(wr, p.Pack(protocol))
}
