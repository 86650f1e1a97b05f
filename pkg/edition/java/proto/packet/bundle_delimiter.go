package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// MaxBundlePackets is the most packets a bundle may hold.
const MaxBundlePackets = 4096

// BundleDelimiter opens or closes a bundle of play packets
// the client applies in the same tick.
type BundleDelimiter struct{}

func (*BundleDelimiter) Encode(*proto.PacketContext, io.Writer) error { return nil }
func (*BundleDelimiter) Decode(*proto.PacketContext, io.Reader) error { return nil }

// Bundle follows the delimiters of a connection.
// The zero value is a closed bundle.
type Bundle struct {
	open bool
	size int
}

// Open reports whether packets are currently bundled.
func (b *Bundle) Open() bool { return b.open }

// Toggle handles a BundleDelimiter. On close it returns the number of
// packets the bundle held.
func (b *Bundle) Toggle() (closed int) {
	if b.open {
		closed = b.size
	}
	b.open, b.size = !b.open, 0
	return closed
}

// Add counts a packet received while the bundle is open.
func (b *Bundle) Add() error {
	if !b.open {
		return nil
	}
	b.size++
	if b.size > MaxBundlePackets {
		return errs.Desyncf("bundle exceeds %d packets", MaxBundlePackets)
	}
	return nil
}

var _ proto.Packet = (*BundleDelimiter)(nil)
