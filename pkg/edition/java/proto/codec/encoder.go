package codec

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/klauspost/compress/zlib"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/state"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

const (
	VanillaMaximumUncompressedSize = 8 * 1024 * 1024   // 8MiB
	HardMaximumUncompressedSize    = 128 * 1024 * 1024 // 128MiB
	UncompressedCap                = VanillaMaximumUncompressedSize
)

// Encoder is a synchronized packet encoder.
type Encoder struct {
	direction proto.Direction
	log       logr.Logger
	hexDump   bool // for debugging

	mu          sync.Mutex // Protects following fields
	wr          io.Writer  // the underlying writer to write successfully encoded packets to
	registry    *state.ProtocolRegistry
	state       *state.Registry
	protocol    proto.Protocol
	compression struct {
		enabled   bool
		threshold int
		writer    *zlib.Writer
	}
}

// NewEncoder returns an encoder of packets bound to direction,
// starting in the handshake state of the lowest session version.
func NewEncoder(w io.Writer, direction proto.Direction, log logr.Logger) *Encoder {
	return &Encoder{
		log:       log.WithName("encoder"),
		hexDump:   os.Getenv("HEXDUMP") == "true",
		wr:        w,
		direction: direction,
		protocol:  version.MinimumVersion.Protocol,
		registry:  state.FromDirection(direction, state.Handshake, version.MinimumVersion.Protocol),
		state:     state.Handshake,
	}
}

// Direction returns the encoder's direction.
func (e *Encoder) Direction() proto.Direction {
	return e.direction
}

// SetCompression enables compression of frames of at least threshold bytes
// with the zlib level. A negative threshold disables compression.
func (e *Encoder) SetCompression(threshold, level int) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.compression.threshold = threshold
	e.compression.enabled = threshold >= 0
	if e.compression.enabled && e.compression.writer == nil {
		e.compression.writer, err = zlib.NewWriterLevel(io.Discard, level)
	}
	return
}

// WritePacket encodes packet with the id of the current state
// registry and writes the frame to the underlying writer.
func (e *Encoder) WritePacket(packet proto.Packet) (n int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.registry == nil {
		return 0, errs.Unsupportedf("protocol %s has no %s registry in state %s",
			e.protocol, e.direction, e.state.State)
	}
	packetID, found := e.registry.PacketID(packet)
	if !found {
		return 0, errs.Unsupportedf("packet id for type %T in protocol %s not registered in the %s %s state registry",
			packet, e.protocol, e.direction, e.state.State)
	}

	buf, release := encodePool.getBuf()
	defer release()

	_ = util.WriteVarInt(buf, int(packetID))

	ctx := &proto.PacketContext{
		Direction: e.direction,
		Protocol:  e.protocol,
		PacketID:  packetID,
		Packet:    packet,
	}

	if err = util.RecoverFunc(func() error {
		return packet.Encode(ctx, buf)
	}); err != nil {
		return 0, fmt.Errorf("encode %T: %w", packet, err)
	}

	if e.log.V(1).Enabled() {
		e.log.V(1).Info("encoded packet", "context", ctx.String(), "bytes", buf.Len())
		if e.hexDump {
			fmt.Println(hex.Dump(buf.Bytes()))
		}
	}

	return e.writeBuf(buf) // packet id + data
}

// see https://minecraft.wiki/w/Java_Edition_protocol#Packet_format for details
func (e *Encoder) writeBuf(payload *bytes.Buffer) (n int, err error) {
	if e.compression.enabled {
		return e.writeCompressed(payload)
	}
	n, err = util.WriteVarIntN(e.wr, payload.Len()) // packet length
	if err != nil {
		return n, errs.Connection("write frame", err)
	}
	m, err := payload.WriteTo(e.wr) // body
	return int(m) + n, errs.Connection("write frame", err)
}

func (e *Encoder) writeCompressed(payload *bytes.Buffer) (n int, err error) {
	uncompressedSize := payload.Len()
	compressed, release := compressPool.getBuf()
	defer release()

	if uncompressedSize < e.compression.threshold {
		// Under the threshold, there is nothing to do.
		_ = util.WriteVarInt(compressed, 0) // indicate not compressed
		_, _ = payload.WriteTo(compressed)
	} else {
		_ = util.WriteVarInt(compressed, uncompressedSize) // data length
		if err = e.compress(payload.Bytes(), compressed); err != nil {
			return 0, err
		}
	}
	n, err = util.WriteVarIntN(e.wr, compressed.Len()) // packet length
	if err != nil {
		return n, errs.Connection("write frame", err)
	}
	m, err := compressed.WriteTo(e.wr) // body
	return n + int(m), errs.Connection("write frame", err)
}

// Write frames payload and writes it to the underlying writer.
// The payload must not already be compressed and must
// start with the packet's id VarInt and then the packet's data.
func (e *Encoder) Write(payload []byte) (n int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.writeBuf(bytes.NewBuffer(payload))
}

func (e *Encoder) compress(payload []byte, w io.Writer) error {
	e.compression.writer.Reset(w)
	if _, err := e.compression.writer.Write(payload); err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}
	return e.compression.writer.Close()
}

func (e *Encoder) SetProtocol(protocol proto.Protocol) {
	e.mu.Lock()
	e.setProtocol(protocol)
	e.mu.Unlock()
}

func (e *Encoder) setProtocol(protocol proto.Protocol) {
	e.protocol = protocol
	e.registry = state.FromDirection(e.direction, e.state, protocol)
}

func (e *Encoder) SetState(state *state.Registry) {
	e.mu.Lock()
	e.state = state
	e.setProtocol(e.protocol)
	e.mu.Unlock()
}

func (e *Encoder) SetWriter(w io.Writer) {
	e.mu.Lock()
	e.wr = w
	e.mu.Unlock()
}

// Sync locks the encoder while running fn,
// making sure no write calls are run during this call.
func (e *Encoder) Sync(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn()
}
