package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
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

// MaxFrameLength is the largest packet frame accepted (2^21-1).
const MaxFrameLength = 1<<21 - 1

// Decoder is a synchronized packet decoder
// for the Minecraft Java edition.
type Decoder struct {
	log       logr.Logger
	hexDump   bool // for debugging
	direction proto.Direction

	mu                   sync.Mutex // Protects following field and locked while reading a packet.
	rd                   io.Reader  // The underlying reader.
	registry             *state.ProtocolRegistry
	state                *state.Registry
	protocol             proto.Protocol
	compression          bool
	compressionThreshold int
	zrd                  io.ReadCloser
}

var _ proto.PacketDecoder = (*Decoder)(nil)

// NewDecoder returns a decoder of packets bound to direction,
// starting in the handshake state of the lowest session version.
func NewDecoder(r io.Reader, direction proto.Direction, log logr.Logger) *Decoder {
	return &Decoder{
		rd:        &fullReader{r},
		direction: direction,
		state:     state.Handshake,
		protocol:  version.MinimumVersion.Protocol,
		registry:  state.FromDirection(direction, state.Handshake, version.MinimumVersion.Protocol),
		log:       log.WithName("decoder"),
		hexDump:   os.Getenv("HEXDUMP") == "true",
	}
}

// fullReader makes every Read fill the whole buffer
// so a frame is never returned half read.
type fullReader struct{ io.Reader }

func (fr *fullReader) Read(p []byte) (int, error) { return io.ReadFull(fr.Reader, p) }

func (d *Decoder) SetState(state *state.Registry) {
	d.mu.Lock()
	d.state = state
	d.setProtocol(d.protocol)
	d.mu.Unlock()
}

// State returns the current state registry.
func (d *Decoder) State() *state.Registry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Decoder) SetProtocol(protocol proto.Protocol) {
	d.mu.Lock()
	d.setProtocol(protocol)
	d.mu.Unlock()
}

func (d *Decoder) setProtocol(protocol proto.Protocol) {
	d.protocol = protocol
	d.registry = state.FromDirection(d.direction, d.state, protocol)
}

func (d *Decoder) SetReader(rd io.Reader) {
	d.mu.Lock()
	d.rd = &fullReader{rd}
	d.mu.Unlock()
}

// SetCompressionThreshold enables compressed frames, a negative threshold disables them.
func (d *Decoder) SetCompressionThreshold(threshold int) {
	d.mu.Lock()
	d.compressionThreshold = threshold
	d.compression = threshold >= 0
	d.mu.Unlock()
}

// Decode reads the next packet from the underlying reader.
// It blocks other calls to Decode until return.
//
// Packets not registered for the current state are returned
// with a nil Packet and their raw Payload.
func (d *Decoder) Decode() (ctx *proto.PacketContext, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readPacket()
}

func (d *Decoder) readPacket() (ctx *proto.PacketContext, err error) {
	if d.log.V(1).Enabled() {
		defer func() {
			if ctx != nil {
				d.log.V(1).Info("decoded packet", "context", ctx.String())
				if d.hexDump {
					fmt.Println(hex.Dump(ctx.Payload))
				}
			}
		}()
	}

	var retries int
retry:
	payload, n, err := d.readPayload()
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		if retries > 10 {
			return nil, errs.Desyncf("got too many empty packets")
		}
		retries++
		goto retry
	}
	ctx, err = d.decodePayload(payload)
	if ctx != nil {
		ctx.BytesRead = n
	}
	return ctx, err
}

func (d *Decoder) readPayload() (payload []byte, n int, err error) {
	payload, n, err = readVarIntFrame(d.rd)
	if err != nil {
		return nil, n, err
	}
	if len(payload) == 0 || !d.compression {
		return payload, n, nil
	}
	// payload contains: claimedUncompressedSize + (compressed packet id & data)
	buf := bytes.NewBuffer(payload)
	claimedUncompressedSize, err := util.ReadVarInt(buf)
	if err != nil {
		return nil, n, errs.Desync("read uncompressed size", err)
	}
	if claimedUncompressedSize <= 0 {
		return buf.Bytes(), n, nil
	}
	decompressed, err := d.decompress(claimedUncompressedSize, buf)
	return decompressed, n, err
}

// readVarIntFrame reads one length prefixed frame. Read failures are
// connection errors even when the stream ended inside a VarInt.
func readVarIntFrame(rd io.Reader) (payload []byte, n int, err error) {
	length, n, err := util.ReadVarIntReturnN(rd)
	if err != nil {
		return nil, n, &errs.Error{Kind: errs.KindConnection, Op: "read frame length", Err: err}
	}
	if length == 0 {
		return // caller skips empty packets
	}
	if length < 0 || length > MaxFrameLength {
		return nil, n, errs.Desyncf("received invalid packet length %d", length)
	}
	payload = make([]byte, length)
	m, err := rd.Read(payload)
	if err != nil {
		return nil, n + m, &errs.Error{Kind: errs.KindConnection, Op: "read frame", Err: err}
	}
	return payload, n + m, nil
}

func (d *Decoder) decompress(claimedUncompressedSize int, rd io.Reader) (decompressed []byte, err error) {
	if claimedUncompressedSize < d.compressionThreshold {
		return nil, errs.Desyncf("uncompressed size %d is less than set threshold %d",
			claimedUncompressedSize, d.compressionThreshold)
	}
	if claimedUncompressedSize > UncompressedCap {
		return nil, errs.Desyncf("uncompressed size %d exceeds hard threshold of %d",
			claimedUncompressedSize, UncompressedCap)
	}

	if d.zrd == nil {
		d.zrd, err = zlib.NewReader(rd)
		if err != nil {
			return nil, errs.Desync("open zlib stream", err)
		}
	} else if err = d.zrd.(zlib.Resetter).Reset(rd, nil); err != nil {
		return nil, errs.Desync("reset zlib stream", err)
	}

	decompressed = make([]byte, claimedUncompressedSize)
	if _, err = io.ReadFull(d.zrd, decompressed); err != nil {
		return nil, errs.Desync("decompress payload", err)
	}
	return decompressed, d.zrd.Close()
}

// decodePayload takes p as the packet's payload that contains the packet id + data.
//
// A packet whose decoder did not consume all of its data is a desync
// matching proto.ErrDecoderLeftBytes. The context is still returned for logging.
func (d *Decoder) decodePayload(p []byte) (ctx *proto.PacketContext, err error) {
	ctx = &proto.PacketContext{
		Direction: d.direction,
		Protocol:  d.protocol,
		Payload:   p,
	}
	payload := bytes.NewReader(p)

	packetID, err := util.ReadVarInt(payload)
	if err != nil {
		return nil, errs.Desync("read packet id", err)
	}
	ctx.PacketID = proto.PacketID(packetID)

	if d.registry == nil {
		return ctx, errs.Unsupportedf("protocol %s has no %s registry in state %s",
			d.protocol, d.direction, d.state.State)
	}
	ctx.Packet = d.registry.CreatePacket(ctx.PacketID)
	if ctx.Packet == nil {
		return ctx, nil
	}

	err = util.RecoverFunc(func() error {
		return ctx.Packet.Decode(ctx, payload)
	})
	if err != nil {
		return ctx, errs.Wrap(errs.KindDesync, fmt.Sprintf(
			"decode %T (id: %s, state: %s, protocol: %s, read: %d, unread: %d)",
			ctx.Packet, ctx.PacketID, d.state.State, ctx.Protocol,
			len(ctx.Payload)-payload.Len(), payload.Len()), unexpectedEOF(err))
	}

	if payload.Len() != 0 {
		d.log.V(1).Info("packet decoder did not read all of packet's data",
			"ctx", ctx,
			"decodedBytes", len(ctx.Payload),
			"unreadBytes", payload.Len())
		return ctx, errs.Wrap(errs.KindDesync, fmt.Sprintf("decode %T (id: %s, unread: %d)",
			ctx.Packet, ctx.PacketID, payload.Len()), proto.ErrDecoderLeftBytes)
	}
	return ctx, nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Join(err, io.ErrUnexpectedEOF)
	}
	return err
}
