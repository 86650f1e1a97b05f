// Package netmc runs a framed Minecraft connection: a read loop feeding
// the current SessionHandler and a synchronized packet writer.
package netmc

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"go.uber.org/atomic"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/codec"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/state"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// MinecraftConn is a connection speaking the Java edition protocol.
// It is unusable after Close and must be recreated.
type MinecraftConn interface {
	// Context is canceled on Close.
	Context() context.Context
	// Close closes the connection, if not already, and calls SessionHandler.Disconnected.
	// It is okay to call this method multiple times.
	Close() error
	// CloseErr returns the error that ended the connection,
	// or nil if it was closed with Close.
	CloseErr() error

	State() *state.Registry
	Protocol() proto.Protocol

	SessionHandler() SessionHandler
	// SetSessionHandler calls Deactivated on the old handler and Activated on the new one.
	SetSessionHandler(SessionHandler)

	StateChanger

	// WritePacket encodes and flushes p.
	// The connection is closed on any error except an unregistered packet.
	WritePacket(p proto.Packet) error
	// BufferPacket encodes p into the write buffer for the next Flush.
	BufferPacket(p proto.Packet) error
	Flush() error
}

// StateChanger updates state of a connection.
type StateChanger interface {
	SetProtocol(proto.Protocol)
	SetState(*state.Registry)
	// SetCompressionThreshold enables compression, a negative threshold disables it.
	SetCompressionThreshold(threshold int) error
}

// SessionHandler handles the packets of one connection state.
type SessionHandler interface {
	HandlePacket(pc *proto.PacketContext) // Called for known and unknown packets.
	Disconnected()                        // Called once when the connection closed.

	Activated()
	Deactivated()
}

// Options tune a MinecraftConn. Zero timeouts disable the deadlines.
type Options struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CompressionLevel int
	Interceptors     []PacketInterceptor
}

// ErrClosedConn indicates a connection is already closed.
var ErrClosedConn = errors.New("connection is closed")

// Closed returns true if the connection is closed.
func Closed(c interface{ Context() context.Context }) bool {
	return c.Context().Err() != nil
}

// KnownDisconnect returns true if the connection was closed on purpose.
func KnownDisconnect(c MinecraftConn) bool {
	mc, ok := c.(*conn)
	return ok && mc.known.Load()
}

// NewMinecraftConn wraps base and returns the blocking read loop to start.
//
// direction is the direction of the packets read: a client connecting
// to a server passes proto.ClientBound.
func NewMinecraftConn(
	ctx context.Context,
	base net.Conn,
	direction proto.Direction,
	opts Options,
) (MinecraftConn, func()) {
	log := logr.FromContextOrDiscard(ctx).WithName("conn")
	ctx, cancel := context.WithCancel(logr.NewContext(ctx, log))
	wbuf := bufio.NewWriter(base)
	c := &conn{
		base:     base,
		log:      log,
		opts:     opts,
		rbuf:     bufio.NewReader(base),
		wbuf:     wbuf,
		enc:      codec.NewEncoder(wbuf, direction.Opposite(), log),
		ctx:      ctx,
		cancel:   cancel,
		state:    state.Handshake,
		protocol: version.MinimumVersion.Protocol,
	}
	c.dec = codec.NewDecoder(c.rbuf, direction, log)
	return c, c.readLoop
}

type conn struct {
	base net.Conn
	log  logr.Logger
	opts Options

	rbuf *bufio.Reader
	wbuf *bufio.Writer
	dec  *codec.Decoder
	enc  *codec.Encoder

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	known     atomic.Bool // closed on purpose
	err       atomic.Error

	mu       sync.RWMutex
	state    *state.Registry
	protocol proto.Protocol

	hmu     sync.RWMutex
	handler SessionHandler
}

// errRetry makes the read loop try the next packet.
var errRetry = errors.New("retry reading packet")

func (c *conn) readLoop() {
	defer func() { _ = c.close(false) }()
	for !Closed(c) {
		pc, err := c.readPacket()
		if errors.Is(err, errRetry) {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			c.fail(err)
			return
		}
		c.dispatch(pc)
	}
}

func (c *conn) readPacket() (*proto.PacketContext, error) {
	if c.opts.ReadTimeout > 0 {
		_ = c.base.SetReadDeadline(time.Now().Add(c.opts.ReadTimeout))
	}
	pc, err := c.dec.Decode()
	if err == nil {
		return pc, nil
	}
	if errors.Is(err, syscall.EAGAIN) {
		c.log.V(1).Info("error reading packet, retrying", "error", err)
		return nil, errRetry
	}
	c.logReadErr(err)
	return nil, err
}

func (c *conn) logReadErr(err error) {
	var netErr net.Error
	switch {
	case Closed(c):
	case errors.As(err, &netErr) && netErr.Timeout():
		c.log.Error(err, "read timeout")
	case errs.KindOf(err) != errs.KindConnection:
		c.log.Error(err, "error reading packet, closing connection")
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.ErrClosedPipe), errs.IsConnClosedErr(err):
		c.log.V(1).Info("connection closed by remote", "error", err)
	default:
		c.log.Error(err, "error reading packet, closing connection")
	}
}

// dispatch survives panics of handlers so one bad packet does not end the session.
func (c *conn) dispatch(pc *proto.PacketContext) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error(nil, "recovered panic handling packet", "packet", pc.String(), "panic", r)
		}
	}()
	for _, i := range c.opts.Interceptors {
		i.InterceptPacket(pc)
	}
	if h := c.SessionHandler(); h != nil {
		h.HandlePacket(pc)
	}
}

func (c *conn) Context() context.Context { return c.ctx }

func (c *conn) CloseErr() error { return c.err.Load() }

func (c *conn) WritePacket(p proto.Packet) error {
	if err := c.BufferPacket(p); err != nil {
		return err
	}
	return c.Flush()
}

func (c *conn) BufferPacket(p proto.Packet) error {
	if Closed(c) {
		return ErrClosedConn
	}
	_, err := c.enc.WritePacket(p)
	if err != nil {
		c.writeFailed(err)
	}
	return err
}

func (c *conn) Flush() error {
	if Closed(c) {
		return ErrClosedConn
	}
	err := c.flush()
	if err != nil {
		c.writeFailed(err)
	}
	return err
}

func (c *conn) flush() error {
	if c.opts.WriteTimeout > 0 {
		if err := c.base.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout)); err != nil {
			return errs.Connection("set write deadline", err)
		}
	}
	// in sync with the encoder or a concurrent write may be cut
	return c.enc.Sync(func() error {
		return errs.Connection("flush", c.wbuf.Flush())
	})
}

func (c *conn) writeFailed(err error) {
	if errs.KindOf(err) == errs.KindUnsupported {
		// nothing was written, the stream is intact
		return
	}
	c.fail(err)
	_ = c.close(false)
	if !errors.Is(err, ErrClosedConn) && !errs.IsConnClosedErr(err) {
		c.log.V(1).Info("error writing packet, closing connection", "error", err)
	}
}

// fail records err as close reason unless the connection is closed already.
func (c *conn) fail(err error) {
	if !Closed(c) {
		c.err.Store(err)
	}
}

func (c *conn) Close() error { return c.close(true) }

func (c *conn) close(known bool) (err error) {
	err = ErrClosedConn
	c.closeOnce.Do(func() {
		if known {
			c.known.Store(true)
		}
		c.cancel()
		err = c.base.Close()
		if h := c.SessionHandler(); h != nil {
			h.Disconnected()
		}
	})
	return err
}

func (c *conn) Protocol() proto.Protocol {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.protocol
}

func (c *conn) SetProtocol(protocol proto.Protocol) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.protocol = protocol
	c.dec.SetProtocol(protocol)
	c.enc.SetProtocol(protocol)
}

func (c *conn) State() *state.Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *conn) SetState(s *state.Registry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
	c.dec.SetState(s)
	c.enc.SetState(s)
}

func (c *conn) SetCompressionThreshold(threshold int) error {
	c.log.V(1).Info("update compression", "threshold", threshold)
	c.dec.SetCompressionThreshold(threshold)
	return c.enc.SetCompression(threshold, c.opts.CompressionLevel)
}

func (c *conn) SessionHandler() SessionHandler {
	c.hmu.RLock()
	defer c.hmu.RUnlock()
	return c.handler
}

func (c *conn) SetSessionHandler(h SessionHandler) {
	c.hmu.Lock()
	defer c.hmu.Unlock()
	if c.handler != nil {
		c.handler.Deactivated()
	}
	c.handler = h
	h.Activated()
}
