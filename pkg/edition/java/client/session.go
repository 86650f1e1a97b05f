// Package client implements the client side of a Minecraft Java Edition
// session: login, configuration and play over a single connection.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/rs/xid"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/netmc"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/state"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util/queue"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/title"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/timeout"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/validation"
)

// DefaultPort is the port used if the address has none.
const DefaultPort = 25565

// Options configure a Session. Zero values take the defaults.
type Options struct {
	Address  string // host[:port]
	Username string
	// Version defaults to version.MaximumVersion.
	Version *proto.Version
	Brand   string // "vanilla"

	Locale       string // "en_us"
	ViewDistance byte   // 8
	// Translations fill translatable chat components.
	// Defaults to util.DefaultTranslations.
	Translations util.Translations

	ConnectTimeout   time.Duration // 10s
	ReadTimeout      time.Duration // 30s, negative disables it
	WriteTimeout     time.Duration // 10s, negative disables it
	KeepAliveTimeout time.Duration // 30s, negative disables the watchdog
	CompressionLevel int

	// ChatRate bounds outbound chat messages per second, ChatBurst
	// allows short bursts above it. Zero ChatRate is unlimited.
	ChatRate  float64
	ChatBurst int

	Interceptors []netmc.PacketInterceptor
	// Dial defaults to a net.Dialer.
	Dial func(ctx context.Context, network, address string) (net.Conn, error)
}

func (o *Options) setDefaults() {
	if o.Version == nil {
		o.Version = version.MaximumVersion
	}
	if o.Brand == "" {
		o.Brand = "vanilla"
	}
	if o.Locale == "" {
		o.Locale = "en_us"
	}
	if o.ViewDistance == 0 {
		o.ViewDistance = 8
	}
	if o.Translations == nil {
		o.Translations = util.DefaultTranslations
	}
	def := func(d *time.Duration, v time.Duration) {
		switch {
		case *d == 0:
			*d = v
		case *d < 0:
			*d = 0
		}
	}
	def(&o.ConnectTimeout, 10*time.Second)
	def(&o.ReadTimeout, 30*time.Second)
	def(&o.WriteTimeout, 10*time.Second)
	def(&o.KeepAliveTimeout, 30*time.Second)
	if o.ChatBurst <= 0 {
		o.ChatBurst = 1
	}
	if o.Dial == nil {
		o.Dial = new(net.Dialer).DialContext
	}
}

// Session is a client connection to a Minecraft server.
// It is single-use: once ended a new Session must be created.
type Session struct {
	id         xid.ID
	opts       Options
	handler    ComHandler
	dispatcher *Dispatcher
	log        logr.Logger

	used        atomic.Bool
	state       atomic.Int32
	chatLimiter *rate.Limiter
	eg          *errgroup.Group

	// sendMu orders outbound packets with state transitions
	// so packets queued during configuration are not lost.
	sendMu sync.Mutex
	conn   netmc.MinecraftConn
	queue  *queue.PlayPacketQueue

	endOnce   sync.Once
	endMu     sync.Mutex
	endReason *endReason
	closeErr  atomic.Error

	joined        atomic.Bool
	lastKeepAlive atomic.Time
	profileID     uuid.UUID
	entityID      atomic.Int32
	stateID       atomic.Int32
	sequence      atomic.Int32
	transaction   atomic.Int32
	sneaking      atomic.Bool

	locMu      sync.Mutex
	loc        Location
	yaw, pitch float32

	// owned by the network goroutine
	titles     *title.Tracker
	dimensions []*packet.DimensionType
}

type endReason struct {
	reason  DisconnectReason
	message string
}

// NewSession returns a session that is not yet connected.
// The handler must not be nil, embed NopHandler for defaults.
func NewSession(handler ComHandler, opts Options) *Session {
	opts.setDefaults()
	limit := rate.Inf
	if opts.ChatRate > 0 {
		limit = rate.Limit(opts.ChatRate)
	}
	return &Session{
		id:          xid.New(),
		opts:        opts,
		handler:     handler,
		dispatcher:  NewDispatcher(logr.Discard()),
		log:         logr.Discard(),
		chatLimiter: rate.NewLimiter(limit, opts.ChatBurst),
		titles:      title.NewTracker(opts.Translations),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id.String() }

// Login dials the server, sends the handshake and login start and
// returns once the session runs in the background.
// The logger is taken from ctx.
func (s *Session) Login(ctx context.Context) bool {
	if s.used.Swap(true) {
		return false
	}
	s.state.Store(int32(Login))
	s.log = logr.FromContextOrDiscard(ctx).WithName("session").WithValues("session", s.id.String(), "username", s.opts.Username)
	s.dispatcher.log = s.log.WithName("dispatcher")

	if err := s.login(ctx); err != nil {
		s.log.Error(err, "login failed", "address", s.opts.Address)
		s.state.Store(int32(Disconnected))
		s.closeErr.Store(err)
		s.endOnce.Do(func() { s.handler.OnConnectionLost(ConnectionLost, err.Error()) })
		return false
	}
	return true
}

func (s *Session) login(ctx context.Context) error {
	if !version.Protocol(s.opts.Version.Protocol).Supported() {
		return errs.Unsupportedf("protocol %s is not supported, use %s",
			s.opts.Version, version.SupportedVersionsString)
	}
	if s.opts.Username == "" {
		return errs.Missing("username")
	}
	host, port, err := validation.SplitHostPort(s.opts.Address, DefaultPort)
	if err != nil {
		return err
	}

	base, err := timeout.PerformValue(ctx, s.opts.ConnectTimeout, func(ctx context.Context) (net.Conn, error) {
		return s.opts.Dial(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	})
	if err != nil {
		return errs.Connection("dial", err)
	}

	// the session outlives the login call
	connCtx := logr.NewContext(context.WithoutCancel(ctx), s.log)
	conn, startReadLoop := netmc.NewMinecraftConn(connCtx, base, proto.ClientBound, netmc.Options{
		ReadTimeout:      s.opts.ReadTimeout,
		WriteTimeout:     s.opts.WriteTimeout,
		CompressionLevel: s.opts.CompressionLevel,
		Interceptors:     s.opts.Interceptors,
	})
	protocol := s.opts.Version.Protocol
	conn.SetProtocol(protocol)

	s.sendMu.Lock()
	s.conn = conn
	s.sendMu.Unlock()

	if err = s.write(&packet.Handshake{
		ProtocolVersion: int(protocol),
		ServerAddress:   host,
		Port:            port,
		Intent:          packet.IntentLogin,
	}); err != nil {
		return err
	}
	conn.SetState(state.Login)
	conn.SetSessionHandler(newLoginSessionHandler(s))

	s.profileID = uuid.OfflinePlayerUUID(s.opts.Username)
	if err = s.write(&packet.ServerLogin{
		Username: s.opts.Username,
		PlayerID: s.profileID,
	}); err != nil {
		return err
	}

	s.lastKeepAlive.Store(time.Now())
	eg, egCtx := errgroup.WithContext(conn.Context())
	s.eg = eg
	eg.Go(func() error {
		startReadLoop()
		return nil
	})
	if s.opts.KeepAliveTimeout > 0 {
		eg.Go(func() error {
			s.watchKeepAlive(egCtx)
			return nil
		})
	}
	return nil
}

// watchKeepAlive ends the session when the server stops sending keep alives.
// The clock starts at login and restarts on every state change into play.
func (s *Session) watchKeepAlive(ctx context.Context) {
	interval := s.opts.KeepAliveTimeout / 4
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		last := s.lastKeepAlive.Load()
		if time.Since(last) < s.opts.KeepAliveTimeout {
			continue
		}
		s.end(ConnectionLost, fmt.Sprintf("no keep alive received for %s", s.opts.KeepAliveTimeout))
		return
	}
}

// Wait blocks until the session ended. It returns the error that
// ended the connection or nil if it was closed on purpose.
// Call it after Login returned.
func (s *Session) Wait() error {
	if s.eg == nil {
		return s.closeErr.Load()
	}
	_ = s.eg.Wait()
	return s.closeErr.Load()
}

// Disconnect closes the connection with reason UserLogout.
func (s *Session) Disconnect() {
	s.end(UserLogout, "")
}

// text renders a received component as display text.
func (s *Session) text(h *chat.ComponentHolder) string {
	return h.Legacy(s.opts.Translations)
}

// end records why the session ends and closes the connection.
// The first reason wins.
func (s *Session) end(reason DisconnectReason, message string) {
	s.endMu.Lock()
	if s.endReason == nil {
		s.endReason = &endReason{reason: reason, message: message}
	}
	s.endMu.Unlock()
	s.sendMu.Lock()
	conn := s.conn
	s.sendMu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

// disconnected is called once by the connection when it closed.
func (s *Session) disconnected() {
	s.endOnce.Do(func() {
		s.state.Store(int32(Disconnected))

		s.endMu.Lock()
		r := s.endReason
		s.endMu.Unlock()
		if r == nil {
			r = &endReason{reason: ConnectionLost}
			if err := s.conn.CloseErr(); err != nil {
				r.message = err.Error()
				s.closeErr.Store(errs.Connection("session", err))
			} else {
				r.message = "connection closed by server"
			}
		}
		s.log.Info("disconnected", "reason", r.reason, "message", r.message)
		s.handler.OnConnectionLost(r.reason, r.message)
	})
}

// State returns the current state of the session.
func (s *Session) State() State { return State(s.state.Load()) }

// ProtocolVersion returns the protocol the session speaks.
func (s *Session) ProtocolVersion() proto.Protocol { return s.opts.Version.Protocol }

// MaxChatMessageLength is the longest message SendChatMessage accepts.
func (s *Session) MaxChatMessageLength() int { return chat.MaxMessageLength }

// NetMainThread returns the dispatcher handlers use to reach the main thread.
func (s *Session) NetMainThread() *Dispatcher { return s.dispatcher }

// Dimensions returns the dimension types received during configuration.
// Only safe to call from handler callbacks.
func (s *Session) Dimensions() []*packet.DimensionType { return s.dimensions }

// Location returns the last known player location and look direction.
func (s *Session) Location() (Location, float32, float32) {
	s.locMu.Lock()
	defer s.locMu.Unlock()
	return s.loc, s.yaw, s.pitch
}

// write writes p unconditionally, used for protocol answers.
func (s *Session) write(p proto.Packet) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	return s.writeLocked(p)
}

func (s *Session) writeLocked(p proto.Packet) error {
	s.handler.OnNetworkPacket(&proto.PacketContext{
		Direction: proto.ServerBound,
		Protocol:  s.conn.Protocol(),
		Packet:    p,
	}, false)
	if err := s.conn.WritePacket(p); err != nil {
		if !errors.Is(err, netmc.ErrClosedConn) {
			s.log.V(1).Info("error writing packet", "packet", fmt.Sprintf("%T", p), "err", err)
		}
		return err
	}
	return nil
}

// send writes a player action. During configuration play packets are
// queued until the session plays again.
func (s *Session) send(p proto.Packet) bool {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	switch s.State() {
	case Play:
	case Configuration:
		if s.queue.Queue(p) {
			return true
		}
	default:
		return false
	}
	return s.writeLocked(p) == nil
}

// switchState moves the connection and the session to a new state.
// Must be called from the network goroutine.
func (s *Session) switchState(to State, handler netmc.SessionHandler) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	switch to {
	case Configuration:
		s.conn.SetState(state.Config)
		if s.queue == nil {
			s.queue = queue.NewPlayPacketQueue(s.conn.Protocol(), proto.ServerBound)
		}
	case Play:
		s.conn.SetState(state.Play)
	}
	s.state.Store(int32(to))
	s.conn.SetSessionHandler(handler)
	if to == Play {
		if err := s.queue.ReleaseQueue(s.conn); err != nil {
			s.log.V(1).Info("error releasing queued packets", "err", err)
		}
	}
}
