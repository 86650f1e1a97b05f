// Package ping queries the server list entry of a server.
package ping

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/go-logr/logr"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/codec"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/state"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/timeout"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/validation"
)

// DefaultPort is the port used if the address has none.
const DefaultPort = 25565

// Options configure a status query.
type Options struct {
	Address string // host[:port]
	// Version is announced in the handshake,
	// defaults to version.MaximumVersion.
	Version *proto.Version
	Timeout time.Duration // 5s, covers the whole query
	// Dial defaults to a net.Dialer.
	Dial func(ctx context.Context, network, address string) (net.Conn, error)
}

func (o *Options) setDefaults() {
	if o.Version == nil {
		o.Version = version.MaximumVersion
	}
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	if o.Dial == nil {
		o.Dial = new(net.Dialer).DialContext
	}
}

// Result is the answer of a server to a status query.
type Result struct {
	*ServerPing
	// Latency is the round trip time of the ping.
	Latency time.Duration
}

// Ping sends a status handshake, requests the server list entry and
// measures the round trip of a ping. The logger is taken from ctx.
func Ping(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	host, port, err := validation.SplitHostPort(opts.Address, DefaultPort)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	conn, err := timeout.PerformValue(ctx, opts.Timeout, func(ctx context.Context) (net.Conn, error) {
		return opts.Dial(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	})
	if err != nil {
		return nil, errs.Connection("dial", err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	log := logr.FromContextOrDiscard(ctx).WithValues("server", opts.Address)
	protocol := opts.Version.Protocol
	enc := codec.NewEncoder(conn, proto.ServerBound, log)
	enc.SetProtocol(protocol)
	dec := codec.NewDecoder(conn, proto.ClientBound, log)
	dec.SetProtocol(protocol)
	dec.SetState(state.Status)

	if _, err = enc.WritePacket(&packet.Handshake{
		ProtocolVersion: int(protocol),
		ServerAddress:   host,
		Port:            port,
		Intent:          packet.IntentStatus,
	}); err != nil {
		return nil, errs.Connection("write handshake", err)
	}
	enc.SetState(state.Status)
	if _, err = enc.WritePacket(&packet.StatusRequest{}); err != nil {
		return nil, errs.Connection("write status request", err)
	}
	resp, err := expect[*packet.StatusResponse](dec)
	if err != nil {
		return nil, err
	}
	sp, err := ParseServerPing(resp.Status)
	if err != nil {
		return nil, errs.Wrap(errs.KindDesync, "status response", err)
	}
	log.V(1).Info("received status", "version", sp.Version.Name, "protocol", sp.Version.Protocol)

	start := time.Now()
	payload := start.UnixMilli()
	if _, err = enc.WritePacket(&packet.StatusPing{Payload: payload}); err != nil {
		return nil, errs.Connection("write ping", err)
	}
	pong, err := expect[*packet.StatusPing](dec)
	if err != nil {
		return nil, err
	}
	latency := time.Since(start)
	if pong.Payload != payload {
		return nil, errs.Desyncf("ping: server echoed %d, sent %d", pong.Payload, payload)
	}
	return &Result{ServerPing: sp, Latency: latency}, nil
}

// expect reads the next packet, which must be a T.
func expect[T proto.Packet](dec *codec.Decoder) (T, error) {
	var zero T
	pc, err := dec.Decode()
	if err != nil {
		return zero, errs.Connection("read", err)
	}
	p, ok := pc.Packet.(T)
	if !ok {
		return zero, errs.Desyncf("status: expected %T, got packet id %s", zero, pc.PacketID)
	}
	return p, nil
}
