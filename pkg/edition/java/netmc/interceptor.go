package netmc

import (
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"go.uber.org/atomic"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// PacketInterceptor sees every packet read from a connection
// before the session handler does.
type PacketInterceptor interface {
	InterceptPacket(pc *proto.PacketContext)
}

// PacketStats counts read packets and bytes and dumps
// decoded packets to the log at verbosity 2.
type PacketStats struct {
	log     logr.Logger
	packets atomic.Int64
	bytes   atomic.Int64
	unknown atomic.Int64

	mu     sync.Mutex
	byType map[string]int64
}

var _ PacketInterceptor = (*PacketStats)(nil)

// NewPacketStats returns a PacketStats logging to log.
func NewPacketStats(log logr.Logger) *PacketStats {
	return &PacketStats{
		log:    log.WithName("stats"),
		byType: map[string]int64{},
	}
}

func (s *PacketStats) InterceptPacket(pc *proto.PacketContext) {
	if pc == nil {
		return
	}
	s.packets.Inc()
	s.bytes.Add(int64(pc.BytesRead))
	if !pc.KnownPacket() {
		s.unknown.Inc()
		return
	}
	name := fmt.Sprintf("%T", pc.Packet)
	s.mu.Lock()
	s.byType[name]++
	s.mu.Unlock()

	if s.log.V(2).Enabled() {
		s.log.V(2).Info("packet", "id", pc.PacketID, "dump", spew.Sdump(pc.Packet))
	}
}

// Packets returns the number of packets read.
func (s *PacketStats) Packets() int64 { return s.packets.Load() }

// Bytes returns the number of bytes read.
func (s *PacketStats) Bytes() int64 { return s.bytes.Load() }

// Unknown returns the number of packets without a registered type.
func (s *PacketStats) Unknown() int64 { return s.unknown.Load() }

// Count returns how many packets of the type name (as printed by %T) were read.
func (s *PacketStats) Count(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byType[name]
}

// LogSummary logs the collected counters.
func (s *PacketStats) LogSummary() {
	s.mu.Lock()
	kv := make([]any, 0, 2*len(s.byType))
	for name, n := range s.byType {
		kv = append(kv, name, n)
	}
	s.mu.Unlock()
	s.log.Info("packet summary",
		"packets", s.Packets(), "bytes", s.Bytes(), "unknown", s.Unknown())
	s.log.V(1).Info("packets by type", kv...)
}
