package queue

import (
	"sync"

	"github.com/gammazero/deque"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/state"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// PlayPacketQueue holds outbound play packets while the session is in the
// configuration state.
//
// A server may move a playing client back to configuration at any time,
// during which play packets like chat or movement can not be sent. Packets
// not known to the configuration state are queued and released in order
// once the session re-enters play.
type PlayPacketQueue struct {
	registry *state.ProtocolRegistry

	mu    sync.Mutex
	queue *deque.Deque[proto.Packet]
}

// NewPlayPacketQueue creates a queue for packets bound to direction.
func NewPlayPacketQueue(version proto.Protocol, direction proto.Direction) *PlayPacketQueue {
	return &PlayPacketQueue{
		registry: state.FromDirection(direction, state.Config, version),
		queue:    deque.New[proto.Packet](),
	}
}

// Queue returns true if the packet was queued.
// Packets registered in the configuration state are not queued.
func (h *PlayPacketQueue) Queue(packet proto.Packet) bool {
	if h == nil {
		return false
	}
	if h.registry != nil {
		if _, ok := h.registry.PacketID(packet); ok {
			return false
		}
	}
	h.mu.Lock()
	h.queue.PushBack(packet)
	h.mu.Unlock()
	return true
}

// Len returns the number of queued packets.
func (h *PlayPacketQueue) Len() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.queue.Len()
}

// PacketBuffer is a packet buffer that can flush packets to an underlying packet writer.
type PacketBuffer interface {
	BufferPacket(proto.Packet) error
	Flush() error
}

// ReleaseQueue buffers all queued packets to sink in order and flushes it.
func (h *PlayPacketQueue) ReleaseQueue(sink PacketBuffer) error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	var ok bool
	for h.queue.Len() > 0 {
		packet := h.queue.PopFront()
		if err := sink.BufferPacket(packet); err != nil {
			return err
		}
		ok = true
	}
	if ok {
		return sink.Flush()
	}
	return nil
}
