package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

type recordingBuffer struct {
	packets []proto.Packet
	flushes int
}

func (b *recordingBuffer) BufferPacket(p proto.Packet) error {
	b.packets = append(b.packets, p)
	return nil
}

func (b *recordingBuffer) Flush() error {
	b.flushes++
	return nil
}

func TestPlayPacketQueue(t *testing.T) {
	q := NewPlayPacketQueue(version.Minecraft_1_21.Protocol, proto.ServerBound)

	// known to configuration, sent directly
	assert.False(t, q.Queue(&packet.KeepAlive{RandomID: 1}))

	first := &chat.UnsignedPlayerCommand{Command: "help"}
	second := &packet.PlayerPosition{X: 1, FeetY: 64, Z: 1}
	assert.True(t, q.Queue(first))
	assert.True(t, q.Queue(second))
	assert.Equal(t, 2, q.Len())

	buf := new(recordingBuffer)
	require.NoError(t, q.ReleaseQueue(buf))
	assert.Equal(t, []proto.Packet{first, second}, buf.packets)
	assert.Equal(t, 1, buf.flushes)
	assert.Zero(t, q.Len())

	// empty queue does not flush
	require.NoError(t, q.ReleaseQueue(buf))
	assert.Equal(t, 1, buf.flushes)
}

func TestNilPlayPacketQueue(t *testing.T) {
	var q *PlayPacketQueue
	assert.False(t, q.Queue(&packet.KeepAlive{}))
	assert.Zero(t, q.Len())
	assert.NoError(t, q.ReleaseQueue(new(recordingBuffer)))
}
