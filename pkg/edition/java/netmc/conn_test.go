package netmc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/codec"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/state"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

type recordingHandler struct {
	packets      chan *proto.PacketContext
	disconnected chan struct{}
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{
		packets:      make(chan *proto.PacketContext, 8),
		disconnected: make(chan struct{}),
	}
}

func (h *recordingHandler) HandlePacket(pc *proto.PacketContext) { h.packets <- pc }
func (h *recordingHandler) Disconnected()                        { close(h.disconnected) }
func (h *recordingHandler) Activated()                           {}
func (h *recordingHandler) Deactivated()                         {}

func TestReadLoopDispatchesAndReportsClose(t *testing.T) {
	server, client := net.Pipe()

	stats := NewPacketStats(logr.Discard())
	conn, start := NewMinecraftConn(context.Background(), client, proto.ClientBound, Options{
		Interceptors: []PacketInterceptor{stats},
	})
	conn.SetState(state.Play)
	conn.SetProtocol(version.Minecraft_1_21.Protocol)
	h := newRecordingHandler()
	conn.SetSessionHandler(h)
	go start()

	enc := codec.NewEncoder(server, proto.ClientBound, logr.Discard())
	enc.SetState(state.Play)
	enc.SetProtocol(version.Minecraft_1_21.Protocol)
	go func() {
		_, _ = enc.WritePacket(&packet.KeepAlive{RandomID: 99})
		_ = server.Close()
	}()

	select {
	case pc := <-h.packets:
		require.True(t, pc.KnownPacket())
		assert.Equal(t, &packet.KeepAlive{RandomID: 99}, pc.Packet)
	case <-time.After(5 * time.Second):
		t.Fatal("no packet received")
	}

	select {
	case <-h.disconnected:
	case <-time.After(5 * time.Second):
		t.Fatal("handler not disconnected")
	}
	assert.True(t, Closed(conn))
	assert.False(t, KnownDisconnect(conn))
	require.ErrorIs(t, conn.CloseErr(), errs.ErrConnection)
	assert.Equal(t, int64(1), stats.Packets())
	assert.Equal(t, int64(1), stats.Count("*packet.KeepAlive"))
}

func TestWritePacketUsesServerBoundRegistry(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	conn, _ := NewMinecraftConn(context.Background(), client, proto.ClientBound, Options{})
	conn.SetState(state.Play)
	conn.SetProtocol(version.Minecraft_1_20_5.Protocol)
	defer conn.Close()

	dec := codec.NewDecoder(server, proto.ServerBound, logr.Discard())
	dec.SetState(state.Play)
	dec.SetProtocol(version.Minecraft_1_20_5.Protocol)

	go func() { _ = conn.WritePacket(&packet.ConfirmTeleport{TeleportID: 5}) }()

	pc, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, proto.PacketID(0x00), pc.PacketID)
	assert.Equal(t, &packet.ConfirmTeleport{TeleportID: 5}, pc.Packet)
}

func TestCloseIsKnownAndIdempotent(t *testing.T) {
	_, client := net.Pipe()
	conn, _ := NewMinecraftConn(context.Background(), client, proto.ClientBound, Options{})
	h := newRecordingHandler()
	conn.SetSessionHandler(h)

	require.NoError(t, conn.Close())
	require.ErrorIs(t, conn.Close(), ErrClosedConn)
	<-h.disconnected
	assert.True(t, KnownDisconnect(conn))
	assert.NoError(t, conn.CloseErr())
	assert.ErrorIs(t, conn.WritePacket(&packet.KeepAlive{}), ErrClosedConn)
}

func TestBufferedPacketsFlushInOrder(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	conn, _ := NewMinecraftConn(context.Background(), client, proto.ClientBound, Options{})
	conn.SetState(state.Play)
	conn.SetProtocol(version.Minecraft_1_21.Protocol)
	defer conn.Close()

	// net.Pipe is unbuffered, nothing reaches the server before Flush
	require.NoError(t, conn.BufferPacket(&packet.KeepAlive{RandomID: 1}))
	require.NoError(t, conn.BufferPacket(&packet.KeepAlive{RandomID: 2}))
	go func() { _ = conn.Flush() }()

	dec := codec.NewDecoder(server, proto.ServerBound, logr.Discard())
	dec.SetState(state.Play)
	dec.SetProtocol(version.Minecraft_1_21.Protocol)
	for _, id := range []int64{1, 2} {
		pc, err := dec.Decode()
		require.NoError(t, err)
		assert.Equal(t, &packet.KeepAlive{RandomID: id}, pc.Packet)
	}
}

func TestReadLoopClosesOnUnreadBytes(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	conn, start := NewMinecraftConn(context.Background(), client, proto.ClientBound, Options{})
	conn.SetState(state.Play)
	conn.SetProtocol(version.Minecraft_1_21.Protocol)
	h := newRecordingHandler()
	conn.SetSessionHandler(h)
	go start()

	enc := codec.NewEncoder(server, proto.ClientBound, logr.Discard())
	// keep alive id 0x26, 8 byte random id and one byte too many
	payload := []byte{0x26, 0, 0, 0, 0, 0, 0, 0, 99, 0xFF}
	go func() { _, _ = enc.Write(payload) }()

	select {
	case <-h.disconnected:
	case <-time.After(5 * time.Second):
		t.Fatal("connection not closed")
	}
	assert.Empty(t, h.packets, "partially read packet must not be handled")
	assert.False(t, KnownDisconnect(conn))
	require.ErrorIs(t, conn.CloseErr(), errs.ErrDesync)
	require.ErrorIs(t, conn.CloseErr(), proto.ErrDecoderLeftBytes)
}
