package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/plugin"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/state"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// frame wraps packet id + data into an uncompressed frame.
func frame(id int, data []byte) []byte {
	var payload bytes.Buffer
	_ = util.WriteVarInt(&payload, id)
	payload.Write(data)

	var f bytes.Buffer
	_ = util.WriteVarInt(&f, payload.Len())
	f.Write(payload.Bytes())
	return f.Bytes()
}

func statusDecoder(raw []byte) *Decoder {
	dec := NewDecoder(bytes.NewReader(raw), proto.ClientBound, logr.Discard())
	dec.SetState(state.Status)
	dec.SetProtocol(version.Minecraft_1_21.Protocol)
	return dec
}

func TestDecoder_StatusResponse(t *testing.T) {
	status := `{"version":{"name":"1.21","protocol":767},"players":{"max":20,"online":5},"description":"A Minecraft Server"}`
	var data bytes.Buffer
	require.NoError(t, util.WriteString(&data, status))
	raw := frame(0x00, data.Bytes())

	ctx, err := statusDecoder(raw).Decode()
	require.NoError(t, err)
	require.NotNil(t, ctx)
	assert.Equal(t, len(raw), ctx.BytesRead)

	res, ok := ctx.Packet.(*packet.StatusResponse)
	require.True(t, ok, "expected *packet.StatusResponse, got %T", ctx.Packet)
	assert.Equal(t, status, res.Status)
}

func TestDecoder_LeftBytesIsDesync(t *testing.T) {
	var data bytes.Buffer
	require.NoError(t, util.WriteString(&data, `{"description":"Test"}`))
	data.Write([]byte{1, 2, 3, 4})

	ctx, err := statusDecoder(frame(0x00, data.Bytes())).Decode()
	require.True(t, errors.Is(err, proto.ErrDecoderLeftBytes), "got: %v", err)
	assert.ErrorIs(t, err, errs.ErrDesync)
	assert.Equal(t, errs.KindDesync, errs.KindOf(err))
	require.NotNil(t, ctx)
	assert.IsType(t, &packet.StatusResponse{}, ctx.Packet)
}

func TestDecoder_UnknownPacket(t *testing.T) {
	ctx, err := statusDecoder(frame(0x05, []byte{9, 9})).Decode()
	require.NoError(t, err)
	assert.False(t, ctx.KnownPacket())
	assert.Equal(t, proto.PacketID(0x05), ctx.PacketID)
	assert.Equal(t, []byte{0x05, 9, 9}, ctx.Payload)
}

func TestDecoder_TruncatedPacketIsDesync(t *testing.T) {
	dec := NewDecoder(bytes.NewReader(frame(0x26, []byte{1, 2, 3})), proto.ClientBound, logr.Discard())
	dec.SetState(state.Play)
	dec.SetProtocol(version.Minecraft_1_20_5.Protocol)

	_, err := dec.Decode()
	require.ErrorIs(t, err, errs.ErrDesync)
}

func TestDecoder_InvalidFrameLength(t *testing.T) {
	var raw bytes.Buffer
	require.NoError(t, util.WriteVarInt(&raw, MaxFrameLength+1))
	_, err := statusDecoder(raw.Bytes()).Decode()
	require.ErrorIs(t, err, errs.ErrDesync)
}

func TestDecoder_ClosedStreamIsConnectionError(t *testing.T) {
	_, err := statusDecoder(nil).Decode()
	require.ErrorIs(t, err, errs.ErrConnection)
}

func TestEncoderDecoderRoundTrip(t *testing.T) {
	big := bytes.Repeat([]byte("corncraft"), 200)
	tests := []struct {
		name      string
		threshold int
		packet    proto.Packet
	}{
		{"uncompressed", -1, &packet.KeepAlive{RandomID: 42}},
		{"below threshold", 256, &packet.KeepAlive{RandomID: -7}},
		{"compressed", 256, &plugin.Message{Channel: "minecraft:brand", Data: big}},
		{"compress everything", 0, &plugin.Message{Channel: "corncraft:test", Data: []byte("hi")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var wire bytes.Buffer
			enc := NewEncoder(&wire, proto.ServerBound, logr.Discard())
			enc.SetState(state.Play)
			enc.SetProtocol(version.Minecraft_1_21.Protocol)
			require.NoError(t, enc.SetCompression(tt.threshold, 6))

			n, err := enc.WritePacket(tt.packet)
			require.NoError(t, err)
			assert.Equal(t, wire.Len(), n)

			dec := NewDecoder(&wire, proto.ServerBound, logr.Discard())
			dec.SetState(state.Play)
			dec.SetProtocol(version.Minecraft_1_21.Protocol)
			dec.SetCompressionThreshold(tt.threshold)

			ctx, err := dec.Decode()
			require.NoError(t, err)
			assert.Equal(t, tt.packet, ctx.Packet)
			assert.Equal(t, 0, wire.Len())
		})
	}
}

func TestEncoder_UnregisteredPacket(t *testing.T) {
	enc := NewEncoder(new(bytes.Buffer), proto.ServerBound, logr.Discard())
	enc.SetState(state.Login)
	enc.SetProtocol(version.Minecraft_1_21.Protocol)
	_, err := enc.WritePacket(&packet.KeepAlive{})
	require.ErrorIs(t, err, errs.ErrUnsupported)
}
