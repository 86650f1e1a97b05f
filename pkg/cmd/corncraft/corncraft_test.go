package corncraft

import (
	"bytes"
	"encoding/hex"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/configs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/client"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/codec"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/state"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	app := App()
	app.Writer = out
	app.ErrWriter = out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"corncraft"}, args...))
	return out.String(), err
}

func encodeSlot(t *testing.T, s component.Slot) string {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, component.WriteSlot(component.NewContext(version.Minecraft_1_20_5.Protocol), buf, s))
	return hex.EncodeToString(buf.Bytes())
}

func TestDecodeSlot(t *testing.T) {
	in := encodeSlot(t, component.Slot{
		Count:  3,
		ItemID: 42,
		Components: []component.Component{
			&component.DyedColor{Color: 0xFF, ShowInTooltip: true},
		},
		Removed: []int{24},
	})

	out, err := run(t, "decode-slot", "--version", "1.20.5", in)
	require.NoError(t, err)

	var view slotView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, 42, view.ItemID)
	require.Len(t, view.Components, 1)
	assert.Equal(t, 24, view.Components[0].ID)
	assert.Equal(t, "minecraft:dyed_color", view.Components[0].Name)
	assert.Equal(t, "{Color:255 ShowInTooltip:true}", view.Components[0].Value)
	assert.Equal(t, []string{"minecraft:dyed_color"}, view.Removed)
	assert.Empty(t, view.NBT)
}

func TestDecodeSlot_Errors(t *testing.T) {
	valid := encodeSlot(t, component.Slot{Count: 1, ItemID: 1})
	tests := []struct {
		name string
		args []string
	}{
		{name: "no argument", args: []string{"decode-slot"}},
		{name: "invalid hex", args: []string{"decode-slot", "zz"}},
		{name: "unknown version", args: []string{"decode-slot", "--version", "0.1", valid}},
		{name: "trailing bytes", args: []string{"decode-slot", "--version", "1.20.5", valid + "00"}},
		{name: "truncated", args: []string{"decode-slot", "--version", "1.20.5", valid[:2]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestComponents(t *testing.T) {
	out, err := run(t, "components", "--version", "1.20.5")
	require.NoError(t, err)
	assert.Contains(t, out, "minecraft:dyed_color")

	out, err = run(t, "components", "--version", "1.20.5", "dyed_color")
	require.NoError(t, err)
	assert.Contains(t, out, "24  minecraft:dyed_color")

	_, err = run(t, "components", "--version", "1.20.5", "dyed_colour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "minecraft:dyed_color"?`)
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Equal(t, string(configs.DefaultConfigBytes), out)

	out, err = run(t, "config", "--type", "minimal")
	require.NoError(t, err)
	assert.Equal(t, string(configs.MinimalConfigBytes), out)

	_, err = run(t, "config", "--type", "lite")
	require.Error(t, err)
}

func TestInventory(t *testing.T) {
	inv := newInventory(&component.Context{
		Protocol: version.Minecraft_1_20_5.Protocol,
		Items:    component.StaticPalette{1: "minecraft:stone"},
	})
	inv.setItems(0, []component.Slot{
		{},
		{Count: 64, ItemID: 1},
		{Count: 2, ItemID: 7},
	})
	assert.Equal(t, []string{
		"slot 1: 64x minecraft:stone (0 components)",
		"slot 2: 2x item #7 (0 components)",
	}, inv.summary(0))

	inv.setSlot(0, 1, component.Slot{})
	inv.setSlot(5, 0, component.Slot{Count: 1, ItemID: 1})
	assert.Equal(t, []string{"slot 2: 2x item #7 (0 components)"}, inv.summary(0))
	assert.Len(t, inv.summary(5), 1)

	inv.close(5)
	inv.close(0)
	assert.Empty(t, inv.summary(5))
	assert.Len(t, inv.summary(0), 1)
}

func TestFormatChat(t *testing.T) {
	tests := []struct {
		msg  client.ChatMessage
		want string
	}{
		{msg: client.ChatMessage{Kind: client.SystemMessage, Content: "Welcome"}, want: "Welcome"},
		{msg: client.ChatMessage{Kind: client.PlayerMessage, SenderName: "Alex", Content: "hi"}, want: "<Alex> hi"},
		{msg: client.ChatMessage{Kind: client.DisguisedMessage, SenderName: "Alex", TargetName: "Steve", Content: "psst"}, want: "<Alex -> Steve> psst"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatChat(&tt.msg))
		})
	}
}

func TestLoadTranslations(t *testing.T) {
	tr, err := loadTranslations("")
	require.NoError(t, err)
	assert.Equal(t, "<Alex> hi", tr.Format("chat.type.text", "Alex", "hi"))

	path := filepath.Join(t.TempDir(), "de_de.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"multiplayer.player.joined":"%s hat das Spiel betreten"}`), 0644))
	tr, err = loadTranslations(path)
	require.NoError(t, err)
	assert.Equal(t, "Alex hat das Spiel betreten", tr.Format("multiplayer.player.joined", "Alex"))

	_, err = loadTranslations(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

// serveStatus answers status queries on a local listener.
func serveStatus(t *testing.T, status string) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				dec := codec.NewDecoder(conn, proto.ServerBound, logr.Discard())
				enc := codec.NewEncoder(conn, proto.ClientBound, logr.Discard())
				for {
					pc, err := dec.Decode()
					if err != nil {
						return
					}
					switch p := pc.Packet.(type) {
					case *packet.Handshake:
						dec.SetProtocol(proto.Protocol(p.ProtocolVersion))
						dec.SetState(state.Status)
						enc.SetProtocol(proto.Protocol(p.ProtocolVersion))
						enc.SetState(state.Status)
					case *packet.StatusRequest:
						_, _ = enc.WritePacket(&packet.StatusResponse{Status: status})
					case *packet.StatusPing:
						_, _ = enc.WritePacket(p)
					}
				}
			}()
		}
	}()
	return ln.Addr().String()
}

func TestStatusCommand(t *testing.T) {
	addr := serveStatus(t, `{
		"version": {"name": "Paper 1.21", "protocol": 767},
		"players": {"online": 3, "max": 50, "sample": [{"name": "Alex", "id": "4566e69f-c907-48ee-8d71-d7ba5aa00d20"}]},
		"description": {"text": "Welcome to CornCraft"},
		"favicon": "data:image/png;base64,iVBORw0KGgo="
	}`)
	icon := filepath.Join(t.TempDir(), "icon.png")

	out, err := run(t, "status", "--favicon", icon, addr)
	require.NoError(t, err)
	assert.Contains(t, out, addr)
	assert.Contains(t, out, "Paper 1.21")
	assert.Contains(t, out, "3/50 players")
	assert.Contains(t, out, "Welcome to CornCraft")
	assert.Contains(t, out, "Alex")

	png, err := os.ReadFile(icon)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, png)
}

func TestStatusCommand_Errors(t *testing.T) {
	_, err := run(t, "status", "a", "b")
	require.Error(t, err)

	_, err = run(t, "status", "--version", "0.1", "localhost")
	require.Error(t, err)

	// nothing listens on the address
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	_, err = run(t, "status", "--timeout", "1s", addr)
	require.Error(t, err)
}
