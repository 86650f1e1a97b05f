package util

import (
	"bytes"
	"testing"

	mcnbt "github.com/Tnze/go-mc/nbt"
	"go.minekube.com/common/minecraft/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
)

func TestReadTextComponent_NBT(t *testing.T) {
	protocol := version.Minecraft_1_21.Protocol
	tests := []struct {
		name string
		wire []byte
		want string
		code string
	}{
		{
			name: "string root",
			wire: []byte{mcnbt.TagString, 0, 5, 'H', 'e', 'l', 'l', 'o'},
			want: "Hello",
		},
		{
			name: "compound with extra",
			wire: []byte{
				mcnbt.TagCompound,
				mcnbt.TagString, 0, 4, 't', 'e', 'x', 't', 0, 2, 'H', 'i',
				mcnbt.TagByte, 0, 4, 'b', 'o', 'l', 'd', 1,
				mcnbt.TagList, 0, 5, 'e', 'x', 't', 'r', 'a', mcnbt.TagCompound, 0, 0, 0, 1,
				mcnbt.TagString, 0, 4, 't', 'e', 'x', 't', 0, 1, '!',
				mcnbt.TagEnd,
				mcnbt.TagEnd,
			},
			want: "§lHi!",
			code: "§l",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.wire)
			got, err := ReadTextComponent(c, protocol)
			require.NoError(t, err)
			assert.Contains(t, got, tt.code)
			assert.Equal(t, StripLegacy(tt.want), StripLegacy(got))
			require.NoError(t, c.ExpectEnd())
		})
	}
}

func TestReadTextComponent_JSON(t *testing.T) {
	protocol := version.Minecraft_1_20_2.Protocol
	tests := []struct {
		name string
		json string
		want string
	}{
		{name: "text", json: `{"text":"A","extra":[{"text":"B"}]}`, want: "AB"},
		{name: "unknown translation", json: `{"translate":"chat.key"}`, want: "[chat.key]"},
		{
			name: "unknown translation with args",
			json: `{"translate":"chat.key","with":["a",{"text":"b"}]}`,
			want: "[chat.key] a b",
		},
		{
			name: "chat message",
			json: `{"translate":"chat.type.text","with":["Steve","hello there"]}`,
			want: "<Steve> hello there",
		},
		{name: "not json", json: `plain words`, want: "plain words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, WriteString(buf, tt.json))
			got, err := ReadTextComponent(buf, protocol)
			require.NoError(t, err)
			assert.Equal(t, tt.want, StripLegacy(got))
		})
	}
}

func TestTextFromJSON_Legacy(t *testing.T) {
	protocol := version.Minecraft_1_20_2.Protocol
	got := TextFromJSON(`{"translate":"multiplayer.player.joined","with":["Steve"],"color":"yellow"}`, protocol)
	assert.Contains(t, got, "§e")
	assert.Equal(t, "Steve joined the game.", StripLegacy(got))

	got = TextFromJSON(`{"text":"Warning","color":"red","bold":true}`, protocol)
	assert.Contains(t, got, "§c")
	assert.Contains(t, got, "§l")
	assert.Equal(t, "Warning", StripLegacy(got))
}

func TestMarshalLegacy_Translations(t *testing.T) {
	tr := Translations{"death.attack.fall": "%1$s hit the ground too hard"}
	c := &component.Translation{
		Key:  "death.attack.fall",
		With: []component.Component{&component.Text{Content: "Alex"}},
	}
	got, err := MarshalLegacy(c, tr)
	require.NoError(t, err)
	assert.Equal(t, "Alex hit the ground too hard", StripLegacy(got))

	got, err = MarshalLegacy(c, DefaultTranslations)
	require.NoError(t, err)
	assert.Equal(t, "[death.attack.fall] Alex", StripLegacy(got))
}

func TestStripLegacy(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: "§ered§r done", want: "red done"},
		{in: "§x§f§f§0§0§0§0hex", want: "hex"},
		{in: "trailing§", want: "trailing"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripLegacy(tt.in), tt.in)
	}
}

func TestWriteTextComponent(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteTextComponent(buf, version.Minecraft_1_21.Protocol, "Hi"))
	assert.Equal(t, []byte{mcnbt.TagString, 0, 2, 'H', 'i'}, buf.Bytes())

	// before 1.20.3 text is a JSON string; only the display text survives
	buf.Reset()
	require.NoError(t, WriteTextComponent(buf, version.Minecraft_1_20_2.Protocol, "Hi"))
	s, err := ReadString(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Contains(t, s, `"Hi"`)
	got, err := ReadTextComponent(bytes.NewReader(buf.Bytes()), version.Minecraft_1_20_2.Protocol)
	require.NoError(t, err)
	assert.Equal(t, "Hi", StripLegacy(got))
}
