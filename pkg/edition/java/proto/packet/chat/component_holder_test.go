package chat

import (
	"bytes"
	"testing"

	mcnbt "github.com/Tnze/go-mc/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

func TestComponentHolder_ReceivedBytesSurvive(t *testing.T) {
	tests := []struct {
		name     string
		protocol proto.Protocol
		wire     func(t *testing.T) []byte
		display  string
	}{
		{
			name:     "json",
			protocol: version.Minecraft_1_20_2.Protocol,
			wire: func(t *testing.T) []byte {
				buf := new(bytes.Buffer)
				require.NoError(t, util.WriteString(buf,
					`{"translate":"multiplayer.player.joined","with":["Steve"],"color":"yellow"}`))
				return buf.Bytes()
			},
			display: "Steve joined the game.",
		},
		{
			name:     "nbt compound",
			protocol: version.Minecraft_1_21.Protocol,
			wire: func(t *testing.T) []byte {
				return []byte{
					mcnbt.TagCompound,
					mcnbt.TagString, 0, 4, 't', 'e', 'x', 't', 0, 2, 'H', 'i',
					mcnbt.TagByte, 0, 6, 'i', 't', 'a', 'l', 'i', 'c', 1,
					mcnbt.TagEnd,
				}
			},
			display: "Hi",
		},
		{
			name:     "nbt string",
			protocol: version.Minecraft_1_21.Protocol,
			wire: func(t *testing.T) []byte {
				return []byte{mcnbt.TagString, 0, 3, 'y', 'o', '!'}
			},
			display: "yo!",
		},
		{
			name:     "empty tag",
			protocol: version.Minecraft_1_21.Protocol,
			wire: func(t *testing.T) []byte {
				return []byte{mcnbt.TagEnd}
			},
			display: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := tt.wire(t)
			h, err := ReadComponentHolder(bytes.NewReader(wire), tt.protocol)
			require.NoError(t, err)
			assert.Equal(t, tt.display, h.String())

			// converting for display must not change what is written back
			buf := new(bytes.Buffer)
			require.NoError(t, h.Write(buf, tt.protocol))
			assert.Equal(t, wire, buf.Bytes())
		})
	}
}

func TestComponentHolder_Legacy(t *testing.T) {
	h := FromComponent(&component.Translation{
		Key:  "multiplayer.player.joined",
		S:    component.Style{Color: color.Yellow},
		With: []component.Component{&component.Text{Content: "Steve"}},
	})
	got := h.Legacy(util.DefaultTranslations)
	assert.Contains(t, got, "§e")
	assert.Equal(t, "Steve joined the game.", util.StripLegacy(got))

	tr := util.Translations{"multiplayer.player.joined": "%s ist da"}
	assert.Equal(t, "Steve ist da", util.StripLegacy(h.Legacy(tr)))

	var none *ComponentHolder
	assert.Empty(t, none.Legacy(util.DefaultTranslations))
}

func TestComponentHolder_NotJSON(t *testing.T) {
	protocol := version.Minecraft_1_20_2.Protocol
	buf := new(bytes.Buffer)
	require.NoError(t, util.WriteString(buf, "plain words"))
	wire := bytes.Clone(buf.Bytes())

	h, err := ReadComponentHolder(buf, protocol)
	require.NoError(t, err)
	assert.Equal(t, "plain words", h.Legacy(util.DefaultTranslations))

	out := new(bytes.Buffer)
	require.NoError(t, h.Write(out, protocol))
	assert.Equal(t, wire, out.Bytes())
}

func TestComponentHolder_CrossFormat(t *testing.T) {
	sent := FromComponent(&component.Text{
		Content: "Hello ",
		S:       component.Style{Color: color.Green},
		Extra:   []component.Component{&component.Text{Content: "world"}},
	})
	for _, v := range []*proto.Version{version.Minecraft_1_20_2, version.Minecraft_1_21} {
		t.Run(v.String(), func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, sent.Write(buf, v.Protocol))
			got, err := ReadComponentHolder(buf, v.Protocol)
			require.NoError(t, err)
			assert.Zero(t, buf.Len())
			assert.Equal(t, "Hello world", got.String())
			assert.Contains(t, got.Legacy(util.DefaultTranslations), "§a")
		})
	}
}
