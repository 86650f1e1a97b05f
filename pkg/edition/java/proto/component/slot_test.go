package component

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

func TestSlot_Structured(t *testing.T) {
	s := Slot{
		Count:  3,
		ItemID: 800,
		Components: []Component{
			&DyedColor{Color: 0xFF0000, ShowInTooltip: true},
			&Damage{Damage: 5},
		},
		Removed: []int{1},
	}
	for _, c := range []*Context{ctx766, ctx767} {
		t.Run(c.Protocol.String(), func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, WriteSlot(c, buf, s))
			got, err := ReadSlot(c, bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, s, got)

			color, ok := Get[*DyedColor](&got)
			require.True(t, ok)
			assert.Equal(t, int32(0xFF0000), color.Color)
			_, ok = Get[*Food](&got)
			assert.False(t, ok)
		})
	}
}

func TestSlot_Empty(t *testing.T) {
	tests := []struct {
		name string
		c    *Context
		wire []byte
	}{
		{"structured", ctx767, []byte{0}},
		{"legacy", NewContext(version.Minecraft_1_13_2.Protocol), []byte{0}},
		{"pre-flattening", NewContext(version.Minecraft_1_12_2.Protocol), []byte{0xFF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, WriteSlot(tt.c, buf, Slot{}))
			assert.Equal(t, tt.wire, buf.Bytes())

			s, err := ReadSlot(tt.c, bytes.NewReader(tt.wire))
			require.NoError(t, err)
			assert.True(t, s.Empty())
		})
	}
}

func TestSlot_Legacy(t *testing.T) {
	c := NewContext(version.Minecraft_1_13_2.Protocol)
	buf := new(bytes.Buffer)
	require.NoError(t, WriteSlot(c, buf, Slot{Count: 1, ItemID: 5}))
	assert.Equal(t, []byte{1, 5, 1, 0}, buf.Bytes())

	s, err := ReadSlot(c, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Slot{Count: 1, ItemID: 5}, s)

	c = NewContext(version.Minecraft_1_12_2.Protocol)
	buf.Reset()
	require.NoError(t, WriteSlot(c, buf, Slot{Count: 2, ItemID: 276, Damage: 7}))
	assert.Equal(t, []byte{0x01, 0x14, 2, 0, 7, 0}, buf.Bytes())
	s, err = ReadSlot(c, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Slot{Count: 2, ItemID: 276, Damage: 7}, s)
}

func TestSlot_UnknownComponent(t *testing.T) {
	// count 1, item 5, one added component with id 99, none removed
	_, err := ReadSlot(ctx767, bytes.NewReader([]byte{1, 5, 1, 0, 99}))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnsupported)
}

func TestSlot_WriteFailsAtomically(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteSlot(ctx767, buf, Slot{Count: 1, ItemID: 5, Components: []Component{
		&Damage{Damage: 1},
		&PotionContents{HasPotion: true},
	}})
	assert.ErrorIs(t, err, errs.ErrMissingField)
	assert.Zero(t, buf.Len())
}

func TestSlot_Name(t *testing.T) {
	c := NewContext(ctx767.Protocol)
	s := Slot{Count: 1, ItemID: 1}
	assert.Equal(t, "", s.Name(c))
	c.Items = StaticPalette{1: "minecraft:stone"}
	assert.Equal(t, "minecraft:stone", s.Name(c))
}

func TestContainer(t *testing.T) {
	comp := &Container{ItemList{Items: []Slot{
		{},
		{Count: 64, ItemID: 1, Components: []Component{}, Removed: []int{}},
	}}}
	b, err := Marshal(ctx767, comp)
	require.NoError(t, err)
	got, err := Unmarshal(ctx767, 52, b)
	require.NoError(t, err)
	assert.Equal(t, 2, got.(*Container).Count)
	assert.Equal(t, comp.Items, got.(*Container).Items)
}
