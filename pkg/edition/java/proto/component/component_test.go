package component

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

var (
	ctx766 = NewContext(version.Minecraft_1_20_5.Protocol)
	ctx767 = NewContext(version.Minecraft_1_21.Protocol)
)

func TestDyedColor(t *testing.T) {
	b, err := Marshal(ctx766, &DyedColor{Color: 0xFF, ShowInTooltip: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xFF, 0x01}, b)

	comp, err := Unmarshal(ctx766, 24, b)
	require.NoError(t, err)
	assert.Equal(t, &DyedColor{Color: 0xFF, ShowInTooltip: true}, comp)
}

func TestWriteComponent_Enchantments(t *testing.T) {
	ench := Enchantments{
		Enchantments:  []*Enchantment{{TypeID: 13, Level: 5}},
		ShowInTooltip: true,
	}
	buf := new(bytes.Buffer)
	require.NoError(t, WriteComponent(ctx766, buf, &ench))
	assert.Equal(t, []byte{0x09, 0x01, 0x0D, 0x05, 0x01}, buf.Bytes())

	comp, err := ReadComponent(ctx766, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	got, ok := comp.(*Enchantments)
	require.True(t, ok)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, ench.Enchantments, got.Enchantments)
	assert.True(t, got.ShowInTooltip)
}

func TestStoredEnchantmentsShareLayout(t *testing.T) {
	list := []*Enchantment{{TypeID: 1, Level: 2}, {TypeID: 300, Level: 1}}
	a, err := Marshal(ctx767, &Enchantments{Enchantments: list})
	require.NoError(t, err)
	b, err := Marshal(ctx767, &StoredEnchantments{Enchantments{Enchantments: list}})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	buf := new(bytes.Buffer)
	require.NoError(t, WriteComponent(ctx767, buf, &StoredEnchantments{}))
	assert.Equal(t, []byte{23, 0, 0}, buf.Bytes())
}

func TestFireworkExplosionDelegates(t *testing.T) {
	e := &Explosion{Shape: ShapeStar, Colors: []int32{0xFF}, Twinkle: true}
	sub := new(bytes.Buffer)
	require.NoError(t, e.Encode(ctx766, sub))
	b, err := Marshal(ctx766, &FireworkExplosion{Explosion: e})
	require.NoError(t, err)
	assert.Equal(t, sub.Bytes(), b)
}

func TestCountMismatch(t *testing.T) {
	tests := []struct {
		name string
		comp Component
	}{
		{"enchantments", &Enchantments{Count: 2, Enchantments: []*Enchantment{{TypeID: 1, Level: 1}}}},
		{"lore", &Lore{Count: 1}},
		{"container", &Container{ItemList{Count: 3, Items: []Slot{{Count: 1, ItemID: 1}}}}},
		{"food", &Food{Count: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Marshal(ctx766, tt.comp)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrDesync)
			assert.Contains(t, err.Error(), "count mismatch")
			assert.Nil(t, b)
		})
	}
}

func TestDeclaredCountMatching(t *testing.T) {
	b, err := Marshal(ctx766, &Lore{Count: 2, Lines: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, byte(2), b[0])
}

func TestMissingField(t *testing.T) {
	tests := []struct {
		name string
		comp Component
	}{
		{"potion", &PotionContents{HasPotion: true}},
		{"custom color", &PotionContents{HasCustomColor: true}},
		{"profile name", &Profile{HasName: true}},
		{"lodestone", &LodestoneTracker{HasTarget: true}},
		{"trim", &Trim{Pattern: &TrimPattern{ID: 1}}},
		{"jukebox", &JukeboxPlayable{Direct: true}},
		{"nil list entry", &Enchantments{Enchantments: []*Enchantment{nil}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := WriteComponent(ctx767, buf, tt.comp)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrMissingField)
			assert.Equal(t, errs.KindMissingField, errs.KindOf(err))
			assert.Zero(t, buf.Len())
		})
	}
}

func TestOptionalGating(t *testing.T) {
	comp, err := Unmarshal(ctx766, 31, []byte{0, 0, 0})
	require.NoError(t, err)
	p := comp.(*PotionContents)
	assert.False(t, p.HasPotion)
	assert.Nil(t, p.PotionID)
	assert.Nil(t, p.CustomColor)
	assert.Empty(t, p.Effects)

	id := 7
	b, err := Marshal(ctx766, &PotionContents{HasPotion: true, PotionID: &id})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 7, 0, 0}, b)

	// flag set, gated value truncated
	_, err = Unmarshal(ctx766, 31, []byte{1})
	assert.ErrorIs(t, err, errs.ErrDesync)
}

func TestTrailingBytes(t *testing.T) {
	_, err := Unmarshal(ctx766, 3, []byte{5, 0})
	assert.ErrorIs(t, err, errs.ErrDesync)
}

func TestHolders(t *testing.T) {
	b, err := Marshal(ctx766, &Trim{Material: &TrimMaterial{ID: 2}, Pattern: &TrimPattern{ID: 0}, ShowInTooltip: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 1, 1}, b)

	in := &InstrumentComponent{Instrument: &Instrument{Data: &InstrumentData{
		Sound:       SoundHolder{Event: &SoundEvent{Name: "minecraft:horn"}},
		UseDuration: 140,
		Range:       256,
	}}}
	b, err = Marshal(ctx766, in)
	require.NoError(t, err)
	assert.Equal(t, byte(0), b[0], "inline instrument")
	assert.Equal(t, byte(0), b[1], "inline sound")

	comp, err := Unmarshal(ctx766, 40, b)
	require.NoError(t, err)
	assert.Equal(t, in, comp)
}

func TestUnsupported(t *testing.T) {
	t.Run("unknown component id", func(t *testing.T) {
		_, err := Unmarshal(ctx767, 99, nil)
		assert.ErrorIs(t, err, errs.ErrUnsupported)
	})
	t.Run("component not in protocol", func(t *testing.T) {
		err := WriteComponent(ctx766, new(bytes.Buffer), &JukeboxPlayable{SongName: "minecraft:cat"})
		assert.ErrorIs(t, err, errs.ErrUnsupported)
	})
	t.Run("subcomponent not in protocol", func(t *testing.T) {
		_, err := Subcomponents.New(ctx766.Protocol, SubJukeboxSong)
		assert.ErrorIs(t, err, errs.ErrUnsupported)
		_, err = Subcomponents.New(ctx767.Protocol, SubJukeboxSong)
		assert.NoError(t, err)
	})
	t.Run("unknown subcomponent tag", func(t *testing.T) {
		_, err := Subcomponents.Parse(ctx767, SubType(99), bytes.NewReader(nil))
		assert.ErrorIs(t, err, errs.ErrUnsupported)
	})
	t.Run("protocol without components", func(t *testing.T) {
		_, err := Unmarshal(NewContext(version.Minecraft_1_20_3.Protocol), 0, []byte{0})
		assert.ErrorIs(t, err, errs.ErrUnsupported)
	})
}

func TestAttributeModifierLayouts(t *testing.T) {
	t.Run("1.20.5", func(t *testing.T) {
		mod := &UUIDAttributeModifier{Name: "boost"}
		mod.AttributeID, mod.Value = 3, 0.5
		b, err := Marshal(ctx766, &AttributeModifiers{Modifiers: []AttributeModifier{mod}})
		require.NoError(t, err)
		comp, err := Unmarshal(ctx766, 12, b)
		require.NoError(t, err)
		got := comp.(*AttributeModifiers).Modifiers
		require.Len(t, got, 1)
		require.IsType(t, &UUIDAttributeModifier{}, got[0])
		assert.Equal(t, 0.5, got[0].Base().Value)
	})
	t.Run("1.21", func(t *testing.T) {
		mod := &KeyedAttributeModifier{ID: "minecraft:boost"}
		mod.AttributeID, mod.Slot = 3, SlotHead
		b, err := Marshal(ctx767, &AttributeModifiers{Modifiers: []AttributeModifier{mod}, ShowInTooltip: true})
		require.NoError(t, err)
		comp, err := Unmarshal(ctx767, 12, b)
		require.NoError(t, err)
		got := comp.(*AttributeModifiers).Modifiers
		require.Len(t, got, 1)
		require.IsType(t, &KeyedAttributeModifier{}, got[0])
		assert.Equal(t, "minecraft:boost", got[0].(*KeyedAttributeModifier).ID)
		assert.Equal(t, SlotHead, got[0].Base().Slot)
	})
}

func TestTextComponents(t *testing.T) {
	b, err := Marshal(ctx767, &CustomName{Name: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x00, 0x05, 'H', 'e', 'l', 'l', 'o'}, b)

	comp, err := Unmarshal(ctx767, 5, b)
	require.NoError(t, err)
	assert.Equal(t, "Hello", comp.(*CustomName).Name)

	lore := &Lore{Lines: []string{"first", "second"}}
	b, err = Marshal(ctx767, lore)
	require.NoError(t, err)
	comp, err = Unmarshal(ctx767, 7, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, comp.(*Lore).Lines)
}

func TestFoodUsingConvertsTo(t *testing.T) {
	food := &Food{
		Nutrition:          4,
		Saturation:         2.4,
		EatSeconds:         1.6,
		HasUsingConvertsTo: true,
		UsingConvertsTo:    &Slot{Count: 1, ItemID: 840, Components: []Component{}, Removed: []int{}},
		Count:              1,
		Effects: []*FoodEffect{{
			Effect:      &PotionEffect{TypeID: 16, Detail: &EffectDetail{Duration: 600}},
			Probability: 1,
		}},
	}
	b, err := Marshal(ctx767, food)
	require.NoError(t, err)
	comp, err := Unmarshal(ctx767, 20, b)
	require.NoError(t, err)
	assert.Equal(t, food, comp)

	// the 1.20.5 layout has no converts-to field
	food.HasUsingConvertsTo, food.UsingConvertsTo = false, nil
	b, err = Marshal(ctx766, food)
	require.NoError(t, err)
	comp, err = Unmarshal(ctx766, 20, b)
	require.NoError(t, err)
	assert.Equal(t, food, comp)
}

func TestProfile(t *testing.T) {
	name := "Notch"
	sig := "c2ln"
	p := &Profile{
		HasName: true,
		Name:    &name,
		Count:   1,
		Properties: []*ProfileProperty{
			{Name: "textures", Value: "e30=", HasSignature: true, Signature: &sig},
		},
	}
	b, err := Marshal(ctx767, p)
	require.NoError(t, err)
	comp, err := Unmarshal(ctx767, 47, b)
	require.NoError(t, err)
	assert.Equal(t, p, comp)
}

func TestLodestoneTracker(t *testing.T) {
	l := &LodestoneTracker{
		HasTarget: true,
		Target:    &GlobalPosition{Dimension: "minecraft:overworld", Position: util.Position{X: 10, Y: -5, Z: -300}},
		Tracked:   true,
	}
	b, err := Marshal(ctx766, l)
	require.NoError(t, err)
	comp, err := Unmarshal(ctx766, 43, b)
	require.NoError(t, err)
	assert.Equal(t, l, comp)
}

func TestJukeboxPlayable(t *testing.T) {
	tests := []*JukeboxPlayable{
		{SongName: "minecraft:cat", ShowInTooltip: true},
		{Direct: true, Song: &JukeboxSong{ID: 4}},
	}
	for _, j := range tests {
		b, err := Marshal(ctx767, j)
		require.NoError(t, err)
		comp, err := Unmarshal(ctx767, 42, b)
		require.NoError(t, err)
		assert.Equal(t, j, comp)
	}
}

func TestCatalogue(t *testing.T) {
	e766, err := Components.Entries(ctx766.Protocol)
	require.NoError(t, err)
	e767, err := Components.Entries(ctx767.Protocol)
	require.NoError(t, err)
	require.Len(t, e766, 56)
	require.Len(t, e767, 57)
	for i, e := range e767 {
		assert.Equal(t, i, e.ID)
	}
	assert.Equal(t, "minecraft:recipes", e766[42].Name)
	assert.Equal(t, "minecraft:jukebox_playable", e767[42].Name)
	assert.Equal(t, "minecraft:container_loot", e767[56].Name)
	assert.Len(t, Components.Names(), 57)

	comp, ok := Components.ByName("minecraft:food")
	require.True(t, ok)
	assert.IsType(t, &Food{}, comp)
	assert.Equal(t, "minecraft:food", Components.NameOf(comp))

	id, err := Components.ID(ctx767.Protocol, &Recipes{})
	require.NoError(t, err)
	assert.Equal(t, 43, id)
}
