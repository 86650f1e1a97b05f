package component

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
)

// Empty is embedded by marker components without payload.
type Empty struct{}

func (Empty) Decode(*Context, io.Reader) error { return nil }
func (Empty) Encode(*Context, io.Writer) error { return nil }

type (
	// HideAdditionalTooltip hides item specific tooltip lines.
	HideAdditionalTooltip struct{ Empty }
	// HideTooltip hides the whole tooltip.
	HideTooltip struct{ Empty }
	// CreativeSlotLock marks the item in the creative inventory.
	CreativeSlotLock struct{ Empty }
	// FireResistant makes the item entity immune to fire and lava.
	FireResistant struct{ Empty }
)

// NBTData is embedded by components whose payload is a single NBT tag.
type NBTData struct {
	Data util.BinaryTag
}

func (d *NBTData) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).BinaryTag(&d.Data, c.Protocol)
	return nil
}

func (d *NBTData) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).BinaryTag(d.Data, c.Protocol)
	return nil
}

type (
	CustomData           struct{ NBTData }
	IntangibleProjectile struct{ NBTData }
	MapDecorations       struct{ NBTData }
	DebugStickState      struct{ NBTData }
	EntityData           struct{ NBTData }
	BucketEntityData     struct{ NBTData }
	BlockEntityData      struct{ NBTData }
	Recipes              struct{ NBTData }
	Lock                 struct{ NBTData }
	ContainerLoot        struct{ NBTData }
)

// MaxStackSize overrides the maximum stack size of the item.
type MaxStackSize struct {
	Size int
}

func (m *MaxStackSize) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).VarInt(&m.Size)
	return nil
}

func (m *MaxStackSize) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(m.Size)
	return nil
}

type MaxDamage struct {
	Damage int
}

func (m *MaxDamage) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).VarInt(&m.Damage)
	return nil
}

func (m *MaxDamage) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(m.Damage)
	return nil
}

type Damage struct {
	Damage int
}

func (d *Damage) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).VarInt(&d.Damage)
	return nil
}

func (d *Damage) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(d.Damage)
	return nil
}

type CustomModelData struct {
	Value int
}

func (m *CustomModelData) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).VarInt(&m.Value)
	return nil
}

func (m *CustomModelData) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(m.Value)
	return nil
}

type RepairCost struct {
	Cost int
}

func (r *RepairCost) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).VarInt(&r.Cost)
	return nil
}

func (r *RepairCost) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(r.Cost)
	return nil
}

type MapID struct {
	ID int
}

func (m *MapID) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).VarInt(&m.ID)
	return nil
}

func (m *MapID) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(m.ID)
	return nil
}

type OminousBottleAmplifier struct {
	Amplifier int
}

func (o *OminousBottleAmplifier) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).VarInt(&o.Amplifier)
	return nil
}

func (o *OminousBottleAmplifier) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(o.Amplifier)
	return nil
}

type RarityComponent struct {
	Rarity Rarity
}

func (r *RarityComponent) Decode(c *Context, rd io.Reader) error {
	r.Rarity = Rarity(util.PanicReader(rd).VarIntVal())
	return nil
}

func (r *RarityComponent) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(int(r.Rarity))
	return nil
}

type MapPostProcessingComponent struct {
	Processing MapPostProcessing
}

func (m *MapPostProcessingComponent) Decode(c *Context, rd io.Reader) error {
	m.Processing = MapPostProcessing(util.PanicReader(rd).VarIntVal())
	return nil
}

func (m *MapPostProcessingComponent) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(int(m.Processing))
	return nil
}

// BaseColor is the base color of a shield banner.
type BaseColor struct {
	Color DyeColor
}

func (b *BaseColor) Decode(c *Context, rd io.Reader) error {
	b.Color = DyeColor(util.PanicReader(rd).VarIntVal())
	return nil
}

func (b *BaseColor) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(int(b.Color))
	return nil
}

type Unbreakable struct {
	ShowInTooltip bool
}

func (u *Unbreakable) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).Bool(&u.ShowInTooltip)
	return nil
}

func (u *Unbreakable) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).Bool(u.ShowInTooltip)
	return nil
}

type EnchantmentGlintOverride struct {
	HasGlint bool
}

func (e *EnchantmentGlintOverride) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).Bool(&e.HasGlint)
	return nil
}

func (e *EnchantmentGlintOverride) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).Bool(e.HasGlint)
	return nil
}

// DyedColor is the RGB color of leather armor.
type DyedColor struct {
	Color         int32
	ShowInTooltip bool
}

func (d *DyedColor) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Int32(&d.Color)
	r.Bool(&d.ShowInTooltip)
	return nil
}

func (d *DyedColor) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Int32(d.Color)
	w.Bool(d.ShowInTooltip)
	return nil
}

type MapColor struct {
	Color int32
}

func (m *MapColor) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).Int32(&m.Color)
	return nil
}

func (m *MapColor) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).Int32(m.Color)
	return nil
}

type NoteBlockSound struct {
	Sound string
}

func (n *NoteBlockSound) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).Identifier(&n.Sound)
	return nil
}

func (n *NoteBlockSound) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).String(n.Sound)
	return nil
}

// CustomName is the renamed display name. Text decodes to display text.
type CustomName struct {
	Name string
}

func (n *CustomName) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).Text(&n.Name, c.Protocol)
	return nil
}

func (n *CustomName) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).Text(n.Name, c.Protocol)
	return nil
}

// ItemName is the default item name that anvils can not change.
type ItemName struct {
	Name string
}

func (n *ItemName) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).Text(&n.Name, c.Protocol)
	return nil
}

func (n *ItemName) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).Text(n.Name, c.Protocol)
	return nil
}
