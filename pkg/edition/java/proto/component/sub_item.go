package component

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// Enchantment is an enchantment registry id with its level.
type Enchantment struct {
	TypeID int
	Level  int
}

func (e *Enchantment) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&e.TypeID)
	r.VarInt(&e.Level)
	return nil
}

func (e *Enchantment) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(e.TypeID)
	w.VarInt(e.Level)
	return nil
}

// AttributeModifier is an attribute modifier of the protocol's layout,
// either *UUIDAttributeModifier (1.20.5) or *KeyedAttributeModifier (1.21+).
type AttributeModifier interface {
	SubComponent
	Base() *AttributeModifierBase
}

// AttributeModifierBase holds the fields all modifier layouts share.
type AttributeModifierBase struct {
	AttributeID int
	Value       float64
	Operation   AttributeOperation
	Slot        EquipmentSlotGroup
}

func (b *AttributeModifierBase) Base() *AttributeModifierBase { return b }

func (b *AttributeModifierBase) decodeTail(r *util.PReader) {
	var op, slot int
	r.Float64(&b.Value)
	r.VarInt(&op)
	r.VarInt(&slot)
	b.Operation, b.Slot = AttributeOperation(op), EquipmentSlotGroup(slot)
}

func (b *AttributeModifierBase) encodeTail(w *util.PWriter) {
	w.Float64(b.Value)
	w.VarInt(int(b.Operation))
	w.VarInt(int(b.Slot))
}

// UUIDAttributeModifier identifies the modifier by UUID and display name.
type UUIDAttributeModifier struct {
	AttributeModifierBase
	UniqueID uuid.UUID
	Name     string
}

func (m *UUIDAttributeModifier) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&m.AttributeID)
	r.UUID(&m.UniqueID)
	r.String(&m.Name)
	m.decodeTail(r)
	return nil
}

func (m *UUIDAttributeModifier) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(m.AttributeID)
	w.UUID(m.UniqueID)
	w.String(m.Name)
	m.encodeTail(w)
	return nil
}

// KeyedAttributeModifier identifies the modifier by a namespaced id.
type KeyedAttributeModifier struct {
	AttributeModifierBase
	ID string
}

func (m *KeyedAttributeModifier) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&m.AttributeID)
	r.Identifier(&m.ID)
	m.decodeTail(r)
	return nil
}

func (m *KeyedAttributeModifier) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(m.AttributeID)
	w.String(m.ID)
	m.encodeTail(w)
	return nil
}

var (
	_ AttributeModifier = (*UUIDAttributeModifier)(nil)
	_ AttributeModifier = (*KeyedAttributeModifier)(nil)
)

// Explosion is a firework explosion.
type Explosion struct {
	Shape      ExplosionShape
	Colors     []int32
	FadeColors []int32
	Trail      bool
	Twinkle    bool
}

func (e *Explosion) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	var shape int
	r.VarInt(&shape)
	e.Shape = ExplosionShape(shape)
	e.Colors = readColors(r)
	e.FadeColors = readColors(r)
	r.Bool(&e.Trail)
	r.Bool(&e.Twinkle)
	return nil
}

func readColors(r *util.PReader) []int32 {
	colors := make([]int32, r.Count(maxList))
	for i := range colors {
		r.Int32(&colors[i])
	}
	return colors
}

func (e *Explosion) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(int(e.Shape))
	for _, colors := range [][]int32{e.Colors, e.FadeColors} {
		w.VarInt(len(colors))
		for _, color := range colors {
			w.Int32(color)
		}
	}
	w.Bool(e.Trail)
	w.Bool(e.Twinkle)
	return nil
}

// BannerPattern is an inline banner pattern definition.
type BannerPattern struct {
	AssetID        string
	TranslationKey string
}

// BannerLayer is a pattern of a banner in a color.
type BannerLayer struct {
	PatternID int            // registry id, used if Pattern is nil
	Pattern   *BannerPattern // inline pattern
	Color     DyeColor
}

func (l *BannerLayer) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	l.PatternID, l.Pattern = 0, nil
	if id, inline := readHolder(r); inline {
		l.Pattern = new(BannerPattern)
		r.Identifier(&l.Pattern.AssetID)
		r.String(&l.Pattern.TranslationKey)
	} else {
		l.PatternID = id
	}
	var color int
	r.VarInt(&color)
	l.Color = DyeColor(color)
	return nil
}

func (l *BannerLayer) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if writeHolder(w, l.PatternID, l.Pattern != nil) {
		w.String(l.Pattern.AssetID)
		w.String(l.Pattern.TranslationKey)
	}
	w.VarInt(int(l.Color))
	return nil
}

// Bee is a bee inside a beehive or bee nest.
type Bee struct {
	EntityData     util.BinaryTag
	TicksInHive    int
	MinTicksInHive int
}

func (b *Bee) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.BinaryTag(&b.EntityData, c.Protocol)
	r.VarInt(&b.TicksInHive)
	r.VarInt(&b.MinTicksInHive)
	return nil
}

func (b *Bee) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.BinaryTag(b.EntityData, c.Protocol)
	w.VarInt(b.TicksInHive)
	w.VarInt(b.MinTicksInHive)
	return nil
}

const maxPageLength = 1024

// WritablePage is a page of a book and quill.
type WritablePage struct {
	Raw         string
	HasFiltered bool
	Filtered    *string
}

func (p *WritablePage) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.StringMax(&p.Raw, maxPageLength)
	r.Bool(&p.HasFiltered)
	p.Filtered = nil
	if p.HasFiltered {
		var s string
		r.StringMax(&s, maxPageLength)
		p.Filtered = &s
	}
	return nil
}

func (p *WritablePage) Encode(c *Context, wr io.Writer) error {
	mustHave("page.filtered", p.HasFiltered, p.Filtered)
	w := util.PanicWriter(wr)
	w.String(p.Raw)
	if w.Bool(p.HasFiltered) {
		w.String(*p.Filtered)
	}
	return nil
}

// WrittenPage is a page of a signed book. Pages are text components
// and decode to their display text.
type WrittenPage struct {
	Raw         string
	HasFiltered bool
	Filtered    *string
}

func (p *WrittenPage) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Text(&p.Raw, c.Protocol)
	r.Bool(&p.HasFiltered)
	p.Filtered = nil
	if p.HasFiltered {
		var s string
		r.Text(&s, c.Protocol)
		p.Filtered = &s
	}
	return nil
}

func (p *WrittenPage) Encode(c *Context, wr io.Writer) error {
	mustHave("page.filtered", p.HasFiltered, p.Filtered)
	w := util.PanicWriter(wr)
	w.Text(p.Raw, c.Protocol)
	if w.Bool(p.HasFiltered) {
		w.Text(*p.Filtered, c.Protocol)
	}
	return nil
}

// ProfileProperty is a signed property of a game profile, e.g. textures.
type ProfileProperty struct {
	Name         string
	Value        string
	HasSignature bool
	Signature    *string
}

func (p *ProfileProperty) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.StringMax(&p.Name, 64)
	r.String(&p.Value)
	r.Bool(&p.HasSignature)
	p.Signature = nil
	if p.HasSignature {
		var s string
		r.StringMax(&s, 1024)
		p.Signature = &s
	}
	return nil
}

func (p *ProfileProperty) Encode(c *Context, wr io.Writer) error {
	mustHave("profile_property.signature", p.HasSignature, p.Signature)
	w := util.PanicWriter(wr)
	w.String(p.Name)
	w.String(p.Value)
	if w.Bool(p.HasSignature) {
		w.String(*p.Signature)
	}
	return nil
}

// readHolder reads a registry holder prefix: 0 means inline data follows,
// otherwise the value is the registry id plus one.
func readHolder(r *util.PReader) (id int, inline bool) {
	v := r.VarIntVal()
	if v == 0 {
		return 0, true
	}
	return v - 1, false
}

// writeHolder writes a registry holder prefix and reports
// whether the inline data must follow.
func writeHolder(w *util.PWriter, id int, inline bool) bool {
	if inline {
		w.VarInt(0)
		return true
	}
	w.VarInt(id + 1)
	return false
}
