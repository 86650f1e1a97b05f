package component

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
)

// List components carry the count they were decoded with. A Count of 0
// means the count is derived from the list on encode, any other value
// must match the list length or encoding fails.

// Enchantments are the enchantments applied to an item.
type Enchantments struct {
	Count         int
	Enchantments  []*Enchantment
	ShowInTooltip bool
}

func (e *Enchantments) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	e.Count = r.Count(maxList)
	e.Enchantments = make([]*Enchantment, e.Count)
	for i := range e.Enchantments {
		e.Enchantments[i] = readSub[*Enchantment](c, SubEnchantment, rd)
	}
	r.Bool(&e.ShowInTooltip)
	return nil
}

func (e *Enchantments) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(countOf("enchantments", e.Count, len(e.Enchantments)))
	for _, ench := range e.Enchantments {
		writeSub(c, wr, "enchantments", ench)
	}
	w.Bool(e.ShowInTooltip)
	return nil
}

// StoredEnchantments are the enchantments stored in an enchanted book.
// The layout is the one of Enchantments.
type StoredEnchantments struct{ Enchantments }

// BlockPredicates is the layout shared by CanPlaceOn and CanBreak.
type BlockPredicates struct {
	Count         int
	Predicates    []*BlockPredicate
	ShowInTooltip bool
}

func (b *BlockPredicates) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	b.Count = r.Count(maxList)
	b.Predicates = make([]*BlockPredicate, b.Count)
	for i := range b.Predicates {
		b.Predicates[i] = readSub[*BlockPredicate](c, SubBlockPredicate, rd)
	}
	r.Bool(&b.ShowInTooltip)
	return nil
}

func (b *BlockPredicates) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(countOf("predicates", b.Count, len(b.Predicates)))
	for _, p := range b.Predicates {
		writeSub(c, wr, "predicates", p)
	}
	w.Bool(b.ShowInTooltip)
	return nil
}

type (
	// CanPlaceOn lists the blocks the item can be placed on in adventure mode.
	CanPlaceOn struct{ BlockPredicates }
	// CanBreak lists the blocks the item can break in adventure mode.
	CanBreak struct{ BlockPredicates }
)

type AttributeModifiers struct {
	Count         int
	Modifiers     []AttributeModifier
	ShowInTooltip bool
}

func (a *AttributeModifiers) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	a.Count = r.Count(maxList)
	a.Modifiers = make([]AttributeModifier, a.Count)
	for i := range a.Modifiers {
		a.Modifiers[i] = readSub[AttributeModifier](c, SubAttributeModifier, rd)
	}
	r.Bool(&a.ShowInTooltip)
	return nil
}

func (a *AttributeModifiers) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(countOf("modifiers", a.Count, len(a.Modifiers)))
	for _, m := range a.Modifiers {
		writeSub(c, wr, "modifiers", m)
	}
	w.Bool(a.ShowInTooltip)
	return nil
}

// Lore are the tooltip lines below the item name, as display text.
type Lore struct {
	Count int
	Lines []string
}

func (l *Lore) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	l.Count = r.Count(256)
	l.Lines = make([]string, l.Count)
	for i := range l.Lines {
		r.Text(&l.Lines[i], c.Protocol)
	}
	return nil
}

func (l *Lore) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(countOf("lines", l.Count, len(l.Lines)))
	for _, line := range l.Lines {
		w.Text(line, c.Protocol)
	}
	return nil
}

type SuspiciousStewEffects struct {
	Count   int
	Effects []*StewEffect
}

func (s *SuspiciousStewEffects) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	s.Count = r.Count(maxList)
	s.Effects = make([]*StewEffect, s.Count)
	for i := range s.Effects {
		s.Effects[i] = readSub[*StewEffect](c, SubStewEffect, rd)
	}
	return nil
}

func (s *SuspiciousStewEffects) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(countOf("effects", s.Count, len(s.Effects)))
	for _, e := range s.Effects {
		writeSub(c, wr, "effects", e)
	}
	return nil
}

type WritableBookContent struct {
	Count int
	Pages []*WritablePage
}

func (b *WritableBookContent) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	b.Count = r.Count(100)
	b.Pages = make([]*WritablePage, b.Count)
	for i := range b.Pages {
		b.Pages[i] = readSub[*WritablePage](c, SubWritablePage, rd)
	}
	return nil
}

func (b *WritableBookContent) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(countOf("pages", b.Count, len(b.Pages)))
	for _, p := range b.Pages {
		writeSub(c, wr, "pages", p)
	}
	return nil
}

// WrittenBookContent is the content of a signed book.
// Pages are text and decode to display text.
type WrittenBookContent struct {
	RawTitle         string
	HasFilteredTitle bool
	FilteredTitle    *string
	Author           string
	Generation       int
	Count            int
	Pages            []*WrittenPage
	Resolved         bool
}

func (b *WrittenBookContent) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.StringMax(&b.RawTitle, 32)
	r.Bool(&b.HasFilteredTitle)
	b.FilteredTitle = nil
	if b.HasFilteredTitle {
		var s string
		r.StringMax(&s, 32)
		b.FilteredTitle = &s
	}
	r.String(&b.Author)
	r.VarInt(&b.Generation)
	b.Count = r.Count(maxList)
	b.Pages = make([]*WrittenPage, b.Count)
	for i := range b.Pages {
		b.Pages[i] = readSub[*WrittenPage](c, SubWrittenPage, rd)
	}
	r.Bool(&b.Resolved)
	return nil
}

func (b *WrittenBookContent) Encode(c *Context, wr io.Writer) error {
	mustHave("filtered_title", b.HasFilteredTitle, b.FilteredTitle)
	count := countOf("pages", b.Count, len(b.Pages))
	w := util.PanicWriter(wr)
	w.String(b.RawTitle)
	if w.Bool(b.HasFilteredTitle) {
		w.String(*b.FilteredTitle)
	}
	w.String(b.Author)
	w.VarInt(b.Generation)
	w.VarInt(count)
	for _, p := range b.Pages {
		writeSub(c, wr, "pages", p)
	}
	w.Bool(b.Resolved)
	return nil
}

// Fireworks is the flight duration and explosions of a firework rocket.
type Fireworks struct {
	FlightDuration int
	Count          int
	Explosions     []*Explosion
}

func (f *Fireworks) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&f.FlightDuration)
	f.Count = r.Count(256)
	f.Explosions = make([]*Explosion, f.Count)
	for i := range f.Explosions {
		f.Explosions[i] = readSub[*Explosion](c, SubFireworkExplosion, rd)
	}
	return nil
}

func (f *Fireworks) Encode(c *Context, wr io.Writer) error {
	count := countOf("explosions", f.Count, len(f.Explosions))
	w := util.PanicWriter(wr)
	w.VarInt(f.FlightDuration)
	w.VarInt(count)
	for _, e := range f.Explosions {
		writeSub(c, wr, "explosions", e)
	}
	return nil
}

type BannerPatterns struct {
	Count  int
	Layers []*BannerLayer
}

func (b *BannerPatterns) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	b.Count = r.Count(maxList)
	b.Layers = make([]*BannerLayer, b.Count)
	for i := range b.Layers {
		b.Layers[i] = readSub[*BannerLayer](c, SubBannerLayer, rd)
	}
	return nil
}

func (b *BannerPatterns) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(countOf("layers", b.Count, len(b.Layers)))
	for _, l := range b.Layers {
		writeSub(c, wr, "layers", l)
	}
	return nil
}

// PotDecorations are the sherd item ids of a decorated pot's sides.
type PotDecorations struct {
	Count       int
	Decorations []int
}

func (p *PotDecorations) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.Count = r.Count(4)
	p.Decorations = make([]int, p.Count)
	for i := range p.Decorations {
		r.VarInt(&p.Decorations[i])
	}
	return nil
}

func (p *PotDecorations) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(countOf("decorations", p.Count, len(p.Decorations)))
	for _, d := range p.Decorations {
		w.VarInt(d)
	}
	return nil
}

type BlockState struct {
	Count      int
	Properties []*BlockStateProperty
}

func (b *BlockState) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	b.Count = r.Count(maxList)
	b.Properties = make([]*BlockStateProperty, b.Count)
	for i := range b.Properties {
		b.Properties[i] = readSub[*BlockStateProperty](c, SubBlockStateProperty, rd)
	}
	return nil
}

func (b *BlockState) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(countOf("properties", b.Count, len(b.Properties)))
	for _, p := range b.Properties {
		writeSub(c, wr, "properties", p)
	}
	return nil
}

type Bees struct {
	Count int
	Bees  []*Bee
}

func (b *Bees) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	b.Count = r.Count(maxList)
	b.Bees = make([]*Bee, b.Count)
	for i := range b.Bees {
		b.Bees[i] = readSub[*Bee](c, SubBee, rd)
	}
	return nil
}

func (b *Bees) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(countOf("bees", b.Count, len(b.Bees)))
	for _, bee := range b.Bees {
		writeSub(c, wr, "bees", bee)
	}
	return nil
}

type (
	// ChargedProjectiles are the projectiles loaded into a crossbow.
	ChargedProjectiles struct{ ItemList }
	// BundleContents are the items inside a bundle.
	BundleContents struct{ ItemList }
	// Container are the items of a container block item.
	Container struct{ ItemList }
)

// Tool makes an item a mining tool.
type Tool struct {
	Count              int
	Rules              []*Rule
	DefaultMiningSpeed float32
	DamagePerBlock     int
}

func (t *Tool) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	t.Count = r.Count(maxList)
	t.Rules = make([]*Rule, t.Count)
	for i := range t.Rules {
		t.Rules[i] = readSub[*Rule](c, SubRule, rd)
	}
	r.Float32(&t.DefaultMiningSpeed)
	r.VarInt(&t.DamagePerBlock)
	return nil
}

func (t *Tool) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(countOf("rules", t.Count, len(t.Rules)))
	for _, rule := range t.Rules {
		writeSub(c, wr, "rules", rule)
	}
	w.Float32(t.DefaultMiningSpeed)
	w.VarInt(t.DamagePerBlock)
	return nil
}
