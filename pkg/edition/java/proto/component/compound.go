package component

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// Food makes an item edible.
type Food struct {
	Nutrition    int
	Saturation   float32
	CanAlwaysEat bool
	EatSeconds   float32
	// UsingConvertsTo is the item left after eating, since 1.21.
	HasUsingConvertsTo bool
	UsingConvertsTo    *Slot
	Count              int
	Effects            []*FoodEffect
}

func (f *Food) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&f.Nutrition)
	r.Float32(&f.Saturation)
	r.Bool(&f.CanAlwaysEat)
	r.Float32(&f.EatSeconds)
	f.HasUsingConvertsTo, f.UsingConvertsTo = false, nil
	if c.Protocol.GreaterEqual(version.Minecraft_1_21) {
		f.UsingConvertsTo = readOptionalSlot(c, rd)
		f.HasUsingConvertsTo = f.UsingConvertsTo != nil
	}
	f.Count = r.Count(maxList)
	f.Effects = make([]*FoodEffect, f.Count)
	for i := range f.Effects {
		f.Effects[i] = readSub[*FoodEffect](c, SubEffect, rd)
	}
	return nil
}

func (f *Food) Encode(c *Context, wr io.Writer) error {
	modern := c.Protocol.GreaterEqual(version.Minecraft_1_21)
	if modern {
		mustHave("food.using_converts_to", f.HasUsingConvertsTo, f.UsingConvertsTo)
	}
	count := countOf("food.effects", f.Count, len(f.Effects))
	w := util.PanicWriter(wr)
	w.VarInt(f.Nutrition)
	w.Float32(f.Saturation)
	w.Bool(f.CanAlwaysEat)
	w.Float32(f.EatSeconds)
	if modern && w.Bool(f.HasUsingConvertsTo) {
		writeSlot(c, wr, *f.UsingConvertsTo)
	}
	w.VarInt(count)
	for _, e := range f.Effects {
		writeSub(c, wr, "food.effects", e)
	}
	return nil
}

// PotionContents is the potion, custom color and custom effects of a potion item.
type PotionContents struct {
	HasPotion      bool
	PotionID       *int
	HasCustomColor bool
	CustomColor    *int32
	Count          int
	Effects        []*PotionEffect
}

func (p *PotionContents) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.PotionID, p.CustomColor = nil, nil
	r.Bool(&p.HasPotion)
	if p.HasPotion {
		id := r.VarIntVal()
		p.PotionID = &id
	}
	r.Bool(&p.HasCustomColor)
	if p.HasCustomColor {
		var color int32
		r.Int32(&color)
		p.CustomColor = &color
	}
	p.Count = r.Count(maxList)
	p.Effects = make([]*PotionEffect, p.Count)
	for i := range p.Effects {
		p.Effects[i] = readSub[*PotionEffect](c, SubPotionEffect, rd)
	}
	return nil
}

func (p *PotionContents) Encode(c *Context, wr io.Writer) error {
	mustHave("potion_contents.potion", p.HasPotion, p.PotionID)
	mustHave("potion_contents.custom_color", p.HasCustomColor, p.CustomColor)
	count := countOf("potion_contents.effects", p.Count, len(p.Effects))
	w := util.PanicWriter(wr)
	if w.Bool(p.HasPotion) {
		w.VarInt(*p.PotionID)
	}
	if w.Bool(p.HasCustomColor) {
		w.Int32(*p.CustomColor)
	}
	w.VarInt(count)
	for _, e := range p.Effects {
		writeSub(c, wr, "potion_contents.effects", e)
	}
	return nil
}

// Trim is an armor trim.
type Trim struct {
	Material      *TrimMaterial
	Pattern       *TrimPattern
	ShowInTooltip bool
}

func (t *Trim) Decode(c *Context, rd io.Reader) error {
	t.Material = readSub[*TrimMaterial](c, SubTrimMaterial, rd)
	t.Pattern = readSub[*TrimPattern](c, SubTrimPattern, rd)
	util.PanicReader(rd).Bool(&t.ShowInTooltip)
	return nil
}

func (t *Trim) Encode(c *Context, wr io.Writer) error {
	mustHave("trim.material", true, t.Material)
	mustHave("trim.pattern", true, t.Pattern)
	writeSub(c, wr, "trim.material", t.Material)
	writeSub(c, wr, "trim.pattern", t.Pattern)
	util.PanicWriter(wr).Bool(t.ShowInTooltip)
	return nil
}

// InstrumentComponent is the instrument of a goat horn.
type InstrumentComponent struct {
	Instrument *Instrument
}

func (i *InstrumentComponent) Decode(c *Context, rd io.Reader) error {
	i.Instrument = readSub[*Instrument](c, SubInstrument, rd)
	return nil
}

func (i *InstrumentComponent) Encode(c *Context, wr io.Writer) error {
	writeSub(c, wr, "instrument", i.Instrument)
	return nil
}

// JukeboxPlayable is the song a music disc plays, since 1.21.
// Direct songs are sent as registry holder, others by identifier.
type JukeboxPlayable struct {
	Direct        bool
	Song          *JukeboxSong // if Direct
	SongName      string       // if not Direct
	ShowInTooltip bool
}

func (j *JukeboxPlayable) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	j.Song, j.SongName = nil, ""
	r.Bool(&j.Direct)
	if j.Direct {
		j.Song = readSub[*JukeboxSong](c, SubJukeboxSong, rd)
	} else {
		r.Identifier(&j.SongName)
	}
	r.Bool(&j.ShowInTooltip)
	return nil
}

func (j *JukeboxPlayable) Encode(c *Context, wr io.Writer) error {
	mustHave("jukebox_playable.song", j.Direct, j.Song)
	w := util.PanicWriter(wr)
	if w.Bool(j.Direct) {
		writeSub(c, wr, "jukebox_playable.song", j.Song)
	} else {
		w.String(j.SongName)
	}
	w.Bool(j.ShowInTooltip)
	return nil
}

// GlobalPosition is a block position in a dimension.
type GlobalPosition struct {
	Dimension string
	Position  util.Position
}

// LodestoneTracker is the lodestone a compass points to.
type LodestoneTracker struct {
	HasTarget bool
	Target    *GlobalPosition
	Tracked   bool
}

func (l *LodestoneTracker) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Bool(&l.HasTarget)
	l.Target = nil
	if l.HasTarget {
		t := new(GlobalPosition)
		r.Identifier(&t.Dimension)
		r.Position(&t.Position, c.Protocol)
		l.Target = t
	}
	r.Bool(&l.Tracked)
	return nil
}

func (l *LodestoneTracker) Encode(c *Context, wr io.Writer) error {
	mustHave("lodestone_tracker.target", l.HasTarget, l.Target)
	w := util.PanicWriter(wr)
	if w.Bool(l.HasTarget) {
		w.String(l.Target.Dimension)
		w.Position(l.Target.Position, c.Protocol)
	}
	w.Bool(l.Tracked)
	return nil
}

// FireworkExplosion is the explosion of a firework star.
type FireworkExplosion struct {
	Explosion *Explosion
}

func (f *FireworkExplosion) Decode(c *Context, rd io.Reader) error {
	f.Explosion = readSub[*Explosion](c, SubFireworkExplosion, rd)
	return nil
}

func (f *FireworkExplosion) Encode(c *Context, wr io.Writer) error {
	writeSub(c, wr, "firework_explosion", f.Explosion)
	return nil
}

// Profile is the game profile of a player head.
type Profile struct {
	HasName     bool
	Name        *string
	HasUniqueID bool
	UniqueID    *uuid.UUID
	Count       int
	Properties  []*ProfileProperty
}

func (p *Profile) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.Name, p.UniqueID = nil, nil
	r.Bool(&p.HasName)
	if p.HasName {
		var name string
		r.StringMax(&name, 16)
		p.Name = &name
	}
	r.Bool(&p.HasUniqueID)
	if p.HasUniqueID {
		var id uuid.UUID
		r.UUID(&id)
		p.UniqueID = &id
	}
	p.Count = r.Count(16)
	p.Properties = make([]*ProfileProperty, p.Count)
	for i := range p.Properties {
		p.Properties[i] = readSub[*ProfileProperty](c, SubProfileProperty, rd)
	}
	return nil
}

func (p *Profile) Encode(c *Context, wr io.Writer) error {
	mustHave("profile.name", p.HasName, p.Name)
	mustHave("profile.unique_id", p.HasUniqueID, p.UniqueID)
	count := countOf("profile.properties", p.Count, len(p.Properties))
	w := util.PanicWriter(wr)
	if w.Bool(p.HasName) {
		w.String(*p.Name)
	}
	if w.Bool(p.HasUniqueID) {
		w.UUID(*p.UniqueID)
	}
	w.VarInt(count)
	for _, prop := range p.Properties {
		writeSub(c, wr, "profile.properties", prop)
	}
	return nil
}
