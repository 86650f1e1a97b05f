package component

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
)

// EffectDetail holds the parameters of a status effect instance.
type EffectDetail struct {
	Amplifier       int
	Duration        int // ticks, -1 for infinite
	Ambient         bool
	ShowParticles   bool
	ShowIcon        bool
	HasHiddenEffect bool
	// HiddenEffect is the weaker effect of the same type
	// resumed once this one runs out.
	HiddenEffect *EffectDetail
}

func (d *EffectDetail) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&d.Amplifier)
	r.VarInt(&d.Duration)
	r.Bool(&d.Ambient)
	r.Bool(&d.ShowParticles)
	r.Bool(&d.ShowIcon)
	r.Bool(&d.HasHiddenEffect)
	d.HiddenEffect = nil
	if d.HasHiddenEffect {
		d.HiddenEffect = readSub[*EffectDetail](c, SubEffectDetail, rd)
	}
	return nil
}

func (d *EffectDetail) Encode(c *Context, wr io.Writer) error {
	mustHave("effect.hidden_effect", d.HasHiddenEffect, d.HiddenEffect)
	w := util.PanicWriter(wr)
	w.VarInt(d.Amplifier)
	w.VarInt(d.Duration)
	w.Bool(d.Ambient)
	w.Bool(d.ShowParticles)
	w.Bool(d.ShowIcon)
	if w.Bool(d.HasHiddenEffect) {
		writeSub(c, wr, "effect.hidden_effect", d.HiddenEffect)
	}
	return nil
}

// PotionEffect is a status effect type with its details.
type PotionEffect struct {
	TypeID int
	Detail *EffectDetail
}

func (e *PotionEffect) Decode(c *Context, rd io.Reader) error {
	util.PanicReader(rd).VarInt(&e.TypeID)
	e.Detail = readSub[*EffectDetail](c, SubEffectDetail, rd)
	return nil
}

func (e *PotionEffect) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(e.TypeID)
	writeSub(c, wr, "potion_effect.detail", e.Detail)
	return nil
}

// FoodEffect is a potion effect applied with a probability when eating.
type FoodEffect struct {
	Effect      *PotionEffect
	Probability float32
}

func (e *FoodEffect) Decode(c *Context, rd io.Reader) error {
	e.Effect = readSub[*PotionEffect](c, SubPotionEffect, rd)
	util.PanicReader(rd).Float32(&e.Probability)
	return nil
}

func (e *FoodEffect) Encode(c *Context, wr io.Writer) error {
	writeSub(c, wr, "food_effect.effect", e.Effect)
	util.PanicWriter(wr).Float32(e.Probability)
	return nil
}

// StewEffect is an effect of a suspicious stew.
type StewEffect struct {
	TypeID   int
	Duration int
}

func (e *StewEffect) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&e.TypeID)
	r.VarInt(&e.Duration)
	return nil
}

func (e *StewEffect) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(e.TypeID)
	w.VarInt(e.Duration)
	return nil
}
