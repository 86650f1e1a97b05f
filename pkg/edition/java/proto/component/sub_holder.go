package component

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
)

// Holder subcomponents reference a server registry entry by id or carry
// the entry inline. Only the inline form has further bytes on the wire.

// SoundEvent is a sound by identifier with an optional fixed range.
type SoundEvent struct {
	Name          string
	HasFixedRange bool
	FixedRange    *float32
}

func (s *SoundEvent) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Identifier(&s.Name)
	r.Bool(&s.HasFixedRange)
	s.FixedRange = nil
	if s.HasFixedRange {
		var v float32
		r.Float32(&v)
		s.FixedRange = &v
	}
	return nil
}

func (s *SoundEvent) Encode(c *Context, wr io.Writer) error {
	mustHave("sound_event.fixed_range", s.HasFixedRange, s.FixedRange)
	w := util.PanicWriter(wr)
	w.String(s.Name)
	if w.Bool(s.HasFixedRange) {
		w.Float32(*s.FixedRange)
	}
	return nil
}

// SoundHolder is a sound event registry id or an inline sound event.
type SoundHolder struct {
	ID    int         // used if Event is nil
	Event *SoundEvent // inline
}

func (h *SoundHolder) decode(c *Context, rd io.Reader) {
	h.ID, h.Event = 0, nil
	if id, inline := readHolder(util.PanicReader(rd)); inline {
		h.Event = readSub[*SoundEvent](c, SubSoundEvent, rd)
	} else {
		h.ID = id
	}
}

func (h *SoundHolder) encode(c *Context, wr io.Writer) {
	if writeHolder(util.PanicWriter(wr), h.ID, h.Event != nil) {
		writeSub(c, wr, "sound", h.Event)
	}
}

// TrimOverride replaces the trim asset for an armor material.
type TrimOverride struct {
	ArmorMaterialID int
	AssetName       string
}

// TrimMaterialData is an inline armor trim material.
type TrimMaterialData struct {
	AssetName      string
	IngredientID   int
	ItemModelIndex float32
	Overrides      []TrimOverride
	Description    string // display text
}

// TrimMaterial is a trim material registry id or an inline material.
type TrimMaterial struct {
	ID   int               // used if Data is nil
	Data *TrimMaterialData // inline
}

func (m *TrimMaterial) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	m.ID, m.Data = 0, nil
	id, inline := readHolder(r)
	if !inline {
		m.ID = id
		return nil
	}
	d := new(TrimMaterialData)
	r.String(&d.AssetName)
	r.VarInt(&d.IngredientID)
	r.Float32(&d.ItemModelIndex)
	d.Overrides = make([]TrimOverride, r.Count(maxList))
	for i := range d.Overrides {
		r.VarInt(&d.Overrides[i].ArmorMaterialID)
		r.String(&d.Overrides[i].AssetName)
	}
	r.Text(&d.Description, c.Protocol)
	m.Data = d
	return nil
}

func (m *TrimMaterial) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if !writeHolder(w, m.ID, m.Data != nil) {
		return nil
	}
	d := m.Data
	w.String(d.AssetName)
	w.VarInt(d.IngredientID)
	w.Float32(d.ItemModelIndex)
	w.VarInt(len(d.Overrides))
	for _, o := range d.Overrides {
		w.VarInt(o.ArmorMaterialID)
		w.String(o.AssetName)
	}
	w.Text(d.Description, c.Protocol)
	return nil
}

// TrimPatternData is an inline armor trim pattern.
type TrimPatternData struct {
	AssetName      string
	TemplateItemID int
	Description    string // display text
	Decal          bool
}

// TrimPattern is a trim pattern registry id or an inline pattern.
type TrimPattern struct {
	ID   int
	Data *TrimPatternData
}

func (p *TrimPattern) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.ID, p.Data = 0, nil
	id, inline := readHolder(r)
	if !inline {
		p.ID = id
		return nil
	}
	d := new(TrimPatternData)
	r.Identifier(&d.AssetName)
	r.VarInt(&d.TemplateItemID)
	r.Text(&d.Description, c.Protocol)
	r.Bool(&d.Decal)
	p.Data = d
	return nil
}

func (p *TrimPattern) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if !writeHolder(w, p.ID, p.Data != nil) {
		return nil
	}
	w.String(p.Data.AssetName)
	w.VarInt(p.Data.TemplateItemID)
	w.Text(p.Data.Description, c.Protocol)
	w.Bool(p.Data.Decal)
	return nil
}

// InstrumentData is an inline goat horn instrument.
type InstrumentData struct {
	Sound       SoundHolder
	UseDuration int // ticks
	Range       float32
}

// Instrument is an instrument registry id or an inline instrument.
type Instrument struct {
	ID   int
	Data *InstrumentData
}

func (in *Instrument) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	in.ID, in.Data = 0, nil
	id, inline := readHolder(r)
	if !inline {
		in.ID = id
		return nil
	}
	d := new(InstrumentData)
	d.Sound.decode(c, rd)
	r.VarInt(&d.UseDuration)
	r.Float32(&d.Range)
	in.Data = d
	return nil
}

func (in *Instrument) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if !writeHolder(w, in.ID, in.Data != nil) {
		return nil
	}
	in.Data.Sound.encode(c, wr)
	w.VarInt(in.Data.UseDuration)
	w.Float32(in.Data.Range)
	return nil
}

// JukeboxSongData is an inline music disc song.
type JukeboxSongData struct {
	Sound            SoundHolder
	Description      string // display text
	LengthInSeconds  float32
	ComparatorOutput int
}

// JukeboxSong is a jukebox song registry id or an inline song.
type JukeboxSong struct {
	ID   int
	Data *JukeboxSongData
}

func (s *JukeboxSong) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	s.ID, s.Data = 0, nil
	id, inline := readHolder(r)
	if !inline {
		s.ID = id
		return nil
	}
	d := new(JukeboxSongData)
	d.Sound.decode(c, rd)
	r.Text(&d.Description, c.Protocol)
	r.Float32(&d.LengthInSeconds)
	r.VarInt(&d.ComparatorOutput)
	s.Data = d
	return nil
}

func (s *JukeboxSong) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if !writeHolder(w, s.ID, s.Data != nil) {
		return nil
	}
	s.Data.Sound.encode(c, wr)
	w.Text(s.Data.Description, c.Protocol)
	w.Float32(s.Data.LengthInSeconds)
	w.VarInt(s.Data.ComparatorOutput)
	return nil
}
