package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// UpdateTime syncs the world age and time of day.
// A negative time of day means the daylight cycle is stopped.
type UpdateTime struct {
	WorldAge  int64
	TimeOfDay int64
}

func (p *UpdateTime) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Int64(p.WorldAge)
	w.Int64(p.TimeOfDay)
	return nil
}

func (p *UpdateTime) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Int64(&p.WorldAge)
	r.Int64(&p.TimeOfDay)
	return nil
}

// SetHealth updates health, food and saturation of the player.
type SetHealth struct {
	Health     float32
	Food       int
	Saturation float32
}

func (p *SetHealth) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Float32(p.Health)
	w.VarInt(p.Food)
	w.Float32(p.Saturation)
	return nil
}

func (p *SetHealth) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Float32(&p.Health)
	r.VarInt(&p.Food)
	r.Float32(&p.Saturation)
	return nil
}

// SetExperience updates the experience bar of the player.
type SetExperience struct {
	Bar   float32 // 0..1
	Level int
	Total int
}

func (p *SetExperience) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Float32(p.Bar)
	w.VarInt(p.Level)
	w.VarInt(p.Total)
	return nil
}

func (p *SetExperience) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Float32(&p.Bar)
	r.VarInt(&p.Level)
	r.VarInt(&p.Total)
	return nil
}

// ExplosionRecord is a destroyed block relative to the explosion center.
type ExplosionRecord struct {
	X, Y, Z int8
}

// Explosion is an explosion with the blocks it destroyed and the push it applies
// to the player. The trailing particle and sound fields are kept in wire form.
type Explosion struct {
	X, Y, Z                   float64
	Strength                  float32
	Records                   []ExplosionRecord
	MotionX, MotionY, MotionZ float32
	Effects                   []byte
}

func (p *Explosion) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Float64(p.X)
	w.Float64(p.Y)
	w.Float64(p.Z)
	w.Float32(p.Strength)
	w.VarInt(len(p.Records))
	for _, rec := range p.Records {
		w.Byte(byte(rec.X))
		w.Byte(byte(rec.Y))
		w.Byte(byte(rec.Z))
	}
	w.Float32(p.MotionX)
	w.Float32(p.MotionY)
	w.Float32(p.MotionZ)
	w.Raw(p.Effects)
	return nil
}

func (p *Explosion) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Float64(&p.X)
	r.Float64(&p.Y)
	r.Float64(&p.Z)
	r.Float32(&p.Strength)
	p.Records = make([]ExplosionRecord, r.Count(1<<16))
	for i := range p.Records {
		r.Int8(&p.Records[i].X)
		r.Int8(&p.Records[i].Y)
		r.Int8(&p.Records[i].Z)
	}
	r.Float32(&p.MotionX)
	r.Float32(&p.MotionY)
	r.Float32(&p.MotionZ)
	r.Remaining(&p.Effects)
	return nil
}

// MapIcon is a decoration on a map.
type MapIcon struct {
	Type        int
	X, Z        int8
	Direction   byte // 0-15
	DisplayName *string
}

// MapData updates a map item.
type MapData struct {
	MapID  int
	Scale  int8
	Locked bool
	// Icons is nil when the icons are not updated.
	Icons []MapIcon
	// Columns 0 means no color data follows.
	Columns byte
	Rows    byte
	X, Z    byte
	Colors  []byte
}

func (p *MapData) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.MapID)
	w.Byte(byte(p.Scale))
	w.Bool(p.Locked)
	if w.Bool(p.Icons != nil) {
		w.VarInt(len(p.Icons))
		for _, icon := range p.Icons {
			w.VarInt(icon.Type)
			w.Byte(byte(icon.X))
			w.Byte(byte(icon.Z))
			w.Byte(icon.Direction)
			if w.Bool(icon.DisplayName != nil) {
				w.Text(*icon.DisplayName, c.Protocol)
			}
		}
	}
	w.Byte(p.Columns)
	if p.Columns > 0 {
		w.Byte(p.Rows)
		w.Byte(p.X)
		w.Byte(p.Z)
		w.Bytes(p.Colors)
	}
	return nil
}

func (p *MapData) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.MapID)
	r.Int8(&p.Scale)
	r.Bool(&p.Locked)
	p.Icons = nil
	if r.Ok() {
		p.Icons = make([]MapIcon, r.Count(1024))
		for i := range p.Icons {
			icon := &p.Icons[i]
			r.VarInt(&icon.Type)
			r.Int8(&icon.X)
			r.Int8(&icon.Z)
			r.Byte(&icon.Direction)
			if r.Ok() {
				icon.DisplayName = new(string)
				r.Text(icon.DisplayName, c.Protocol)
			}
		}
	}
	r.Byte(&p.Columns)
	if p.Columns > 0 {
		r.Byte(&p.Rows)
		r.Byte(&p.X)
		r.Byte(&p.Z)
		r.Bytes(&p.Colors)
	}
	return nil
}

// CombatDeath shows the death screen.
type CombatDeath struct {
	PlayerID int
	Message  string
}

func (p *CombatDeath) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.PlayerID)
	w.Text(p.Message, c.Protocol)
	return nil
}

func (p *CombatDeath) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.PlayerID)
	r.Text(&p.Message, c.Protocol)
	return nil
}

// ServerData carries the server description and icon.
type ServerData struct {
	Description        string
	Favicon            []byte // PNG, nil if absent
	SecureChatEnforced bool
}

func (s *ServerData) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Text(s.Description, c.Protocol)
	if w.Bool(s.Favicon != nil) {
		w.Bytes(s.Favicon)
	}
	w.Bool(s.SecureChatEnforced)
	return nil
}

func (s *ServerData) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Text(&s.Description, c.Protocol)
	s.Favicon = nil
	if r.Ok() {
		r.Bytes(&s.Favicon)
	}
	r.Bool(&s.SecureChatEnforced)
	return nil
}

var (
	_ proto.Packet = (*UpdateTime)(nil)
	_ proto.Packet = (*SetHealth)(nil)
	_ proto.Packet = (*SetExperience)(nil)
	_ proto.Packet = (*Explosion)(nil)
	_ proto.Packet = (*MapData)(nil)
	_ proto.Packet = (*CombatDeath)(nil)
	_ proto.Packet = (*ServerData)(nil)
)
