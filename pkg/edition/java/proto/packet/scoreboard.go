package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// Number format types of scoreboard values.
const (
	NumberFormatBlank = iota
	NumberFormatStyled
	NumberFormatFixed
)

// NumberFormat controls how score values are displayed.
type NumberFormat struct {
	Type  int
	Style util.BinaryTag // NumberFormatStyled
	Fixed string         // NumberFormatFixed
}

func writeNumberFormat(c *proto.PacketContext, w *util.PWriter, f *NumberFormat) {
	if !w.Bool(f != nil) {
		return
	}
	w.VarInt(f.Type)
	switch f.Type {
	case NumberFormatBlank:
	case NumberFormatStyled:
		w.BinaryTag(f.Style, c.Protocol)
	case NumberFormatFixed:
		w.Text(f.Fixed, c.Protocol)
	default:
		panic(errs.Unsupportedf("number format %d", f.Type))
	}
}

func readNumberFormat(c *proto.PacketContext, r *util.PReader) *NumberFormat {
	if !r.Ok() {
		return nil
	}
	f := new(NumberFormat)
	r.VarInt(&f.Type)
	switch f.Type {
	case NumberFormatBlank:
	case NumberFormatStyled:
		r.BinaryTag(&f.Style, c.Protocol)
	case NumberFormatFixed:
		r.Text(&f.Fixed, c.Protocol)
	default:
		panic(errs.Unsupportedf("number format %d", f.Type))
	}
	return f
}

// Objective modes.
const (
	ObjectiveCreate = 0
	ObjectiveRemove = 1
	ObjectiveUpdate = 2
)

// Objective render types.
const (
	RenderInteger = 0
	RenderHearts  = 1
)

// UpdateObjectives creates, removes or updates a scoreboard objective.
type UpdateObjectives struct {
	Name   string
	Mode   byte
	Value  string // display text, not sent for ObjectiveRemove
	Type   int
	Format *NumberFormat // nil-able
}

func (p *UpdateObjectives) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.String(p.Name)
	w.Byte(p.Mode)
	if p.Mode == ObjectiveCreate || p.Mode == ObjectiveUpdate {
		w.Text(p.Value, c.Protocol)
		w.VarInt(p.Type)
		writeNumberFormat(c, w, p.Format)
	}
	return nil
}

func (p *UpdateObjectives) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.String(&p.Name)
	r.Byte(&p.Mode)
	if p.Mode == ObjectiveCreate || p.Mode == ObjectiveUpdate {
		r.Text(&p.Value, c.Protocol)
		r.VarInt(&p.Type)
		p.Format = readNumberFormat(c, r)
	}
	return nil
}

// UpdateScore sets the score of an entity for an objective.
type UpdateScore struct {
	EntityName  string
	Objective   string
	Value       int
	DisplayName *string       // nil-able
	Format      *NumberFormat // nil-able
}

func (p *UpdateScore) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.String(p.EntityName)
	w.String(p.Objective)
	w.VarInt(p.Value)
	if w.Bool(p.DisplayName != nil) {
		w.Text(*p.DisplayName, c.Protocol)
	}
	writeNumberFormat(c, w, p.Format)
	return nil
}

func (p *UpdateScore) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.String(&p.EntityName)
	r.String(&p.Objective)
	r.VarInt(&p.Value)
	p.DisplayName = nil
	if r.Ok() {
		p.DisplayName = new(string)
		r.Text(p.DisplayName, c.Protocol)
	}
	p.Format = readNumberFormat(c, r)
	return nil
}

var (
	_ proto.Packet = (*UpdateObjectives)(nil)
	_ proto.Packet = (*UpdateScore)(nil)
)
