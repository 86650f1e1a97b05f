package component

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// IDSet is a set of registry entries, given either as a tag or as a list of ids.
type IDSet struct {
	Tag *string // tag identifier, nil when IDs are listed
	IDs []int
}

func (s *IDSet) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	typ := r.VarIntVal()
	if typ == 0 {
		var tag string
		r.Identifier(&tag)
		s.Tag, s.IDs = &tag, nil
		return nil
	}
	if typ < 0 || typ-1 > maxList {
		return errs.Desyncf("id set length %d out of range", typ-1)
	}
	s.Tag = nil
	s.IDs = make([]int, typ-1)
	for i := range s.IDs {
		r.VarInt(&s.IDs[i])
	}
	return nil
}

func (s *IDSet) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if s.Tag != nil {
		w.VarInt(0)
		w.String(*s.Tag)
		return nil
	}
	w.VarInt(len(s.IDs) + 1)
	for _, id := range s.IDs {
		w.VarInt(id)
	}
	return nil
}

// BlockProperty matches a block state property by exact value or by range.
type BlockProperty struct {
	Name  string
	Exact bool
	Value string // if Exact
	Min   string // if not Exact
	Max   string // if not Exact
}

func (p *BlockProperty) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.String(&p.Name)
	r.Bool(&p.Exact)
	if p.Exact {
		r.String(&p.Value)
	} else {
		r.String(&p.Min)
		r.String(&p.Max)
	}
	return nil
}

func (p *BlockProperty) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.String(p.Name)
	if w.Bool(p.Exact) {
		w.String(p.Value)
	} else {
		w.String(p.Min)
		w.String(p.Max)
	}
	return nil
}

// BlockPredicate matches blocks for adventure mode placing and breaking.
type BlockPredicate struct {
	Blocks        *IDSet // nil matches any block
	HasProperties bool
	Properties    []*BlockProperty
	NBT           *util.BinaryTag // nil matches any block entity data
}

func (p *BlockPredicate) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.Blocks = nil
	if r.Ok() {
		p.Blocks = readSub[*IDSet](c, SubIDSet, rd)
	}
	r.Bool(&p.HasProperties)
	p.Properties = nil
	if p.HasProperties {
		n := r.Count(maxList)
		p.Properties = make([]*BlockProperty, n)
		for i := range p.Properties {
			p.Properties[i] = readSub[*BlockProperty](c, SubProperty, rd)
		}
	}
	p.NBT = nil
	if r.Ok() {
		var tag util.BinaryTag
		r.BinaryTag(&tag, c.Protocol)
		p.NBT = &tag
	}
	return nil
}

func (p *BlockPredicate) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if w.Bool(p.Blocks != nil) {
		writeSub(c, wr, "blocks", p.Blocks)
	}
	if w.Bool(p.HasProperties) {
		w.VarInt(len(p.Properties))
		for _, prop := range p.Properties {
			writeSub(c, wr, "properties", prop)
		}
	}
	if w.Bool(p.NBT != nil) {
		w.BinaryTag(*p.NBT, c.Protocol)
	}
	return nil
}

// BlockStateProperty is a name value pair of a block state.
type BlockStateProperty struct {
	Name  string
	Value string
}

func (p *BlockStateProperty) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.String(&p.Name)
	r.String(&p.Value)
	return nil
}

func (p *BlockStateProperty) Encode(c *Context, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.String(p.Name)
	w.String(p.Value)
	return nil
}

// Rule is a tool rule overriding mining speed and drops for a set of blocks.
type Rule struct {
	Blocks         *IDSet
	HasSpeed       bool
	Speed          *float32
	HasCorrectDrop bool
	CorrectDrop    *bool
}

func (ru *Rule) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	ru.Blocks = readSub[*IDSet](c, SubIDSet, rd)
	ru.Speed, ru.CorrectDrop = nil, nil
	r.Bool(&ru.HasSpeed)
	if ru.HasSpeed {
		var speed float32
		r.Float32(&speed)
		ru.Speed = &speed
	}
	r.Bool(&ru.HasCorrectDrop)
	if ru.HasCorrectDrop {
		var drop bool
		r.Bool(&drop)
		ru.CorrectDrop = &drop
	}
	return nil
}

func (ru *Rule) Encode(c *Context, wr io.Writer) error {
	mustHave("rule.speed", ru.HasSpeed, ru.Speed)
	mustHave("rule.correct_drop", ru.HasCorrectDrop, ru.CorrectDrop)
	w := util.PanicWriter(wr)
	writeSub(c, wr, "rule.blocks", ru.Blocks)
	if w.Bool(ru.HasSpeed) {
		w.Float32(*ru.Speed)
	}
	if w.Bool(ru.HasCorrectDrop) {
		w.Bool(*ru.CorrectDrop)
	}
	return nil
}
