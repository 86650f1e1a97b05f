package component

import (
	"bytes"
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// Slot is an item stack as sent in inventories and item carrying components.
// The zero value is the empty slot.
type Slot struct {
	Count  int
	ItemID int
	// Components are the components added to the item's defaults, in wire order.
	Components []Component
	// Removed are the type ids of default components removed from the item.
	Removed []int

	// NBT is the item tag of the layout before 1.20.5.
	NBT util.BinaryTag
	// Damage is the item damage of the layout before 1.13.
	Damage int16
}

// Empty reports whether the slot holds no item.
func (s *Slot) Empty() bool { return s == nil || s.Count <= 0 }

// Name returns the item identifier from the context's palette, if any.
func (s *Slot) Name(c *Context) string { return c.ItemName(s.ItemID) }

// Get returns the first added component of type T.
func Get[T Component](s *Slot) (T, bool) {
	for _, comp := range s.Components {
		if v, ok := comp.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// ReadSlot reads an item stack in the layout of the context's protocol.
func ReadSlot(c *Context, rd io.Reader) (s Slot, err error) {
	err = util.RecoverFunc(func() error {
		s = readSlot(c, rd)
		return nil
	})
	return
}

// WriteSlot writes an item stack in the layout of the context's protocol.
// Nothing is written if any component fails to encode.
func WriteSlot(c *Context, wr io.Writer, s Slot) error {
	buf := new(bytes.Buffer)
	err := util.RecoverFunc(func() error {
		writeSlot(c, buf, s)
		return nil
	})
	if err != nil {
		return err
	}
	return util.WriteRawBytes(wr, buf.Bytes())
}

func readSlot(c *Context, rd io.Reader) Slot {
	switch {
	case c.Protocol.GreaterEqual(version.Minecraft_1_20_5):
		return readStructuredSlot(c, rd)
	case c.Protocol.GreaterEqual(version.Minecraft_1_13_2):
		r := util.PanicReader(rd)
		var s Slot
		if !r.Ok() {
			return s
		}
		var count byte
		r.VarInt(&s.ItemID)
		r.Byte(&count)
		s.Count = int(int8(count))
		r.BinaryTag(&s.NBT, c.Protocol)
		return s
	default:
		r := util.PanicReader(rd)
		var s Slot
		var id int16
		r.Int16(&id)
		if id == -1 {
			return s
		}
		var count byte
		r.Byte(&count)
		r.Int16(&s.Damage)
		s.ItemID, s.Count = int(id), int(int8(count))
		r.BinaryTag(&s.NBT, c.Protocol)
		return s
	}
}

func readStructuredSlot(c *Context, rd io.Reader) Slot {
	r := util.PanicReader(rd)
	var s Slot
	r.VarInt(&s.Count)
	if s.Count <= 0 {
		return Slot{}
	}
	r.VarInt(&s.ItemID)
	added := r.Count(maxList)
	removed := r.Count(maxList)
	s.Components = make([]Component, added)
	for i := range s.Components {
		comp, err := ReadComponent(c, rd)
		if err != nil {
			panic(errs.Wrap(errs.KindDesync, "slot component", err))
		}
		s.Components[i] = comp
	}
	s.Removed = make([]int, removed)
	for i := range s.Removed {
		r.VarInt(&s.Removed[i])
	}
	return s
}

func writeSlot(c *Context, wr io.Writer, s Slot) {
	w := util.PanicWriter(wr)
	switch {
	case c.Protocol.GreaterEqual(version.Minecraft_1_20_5):
		if s.Empty() {
			w.VarInt(0)
			return
		}
		w.VarInt(s.Count)
		w.VarInt(s.ItemID)
		w.VarInt(len(s.Components))
		w.VarInt(len(s.Removed))
		for _, comp := range s.Components {
			if comp == nil {
				panic(errs.Missing("slot component"))
			}
			if err := WriteComponent(c, wr, comp); err != nil {
				panic(err)
			}
		}
		for _, id := range s.Removed {
			w.VarInt(id)
		}
	case c.Protocol.GreaterEqual(version.Minecraft_1_13_2):
		if !w.Bool(!s.Empty()) {
			return
		}
		w.VarInt(s.ItemID)
		w.Byte(byte(s.Count))
		w.BinaryTag(s.NBT, c.Protocol)
	default:
		if s.Empty() {
			w.Int16(-1)
			return
		}
		w.Int16(int16(s.ItemID))
		w.Byte(byte(s.Count))
		w.Int16(s.Damage)
		w.BinaryTag(s.NBT, c.Protocol)
	}
}

// readOptionalSlot reads a presence flag and a slot.
func readOptionalSlot(c *Context, rd io.Reader) *Slot {
	if !util.PanicReader(rd).Ok() {
		return nil
	}
	s := readSlot(c, rd)
	return &s
}

// ItemList is a list of item stacks shared by item carrying components.
type ItemList struct {
	Count int // declared count, 0 derives it from Items
	Items []Slot
}

func (l *ItemList) Decode(c *Context, rd io.Reader) error {
	r := util.PanicReader(rd)
	l.Count = r.Count(maxList)
	l.Items = make([]Slot, l.Count)
	for i := range l.Items {
		l.Items[i] = readSlot(c, rd)
	}
	return nil
}

func (l *ItemList) Encode(c *Context, wr io.Writer) error {
	util.PanicWriter(wr).VarInt(countOf("items", l.Count, len(l.Items)))
	for _, s := range l.Items {
		writeSlot(c, wr, s)
	}
	return nil
}
