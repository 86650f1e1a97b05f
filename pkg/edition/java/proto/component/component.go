// Package component implements the item data components (structured components)
// Minecraft Java edition sends inside item stacks since 1.20.5.
//
// A component is decoded and encoded with a Context carrying the protocol
// version. Components and subcomponents follow the packet convention of this
// module: Decode and Encode may panic with an error, which the package level
// functions (Marshal, Unmarshal, ReadComponent, WriteComponent, ReadSlot,
// WriteSlot, SubRegistry.Parse) recover into a returned error.
package component

import (
	"bytes"
	"fmt"
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// maxList bounds list lengths read from the wire.
const maxList = 1 << 16

// Component is a structured item data component.
type Component interface {
	// Decode reads the component payload.
	Decode(c *Context, rd io.Reader) error
	// Encode writes the component payload.
	Encode(c *Context, wr io.Writer) error
}

// SubComponent is a value nested inside a component payload,
// resolved through a SubRegistry.
type SubComponent interface {
	Decode(c *Context, rd io.Reader) error
	Encode(c *Context, wr io.Writer) error
}

// ItemPalette resolves numeric item ids to item identifiers.
type ItemPalette interface {
	ItemName(id int) (name string, ok bool)
}

// StaticPalette is an ItemPalette backed by a map.
type StaticPalette map[int]string

func (p StaticPalette) ItemName(id int) (string, bool) {
	name, ok := p[id]
	return name, ok
}

// Context is passed to every component and subcomponent codec call.
type Context struct {
	Protocol proto.Protocol
	// Items is optional and only used to name items.
	Items ItemPalette
	// Subs defaults to Subcomponents.
	Subs *SubRegistry
	// Catalogue defaults to Components.
	Catalogue *Catalogue
}

// NewContext returns a Context using the default registries.
func NewContext(protocol proto.Protocol) *Context {
	return &Context{Protocol: protocol}
}

func (c *Context) subs() *SubRegistry {
	if c.Subs != nil {
		return c.Subs
	}
	return Subcomponents
}

func (c *Context) catalogue() *Catalogue {
	if c.Catalogue != nil {
		return c.Catalogue
	}
	return Components
}

// ItemName returns the identifier of an item id or "" if unknown.
func (c *Context) ItemName(id int) string {
	if c.Items == nil {
		return ""
	}
	name, _ := c.Items.ItemName(id)
	return name
}

// Marshal returns the payload bytes of comp.
// Nothing is returned if any field fails to encode.
func Marshal(c *Context, comp Component) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := util.RecoverFunc(func() error {
		return comp.Encode(c, buf)
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the payload of the component with the type id.
// All of data must be consumed.
func Unmarshal(c *Context, id int, data []byte) (Component, error) {
	cur := util.NewCursor(data)
	comp, err := decodeByID(c, id, cur)
	if err != nil {
		return nil, err
	}
	if err = cur.ExpectEnd(); err != nil {
		return nil, errs.Wrap(errs.KindDesync, c.catalogue().NameOf(comp), err)
	}
	return comp, nil
}

// ReadComponent reads a component type id followed by the component payload.
func ReadComponent(c *Context, rd io.Reader) (Component, error) {
	id, err := util.ReadVarInt(rd)
	if err != nil {
		return nil, err
	}
	return decodeByID(c, id, rd)
}

func decodeByID(c *Context, id int, rd io.Reader) (Component, error) {
	comp, err := c.catalogue().New(c.Protocol, id)
	if err != nil {
		return nil, err
	}
	err = util.RecoverFunc(func() error {
		return comp.Decode(c, rd)
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindDesync, c.catalogue().NameOf(comp), err)
	}
	return comp, nil
}

// WriteComponent writes the type id of comp followed by its payload.
// The payload is encoded before anything is written to wr.
func WriteComponent(c *Context, wr io.Writer, comp Component) error {
	id, err := c.catalogue().ID(c.Protocol, comp)
	if err != nil {
		return err
	}
	payload, err := Marshal(c, comp)
	if err != nil {
		return errs.Wrap(errs.KindDesync, c.catalogue().NameOf(comp), err)
	}
	if err = util.WriteVarInt(wr, id); err != nil {
		return err
	}
	return util.WriteRawBytes(wr, payload)
}

// countOf returns the count to write for a list of n records.
// A declared count of 0 means the count is taken from the list.
func countOf(field string, declared, n int) int {
	if declared != 0 && declared != n {
		panic(&errs.Error{Kind: errs.KindDesync, Op: field,
			Err: countMismatch{declared: declared, actual: n}})
	}
	return n
}

type countMismatch struct{ declared, actual int }

func (e countMismatch) Error() string {
	return fmt.Sprintf("count mismatch: declared %d but list has %d", e.declared, e.actual)
}

// mustHave panics with a missing field error if a set presence
// flag has no backing value.
func mustHave[T any](field string, has bool, v *T) {
	if has && v == nil {
		panic(errs.Missing(field))
	}
}
