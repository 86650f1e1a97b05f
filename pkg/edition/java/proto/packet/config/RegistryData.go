package config

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// RegistryData carries the entries of one synchronized registry.
type RegistryData struct {
	RegistryID string
	Entries    []RegistryEntry
}

// RegistryEntry is a registry entry. Entries of known packs have no data.
type RegistryEntry struct {
	ID      string
	HasData bool
	Data    util.BinaryTag
}

var _ proto.Packet = (*RegistryData)(nil)

func (p *RegistryData) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.String(p.RegistryID)
	w.VarInt(len(p.Entries))
	for _, e := range p.Entries {
		w.String(e.ID)
		if w.Bool(e.HasData) {
			w.BinaryTag(e.Data, c.Protocol)
		}
	}
	return nil
}

func (p *RegistryData) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Identifier(&p.RegistryID)
	p.Entries = make([]RegistryEntry, r.Count(1<<16))
	for i := range p.Entries {
		e := &p.Entries[i]
		r.Identifier(&e.ID)
		r.Bool(&e.HasData)
		if e.HasData {
			r.BinaryTag(&e.Data, c.Protocol)
		}
	}
	return nil
}
