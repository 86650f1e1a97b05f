package component

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// Catalogue maps numeric component type ids of a protocol version
// to component types.
type Catalogue struct {
	Protocols map[proto.Protocol]*ProtocolCatalogue
	names     map[reflect.Type]string
	byName    map[string]reflect.Type
}

// ProtocolCatalogue stores the component ids of one protocol version.
type ProtocolCatalogue struct {
	Protocol proto.Protocol
	IDs      map[int]reflect.Type // Gets component type by id.
	Types    map[reflect.Type]int // Gets id by component type.
}

// Entry describes a registered component of a protocol version.
type Entry struct {
	ID   int
	Name string
	Type reflect.Type
}

// NewCatalogue returns an empty catalogue for the session versions.
func NewCatalogue() *Catalogue {
	c := &Catalogue{
		Protocols: map[proto.Protocol]*ProtocolCatalogue{},
		names:     map[reflect.Type]string{},
		byName:    map[string]reflect.Type{},
	}
	for _, ver := range version.SessionVersions {
		c.Protocols[ver.Protocol] = &ProtocolCatalogue{
			Protocol: ver.Protocol,
			IDs:      map[int]reflect.Type{},
			Types:    map[reflect.Type]int{},
		}
	}
	return c
}

// Mapping assigns a component id starting at a protocol version.
type Mapping struct {
	ID       int
	Protocol proto.Protocol
}

func m(id int, version *proto.Version) *Mapping {
	return &Mapping{ID: id, Protocol: version.Protocol}
}

func typeOf(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Register registers a component type under its identifier.
// Each mapping is valid from its protocol up to the next mapping's protocol.
// Register panics on conflicting registrations and is meant for init time.
func (c *Catalogue) Register(name string, comp Component, mappings ...*Mapping) {
	t := typeOf(comp)
	if _, ok := c.byName[name]; ok {
		panic(fmt.Sprintf("component %q is already registered", name))
	}
	c.names[t] = name
	c.byName[name] = t

	for _, ver := range version.SessionVersions {
		mapping := mappingFor(ver.Protocol, mappings)
		if mapping == nil {
			continue
		}
		pc := c.Protocols[ver.Protocol]
		if other, ok := pc.IDs[mapping.ID]; ok {
			panic(fmt.Sprintf("can not register %s with id %d for protocol %s: taken by %s",
				name, mapping.ID, ver.Protocol, c.names[other]))
		}
		pc.IDs[mapping.ID] = t
		pc.Types[t] = mapping.ID
	}
}

// mappingFor returns the last mapping starting at or before protocol.
func mappingFor(protocol proto.Protocol, mappings []*Mapping) *Mapping {
	var found *Mapping
	for _, mp := range mappings {
		if mp.Protocol > protocol {
			break
		}
		found = mp
	}
	return found
}

func (c *Catalogue) protocol(protocol proto.Protocol) (*ProtocolCatalogue, error) {
	pc, ok := c.Protocols[protocol]
	if !ok {
		return nil, errs.Unsupportedf("no structured components for protocol %s", version.Protocol(protocol))
	}
	return pc, nil
}

// New returns a new zero valued component for the id.
// Unknown ids return an errs.KindUnsupported error.
func (c *Catalogue) New(protocol proto.Protocol, id int) (Component, error) {
	pc, err := c.protocol(protocol)
	if err != nil {
		return nil, err
	}
	t, ok := pc.IDs[id]
	if !ok {
		return nil, errs.Unsupportedf("unsupported component id %d for protocol %s", id, version.Protocol(protocol))
	}
	return reflect.New(t).Interface().(Component), nil
}

// ID returns the id of the component type for the protocol.
func (c *Catalogue) ID(protocol proto.Protocol, comp Component) (int, error) {
	pc, err := c.protocol(protocol)
	if err != nil {
		return 0, err
	}
	id, ok := pc.Types[typeOf(comp)]
	if !ok {
		return 0, errs.Unsupportedf("unsupported component %T for protocol %s", comp, version.Protocol(protocol))
	}
	return id, nil
}

// NameOf returns the identifier comp was registered with, or its Go type name.
func (c *Catalogue) NameOf(comp Component) string {
	if comp == nil {
		return ""
	}
	if name, ok := c.names[typeOf(comp)]; ok {
		return name
	}
	return typeOf(comp).String()
}

// ByName returns a new zero valued component registered under name.
func (c *Catalogue) ByName(name string) (Component, bool) {
	t, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return reflect.New(t).Interface().(Component), true
}

// Names returns all registered identifiers sorted.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the components of a protocol ordered by id.
func (c *Catalogue) Entries(protocol proto.Protocol) ([]Entry, error) {
	pc, err := c.protocol(protocol)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(pc.IDs))
	for id, t := range pc.IDs {
		entries = append(entries, Entry{ID: id, Name: c.names[t], Type: t})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}
