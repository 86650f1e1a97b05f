package state

import (
	"fmt"
	"reflect"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Registry holds the packets of one connection state in both directions.
type Registry struct {
	proto.State
	ServerBound *PacketRegistry
	ClientBound *PacketRegistry
}

func NewRegistry(state proto.State) *Registry {
	return &Registry{
		State:       state,
		ServerBound: NewPacketRegistry(proto.ServerBound),
		ClientBound: NewPacketRegistry(proto.ClientBound),
	}
}

// FromDirection returns the packets of state bound to direction,
// nil if protocol is not a session version.
func FromDirection(direction proto.Direction, state *Registry, protocol proto.Protocol) *ProtocolRegistry {
	if direction == proto.ServerBound {
		return state.ServerBound.ProtocolRegistry(protocol)
	}
	return state.ClientBound.ProtocolRegistry(protocol)
}

// PacketRegistry holds the packets of one direction for every session version.
type PacketRegistry struct {
	Direction proto.Direction
	protocols map[proto.Protocol]*ProtocolRegistry
}

func NewPacketRegistry(direction proto.Direction) *PacketRegistry {
	r := &PacketRegistry{
		Direction: direction,
		protocols: make(map[proto.Protocol]*ProtocolRegistry, len(version.SessionVersions)),
	}
	for _, ver := range version.SessionVersions {
		r.protocols[ver.Protocol] = &ProtocolRegistry{
			Protocol: ver.Protocol,
			types:    map[proto.PacketID]proto.PacketType{},
			ids:      map[proto.PacketType]proto.PacketID{},
		}
	}
	return r
}

// ProtocolRegistry returns nil if protocol is not a session version.
func (r *PacketRegistry) ProtocolRegistry(protocol proto.Protocol) *ProtocolRegistry {
	return r.protocols[protocol]
}

// PacketMapping is the id of a packet from Protocol on.
type PacketMapping struct {
	ID       proto.PacketID
	Protocol proto.Protocol
}

func m(id proto.PacketID, since *proto.Version) *PacketMapping {
	return &PacketMapping{ID: id, Protocol: since.Protocol}
}

// Register maps the type of packet to ids. Mappings must be ordered by
// version, each one is in effect until the next one starts.
// It panics on unordered mappings and on id or type conflicts.
func (r *PacketRegistry) Register(packet proto.Packet, mappings ...*PacketMapping) {
	for i := 1; i < len(mappings); i++ {
		if mappings[i].Protocol <= mappings[i-1].Protocol {
			panic(fmt.Sprintf("mappings of %T not ordered: %s after %s",
				packet, mappings[i].Protocol, mappings[i-1].Protocol))
		}
	}
	typ := proto.TypeOf(packet)
	for protocol, reg := range r.protocols {
		var mapping *PacketMapping
		for _, mp := range mappings {
			if mp.Protocol <= protocol {
				mapping = mp
			}
		}
		if mapping == nil {
			continue
		}
		if other, ok := reg.types[mapping.ID]; ok {
			panic(fmt.Sprintf("%s id %s of protocol %s is taken by %s, can not register %T",
				r.Direction, mapping.ID, protocol, other, packet))
		}
		if _, ok := reg.ids[typ]; ok {
			panic(fmt.Sprintf("%T is already registered for protocol %s", packet, protocol))
		}
		reg.types[mapping.ID] = typ
		reg.ids[typ] = mapping.ID
	}
}

// ProtocolRegistry maps packet ids and types of one protocol version.
type ProtocolRegistry struct {
	Protocol proto.Protocol
	types    map[proto.PacketID]proto.PacketType
	ids      map[proto.PacketType]proto.PacketID
}

// PacketID returns the id registered for the type of p.
func (r *ProtocolRegistry) PacketID(p proto.Packet) (proto.PacketID, bool) {
	id, ok := r.ids[proto.TypeOf(p)]
	return id, ok
}

// CreatePacket returns a new zero packet of the type registered for id, or nil.
func (r *ProtocolRegistry) CreatePacket(id proto.PacketID) proto.Packet {
	typ, ok := r.types[id]
	if !ok {
		return nil
	}
	p, _ := reflect.New(typ).Interface().(proto.Packet)
	return p
}
