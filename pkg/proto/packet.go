// Package proto defines the version independent packet model
// shared by the codec, the state registries and the session.
package proto

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

// ErrDecoderLeftBytes marks a packet whose decoder did not consume the whole
// payload. The stream no longer matches the decoder's layout, so the packet
// must not be handled.
var ErrDecoderLeftBytes = errors.New("decoder did not read all bytes of packet")

// Packet is the data layer of one packet type.
// Implementations branch on PacketContext.Protocol to support several layouts.
// The PacketContext must not be modified.
type Packet interface {
	Encode(c *PacketContext, wr io.Writer) error
	Decode(c *PacketContext, rd io.Reader) error
}

// PacketDecoder reads packets from an underlying source.
type PacketDecoder interface {
	Decode() (*PacketContext, error)
}

// PacketContext is a packet read from or about to be written to a connection.
type PacketContext struct {
	Direction Direction
	Protocol  Protocol
	PacketID  PacketID // always set

	// Packet is nil if PacketID is not registered in the current state.
	Packet Packet

	// Payload is the uncompressed packet id and data as received, empty when encoding.
	Payload []byte

	// BytesRead counts the frame bytes read from the connection.
	BytesRead int
}

// KnownPacket reports whether Packet was decoded.
func (c *PacketContext) KnownPacket() bool {
	return c != nil && c.Packet != nil
}

func (c *PacketContext) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s id=%s type=%v known=%t payload=%d",
		c.Direction, c.Protocol, c.PacketID, reflect.TypeOf(c.Packet), c.KnownPacket(), len(c.Payload))
}

// PacketID identifies a packet type within a state and protocol.
type PacketID int

func (id PacketID) String() string {
	return fmt.Sprintf("%#02x", int(id))
}

// Direction is the direction a packet travels.
type Direction uint8

const (
	ClientBound Direction = iota // server to client
	ServerBound                  // client to server
)

func (d Direction) String() string {
	switch d {
	case ClientBound:
		return "ClientBound"
	case ServerBound:
		return "ServerBound"
	}
	return "UnknownBound"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == ServerBound {
		return ClientBound
	}
	return ServerBound
}

// PacketType is the non-pointer reflect.Type of a packet.
type PacketType reflect.Type

// TypeOf returns the non-pointer type of p.
func TypeOf(p Packet) PacketType {
	t := reflect.TypeOf(p)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
