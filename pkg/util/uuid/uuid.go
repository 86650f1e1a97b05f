// Package uuid is the player and entity id type of the protocol.
package uuid

import (
	"crypto/md5"

	guuid "github.com/google/uuid"
)

// UUID is sent as two big endian longs on the wire.
type UUID guuid.UUID

// Nil is the zero UUID, used for system chat senders.
var Nil = UUID(guuid.Nil)

func (i UUID) String() string { return guuid.UUID(i).String() }

func (i UUID) MarshalText() ([]byte, error) { return guuid.UUID(i).MarshalText() }

func (i *UUID) UnmarshalText(b []byte) error {
	return (*guuid.UUID)(i).UnmarshalText(b)
}

// Parse accepts the dashed, undashed, urn and braced forms.
func Parse(s string) (UUID, error) {
	id, err := guuid.Parse(s)
	return UUID(id), err
}

func ParseBytes(b []byte) (UUID, error) {
	id, err := guuid.ParseBytes(b)
	return UUID(id), err
}

// FromBytes copies 16 raw bytes.
func FromBytes(b []byte) (UUID, error) {
	id, err := guuid.FromBytes(b)
	return UUID(id), err
}

// OfflinePlayerUUID is the name based v3 id offline mode servers assign to username.
func OfflinePlayerUUID(username string) UUID {
	id := md5.Sum([]byte("OfflinePlayer:" + username))
	id[6] = id[6]&0x0f | 0x30
	id[8] = id[8]&0x3f | 0x80
	return id
}

// New returns a random id or panics.
func New() UUID { return UUID(guuid.New()) }
