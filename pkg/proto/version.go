package proto

import (
	"strconv"
)

// Protocol is the protocol number of a game release.
type Protocol int

func (p Protocol) String() string { return strconv.Itoa(int(p)) }

// GreaterEqual reports whether p is v or newer.
func (p Protocol) GreaterEqual(v *Version) bool { return p >= v.Protocol }

// Lower reports whether p is older than v.
func (p Protocol) Lower(v *Version) bool { return p < v.Protocol }

// Version is a protocol number and the release names sharing it.
type Version struct {
	Protocol
	Names []string // at least one
}

// FirstName returns the release that introduced the protocol.
func (v *Version) FirstName() string {
	if len(v.Names) == 0 {
		return ""
	}
	return v.Names[0]
}

// LastName returns the newest release speaking the protocol.
func (v *Version) LastName() string {
	if len(v.Names) == 0 {
		return ""
	}
	return v.Names[len(v.Names)-1]
}

// String returns the name, or "first-last" for protocols shared by several releases.
func (v Version) String() string {
	if len(v.Names) > 1 {
		return v.FirstName() + "-" + v.LastName()
	}
	return v.FirstName()
}
