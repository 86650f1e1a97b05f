// Package version contains helpers for working with the Minecraft Java edition versions the client knows.
package version

import (
	"fmt"
	"strconv"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

var (
	Unknown          = &proto.Version{Protocol: -1, Names: s("Unknown")}
	Minecraft_1_8    = &proto.Version{Protocol: 47, Names: s("1.8", "1.8.1", "1.8.2", "1.8.3", "1.8.4", "1.8.5", "1.8.6", "1.8.7", "1.8.8", "1.8.9")}
	Minecraft_1_12_2 = &proto.Version{Protocol: 340, Names: s("1.12.2")}
	Minecraft_1_13   = &proto.Version{Protocol: 393, Names: s("1.13")}
	Minecraft_1_13_2 = &proto.Version{Protocol: 404, Names: s("1.13.2")}
	Minecraft_1_14   = &proto.Version{Protocol: 477, Names: s("1.14")}
	Minecraft_1_16   = &proto.Version{Protocol: 735, Names: s("1.16")}
	Minecraft_1_16_4 = &proto.Version{Protocol: 754, Names: s("1.16.4", "1.16.5")}
	Minecraft_1_17   = &proto.Version{Protocol: 755, Names: s("1.17")}
	Minecraft_1_18_2 = &proto.Version{Protocol: 758, Names: s("1.18.2")}
	Minecraft_1_19   = &proto.Version{Protocol: 759, Names: s("1.19")}
	Minecraft_1_19_3 = &proto.Version{Protocol: 761, Names: s("1.19.3")}
	Minecraft_1_19_4 = &proto.Version{Protocol: 762, Names: s("1.19.4")}
	Minecraft_1_20   = &proto.Version{Protocol: 763, Names: s("1.20", "1.20.1")}
	Minecraft_1_20_2 = &proto.Version{Protocol: 764, Names: s("1.20.2")}
	Minecraft_1_20_3 = &proto.Version{Protocol: 765, Names: s("1.20.3", "1.20.4")}
	Minecraft_1_20_5 = &proto.Version{Protocol: 766, Names: s("1.20.5", "1.20.6")}
	Minecraft_1_21   = &proto.Version{Protocol: 767, Names: s("1.21", "1.21.1")}

	// Versions ordered from lowest to highest
	Versions = []*proto.Version{
		Unknown,
		Minecraft_1_8,
		Minecraft_1_12_2,
		Minecraft_1_13, Minecraft_1_13_2,
		Minecraft_1_14,
		Minecraft_1_16, Minecraft_1_16_4,
		Minecraft_1_17,
		Minecraft_1_18_2,
		Minecraft_1_19, Minecraft_1_19_3, Minecraft_1_19_4,
		Minecraft_1_20, Minecraft_1_20_2, Minecraft_1_20_3, Minecraft_1_20_5,
		Minecraft_1_21,
	}
)

var (
	ProtocolToVersion = func() map[proto.Protocol]*proto.Version {
		m := make(map[proto.Protocol]*proto.Version, len(Versions))
		for _, v := range Versions {
			m[v.Protocol] = v
		}
		return m
	}()
	// SessionVersions are the versions a client session can be opened with.
	// Older versions are only known to the primitive codec.
	SessionVersions = []*proto.Version{Minecraft_1_20_5, Minecraft_1_21}
)

var (
	// MinimumVersion is the lowest version a session supports.
	MinimumVersion = SessionVersions[0]
	// MaximumVersion is the highest version a session supports.
	MaximumVersion = SessionVersions[len(SessionVersions)-1]
	// SupportedVersionsString is the supported versions range as a string.
	SupportedVersionsString = fmt.Sprintf("%s-%s", MinimumVersion, MaximumVersion)
)

// Protocol is proto.Protocol with additional methods for Java edition.
type Protocol proto.Protocol

// Version gets the Version by the protocol id
// or returns the Unknown version if not found.
func (p Protocol) Version() *proto.Version {
	v, ok := ProtocolToVersion[proto.Protocol(p)]
	if !ok {
		v = Unknown
	}
	return v
}

func (p Protocol) String() string {
	v := p.Version()
	if v == Unknown {
		return strconv.Itoa(int(p))
	}
	return fmt.Sprintf("%s(%d)", v.String(), p)
}

// Supported returns true if a session can be opened with the protocol.
func (p Protocol) Supported() bool {
	for _, v := range SessionVersions {
		if v.Protocol == proto.Protocol(p) {
			return true
		}
	}
	return false
}

// Unknown returns true if the protocol is not a known version.
func (p Protocol) Unknown() bool {
	return p.Version() == Unknown
}

// Parse resolves a version name ("1.20.6") or protocol number ("767").
func Parse(s string) (*proto.Version, error) {
	if n, err := strconv.Atoi(s); err == nil {
		v := Protocol(n).Version()
		if v == Unknown {
			return nil, fmt.Errorf("unknown protocol version %d", n)
		}
		return v, nil
	}
	for _, v := range Versions {
		for _, name := range v.Names {
			if name == s {
				return v, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown version %q", s)
}

// helper func
func s(s ...string) []string { return s }
