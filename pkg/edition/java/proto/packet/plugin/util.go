package plugin

import (
	"bytes"
	"strings"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
)

const (
	BrandChannel      = "minecraft:brand"
	RegisterChannel   = "minecraft:register"
	UnregisterChannel = "minecraft:unregister"
)

// McBrand determines whether this is a brand plugin message.
func McBrand(p *Message) bool {
	return p != nil && strings.EqualFold(p.Channel, BrandChannel)
}

// IsRegister determines whether this plugin
// message is being used to register plugin channels.
func IsRegister(p *Message) bool {
	return p != nil && strings.EqualFold(p.Channel, RegisterChannel)
}

// IsUnregister determines whether this plugin
// message is being used to unregister plugin channels.
func IsUnregister(p *Message) bool {
	return p != nil && strings.EqualFold(p.Channel, UnregisterChannel)
}

// Channels fetches all the channels in a register or unregister plugin message.
func Channels(p *Message) (channels []string) {
	if p == nil || len(p.Data) == 0 || (!IsRegister(p) && !IsUnregister(p)) {
		return
	}
	return strings.Split(string(p.Data), "\000") // split null-terminated
}

// ConstructChannelsPacket constructs a channel register packet.
// channels must not be empty!
func ConstructChannelsPacket(channels ...string) *Message {
	if len(channels) == 0 {
		panic("channels must not be empty")
	}
	return &Message{
		Channel: RegisterChannel,
		Data:    []byte(strings.Join(channels, "\000")),
	}
}

// BrandMessage returns the brand plugin message announcing brand.
func BrandMessage(brand string) *Message {
	buf := new(bytes.Buffer)
	_ = util.WriteString(buf, brand)
	return &Message{Channel: BrandChannel, Data: buf.Bytes()}
}

// ReadBrand returns the brand of a brand plugin message.
// Malformed messages without length prefix are read as raw string.
func ReadBrand(p *Message) string {
	s, err := util.ReadString(bytes.NewReader(p.Data))
	if err != nil {
		return string(p.Data)
	}
	return s
}
