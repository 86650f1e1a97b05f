package chat

import (
	"encoding/json"
	"fmt"
	"io"

	"go.minekube.com/common/minecraft/component"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/nbtconv"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// FromComponent returns a holder for comp.
func FromComponent(comp component.Component) *ComponentHolder {
	if comp == nil {
		return nil
	}
	return &ComponentHolder{Component: comp}
}

// FromText returns a holder for unstyled text.
func FromText(s string) *ComponentHolder {
	return FromComponent(&component.Text{Content: s})
}

// ComponentHolder holds a text component in the form it was received in
// (JSON before 1.20.3, NBT since) and converts it on demand.
// Writing a received holder back reproduces its bytes.
//
// The zero value is the empty component.
type ComponentHolder struct {
	Protocol  proto.Protocol
	Component component.Component
	JSON      json.RawMessage
	BinaryTag util.BinaryTag
}

// ReadComponentHolder reads a ComponentHolder from the provided reader.
func ReadComponentHolder(rd io.Reader, protocol proto.Protocol) (*ComponentHolder, error) {
	var c ComponentHolder
	err := c.read(rd, protocol)
	return &c, err
}

func (c *ComponentHolder) read(rd io.Reader, protocol proto.Protocol) (err error) {
	c.Protocol = protocol
	if protocol.GreaterEqual(version.Minecraft_1_20_3) {
		c.BinaryTag, err = util.ReadBinaryTag(rd, protocol)
		return err
	}
	j, err := util.ReadStringMax(rd, util.MaxTextLength)
	c.JSON = json.RawMessage(j)
	return err
}

// Write writes the component holder to the writer.
func (c *ComponentHolder) Write(wr io.Writer, protocol proto.Protocol) error {
	if protocol.GreaterEqual(version.Minecraft_1_20_3) {
		bt, err := c.AsBinaryTag()
		if err != nil {
			return err
		}
		return util.WriteBinaryTag(wr, protocol, bt)
	}
	j, err := c.AsJson()
	if err != nil {
		return err
	}
	return util.WriteString(wr, string(j))
}

// received reports whether c only holds the NBT it was read as.
func (c *ComponentHolder) received() bool {
	return c.Component == nil && len(c.JSON) == 0
}

// AsComponent returns the component as a component.Component.
func (c *ComponentHolder) AsComponent() (component.Component, error) {
	switch {
	case c.Component != nil:
		return c.Component, nil
	case len(c.JSON) != 0:
		var err error
		c.Component, err = util.JsonCodec(c.Protocol).Unmarshal(c.JSON)
		return c.Component, err
	case util.EmptyTag(c.BinaryTag):
		return &component.Text{}, nil
	}
	if s, ok := util.TagString(c.BinaryTag); ok {
		c.Component = &component.Text{Content: s}
		return c.Component, nil
	}
	j, err := nbtconv.BinaryTagToJSON(&c.BinaryTag)
	if err != nil {
		return nil, fmt.Errorf("error while marshalling binaryTag to JSON: %w", err)
	}
	c.JSON = j
	c.Component, err = util.JsonCodec(c.Protocol).Unmarshal(c.JSON)
	return c.Component, err
}

// AsJson returns the component as a JSON raw message.
func (c *ComponentHolder) AsJson() (json.RawMessage, error) {
	if len(c.JSON) != 0 {
		return c.JSON, nil
	}
	comp, err := c.AsComponent()
	if err != nil {
		return nil, err
	}
	c.JSON, err = util.Marshal(c.Protocol, comp)
	return c.JSON, err
}

// AsBinaryTag returns the component as network NBT.
func (c *ComponentHolder) AsBinaryTag() (util.BinaryTag, error) {
	if c.received() {
		return c.BinaryTag, nil
	}
	j, err := c.AsJson()
	if err != nil {
		return util.BinaryTag{}, err
	}
	return nbtconv.JsonToBinaryTag(j)
}

// Legacy returns the display text with § formatting codes, filling
// translations from tr. Text that is not a valid component is returned raw.
func (c *ComponentHolder) Legacy(tr util.Translations) string {
	if c == nil {
		return ""
	}
	if c.received() {
		if s, ok := util.TagString(c.BinaryTag); ok {
			return s
		}
	}
	comp, err := c.AsComponent()
	if err != nil {
		return string(c.JSON)
	}
	s, err := util.MarshalLegacy(comp, tr)
	if err != nil {
		return string(c.JSON)
	}
	return s
}

// String returns the display text without formatting.
func (c *ComponentHolder) String() string {
	return util.StripLegacy(c.Legacy(util.DefaultTranslations))
}

func readHolder(c *proto.PacketContext, rd io.Reader) ComponentHolder {
	h, err := ReadComponentHolder(rd, c.Protocol)
	if err != nil {
		panic(err)
	}
	return *h
}

func readOptionalHolder(c *proto.PacketContext, r *util.PReader) *ComponentHolder {
	if !r.Ok() {
		return nil
	}
	h := readHolder(c, r.Reader())
	return &h
}

func writeHolder(c *proto.PacketContext, wr io.Writer, h *ComponentHolder) {
	if err := h.Write(wr, c.Protocol); err != nil {
		panic(err)
	}
}
