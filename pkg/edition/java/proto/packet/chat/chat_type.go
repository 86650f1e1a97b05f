package chat

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Decoration formats a chat message from translation parameters.
type Decoration struct {
	TranslationKey string
	Parameters     []int // 0 sender, 1 target, 2 content
	Style          util.BinaryTag
}

// ChatType is an inline chat type definition.
type ChatType struct {
	Chat      Decoration
	Narration Decoration
}

// ChatTypeHolder references a chat type by registry id or inline.
type ChatTypeHolder struct {
	ID     int       // used if Inline is nil
	Inline *ChatType
}

func (d *Decoration) read(c *proto.PacketContext, r *util.PReader) {
	r.String(&d.TranslationKey)
	d.Parameters = make([]int, r.Count(8))
	for i := range d.Parameters {
		r.VarInt(&d.Parameters[i])
	}
	r.BinaryTag(&d.Style, c.Protocol)
}

func (d *Decoration) write(c *proto.PacketContext, w *util.PWriter) {
	w.String(d.TranslationKey)
	w.VarInt(len(d.Parameters))
	for _, p := range d.Parameters {
		w.VarInt(p)
	}
	w.BinaryTag(d.Style, c.Protocol)
}

func (h *ChatTypeHolder) read(c *proto.PacketContext, rd io.Reader) {
	r := util.PanicReader(rd)
	h.ID, h.Inline = 0, nil
	if id := r.VarIntVal(); id != 0 {
		h.ID = id - 1
		return
	}
	h.Inline = new(ChatType)
	h.Inline.Chat.read(c, r)
	h.Inline.Narration.read(c, r)
}

func (h *ChatTypeHolder) write(c *proto.PacketContext, wr io.Writer) {
	w := util.PanicWriter(wr)
	if h.Inline == nil {
		w.VarInt(h.ID + 1)
		return
	}
	w.VarInt(0)
	h.Inline.Chat.write(c, w)
	h.Inline.Narration.write(c, w)
}
