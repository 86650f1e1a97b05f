package util

import (
	"bytes"
	"fmt"
	"io"

	mcnbt "github.com/Tnze/go-mc/nbt"
	"github.com/sandertv/gophertunnel/minecraft/nbt"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// BinaryTag is a network NBT tag kept in its wire form: the root tag type
// and the payload bytes following the (possibly omitted) root name.
// Keeping the raw form makes re-encoding byte identical.
type BinaryTag = mcnbt.RawMessage

// AnonymousNBT reports whether the root tag is sent without a name (1.20.2+).
func AnonymousNBT(protocol proto.Protocol) bool {
	return protocol.GreaterEqual(version.Minecraft_1_20_2)
}

// EmptyTag reports whether t is the empty tag (a single TAG_End on the wire).
func EmptyTag(t BinaryTag) bool {
	return t.Type == mcnbt.TagEnd
}

// ReadBinaryTag reads one NBT tag from rd, consuming exactly its bytes.
//
// A leading TAG_End byte is the empty tag. Before 1.20.2 the root must be
// a named compound, since 1.20.2 the root name is omitted and since 1.20.3
// a root TAG_String is allowed as well.
func ReadBinaryTag(rd io.Reader, protocol proto.Protocol) (BinaryTag, error) {
	br := AsByteScanner(rd)
	typ, err := br.ReadByte()
	if err != nil {
		return BinaryTag{}, errs.Desync("nbt", err)
	}
	switch {
	case typ == mcnbt.TagEnd:
		return BinaryTag{Type: mcnbt.TagEnd}, nil
	case typ == mcnbt.TagCompound:
	case typ == mcnbt.TagString && protocol.GreaterEqual(version.Minecraft_1_20_3):
	default:
		return BinaryTag{}, errs.Desyncf("nbt: invalid root tag type %d for protocol %s", typ, protocol)
	}
	if err = br.UnreadByte(); err != nil {
		return BinaryTag{}, err
	}
	dec := mcnbt.NewDecoder(br)
	dec.NetworkFormat(AnonymousNBT(protocol))
	var t BinaryTag
	if _, err = dec.Decode(&t); err != nil {
		return BinaryTag{}, errs.Desync("nbt", err)
	}
	return t, nil
}

// WriteBinaryTag writes t in the network NBT framing of the protocol.
func WriteBinaryTag(wr io.Writer, protocol proto.Protocol, t BinaryTag) error {
	if t.Type == mcnbt.TagEnd {
		return WriteByte(wr, mcnbt.TagEnd)
	}
	enc := mcnbt.NewEncoder(wr)
	enc.NetworkFormat(AnonymousNBT(protocol))
	return enc.Encode(t, "")
}

// StringTag returns a TAG_String binary tag holding s.
func StringTag(s string) BinaryTag {
	buf := new(bytes.Buffer)
	_ = WriteUTF(buf, s)
	return BinaryTag{Type: mcnbt.TagString, Data: buf.Bytes()}
}

// TagString returns the value of a TAG_String binary tag.
func TagString(t BinaryTag) (string, bool) {
	if t.Type != mcnbt.TagString {
		return "", false
	}
	s, err := ReadUTF(bytes.NewReader(t.Data))
	return s, err == nil
}

// NBT is a named binary tag aka compound binary tag.
type NBT map[string]any

func (b NBT) Bool(name string) (bool, bool) {
	val, ok := b.Uint8(name)
	return val == 1, ok
}

func (b NBT) Uint8(name string) (ret uint8, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.(uint8)
	}
	return
}

func (b NBT) Int16(name string) (ret int16, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.(int16)
	}
	return
}

func (b NBT) Int32(name string) (ret int32, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.(int32)
	}
	return
}

func (b NBT) Int64(name string) (ret int64, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.(int64)
	}
	return
}

func (b NBT) Float32(name string) (ret float32, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.(float32)
	}
	return
}

func (b NBT) Float64(name string) (ret float64, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.(float64)
	}
	return
}

func (b NBT) String(name string) (ret string, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.(string)
	}
	return
}

func (b NBT) NBT(name string) (ret NBT, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.(map[string]any)
		if !ok {
			ret, ok = val.(NBT)
		}
	}
	return
}

func (b NBT) List(name string) (ret []any, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.([]any)
	}
	return
}

func (b NBT) Int32Array(name string) (ret []int32, ok bool) {
	var val any
	if val, ok = b[name]; ok {
		ret, ok = val.([]int32)
	}
	return
}

// TagToNBT converts a compound binary tag to its map view.
// The empty tag converts to a nil map.
func TagToNBT(t BinaryTag) (NBT, error) {
	switch t.Type {
	case mcnbt.TagEnd:
		return nil, nil
	case mcnbt.TagCompound:
	default:
		return nil, fmt.Errorf("nbt: map view needs a compound tag, got type %d", t.Type)
	}
	// the map decoder expects a named root
	rd := io.MultiReader(bytes.NewReader([]byte{t.Type, 0, 0}), bytes.NewReader(t.Data))
	v := NBT{}
	if err := NewNBTDecoder(rd).Decode(&v); err != nil {
		return nil, fmt.Errorf("nbt: %w", err)
	}
	return v, nil
}

// NBTToTag converts a map view to a compound binary tag.
// A nil map converts to the empty tag.
func NBTToTag(n NBT) (BinaryTag, error) {
	if n == nil {
		return BinaryTag{Type: mcnbt.TagEnd}, nil
	}
	buf := new(bytes.Buffer)
	if err := NewNBTEncoder(buf).Encode(map[string]any(n)); err != nil {
		return BinaryTag{}, fmt.Errorf("nbt: %w", err)
	}
	b := buf.Bytes()
	if len(b) < 3 {
		return BinaryTag{}, fmt.Errorf("nbt: encoded compound too short")
	}
	// strip type and empty root name
	return BinaryTag{Type: b[0], Data: b[3:]}, nil
}

// ReadNBT reads a compound tag into its map view.
// An empty tag reads as a nil map.
func ReadNBT(rd io.Reader, protocol proto.Protocol) (NBT, error) {
	t, err := ReadBinaryTag(rd, protocol)
	if err != nil {
		return nil, err
	}
	return TagToNBT(t)
}

// WriteNBT writes the map view as compound tag, nil as the empty tag.
func WriteNBT(wr io.Writer, protocol proto.Protocol, n NBT) error {
	t, err := NBTToTag(n)
	if err != nil {
		return err
	}
	return WriteBinaryTag(wr, protocol, t)
}

func NewNBTDecoder(r io.Reader) *nbt.Decoder {
	return nbt.NewDecoderWithEncoding(r, nbt.BigEndian)
}

func NewNBTEncoder(w io.Writer) *nbt.Encoder {
	return nbt.NewEncoderWithEncoding(w, nbt.BigEndian)
}
