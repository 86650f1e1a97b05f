package util

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// PReader reads wire types and panics on error.
// Pair it with Recover or RecoverFunc at the decode boundary.
type PReader struct {
	r io.Reader
}

func PanicReader(r io.Reader) *PReader {
	return &PReader{r}
}

// Reader returns the underlying reader.
func (r *PReader) Reader() io.Reader { return r.r }

func (r *PReader) VarInt(i *int) {
	PVarInt(r.r, i)
}

func (r *PReader) VarIntVal() int {
	var i int
	PVarInt(r.r, &i)
	return i
}

func (r *PReader) VarLong(i *int64) {
	v, err := ReadVarLong(r.r)
	if err != nil {
		panic(err)
	}
	*i = v
}

// Count reads a VarInt list length and checks it against max (0 = unbounded).
func (r *PReader) Count(max int) int {
	n := r.VarIntVal()
	if n < 0 || (max > 0 && n > max) {
		panic(errs.Desyncf("list length %d out of range (max %d)", n, max))
	}
	return n
}

func (r *PReader) String(s *string) {
	PReadString(r.r, s)
}

func (r *PReader) StringMax(s *string, max int) {
	PReadStringMax(r.r, s, max)
}

func (r *PReader) Identifier(s *string) {
	PReadStringMax(r.r, s, DefaultIdentifierMax)
}

func (r *PReader) Uint8(i *uint8) {
	PReadUint8(r.r, i)
}

func (r *PReader) Byte(b *byte) {
	PReadByte(r.r, b)
}

func (r *PReader) Int8(i *int8) {
	var b byte
	PReadByte(r.r, &b)
	*i = int8(b)
}

func (r *PReader) Int16(i *int16) {
	v, err := ReadInt16(r.r)
	if err != nil {
		panic(err)
	}
	*i = v
}

func (r *PReader) Uint16(i *uint16) {
	v, err := ReadUint16(r.r)
	if err != nil {
		panic(err)
	}
	*i = v
}

func (r *PReader) Bytes(b *[]byte) {
	PReadBytes(r.r, b)
}

func (r *PReader) Bool(b *bool) {
	PReadBool(r.r, b)
}

func (r *PReader) Ok() bool {
	var ok bool
	PReadBool(r.r, &ok)
	return ok
}

func (r *PReader) Int32(i *int32) {
	v, err := ReadInt32(r.r)
	if err != nil {
		panic(err)
	}
	*i = v
}

func (r *PReader) Int64(i *int64) {
	PReadInt64(r.r, i)
}

func (r *PReader) Int(i *int) {
	PReadInt(r.r, i)
}

func (r *PReader) Strings(i *[]string) {
	PReadStrings(r.r, i)
}

func (r *PReader) Float32(f *float32) {
	PReadFloat32(r.r, f)
}

func (r *PReader) Float64(f *float64) {
	v, err := ReadFloat64(r.r)
	if err != nil {
		panic(err)
	}
	*f = v
}

func (r *PReader) UUID(id *uuid.UUID) {
	v, err := ReadUUID(r.r)
	if err != nil {
		panic(err)
	}
	*id = v
}

func (r *PReader) VarIntArray(a *[]int) {
	v, err := ReadVarIntArray(r.r)
	if err != nil {
		panic(err)
	}
	*a = v
}

func (r *PReader) Int32Array(a *[]int32) {
	v, err := ReadInt32Array(r.r)
	if err != nil {
		panic(err)
	}
	*a = v
}

// Remaining reads all bytes left in the reader.
func (r *PReader) Remaining(b *[]byte) {
	v, err := ReadRemaining(r.r)
	if err != nil {
		panic(err)
	}
	*b = v
}

func PReadStrings(r io.Reader, i *[]string) {
	v, err := ReadStringArray(r)
	if err != nil {
		panic(err)
	}
	*i = v
}

func PReadInt(r io.Reader, i *int) {
	v, err := ReadInt(r)
	if err != nil {
		panic(err)
	}
	*i = v
}

func PReadInt64(r io.Reader, i *int64) {
	v, err := ReadInt64(r)
	if err != nil {
		panic(err)
	}
	*i = v
}

func PReadBool(r io.Reader, b *bool) {
	v, err := ReadBool(r)
	if err != nil {
		panic(err)
	}
	*b = v
}

func PVarInt(rd io.Reader, i *int) {
	v, err := ReadVarInt(rd)
	if err != nil {
		panic(err)
	}
	*i = v
}

func PReadString(rd io.Reader, s *string) {
	v, err := ReadString(rd)
	if err != nil {
		panic(err)
	}
	*s = v
}

func PReadStringMax(rd io.Reader, s *string, max int) {
	v, err := ReadStringMax(rd, max)
	if err != nil {
		panic(err)
	}
	*s = v
}

func PReadUint8(rd io.Reader, i *uint8) {
	v, err := ReadUint8(rd)
	if err != nil {
		panic(err)
	}
	*i = v
}

func PReadBytes(rd io.Reader, b *[]byte) {
	v, err := ReadBytes(rd)
	if err != nil {
		panic(err)
	}
	*b = v
}

func PReadByte(rd io.Reader, b *byte) {
	v, err := ReadByte(rd)
	if err != nil {
		panic(err)
	}
	*b = v
}

func PReadFloat32(rd io.Reader, f *float32) {
	v, err := ReadFloat32(rd)
	if err != nil {
		panic(err)
	}
	*f = v
}

func (r *PReader) BinaryTag(t *BinaryTag, protocol proto.Protocol) {
	v, err := ReadBinaryTag(r.r, protocol)
	if err != nil {
		panic(err)
	}
	*t = v
}

func (r *PReader) Position(p *Position, protocol proto.Protocol) {
	v, err := ReadPosition(r.r, protocol)
	if err != nil {
		panic(err)
	}
	*p = v
}

// Text reads a text component as display text.
func (r *PReader) Text(s *string, protocol proto.Protocol) {
	v, err := ReadTextComponent(r.r, protocol)
	if err != nil {
		panic(err)
	}
	*s = v
}
