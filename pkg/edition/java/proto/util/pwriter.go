package util

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// Recover is a helper function to recover from a panic and set the error pointer to the recovered error.
// If the panic is not an error, it will be re-panicked.
//
// Usage:
//
//	func fn() (err error) {
//		defer Recover(&err)
//		// code that may panic(err)
//	}
func Recover(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
		} else {
			panic(r)
		}
	}
}

// RecoverFunc is a helper function to recover from a panic and set the error pointer to the recovered error.
// If the panic is not an error, it will be re-panicked.
//
// Usage:
//
//	return RecoverFunc(func() error {
//		// code that may panic(err)
//	})
func RecoverFunc(fn func() error) (err error) {
	defer Recover(&err)
	return fn()
}

// PWriter writes wire types and panics on error.
type PWriter struct {
	w io.Writer
}

func PanicWriter(w io.Writer) *PWriter {
	return &PWriter{w}
}

// Writer returns the underlying writer.
func (w *PWriter) Writer() io.Writer { return w.w }

func (w *PWriter) VarInt(i int) {
	PWriteVarInt(w.w, i)
}

func (w *PWriter) VarLong(i int64) {
	if err := WriteVarLong(w.w, i); err != nil {
		panic(err)
	}
}

func (w *PWriter) String(s string) {
	PWriteString(w.w, s)
}

func (w *PWriter) Bytes(b []byte) {
	PWriteBytes(w.w, b)
}

func (w *PWriter) Raw(b []byte) {
	if err := WriteRawBytes(w.w, b); err != nil {
		panic(err)
	}
}

// Bool writes b and returns it so it can gate the following fields.
func (w *PWriter) Bool(b bool) bool {
	PWriteBool(w.w, b)
	return b
}

func (w *PWriter) Byte(b byte) {
	PWriteByte(w.w, b)
}

func (w *PWriter) Int16(i int16) {
	if err := WriteInt16(w.w, i); err != nil {
		panic(err)
	}
}

func (w *PWriter) Uint16(i uint16) {
	if err := WriteUint16(w.w, i); err != nil {
		panic(err)
	}
}

func (w *PWriter) Int32(i int32) {
	if err := WriteInt32(w.w, i); err != nil {
		panic(err)
	}
}

func (w *PWriter) Int64(i int64) {
	PWriteInt64(w.w, i)
}

func (w *PWriter) Int(i int) {
	PWriteInt(w.w, i)
}

func (w *PWriter) Strings(s []string) {
	PWriteStrings(w.w, s)
}

func (w *PWriter) Float32(f float32) {
	PWriteFloat32(w.w, f)
}

func (w *PWriter) Float64(f float64) {
	if err := WriteFloat64(w.w, f); err != nil {
		panic(err)
	}
}

func (w *PWriter) UUID(id uuid.UUID) {
	if err := WriteUUID(w.w, id); err != nil {
		panic(err)
	}
}

func (w *PWriter) VarIntArray(a []int) {
	if err := WriteVarIntArray(w.w, a); err != nil {
		panic(err)
	}
}

func (w *PWriter) Int32Array(a []int32) {
	if err := WriteInt32Array(w.w, a); err != nil {
		panic(err)
	}
}

func PWriteStrings(w io.Writer, s []string) {
	if err := WriteStrings(w, s); err != nil {
		panic(err)
	}
}

func PWriteByte(w io.Writer, b byte) {
	if err := WriteByte(w, b); err != nil {
		panic(err)
	}
}

func PWriteInt(w io.Writer, i int) {
	if err := WriteInt(w, i); err != nil {
		panic(err)
	}
}

func PWriteInt64(w io.Writer, i int64) {
	if err := WriteInt64(w, i); err != nil {
		panic(err)
	}
}

func PWriteBool(w io.Writer, b bool) {
	if err := WriteBool(w, b); err != nil {
		panic(err)
	}
}

func PWriteVarInt(wr io.Writer, i int) {
	if err := WriteVarInt(wr, i); err != nil {
		panic(err)
	}
}

func PWriteString(wr io.Writer, s string) {
	if err := WriteString(wr, s); err != nil {
		panic(err)
	}
}

func PWriteBytes(wr io.Writer, b []byte) {
	if err := WriteBytes(wr, b); err != nil {
		panic(err)
	}
}

func PWriteFloat32(wr io.Writer, f float32) {
	if err := WriteFloat32(wr, f); err != nil {
		panic(err)
	}
}

func (w *PWriter) BinaryTag(t BinaryTag, protocol proto.Protocol) {
	if err := WriteBinaryTag(w.w, protocol, t); err != nil {
		panic(err)
	}
}

func (w *PWriter) Position(p Position, protocol proto.Protocol) {
	if err := WritePosition(w.w, protocol, p); err != nil {
		panic(err)
	}
}

// Text writes s as a plain text component.
func (w *PWriter) Text(s string, protocol proto.Protocol) {
	if err := WriteTextComponent(w.w, protocol, s); err != nil {
		panic(err)
	}
}
