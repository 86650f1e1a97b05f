package util

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

func WriteString(writer io.Writer, val string) (err error) {
	return WriteBytes(writer, []byte(val))
}

func WriteVarInt(writer io.Writer, val int) (err error) {
	_, err = WriteVarIntN(writer, val)
	return
}

// WriteVarIntN writes a VarInt and returns the number of bytes written.
// Negative values are written as their 32 bit two's complement (5 bytes).
func WriteVarIntN(writer io.Writer, val int) (n int, err error) {
	var buf [5]byte
	uval := uint32(val)
	for uval >= 0x80 {
		buf[n] = byte(uval) | 0x80
		uval >>= 7
		n++
	}
	buf[n] = byte(uval)
	n++
	return writer.Write(buf[:n])
}

// VarIntLen returns the number of bytes val occupies as VarInt.
func VarIntLen(val int) int {
	uval := uint32(val)
	n := 1
	for uval >= 0x80 {
		uval >>= 7
		n++
	}
	return n
}

// WriteVarLong writes a variable length int64.
func WriteVarLong(writer io.Writer, val int64) (err error) {
	var buf [10]byte
	n := 0
	uval := uint64(val)
	for uval >= 0x80 {
		buf[n] = byte(uval) | 0x80
		uval >>= 7
		n++
	}
	buf[n] = byte(uval)
	_, err = writer.Write(buf[:n+1])
	return
}

func WriteBool(writer io.Writer, val bool) (err error) {
	if val {
		return WriteUint8(writer, 1)
	}
	return WriteUint8(writer, 0)
}

// equal to WriteUint8
func WriteInt8(writer io.Writer, val int8) (err error) {
	return WriteUint8(writer, uint8(val))
}

func WriteUint8(writer io.Writer, val uint8) (err error) {
	if bw, ok := writer.(io.ByteWriter); ok {
		return bw.WriteByte(val)
	}
	_, err = writer.Write([]byte{val})
	return
}

// equal to WriteUint8
func WriteByte(writer io.Writer, val byte) (err error) {
	return WriteUint8(writer, val)
}

func WriteInt16(writer io.Writer, val int16) (err error) {
	return WriteUint16(writer, uint16(val))
}

func WriteUint16(writer io.Writer, val uint16) (err error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], val)
	_, err = writer.Write(b[:])
	return
}

func WriteInt32(writer io.Writer, val int32) (err error) {
	return WriteUint32(writer, uint32(val))
}

func WriteInt(writer io.Writer, val int) (err error) {
	return WriteInt32(writer, int32(val))
}

func WriteUint32(writer io.Writer, val uint32) (err error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], val)
	_, err = writer.Write(b[:])
	return
}

func WriteInt64(writer io.Writer, val int64) (err error) {
	return WriteUint64(writer, uint64(val))
}

func WriteUint64(writer io.Writer, val uint64) (err error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], val)
	_, err = writer.Write(b[:])
	return
}

func WriteFloat32(writer io.Writer, val float32) (err error) {
	return WriteUint32(writer, math.Float32bits(val))
}

func WriteFloat64(writer io.Writer, val float64) (err error) {
	return WriteUint64(writer, math.Float64bits(val))
}

func WriteBytes(wr io.Writer, b []byte) (err error) {
	if err = WriteVarInt(wr, len(b)); err != nil {
		return err
	}
	_, err = wr.Write(b)
	return err
}

// WriteRawBytes writes b with no length prefix.
func WriteRawBytes(wr io.Writer, b []byte) (err error) {
	_, err = wr.Write(b)
	return err
}

func WriteStrings(wr io.Writer, a []string) error {
	if err := WriteVarInt(wr, len(a)); err != nil {
		return err
	}
	for _, s := range a {
		if err := WriteString(wr, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteVarIntArray writes a VarInt length and the VarInt elements.
func WriteVarIntArray(wr io.Writer, a []int) error {
	if err := WriteVarInt(wr, len(a)); err != nil {
		return err
	}
	for _, v := range a {
		if err := WriteVarInt(wr, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt32Array writes a VarInt length and the big-endian Int elements.
func WriteInt32Array(wr io.Writer, a []int32) error {
	if err := WriteVarInt(wr, len(a)); err != nil {
		return err
	}
	for _, v := range a {
		if err := WriteInt32(wr, v); err != nil {
			return err
		}
	}
	return nil
}

// Encoded as an unsigned 128-bit integer
// (or two unsigned 64-bit integers: the most
// significant 64 bits and then the least significant 64 bits)
func WriteUUID(wr io.Writer, id uuid.UUID) error {
	if err := WriteUint64(wr, binary.BigEndian.Uint64(id[:8])); err != nil {
		return err
	}
	return WriteUint64(wr, binary.BigEndian.Uint64(id[8:]))
}

// WriteOptional writes a presence flag and, if v is not nil, the value with write.
func WriteOptional[T any](wr io.Writer, v *T, write func(io.Writer, T) error) error {
	if err := WriteBool(wr, v != nil); err != nil || v == nil {
		return err
	}
	return write(wr, *v)
}

// WriteUTF util function as exists in Java
func WriteUTF(wr io.Writer, s string) error {
	if err := WriteUint16(wr, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(wr, s)
	return err
}
