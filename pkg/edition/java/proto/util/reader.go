package util

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// ErrVarIntTooBig is returned when a VarInt runs longer than 5 bytes.
var ErrVarIntTooBig = errors.New("decode: VarInt is too big")

// DefaultIdentifierMax is the maximum length of a namespaced identifier.
const DefaultIdentifierMax = 32767

// ReadFull reads exactly len(p) bytes.
// Running out of bytes is a stream desync, never a short read.
func ReadFull(rd io.Reader, p []byte) error {
	if _, err := io.ReadFull(rd, p); err != nil {
		return errs.Desync("", err)
	}
	return nil
}

func ReadString(rd io.Reader) (string, error) {
	return ReadStringMax(rd, bufio.MaxScanTokenSize)
}

func ReadStringMax(rd io.Reader, max int) (string, error) {
	length, err := ReadVarInt(rd)
	if err != nil {
		return "", err
	}
	return readStringMax(rd, max, length)
}

func readStringMax(rd io.Reader, max, length int) (string, error) {
	if length < 0 {
		return "", errs.Desyncf("negative string length %d", length)
	}
	if length > max*4 { // *4 since UTF8 character has up to 4 bytes
		return "", errs.Desyncf("bad string length (got %d, max. %d)", length, max)
	}
	if length == 0 {
		return "", nil
	}
	str := make([]byte, length)
	if err := ReadFull(rd, str); err != nil {
		return "", err
	}
	return string(str), nil
}

// ReadIdentifier reads a namespaced identifier like "minecraft:stone".
func ReadIdentifier(rd io.Reader) (string, error) {
	return ReadStringMax(rd, DefaultIdentifierMax)
}

func ReadStringArray(rd io.Reader) ([]string, error) {
	length, err := ReadVarInt(rd)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errs.Desyncf("negative string array length %d", length)
	}
	a := make([]string, 0, length)
	for i := 0; i < length; i++ {
		s, err := ReadString(rd)
		if err != nil {
			return nil, err
		}
		a = append(a, s)
	}
	return a, nil
}

func ReadBytes(rd io.Reader) ([]byte, error) {
	return ReadBytesLen(rd, bufio.MaxScanTokenSize)
}

func ReadBytesLen(rd io.Reader, maxLength int) (b []byte, err error) {
	length, err := ReadVarInt(rd)
	if err != nil {
		return
	}
	if length < 0 {
		return nil, errs.Desyncf("decode, bytes length is < 0: %d", length)
	}
	if length > maxLength {
		return nil, errs.Desyncf("decode, bytes length %d is above given maximum: %d", length, maxLength)
	}
	b = make([]byte, length)
	err = ReadFull(rd, b)
	return
}

// ReadRemaining reads all bytes left in rd.
// Used for packet fields that span the rest of the packet (plugin message data).
func ReadRemaining(rd io.Reader) ([]byte, error) {
	return io.ReadAll(rd)
}

func ReadVarInt(r io.Reader) (int, error) {
	v, _, err := ReadVarIntReturnN(r)
	return v, err
}

// ReadVarIntReturnN reads a VarInt and also returns the number of bytes read.
func ReadVarIntReturnN(r io.Reader) (result int, n int, err error) {
	var (
		b       byte
		uresult uint32
	)
	for {
		b, err = ReadUint8(r)
		if err != nil {
			return 0, n, err
		}
		uresult |= uint32(b&0x7F) << uint32(n*7)
		n++
		if n > 5 {
			return 0, n, errs.Desync("", ErrVarIntTooBig)
		}
		if b&0x80 == 0 {
			break
		}
	}
	return int(int32(uresult)), n, nil
}

// ReadVarLong reads a variable length int64.
func ReadVarLong(r io.Reader) (int64, error) {
	var (
		n       int
		uresult uint64
	)
	for {
		b, err := ReadUint8(r)
		if err != nil {
			return 0, err
		}
		uresult |= uint64(b&0x7F) << uint64(n*7)
		n++
		if n > 10 {
			return 0, errs.Desyncf("decode: VarLong is too big")
		}
		if b&0x80 == 0 {
			return int64(uresult), nil
		}
	}
}

func ReadBool(reader io.Reader) (val bool, err error) {
	uval, err := ReadUint8(reader)
	if err != nil {
		return
	}
	switch uval {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errs.Desyncf("invalid boolean byte %#02x", uval)
}

func ReadInt8(reader io.Reader) (val int8, err error) {
	uval, err := ReadUint8(reader)
	val = int8(uval)
	return
}

func ReadUint8(reader io.Reader) (val uint8, err error) {
	if br, ok := reader.(io.ByteReader); ok {
		val, err = br.ReadByte()
		if err != nil {
			err = errs.Desync("", err)
		}
		return
	}
	var b [1]byte
	err = ReadFull(reader, b[:])
	return b[0], err
}

func ReadByte(reader io.Reader) (val byte, err error) {
	return ReadUint8(reader)
}

func ReadInt16(reader io.Reader) (val int16, err error) {
	uval, err := ReadUint16(reader)
	val = int16(uval)
	return
}

func ReadUint16(reader io.Reader) (val uint16, err error) {
	var b [2]byte
	if err = ReadFull(reader, b[:]); err != nil {
		return
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func ReadInt32(reader io.Reader) (val int32, err error) {
	uval, err := ReadUint32(reader)
	val = int32(uval)
	return
}

func ReadInt(rd io.Reader) (int, error) {
	i, err := ReadInt32(rd)
	return int(i), err
}

func ReadUint32(reader io.Reader) (val uint32, err error) {
	var b [4]byte
	if err = ReadFull(reader, b[:]); err != nil {
		return
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func ReadInt64(reader io.Reader) (val int64, err error) {
	uval, err := ReadUint64(reader)
	val = int64(uval)
	return
}

func ReadUint64(reader io.Reader) (val uint64, err error) {
	var b [8]byte
	if err = ReadFull(reader, b[:]); err != nil {
		return
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func ReadFloat32(reader io.Reader) (val float32, err error) {
	ival, err := ReadUint32(reader)
	val = math.Float32frombits(ival)
	return
}

func ReadFloat64(reader io.Reader) (val float64, err error) {
	ival, err := ReadUint64(reader)
	val = math.Float64frombits(ival)
	return
}

// ReadVarIntArray reads a VarInt length followed by that many VarInts.
func ReadVarIntArray(rd io.Reader) ([]int, error) {
	length, err := ReadVarInt(rd)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errs.Desyncf("got negative-length int array (%d)", length)
	}
	a := make([]int, length)
	for i := 0; i < length; i++ {
		a[i], err = ReadVarInt(rd)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ReadInt32Array reads a VarInt length followed by that many big-endian Ints.
func ReadInt32Array(rd io.Reader) ([]int32, error) {
	length, err := ReadVarInt(rd)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errs.Desyncf("got negative-length int array (%d)", length)
	}
	a := make([]int32, length)
	for i := 0; i < length; i++ {
		a[i], err = ReadInt32(rd)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ReadUUID reads a 16 byte big-endian UUID.
func ReadUUID(rd io.Reader) (id uuid.UUID, err error) {
	var b [16]byte
	if err = ReadFull(rd, b[:]); err != nil {
		return
	}
	return uuid.FromBytes(b[:])
}

// ReadOptional reads a presence flag and, if set, a value with read.
func ReadOptional[T any](rd io.Reader, read func(io.Reader) (T, error)) (*T, error) {
	present, err := ReadBool(rd)
	if err != nil || !present {
		return nil, err
	}
	v, err := read(rd)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadUTF util function as exists in Java
func ReadUTF(rd io.Reader) (string, error) {
	length, err := ReadUint16(rd)
	if err != nil {
		return "", err
	}
	p := make([]byte, length)
	err = ReadFull(rd, p)
	return string(p), err
}

// ReadList reads a VarInt count and then count elements with read.
// A count above max is rejected before allocating.
func ReadList[T any](rd io.Reader, max int, read func(io.Reader) (T, error)) ([]T, error) {
	n, err := ReadVarInt(rd)
	if err != nil {
		return nil, err
	}
	if n < 0 || (max > 0 && n > max) {
		return nil, errs.Desyncf("list length %d out of range (max %d)", n, max)
	}
	list := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := read(rd)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list = append(list, v)
	}
	return list, nil
}
