package util

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

func TestVarInt(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		val  int
		wire []byte
	}{
		{name: "zero", val: 0, wire: []byte{0x00}},
		{name: "one", val: 1, wire: []byte{0x01}},
		{name: "127", val: 127, wire: []byte{0x7F}},
		{name: "128", val: 128, wire: []byte{0x80, 0x01}},
		{name: "255", val: 255, wire: []byte{0xFF, 0x01}},
		{name: "300", val: 300, wire: []byte{0xAC, 0x02}},
		{name: "16384", val: 16384, wire: []byte{0x80, 0x80, 0x01}},
		{name: "minus one", val: -1, wire: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{name: "min int32", val: math.MinInt32, wire: []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
		{name: "max int32", val: math.MaxInt32, wire: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			buf := new(bytes.Buffer)
			require.NoError(t, WriteVarInt(buf, tc.val))
			assert.Equal(t, tc.wire, buf.Bytes())
			assert.Equal(t, len(tc.wire), VarIntLen(tc.val))

			c := NewCursor(tc.wire)
			got, n, err := ReadVarIntReturnN(c)
			require.NoError(t, err)
			assert.Equal(t, tc.val, got)
			assert.Equal(t, len(tc.wire), n)
			assert.Equal(t, len(tc.wire), c.Pos())
		})
	}
}

func TestVarInt_Errors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "too big", data: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, wantErr: ErrVarIntTooBig},
		{name: "empty buffer", data: []byte{}, wantErr: io.ErrUnexpectedEOF},
		{name: "incomplete", data: []byte{0xFF}, wantErr: io.ErrUnexpectedEOF},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadVarInt(NewCursor(tc.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			assert.ErrorIs(t, err, errs.ErrDesync)
		})
	}
}

func TestVarLong(t *testing.T) {
	for _, v := range []int64{0, 1, 300, -1, math.MaxInt64, math.MinInt64} {
		buf := new(bytes.Buffer)
		require.NoError(t, WriteVarLong(buf, v))
		got, err := ReadVarLong(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		name string
		val  string
		wire []byte
	}{
		{name: "empty", val: "", wire: []byte{0x00}},
		{name: "ascii", val: "abc", wire: []byte{0x03, 'a', 'b', 'c'}},
		{name: "multibyte", val: "ä€𝄞", wire: append([]byte{0x09}, []byte("ä€𝄞")...)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, WriteString(buf, tc.val))
			assert.Equal(t, tc.wire, buf.Bytes())

			c := NewCursor(tc.wire)
			got, err := ReadString(c)
			require.NoError(t, err)
			assert.Equal(t, tc.val, got)
			require.NoError(t, c.ExpectEnd())
		})
	}
}

func TestString_Truncated(t *testing.T) {
	_, err := ReadString(NewCursor([]byte{0x05, 'a', 'b'}))
	require.ErrorIs(t, err, errs.ErrDesync)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestString_TooLong(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteString(buf, "abcdefghi"))
	_, err := ReadStringMax(buf, 2)
	require.ErrorIs(t, err, errs.ErrDesync)
}

func TestBool(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteBool(buf, true))
	require.NoError(t, WriteBool(buf, false))
	assert.Equal(t, []byte{0x01, 0x00}, buf.Bytes())

	v, err := ReadBool(buf)
	require.NoError(t, err)
	assert.True(t, v)
	v, err = ReadBool(buf)
	require.NoError(t, err)
	assert.False(t, v)

	_, err = ReadBool(NewCursor([]byte{0x02}))
	require.ErrorIs(t, err, errs.ErrDesync)
}

func TestFixedWidth(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteInt32(buf, -2))
	require.NoError(t, WriteFloat32(buf, 1.5))
	require.NoError(t, WriteInt64(buf, math.MinInt64))
	require.NoError(t, WriteFloat64(buf, -0.25))
	require.NoError(t, WriteUint16(buf, 0xBEEF))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFE, 0x3F, 0xC0, 0x00, 0x00}, buf.Bytes()[:8])

	i, err := ReadInt32(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), i)
	f, err := ReadFloat32(buf)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)
	l, err := ReadInt64(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), l)
	d, err := ReadFloat64(buf)
	require.NoError(t, err)
	assert.Equal(t, -0.25, d)
	u, err := ReadUint16(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u)

	_, err = ReadInt32(NewCursor([]byte{1, 2, 3}))
	require.ErrorIs(t, err, errs.ErrDesync)
}

func TestUUID(t *testing.T) {
	id := uuid.New()
	buf := new(bytes.Buffer)
	require.NoError(t, WriteUUID(buf, id))
	assert.Equal(t, id[:], buf.Bytes())

	got, err := ReadUUID(buf)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestOptional(t *testing.T) {
	buf := new(bytes.Buffer)
	v := 42
	require.NoError(t, WriteOptional(buf, &v, WriteVarInt))
	require.NoError(t, WriteOptional[int](buf, nil, WriteVarInt))
	assert.Equal(t, []byte{0x01, 42, 0x00}, buf.Bytes())

	got, err := ReadOptional(buf, ReadVarInt)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)
	got, err = ReadOptional(buf, ReadVarInt)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadList(t *testing.T) {
	l, err := ReadList(NewCursor([]byte{0x02, 0x05, 0x80, 0x01}), 0, ReadVarInt)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 128}, l)

	_, err = ReadList(NewCursor([]byte{0x03, 0x05}), 2, ReadVarInt)
	require.ErrorIs(t, err, errs.ErrDesync)

	_, err = ReadList(NewCursor([]byte{0x02, 0x05}), 0, ReadVarInt)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPanicReaderWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	err := RecoverFunc(func() error {
		w := PanicWriter(buf)
		w.VarInt(7)
		w.String("x")
		w.Bool(true)
		return nil
	})
	require.NoError(t, err)

	var (
		i int
		s string
	)
	err = RecoverFunc(func() error {
		r := PanicReader(buf)
		r.VarInt(&i)
		r.String(&s)
		if !r.Ok() {
			return errors.New("flag not set")
		}
		r.VarInt(&i) // nothing left
		return nil
	})
	require.ErrorIs(t, err, errs.ErrDesync)
	assert.Equal(t, 7, i)
	assert.Equal(t, "x", s)
}
