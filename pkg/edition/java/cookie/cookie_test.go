package cookie

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cpacket "github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/cookie"
)

func TestJar(t *testing.T) {
	j := NewJar(0)

	_, ok := j.GetCookie("minecraft:session")
	assert.False(t, ok)

	j.SetCookie("session", []byte{1, 2, 3})
	got, ok := j.GetCookie("minecraft:session")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)
	assert.Equal(t, 1, j.Len())

	j.DeleteCookie("minecraft:session")
	_, ok = j.GetCookie("session")
	assert.False(t, ok)
}

func TestJar_StoreCopiesPayload(t *testing.T) {
	j := NewJar(time.Minute)
	payload := []byte("abc")
	require.NoError(t, j.Store("test:key", payload))
	payload[0] = 'x'
	got, _ := j.GetCookie("test:key")
	assert.Equal(t, []byte("abc"), got)
}

func TestJar_Rejects(t *testing.T) {
	j := NewJar(time.Minute)
	assert.ErrorIs(t, j.Store(" ", nil), ErrEmptyKey)
	big := bytes.Repeat([]byte{1}, cpacket.MaxPayloadSize+1)
	assert.ErrorIs(t, j.Store("k", big), ErrPayloadTooLarge)
	assert.Zero(t, j.Len())
}

func TestJar_Expiry(t *testing.T) {
	j := NewJar(20 * time.Millisecond)
	j.SetCookie("k", []byte{1})
	time.Sleep(60 * time.Millisecond)
	_, ok := j.GetCookie("k")
	assert.False(t, ok)
	j.DeleteExpired()
	assert.Zero(t, j.Len())
}
