package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidHostPort(t *testing.T) {
	tests := []struct {
		addr string
		ok   bool
	}{
		{"localhost:25565", true},
		{"[::1]:25565", true},
		{"localhost", false},
		{"a:b:c", false},
		{"localhost:0", false},
		{"localhost:70000", false},
		{"localhost:port", false},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.ok, ValidHostPort(tt.addr) == nil)
		})
	}
}

func TestSplitHostPort(t *testing.T) {
	tests := []struct {
		address string
		host    string
		port    int
		wantErr bool
	}{
		{address: "localhost", host: "localhost", port: 25565},
		{address: "example.com:25566", host: "example.com", port: 25566},
		{address: "[::1]:25570", host: "::1", port: 25570},
		{address: "example.com:0", wantErr: true},
		{address: "example.com:70000", wantErr: true},
		{address: "example.com:abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			host, port, err := SplitHostPort(tt.address, 25565)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, host)
			assert.Equal(t, tt.port, port)
		})
	}
}

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("Steve"))
	assert.True(t, ValidUsername("a_1"))
	assert.True(t, ValidUsername("ABCDEFGHIJKLMNOP"))
	assert.False(t, ValidUsername(""))
	assert.False(t, ValidUsername("ABCDEFGHIJKLMNOPQ"))
	assert.False(t, ValidUsername("no spaces"))
	assert.False(t, ValidUsername("Ünicode"))
}
