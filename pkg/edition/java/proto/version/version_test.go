package version

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want *proto.Version
	}{
		{"1.20.6", Minecraft_1_20_5},
		{"1.20.5", Minecraft_1_20_5},
		{"767", Minecraft_1_21},
		{"1.21.1", Minecraft_1_21},
		{"1.8.9", Minecraft_1_8},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			require.NoError(t, err)
			require.Same(t, tt.want, v)
		})
	}

	_, err := Parse("1.99")
	require.Error(t, err)
	_, err = Parse("1")
	require.Error(t, err)
}

func TestProtocol(t *testing.T) {
	require.True(t, Protocol(766).Supported())
	require.False(t, Protocol(765).Supported())
	require.True(t, Protocol(12345).Unknown())
	require.Equal(t, "1.21-1.21.1(767)", Protocol(767).String())
	require.Equal(t, "12345", Protocol(12345).String())
	require.Equal(t, "1.20.5-1.20.6-1.21-1.21.1", SupportedVersionsString)
}

func TestVersionsOrdered(t *testing.T) {
	for i := 1; i < len(Versions); i++ {
		require.Less(t, Versions[i-1].Protocol, Versions[i].Protocol)
	}
}
