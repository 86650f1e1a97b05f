package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

func TestPosition_Pack(t *testing.T) {
	p := Position{X: 18357644, Y: 831, Z: -20882616}
	assert.Equal(t, int64(0x4607632c15b4833f), p.Pack(version.Minecraft_1_21.Protocol))
	assert.Equal(t, int64(0x4607630cfec15b48), p.Pack(version.Minecraft_1_13_2.Protocol))
}

func TestPosition_RoundTrip(t *testing.T) {
	positions := []Position{
		{0, 0, 0},
		{1, 2, 3},
		{-1, -1, -1},
		{-33554432, -2048, 33554431},
		{33554431, 2047, -33554432},
	}
	for _, v := range []*proto.Version{version.Minecraft_1_13_2, version.Minecraft_1_14, version.Minecraft_1_21} {
		for _, p := range positions {
			buf := new(bytes.Buffer)
			require.NoError(t, WritePosition(buf, v.Protocol, p))
			assert.Equal(t, 8, buf.Len())
			got, err := ReadPosition(buf, v.Protocol)
			require.NoError(t, err)
			assert.Equal(t, p, got, "%s at %s", p, v)
		}
	}
}
