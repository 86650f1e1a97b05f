package corncraft

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
)

func TestAnsiFromLegacy(t *testing.T) {
	enabled := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = enabled })

	tests := []struct {
		in, want string
	}{
		{in: "plain", want: "plain"},
		{in: "§aGreen §lbold§r done", want: "Green bold done"},
		{in: "§zunknown", want: "unknown"},
		{in: "trailing§", want: "trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ansiFromLegacy(tt.in))
		})
	}

	buf := new(bytes.Buffer)
	printChat(buf, "§6Welcome", true)
	assert.Equal(t, "Welcome\n", buf.String())
}
