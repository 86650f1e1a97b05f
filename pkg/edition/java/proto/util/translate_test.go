package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations_Format(t *testing.T) {
	tr := Translations{
		"seq":      "%s and %s",
		"pos":      "%2$s before %1$s",
		"percent":  "100%% %s",
		"missing":  "%s then %s",
		"number":   "level %d",
		"trailing": "ends with %",
	}
	tests := []struct {
		key  string
		args []string
		want string
	}{
		{key: "seq", args: []string{"a", "b"}, want: "a and b"},
		{key: "pos", args: []string{"a", "b"}, want: "b before a"},
		{key: "percent", args: []string{"sure"}, want: "100% sure"},
		{key: "missing", args: []string{"a"}, want: "a then %s"},
		{key: "number", args: []string{"3"}, want: "level 3"},
		{key: "trailing", want: "ends with %"},
		{key: "unknown", want: "[unknown]"},
		{key: "unknown", args: []string{"x", "y"}, want: "[unknown] x y"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Format(tt.key, tt.args...))
		})
	}
}

func TestDefaultTranslations(t *testing.T) {
	assert.Equal(t, "§eSteve joined the game.", DefaultTranslations.Format("multiplayer.player.joined", "Steve"))
	assert.Equal(t, "<Steve> hi", DefaultTranslations.Format("chat.type.text", "Steve", "hi"))
	assert.Equal(t, "§7Alex whispers to you: psst", DefaultTranslations.Format("commands.message.display.incoming", "Alex", "psst"))
}

func TestLoadTranslations(t *testing.T) {
	tr, err := LoadTranslations(strings.NewReader(`{"chat.type.text":"%s: %s","block.minecraft.stone":"Stone"}`))
	require.NoError(t, err)
	assert.Equal(t, "Steve: hi", tr.Format("chat.type.text", "Steve", "hi"))
	assert.Equal(t, "Stone", tr.Format("block.minecraft.stone"))
	// defaults not in the file stay available
	assert.Equal(t, "§eSteve left the game.", tr.Format("multiplayer.player.left", "Steve"))
	// loading does not touch the defaults
	assert.Equal(t, "<Steve> hi", DefaultTranslations.Format("chat.type.text", "Steve", "hi"))

	_, err = LoadTranslations(strings.NewReader(`not json`))
	assert.Error(t, err)
}
