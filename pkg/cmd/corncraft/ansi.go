package corncraft

import (
	"io"
	"strings"

	"github.com/gookit/color"
	"go.minekube.com/common/minecraft/component/codec/legacy"
)

// legacyColors maps legacy formatting codes to terminal styles.
var legacyColors = map[rune]color.Color{
	'0': color.Black,
	'1': color.Blue,
	'2': color.Green,
	'3': color.Cyan,
	'4': color.Red,
	'5': color.Magenta,
	'6': color.Yellow,
	'7': color.White,
	'8': color.Gray,
	'9': color.LightCyan,
	'a': color.LightGreen,
	'b': color.LightBlue,
	'c': color.LightRed,
	'd': color.LightMagenta,
	'e': color.LightYellow,
	'f': color.LightWhite,
	'k': color.OpConcealed,
	'l': color.OpBold,
	'm': color.OpStrikethrough,
	'n': color.OpUnderscore,
	'o': color.OpItalic,
}

// ansiFromLegacy renders §-formatted text with terminal colors.
// Styles stack until the next §r.
func ansiFromLegacy(s string) string {
	if !strings.ContainsRune(s, legacy.DefaultChar) {
		return s
	}
	var (
		b      strings.Builder
		styles []color.Color
		code   bool
	)
	for _, r := range s {
		switch {
		case code:
			code = false
			if r == 'r' {
				styles = styles[:0]
			} else if c, ok := legacyColors[r]; ok {
				styles = append(styles, c)
			}
		case r == legacy.DefaultChar:
			code = true
		default:
			out := string(r)
			for i := len(styles) - 1; i >= 0; i-- {
				out = styles[i].Sprint(out)
			}
			b.WriteString(out)
		}
	}
	return b.String()
}

// printChat writes a chat line, system messages dimmed.
func printChat(out io.Writer, msg string, system bool) {
	line := ansiFromLegacy(msg)
	if system {
		line = color.Gray.Sprint(line)
	}
	color.Fprintln(out, line)
}
