package util

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"
)

// Translations maps translation keys to the format strings of a vanilla
// language file, using %s, %d and positional %1$s placeholders.
type Translations map[string]string

// DefaultTranslations holds the chat formats servers send most often.
var DefaultTranslations = Translations{
	"chat.type.admin":                   "[%s: %s]",
	"chat.type.announcement":            "§d[%s] %s",
	"chat.type.emote":                   " * %s %s",
	"chat.type.text":                    "<%s> %s",
	"multiplayer.player.joined":         "§e%s joined the game.",
	"multiplayer.player.left":           "§e%s left the game.",
	"commands.message.display.incoming": "§7%s whispers to you: %s",
	"commands.message.display.outgoing": "§7You whisper to %s: %s",
}

// LoadTranslations reads a vanilla language file (a flat JSON object)
// and returns its entries on top of DefaultTranslations.
func LoadTranslations(rd io.Reader) (Translations, error) {
	var entries map[string]string
	if err := json.NewDecoder(rd).Decode(&entries); err != nil {
		return nil, fmt.Errorf("error decoding language file: %w", err)
	}
	t := maps.Clone(DefaultTranslations)
	maps.Copy(t, entries)
	return t, nil
}

// Format fills the format of key with args.
// Unknown keys render as "[key] args...".
func (t Translations) Format(key string, args ...string) string {
	format, ok := t[key]
	if !ok {
		if len(args) == 0 {
			return "[" + key + "]"
		}
		return "[" + key + "] " + strings.Join(args, " ")
	}
	return interpolate(format, args)
}

// interpolate substitutes %s/%d in order and %N$s/%N$d by position.
// Placeholders without a matching argument are kept as is.
func interpolate(format string, args []string) string {
	b := new(strings.Builder)
	next := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 == len(format) {
			b.WriteByte(format[i])
			continue
		}
		switch c := format[i+1]; {
		case c == '%':
			b.WriteByte('%')
			i++
			continue
		case c == 's' || c == 'd':
			if next < len(args) {
				b.WriteString(args[next])
				next++
				i++
				continue
			}
		case c >= '1' && c <= '9':
			j := i + 1
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				j++
			}
			if j+1 < len(format) && format[j] == '$' && (format[j+1] == 's' || format[j+1] == 'd') {
				n, _ := strconv.Atoi(format[i+1 : j])
				if n <= len(args) {
					b.WriteString(args[n-1])
					next++
					i = j + 1
					continue
				}
			}
		}
		b.WriteByte('%')
	}
	return b.String()
}
