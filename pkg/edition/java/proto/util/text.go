package util

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/component/codec"
	"go.minekube.com/common/minecraft/component/codec/legacy"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/nbtconv"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// MaxTextLength bounds JSON text components on the wire.
const MaxTextLength = 262144

var (
	// Json component codec supporting pre-1.16 clients
	jsonCodecLegacy = &codec.Json{}
	// Json component codec for 1.16+ clients
	jsonCodecModern = &codec.Json{
		NoDownsampleColor: true,
		NoLegacyHover:     true,
	}
	legacyCodec = &legacy.Legacy{}
)

// JsonCodec returns the appropriate codec for the given protocol version.
func JsonCodec(protocol proto.Protocol) codec.Codec {
	if protocol.GreaterEqual(version.Minecraft_1_16) {
		return jsonCodecModern
	}
	return jsonCodecLegacy
}

// Marshal marshals a component into JSON.
func Marshal(protocol proto.Protocol, c component.Component) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := JsonCodec(protocol).Marshal(buf, c)
	return buf.Bytes(), err
}

// MarshalLegacy renders c as §-coded legacy text, filling translations from tr.
func MarshalLegacy(c component.Component, tr Translations) (string, error) {
	resolved, err := resolveTranslations(c, tr)
	if err != nil {
		return "", err
	}
	b := new(strings.Builder)
	if err = legacyCodec.Marshal(b, resolved); err != nil {
		return "", err
	}
	return b.String(), nil
}

// resolveTranslations returns a copy of c where every translation is
// replaced by text carrying the translation's style.
func resolveTranslations(c component.Component, tr Translations) (component.Component, error) {
	switch t := c.(type) {
	case *component.Text:
		out := &component.Text{Content: t.Content, S: t.S}
		for _, extra := range t.Extra {
			r, err := resolveTranslations(extra, tr)
			if err != nil {
				return nil, err
			}
			out.Extra = append(out.Extra, r)
		}
		return out, nil
	case *component.Translation:
		args := make([]string, len(t.With))
		for i, with := range t.With {
			var err error
			if args[i], err = MarshalLegacy(with, tr); err != nil {
				return nil, err
			}
		}
		formatted, err := legacyCodec.Unmarshal([]byte(tr.Format(t.Key, args...)))
		if err != nil {
			return nil, err
		}
		return &component.Text{S: t.S, Extra: []component.Component{formatted}}, nil
	}
	return c, nil
}

// StripLegacy removes § formatting codes from s.
func StripLegacy(s string) string {
	if !strings.ContainsRune(s, legacy.DefaultChar) {
		return s
	}
	b := new(strings.Builder)
	skip := false
	for _, r := range s {
		switch {
		case skip:
			skip = false
		case r == legacy.DefaultChar:
			skip = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReadTextComponent reads a text component and returns its display text,
// formatted with § codes.
//
// Since 1.20.3 text is sent as NBT, before as a JSON string. Writing the
// result back does not reproduce the input bytes.
func ReadTextComponent(rd io.Reader, protocol proto.Protocol) (string, error) {
	if protocol.GreaterEqual(version.Minecraft_1_20_3) {
		tag, err := ReadBinaryTag(rd, protocol)
		if err != nil {
			return "", err
		}
		return TextFromTag(tag, protocol)
	}
	s, err := ReadStringMax(rd, MaxTextLength)
	if err != nil {
		return "", err
	}
	return TextFromJSON(s, protocol), nil
}

// WriteTextComponent writes text as a plain text component.
func WriteTextComponent(wr io.Writer, protocol proto.Protocol, text string) error {
	if protocol.GreaterEqual(version.Minecraft_1_20_3) {
		return WriteBinaryTag(wr, protocol, StringTag(text))
	}
	j, err := Marshal(protocol, &component.Text{Content: text})
	if err != nil {
		return err
	}
	return WriteString(wr, string(j))
}

// TextFromTag converts an NBT text component to display text.
func TextFromTag(tag BinaryTag, protocol proto.Protocol) (string, error) {
	if EmptyTag(tag) {
		return "", nil
	}
	if s, ok := TagString(tag); ok {
		return s, nil
	}
	j, err := nbtconv.BinaryTagToJSON(&tag)
	if err != nil {
		return "", errs.Desync("text component", err)
	}
	return TextFromJSON(string(j), protocol), nil
}

// TextFromJSON converts a JSON text component to display text.
// Input that is not a valid component is returned as is.
func TextFromJSON(s string, protocol proto.Protocol) string {
	if !json.Valid([]byte(s)) {
		return s
	}
	c, err := JsonCodec(protocol).Unmarshal([]byte(s))
	if err != nil {
		return s
	}
	text, err := MarshalLegacy(c, DefaultTranslations)
	if err != nil {
		return s
	}
	return text
}
