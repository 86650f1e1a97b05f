// Package nbtconv converts network binary tags to JSON and stringified NBT.
package nbtconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	mcnbt "github.com/Tnze/go-mc/nbt"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"gopkg.in/yaml.v3"
)

// textFlags are text component style keys that NBT stores as bytes
// but JSON text expects as booleans.
var textFlags = map[string]bool{
	"bold":          true,
	"italic":        true,
	"underlined":    true,
	"strikethrough": true,
	"obfuscated":    true,
	"interpret":     true,
}

// BinaryTagToJSON converts a binary tag to JSON.
//
// A TAG_String root converts to a JSON string. Compounds holding a single
// empty key, which NBT text uses to wrap mixed list elements, are unwrapped.
func BinaryTagToJSON(tag *mcnbt.RawMessage) (json.RawMessage, error) {
	v, err := Decode(tag)
	if err != nil {
		return nil, err
	}
	return json.Marshal(toJSONValue(v, ""))
}

// Decode decodes a binary tag into plain Go values.
// Compounds decode as map[string]any, lists as []any.
func Decode(tag *mcnbt.RawMessage) (any, error) {
	switch tag.Type {
	case mcnbt.TagEnd:
		return nil, nil
	case mcnbt.TagString:
		if len(tag.Data) < 2 {
			return nil, fmt.Errorf("string tag too short")
		}
		n := int(tag.Data[0])<<8 | int(tag.Data[1])
		if len(tag.Data) < 2+n {
			return nil, fmt.Errorf("string tag length %d exceeds payload", n)
		}
		return string(tag.Data[2 : 2+n]), nil
	case mcnbt.TagCompound:
	default:
		return nil, fmt.Errorf("unsupported root tag type %d", tag.Type)
	}
	// the decoder wants a named root
	rd := io.MultiReader(bytes.NewReader([]byte{tag.Type, 0, 0}), bytes.NewReader(tag.Data))
	m := map[string]any{}
	if err := nbt.NewDecoderWithEncoding(rd, nbt.BigEndian).Decode(&m); err != nil {
		return nil, fmt.Errorf("error decoding binary tag: %w", err)
	}
	return m, nil
}

func toJSONValue(v any, key string) any {
	switch t := v.(type) {
	case map[string]any:
		if inner, ok := t[""]; ok && len(t) == 1 {
			return toJSONValue(inner, key)
		}
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = toJSONValue(e, k)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = toJSONValue(e, "")
		}
		return l
	case uint8:
		if textFlags[key] {
			return t != 0
		}
		return int8(t)
	case nil, string, int16, int32, int64, float32, float64:
		return t
	}
	// byte, int and long arrays decode as Go arrays
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array || rv.Kind() == reflect.Slice {
		l := make([]any, rv.Len())
		for i := range l {
			e := rv.Index(i).Interface()
			if b, ok := e.(uint8); ok {
				e = int8(b)
			}
			l[i] = e
		}
		return l
	}
	return v
}

// SNBT returns the stringified form of a binary tag.
func SNBT(tag *mcnbt.RawMessage) string {
	if tag.Type == mcnbt.TagEnd {
		return "{}"
	}
	return tag.String()
}

// ToYAML renders a binary tag as a YAML document.
func ToYAML(tag *mcnbt.RawMessage) ([]byte, error) {
	v, err := Decode(tag)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(toJSONValue(v, ""))
}

// JsonToSNBT converts JSON to stringified NBT.
// Example: {"a":1,"b":"hello","d":true} -> {a:1,b:"hello",d:1b}
func JsonToSNBT(j json.RawMessage) (string, error) {
	var v any
	if err := json.Unmarshal(j, &v); err != nil {
		return "", fmt.Errorf("error unmarshalling json: %w", err)
	}
	var b strings.Builder
	writeSNBT(v, &b)
	return b.String(), nil
}

func writeSNBT(v any, b *strings.Builder) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i != 0 {
				b.WriteByte(',')
			}
			writeKey(k, b)
			b.WriteByte(':')
			writeSNBT(t[k], b)
		}
		b.WriteByte('}')
	case []any:
		b.WriteByte('[')
		for i, e := range t {
			if i != 0 {
				b.WriteByte(',')
			}
			writeSNBT(e, b)
		}
		b.WriteByte(']')
	case string:
		b.WriteString(strconv.Quote(t))
	case bool:
		if t {
			b.WriteString("1b")
		} else {
			b.WriteString("0b")
		}
	case float64:
		if t == float64(int64(t)) {
			b.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			b.WriteString(strconv.FormatFloat(t, 'g', -1, 64) + "d")
		}
	case nil:
		b.WriteString("{}")
	default:
		fmt.Fprint(b, t)
	}
}

func writeKey(k string, b *strings.Builder) {
	for _, r := range k {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("_-.+", r)) {
			b.WriteString(strconv.Quote(k))
			return
		}
	}
	if k == "" {
		b.WriteString(`""`)
		return
	}
	b.WriteString(k)
}

// JsonToBinaryTag converts JSON to a compound binary tag.
// Booleans become bytes, so the conversion is not reversible for them.
func JsonToBinaryTag(j json.RawMessage) (mcnbt.RawMessage, error) {
	var m map[string]any
	if err := json.Unmarshal(j, &m); err != nil {
		return mcnbt.RawMessage{}, fmt.Errorf("error unmarshalling json: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := nbt.NewEncoderWithEncoding(buf, nbt.BigEndian).Encode(fromJSONValue(m)); err != nil {
		return mcnbt.RawMessage{}, fmt.Errorf("error encoding binary tag: %w", err)
	}
	b := buf.Bytes()
	// strip root type and empty name
	return mcnbt.RawMessage{Type: b[0], Data: b[3:]}, nil
}

func fromJSONValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = fromJSONValue(e)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = fromJSONValue(e)
		}
		return l
	case bool:
		if t {
			return uint8(1)
		}
		return uint8(0)
	case float64:
		if t == float64(int32(t)) {
			return int32(t)
		}
		return t
	}
	return v
}
