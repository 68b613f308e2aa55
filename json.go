// FILE: lixenwraith/confighelper/json.go
package confighelper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Kind is the type tag of a JSON Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a node of a parsed JSON document.
// Objects remember key insertion order so rewritten files diff cleanly.
// Numbers keep their source text.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []*Value
	keys []string
	obj  map[string]*Value
}

// Null returns a JSON null.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a JSON boolean.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Number returns a JSON number with the given literal text.
func Number(n json.Number) *Value { return &Value{kind: KindNumber, num: n} }

// String returns a JSON string.
func String(s string) *Value { return &Value{kind: KindString, str: s} }

// Array returns a JSON array holding items.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, arr: append([]*Value(nil), items...)}
}

// Object returns an empty JSON object.
func Object() *Value {
	return &Value{kind: KindObject, obj: make(map[string]*Value)}
}

// Kind returns the type tag. A nil *Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsContainer reports whether v is an object or an array.
func (v *Value) IsContainer() bool {
	k := v.Kind()
	return k == KindObject || k == KindArray
}

// Len returns the number of members of an object or array, zero otherwise.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.keys)
	default:
		return 0
	}
}

// Keys returns object keys in document order.
func (v *Value) Keys() []string {
	if v.Kind() != KindObject {
		return nil
	}
	return append([]string(nil), v.keys...)
}

// Get looks up key in an object. It never panics: non-objects report false.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	child, ok := v.obj[key]
	return child, ok
}

// Set stores child under key. New keys are appended, existing keys keep their position.
// Set on a non-object is a no-op returning false.
func (v *Value) Set(key string, child *Value) bool {
	if v.Kind() != KindObject {
		return false
	}
	if child == nil {
		child = Null()
	}
	if _, exists := v.obj[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.obj[key] = child
	return true
}

// Delete removes key from an object and reports whether it was present.
func (v *Value) Delete(key string) bool {
	if v.Kind() != KindObject {
		return false
	}
	if _, exists := v.obj[key]; !exists {
		return false
	}
	delete(v.obj, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
	return true
}

// Index returns element i of an array.
func (v *Value) Index(i int) (*Value, bool) {
	if v.Kind() != KindArray || i < 0 || i >= len(v.arr) {
		return nil, false
	}
	return v.arr[i], true
}

// SetIndex replaces element i of an array.
func (v *Value) SetIndex(i int, child *Value) error {
	if v.Kind() != KindArray {
		return fmt.Errorf("%w: cannot index %s", ErrNotContainer, v.Kind())
	}
	if i < 0 || i >= len(v.arr) {
		return fmt.Errorf("%w: index %d out of range [0,%d)", ErrNotFound, i, len(v.arr))
	}
	if child == nil {
		child = Null()
	}
	v.arr[i] = child
	return nil
}

// Interface converts the tree into plain Go values:
// nil, bool, json.Number, string, []any and map[string]any.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.obj[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// Text returns the scalar rendering of v: the string itself for strings,
// the literal for numbers and booleans, "null" for null and JSON for containers.
func (v *Value) Text() string {
	switch v.Kind() {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	default:
		var buf bytes.Buffer
		if err := v.encode(&buf); err != nil {
			return ""
		}
		return buf.String()
	}
}

// MarshalJSON implements json.Marshaler with keys in document order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// MarshalIndent renders v as two-space indented JSON followed by a newline.
func (v *Value) MarshalIndent() ([]byte, error) {
	var compact bytes.Buffer
	if err := v.encode(&compact); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if !json.Valid([]byte(v.num)) {
			return fmt.Errorf("invalid JSON number literal %q", v.num.String())
		}
		buf.WriteString(v.num.String())
	case KindString:
		return encodeString(buf, v.str)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.obj[k].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode %s", v.Kind())
	}
	return nil
}

// encodeString writes s as a JSON string without HTML escaping,
// so connection strings with '&' or '<' stay readable.
func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	encoder := json.NewEncoder(&tmp)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// ParseJSON parses a JSON document into a Value tree.
// Empty or whitespace-only input yields an empty object.
func ParseJSON(data []byte) (*Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Object(), nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	root, err := parseValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse JSON: unexpected data after top-level value")
	}

	return root, nil
}

func parseValue(decoder *json.Decoder) (*Value, error) {
	token, err := decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := token.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			obj := Object()
			for decoder.More() {
				keyToken, err := decoder.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyToken.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyToken)
				}
				child, err := parseValue(decoder)
				if err != nil {
					return nil, err
				}
				// Duplicate keys: last value wins, first position is kept
				obj.Set(key, child)
			}
			if _, err := decoder.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := Array()
			for decoder.More() {
				child, err := parseValue(decoder)
				if err != nil {
					return nil, err
				}
				arr.arr = append(arr.arr, child)
			}
			if _, err := decoder.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
	}

	return nil, fmt.Errorf("unexpected token %v", token)
}
