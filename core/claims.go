package core

import (
	"bytes"
	"encoding/json"
)

// Kind identifies the JSON type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single JSON value taken from a token payload. Strings are decoded
// eagerly; every other kind is kept as raw JSON and never interpreted further.
type Value struct {
	kind Kind
	str  string
	raw  json.RawMessage
}

// StringValue returns a Value of KindString.
func StringValue(s string) Value {
	raw, _ := json.Marshal(s)
	return Value{kind: KindString, str: s, raw: raw}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &json.SyntaxError{}
	}

	switch data[0] {
	case 'n':
		v.kind = KindNull
	case 't', 'f':
		v.kind = KindBool
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.kind = KindString
		v.str = s
	case '[':
		v.kind = KindArray
	case '{':
		v.kind = KindObject
	default:
		v.kind = KindNumber
	}

	// Decoders may reuse data after this call returns.
	v.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Kind reports the JSON type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string held by v and whether v is a JSON string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Raw returns the JSON text of the value.
func (v Value) Raw() json.RawMessage {
	return v.raw
}

// Claims is the top level object of a token payload.
type Claims map[string]Value

// String returns the named claim if it is present and a JSON string.
func (c Claims) String(name string) (string, bool) {
	v, ok := c[name]
	if !ok {
		return "", false
	}
	return v.Str()
}

// FirstString walks names in order and returns the first claim holding a
// string. Claims that are present with another type are skipped.
func (c Claims) FirstString(names []string) (string, bool) {
	for _, name := range names {
		if s, ok := c.String(name); ok {
			return s, true
		}
	}
	return "", false
}
