package jsoncompare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind defines all of the atoms in our universe, or the variants of value
// we can encounter while comparing documents
type Kind uint8

const (
	// KindNull is the JSON null value
	KindNull Kind = iota
	// KindBool is a JSON true or false
	KindBool
	// KindNumber is a JSON number, held at decimal precision
	KindNumber
	// KindString is a JSON string
	KindString
	// KindArray is an ordered sequence of values
	KindArray
	// KindObject is a mapping from property names to values. insertion
	// order is preserved for traversal, comparison is order-insensitive
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

// Value is one node of a parsed JSON document. Values are never mutated
// after parsing, so a parsed document can be compared and hashed any number
// of times, concurrently
type Value struct {
	kind Kind
	b    bool
	num  decimal.Decimal
	str  string
	arr  []*Value
	keys []string
	obj  map[string]*Value
}

// Kind returns the variant tag of this value
func (v *Value) Kind() Kind { return v.kind }

// ParseValue parses a single JSON document into a Value tree. The document
// must consist of exactly one top-level value; trailing content is an error.
// Object key order is retained, numbers keep their full decimal precision
func ParseValue(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseNext(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("unexpected content after top-level value")
		}
		return nil, err
	}
	return v, nil
}

func parseNext(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return &Value{kind: KindNull}, nil
	case bool:
		return &Value{kind: KindBool, b: t}, nil
	case string:
		return &Value{kind: KindString, str: t}, nil
	case json.Number:
		num, err := decimal.NewFromString(t.String())
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", t.String(), err)
		}
		return &Value{kind: KindNumber, num: num}, nil
	case json.Delim:
		switch t {
		case '{':
			obj := &Value{kind: KindObject, obj: map[string]*Value{}}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				child, err := parseNext(dec)
				if err != nil {
					return nil, err
				}
				// duplicate keys: last occurrence wins, matching encoding/json
				if _, dup := obj.obj[key]; !dup {
					obj.keys = append(obj.keys, key)
				}
				obj.obj[key] = child
			}
			// consume the closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := &Value{kind: KindArray}
			for dec.More() {
				child, err := parseNext(dec)
				if err != nil {
					return nil, err
				}
				arr.arr = append(arr.arr, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// canonicalNumber renders a decimal with no trailing fractional zeros, so
// 40 and 40.0 share one representation
func canonicalNumber(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// display renders a value for difference reports: scalars in canonical
// form with strings quoted, compounds as compact JSON
func (v *Value) display() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return canonicalNumber(v.num)
	case KindString:
		return strconv.Quote(v.str)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return v.kind.String()
		}
		return string(data)
	}
}

// MarshalJSON implements json.Marshaler, emitting compact JSON with the
// original key order and canonical numbers
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := v.encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(canonicalNumber(v.num))
	case KindString:
		data, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(data)
	case KindArray:
		buf.WriteByte('[')
		for i, el := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := el.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(data)
			buf.WriteByte(':')
			if err := v.obj[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// nodeCount counts this value & all descendants
func (v *Value) nodeCount() int {
	count := 1
	switch v.kind {
	case KindArray:
		for _, el := range v.arr {
			count += el.nodeCount()
		}
	case KindObject:
		for _, key := range v.keys {
			count += v.obj[key].nodeCount()
		}
	}
	return count
}
