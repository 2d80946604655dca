package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

var ErrCycle = errors.New("tree: value contains a cycle")

// Parse decodes a single JSON document, keeping object keys in document order.
func Parse(data []byte) (*Value, error) {
	return Decode(bytes.NewReader(data))
}

func Decode(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decode(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("tree: unexpected data after top-level value")
	}
	return v, nil
}

func decode(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return nil, fmt.Errorf("tree: invalid number %q: %w", t, err)
		}
		return NewNumber(d), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeMap(dec)
		case '[':
			return decodeList(dec)
		}
	}
	return nil, fmt.Errorf("tree: unexpected token %v", tok)
}

func decodeMap(dec *json.Decoder) (*Value, error) {
	v := NewMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("tree: unexpected object key %v", tok)
		}
		child, err := decode(dec)
		if err != nil {
			return nil, err
		}
		v.fields = append(v.fields, Field{Key: key, Value: child})
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeList(dec *json.Decoder) (*Value, error) {
	v := NewList()
	for dec.More() {
		child, err := decode(dec)
		if err != nil {
			return nil, err
		}
		v.items = append(v.items, child)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v, make(map[*Value]bool)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v *Value, path map[*Value]bool) error {
	switch v.Kind() {
	case Null:
		buf.WriteString("null")
	case Bool, Number:
		buf.WriteString(v.Text())
	case String:
		b, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case List:
		if path[v] {
			return ErrCycle
		}
		path[v] = true
		defer delete(path, v)

		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item, path); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Map:
		if path[v] {
			return ErrCycle
		}
		path[v] = true
		defer delete(path, v)

		buf.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := encode(buf, f.Value, path); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
