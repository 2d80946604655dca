// Package tree models loosely-typed records (catalog rows, lookup responses)
// as a tagged tree whose maps keep their key order.
package tree

import (
	"github.com/shopspring/decimal"
)

type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	List
	Map
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case Map:
		return "map"
	default:
		return "null"
	}
}

// Field is one key of a map value. Keys keep the order they were added in.
type Field struct {
	Key   string
	Value *Value
}

// Value is a node of the tree. A nil *Value behaves as Null.
type Value struct {
	kind   Kind
	b      bool
	num    decimal.Decimal
	str    string
	items  []*Value
	fields []Field
}

func NewNull() *Value { return &Value{kind: Null} }

func NewBool(b bool) *Value { return &Value{kind: Bool, b: b} }

func NewNumber(d decimal.Decimal) *Value { return &Value{kind: Number, num: d} }

func NewString(s string) *Value { return &Value{kind: String, str: s} }

func NewList(items ...*Value) *Value { return &Value{kind: List, items: items} }

func NewMap(fields ...Field) *Value { return &Value{kind: Map, fields: fields} }

// F is shorthand for building map fields.
func F(key string, v *Value) Field { return Field{Key: key, Value: v} }

func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

func (v *Value) IsNull() bool { return v.Kind() == Null }

// IsContainer reports whether v is a List or a Map.
func (v *Value) IsContainer() bool {
	k := v.Kind()
	return k == List || k == Map
}

func (v *Value) Bool() (bool, bool) {
	if v.Kind() != Bool {
		return false, false
	}
	return v.b, true
}

func (v *Value) Number() (decimal.Decimal, bool) {
	if v.Kind() != Number {
		return decimal.Zero, false
	}
	return v.num, true
}

func (v *Value) Str() (string, bool) {
	if v.Kind() != String {
		return "", false
	}
	return v.str, true
}

func (v *Value) Items() []*Value {
	if v.Kind() != List {
		return nil
	}
	return v.items
}

func (v *Value) Fields() []Field {
	if v.Kind() != Map {
		return nil
	}
	return v.fields
}

// Get returns the first field with exactly this key.
func (v *Value) Get(key string) (*Value, bool) {
	for _, f := range v.Fields() {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of key or appends it. It is a no-op on non-map values.
func (v *Value) Set(key string, child *Value) {
	if v.Kind() != Map {
		return
	}
	for i := range v.fields {
		if v.fields[i].Key == key {
			v.fields[i].Value = child
			return
		}
	}
	v.fields = append(v.fields, Field{Key: key, Value: child})
}

// Text renders a scalar as plain text: strings as-is, numbers in decimal
// notation, booleans as true/false. Containers and null yield "".
func (v *Value) Text() string {
	switch v.Kind() {
	case String:
		return v.str
	case Number:
		return v.num.String()
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
