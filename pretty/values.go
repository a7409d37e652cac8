package pretty

import "reflect"

// Nil is the absence marker. It renders as Nil and is distinct from Go's nil,
// which renders as a foreign null.
type Nil struct{}

// Tuple is an ordered fixed-arity sequence, rendered as #(a, b).
type Tuple []any

// Codepoint is a single Unicode scalar value. Unlike a string it renders
// with the //utfcodepoint marker.
type Codepoint struct {
	Value rune
}

// BitArray is a byte sequence rendered as <<1, 2, 3>>.
type BitArray []byte

// Field is one field of a tagged value. An empty or numeric Label marks a
// positional field.
type Field struct {
	Label string
	Value any
}

// Labeled returns a named field.
func Labeled(label string, v any) Field {
	return Field{Label: label, Value: v}
}

// Positional returns an unlabeled field.
func Positional(v any) Field {
	return Field{Value: v}
}

// Variant is implemented by tagged values: a constructor name plus ordered
// fields. Implementations render as Tag(label: value, ...) or as the bare
// tag when there are no fields.
type Variant interface {
	Tag() string
	Fields() []Field
}

// Record is the stock Variant implementation.
type Record struct {
	Name   string
	Values []Field
}

// NewRecord builds a Record from a constructor name and its fields.
func NewRecord(name string, fields ...Field) Record {
	return Record{Name: name, Values: fields}
}

func (r Record) Tag() string     { return r.Name }
func (r Record) Fields() []Field { return r.Values }

// Pair is one entry of a Dict.
type Pair struct {
	Key   any
	Value any
}

// Dict is an insertion-ordered map, rendered as dict.from_list([#(k, v), ...]).
type Dict struct {
	Pairs []Pair
}

// DictOf builds a Dict from alternating keys and values. A trailing key
// without a value is paired with Nil.
func DictOf(kv ...any) Dict {
	var d Dict
	for i := 0; i < len(kv); i += 2 {
		var v any = Nil{}
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		d.Set(kv[i], v)
	}
	return d
}

// Set stores v under k, replacing the value of an equal key in place.
func (d *Dict) Set(k, v any) {
	for i := range d.Pairs {
		if reflect.DeepEqual(d.Pairs[i].Key, k) {
			d.Pairs[i].Value = v
			return
		}
	}
	d.Pairs = append(d.Pairs, Pair{Key: k, Value: v})
}

// Get returns the value stored under k.
func (d Dict) Get(k any) (any, bool) {
	for _, p := range d.Pairs {
		if reflect.DeepEqual(p.Key, k) {
			return p.Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (d Dict) Len() int { return len(d.Pairs) }
