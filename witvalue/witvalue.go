// Package witvalue converts Component Model values, in the Go shapes a
// canonical ABI decoder produces, into values the pretty printer renders in
// their WIT form.
//
//	record            map[string]any  -> pretty.Record named after the type
//	tuple             []any           -> pretty.Tuple
//	list<u8>          []uint8         -> pretty.BitArray
//	list<T>           []T             -> []any
//	option<T>         nil or value    -> None / Some(value)
//	result<T, E>      {"ok"|"err": v} -> Ok(v) / Error(v)
//	variant           {case: payload} -> Case(payload) or Case
//	enum              uint32          -> Case
//	flags             uint64          -> list of set flag names
//	char              rune            -> pretty.Codepoint
//	own<R>, borrow<R> uint32 handle   -> own<R>(handle)
package witvalue

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/pretty-debug/errors"
	"github.com/wippyai/pretty-debug/pretty"
)

// Lift converts v, a value of WIT type t, into a printable value.
func Lift(t wit.Type, v any) (any, error) {
	return lift(t, v, nil)
}

// LiftResults lifts a function's decoded results against their types.
func LiftResults(types []wit.Type, values []any) ([]any, error) {
	if len(types) != len(values) {
		return nil, errors.New(errors.PhaseLift, errors.KindInvalidData).
			Detail("have %d values for %d result types", len(values), len(types)).
			Build()
	}
	out := make([]any, len(values))
	for i, t := range types {
		v, err := lift(t, values[i], []string{"[" + strconv.Itoa(i) + "]"})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func lift(t wit.Type, v any, path []string) (any, error) {
	switch t := t.(type) {
	case wit.Bool:
		if _, ok := v.(bool); !ok {
			return nil, mismatch(path, v, t)
		}
		return v, nil
	case wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.U64, wit.S64:
		if !isInteger(v) {
			return nil, mismatch(path, v, t)
		}
		if !fitsInteger(t, v) {
			return nil, errors.Overflow(errors.PhaseLift, path, v, TypeName(t))
		}
		return v, nil
	case wit.F32, wit.F64:
		switch v.(type) {
		case float32, float64:
			return v, nil
		}
		return nil, mismatch(path, v, t)
	case wit.Char:
		return liftChar(v, path)
	case wit.String:
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(path, v, t)
		}
		if !utf8.ValidString(s) {
			return nil, errors.InvalidUTF8(errors.PhaseLift, path, []byte(s))
		}
		return s, nil
	case *wit.TypeDef:
		return liftTypeDef(t, v, path)
	default:
		return nil, errors.Unsupported(errors.PhaseLift, fmt.Sprintf("WIT type %T", t))
	}
}

func liftTypeDef(t *wit.TypeDef, v any, path []string) (any, error) {
	switch kind := t.Kind.(type) {
	case *wit.Record:
		return liftRecord(t, kind, v, path)
	case *wit.List:
		return liftList(kind, v, path)
	case *wit.Option:
		return liftOption(kind, v, path)
	case *wit.Tuple:
		return liftTuple(kind, v, path)
	case *wit.Enum:
		return liftEnum(kind, v, path)
	case *wit.Flags:
		return liftFlags(kind, v, path)
	case *wit.Result:
		return liftResult(kind, v, path)
	case *wit.Variant:
		return liftVariant(kind, v, path)
	case *wit.Own:
		return liftHandle("own", kind.Type, v, path)
	case *wit.Borrow:
		return liftHandle("borrow", kind.Type, v, path)
	case wit.Type:
		return lift(kind, v, path)
	default:
		return nil, errors.Unsupported(errors.PhaseLift, fmt.Sprintf("TypeDef kind %T", kind))
	}
}

func liftRecord(t *wit.TypeDef, r *wit.Record, v any, path []string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(path, v, t)
	}
	name := "record"
	if t.Name != nil {
		name = *t.Name
	}

	fields := make([]pretty.Field, len(r.Fields))
	for i, f := range r.Fields {
		raw, ok := m[f.Name]
		if !ok {
			return nil, errors.FieldMissing(errors.PhaseLift, path, f.Name)
		}
		fv, err := lift(f.Type, raw, appendPath(path, f.Name))
		if err != nil {
			return nil, err
		}
		fields[i] = pretty.Labeled(f.Name, fv)
	}
	return pretty.NewRecord(name, fields...), nil
}

func liftList(l *wit.List, v any, path []string) (any, error) {
	if _, isByte := l.Type.(wit.U8); isByte {
		if b, ok := v.([]uint8); ok {
			return pretty.BitArray(b), nil
		}
	}

	rv := reflect.ValueOf(v)
	if v == nil {
		return []any{}, nil
	}
	if rv.Kind() != reflect.Slice {
		return nil, mismatch(path, v, l.Type)
	}

	out := make([]any, rv.Len())
	for i := range out {
		ev, err := lift(l.Type, rv.Index(i).Interface(), appendPath(path, "["+strconv.Itoa(i)+"]"))
		if err != nil {
			return nil, err
		}
		out[i] = ev
	}
	return out, nil
}

func liftOption(o *wit.Option, v any, path []string) (any, error) {
	if v == nil {
		return pretty.NewRecord("None"), nil
	}
	inner, err := lift(o.Type, v, appendPath(path, "[some]"))
	if err != nil {
		return nil, err
	}
	return pretty.NewRecord("Some", pretty.Positional(inner)), nil
}

func liftTuple(t *wit.Tuple, v any, path []string) (any, error) {
	elems, ok := v.([]any)
	if !ok || len(elems) != len(t.Types) {
		return nil, errors.New(errors.PhaseLift, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", v)).
			Detail("want %d tuple elements", len(t.Types)).
			Build()
	}
	out := make(pretty.Tuple, len(elems))
	for i, et := range t.Types {
		ev, err := lift(et, elems[i], appendPath(path, "["+strconv.Itoa(i)+"]"))
		if err != nil {
			return nil, err
		}
		out[i] = ev
	}
	return out, nil
}

func liftEnum(e *wit.Enum, v any, path []string) (any, error) {
	disc, ok := v.(uint32)
	if !ok {
		return nil, errors.New(errors.PhaseLift, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", v)).
			Detail("enum discriminant must be uint32").
			Build()
	}
	if len(e.Cases) == 0 || disc >= uint32(len(e.Cases)) {
		return nil, errors.InvalidDiscriminant(errors.PhaseLift, path, disc, uint32(max(len(e.Cases)-1, 0)))
	}
	return pretty.NewRecord(e.Cases[disc].Name), nil
}

func liftFlags(f *wit.Flags, v any, path []string) (any, error) {
	bits, ok := v.(uint64)
	if !ok {
		return nil, errors.New(errors.PhaseLift, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", v)).
			Detail("flags must be a uint64 bitmask").
			Build()
	}
	if len(f.Flags) < 64 && bits>>uint(len(f.Flags)) != 0 {
		return nil, errors.New(errors.PhaseLift, errors.KindInvalidData).
			Path(path...).
			Detail("bitmask %#x sets bits beyond %d flags", bits, len(f.Flags)).
			Build()
	}

	names := []any{}
	for i, flag := range f.Flags {
		if i < 64 && bits&(1<<uint(i)) != 0 {
			names = append(names, flag.Name)
		}
	}
	return names, nil
}

func liftResult(r *wit.Result, v any, path []string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return nil, errors.New(errors.PhaseLift, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", v)).
			Detail(`result must be a map with a single "ok" or "err" entry`).
			Build()
	}
	if payload, ok := m["ok"]; ok {
		return liftCase("Ok", r.OK, payload, appendPath(path, "[ok]"))
	}
	if payload, ok := m["err"]; ok {
		return liftCase("Error", r.Err, payload, appendPath(path, "[err]"))
	}
	return nil, errors.InvalidData(errors.PhaseLift, path, `result has neither "ok" nor "err"`)
}

// liftCase renders a result arm. Arms without a type carry Nil so Ok and
// Error always take one argument.
func liftCase(tag string, t wit.Type, payload any, path []string) (any, error) {
	if t == nil {
		return pretty.NewRecord(tag, pretty.Positional(pretty.Nil{})), nil
	}
	inner, err := lift(t, payload, path)
	if err != nil {
		return nil, err
	}
	return pretty.NewRecord(tag, pretty.Positional(inner)), nil
}

func liftVariant(vt *wit.Variant, v any, path []string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return nil, errors.New(errors.PhaseLift, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", v)).
			Detail("variant must be a map with a single case entry").
			Build()
	}
	for _, c := range vt.Cases {
		payload, ok := m[c.Name]
		if !ok {
			continue
		}
		if c.Type == nil {
			return pretty.NewRecord(c.Name), nil
		}
		inner, err := lift(c.Type, payload, appendPath(path, c.Name))
		if err != nil {
			return nil, err
		}
		return pretty.NewRecord(c.Name, pretty.Positional(inner)), nil
	}

	var got string
	for k := range m {
		got = k
	}
	return nil, errors.New(errors.PhaseLift, errors.KindInvalidVariant).
		Path(path...).
		Detail("unknown case %q", got).
		Build()
}

func liftHandle(kind string, resource *wit.TypeDef, v any, path []string) (any, error) {
	handle, ok := v.(uint32)
	if !ok {
		return nil, errors.New(errors.PhaseLift, errors.KindTypeMismatch).
			Path(path...).
			GoType(fmt.Sprintf("%T", v)).
			Detail("%s handle must be uint32", kind).
			Build()
	}
	name := "resource"
	if resource != nil && resource.Name != nil {
		name = *resource.Name
	}
	return pretty.NewRecord(kind+"<"+name+">", pretty.Positional(handle)), nil
}

func liftChar(v any, path []string) (any, error) {
	var r rune
	switch c := v.(type) {
	case rune:
		r = c
	case uint32:
		r = rune(c)
	default:
		return nil, mismatch(path, v, wit.Char{})
	}
	if !utf8.ValidRune(r) {
		return nil, errors.New(errors.PhaseLift, errors.KindInvalidData).
			Path(path...).
			Detail("invalid char value %#x", uint32(r)).
			Build()
	}
	return pretty.Codepoint{Value: r}, nil
}

func isInteger(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

var integerTypes = map[wit.Type]reflect.Type{
	wit.U8{}:  reflect.TypeOf(uint8(0)),
	wit.S8{}:  reflect.TypeOf(int8(0)),
	wit.U16{}: reflect.TypeOf(uint16(0)),
	wit.S16{}: reflect.TypeOf(int16(0)),
	wit.U32{}: reflect.TypeOf(uint32(0)),
	wit.S32{}: reflect.TypeOf(int32(0)),
	wit.U64{}: reflect.TypeOf(uint64(0)),
	wit.S64{}: reflect.TypeOf(int64(0)),
}

// fitsInteger reports whether the Go integer v is in range for t.
func fitsInteger(t wit.Type, v any) bool {
	target := reflect.New(integerTypes[t]).Elem()
	signed := target.CanInt()
	rv := reflect.ValueOf(v)
	if rv.CanInt() {
		n := rv.Int()
		if signed {
			return !target.OverflowInt(n)
		}
		return n >= 0 && !target.OverflowUint(uint64(n))
	}
	u := rv.Uint()
	if signed {
		return u <= math.MaxInt64 && !target.OverflowInt(int64(u))
	}
	return !target.OverflowUint(u)
}

func mismatch(path []string, v any, t wit.Type) *errors.Error {
	return errors.TypeMismatch(errors.PhaseLift, path, fmt.Sprintf("%T", v), TypeName(t))
}

func appendPath(path []string, elem string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}

// TypeName returns the WIT spelling of t, using the declared name of named
// types.
func TypeName(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v == nil {
			return "_"
		}
		if v.Name != nil {
			return *v.Name
		}
		return kindName(v.Kind)
	case nil:
		return "_"
	default:
		return fmt.Sprintf("%T", t)
	}
}

func kindName(kind wit.TypeDefKind) string {
	switch k := kind.(type) {
	case *wit.List:
		return "list<" + TypeName(k.Type) + ">"
	case *wit.Option:
		return "option<" + TypeName(k.Type) + ">"
	case *wit.Result:
		return "result<" + TypeName(k.OK) + ", " + TypeName(k.Err) + ">"
	case *wit.Tuple:
		s := "tuple<"
		for i, t := range k.Types {
			if i > 0 {
				s += ", "
			}
			s += TypeName(t)
		}
		return s + ">"
	case *wit.Own:
		return "own<" + TypeName(k.Type) + ">"
	case *wit.Borrow:
		return "borrow<" + TypeName(k.Type) + ">"
	case wit.Type:
		return TypeName(k)
	default:
		return "typedef"
	}
}
