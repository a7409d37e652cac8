package pretty

import (
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// Kind is the classification of a value for rendering.
type Kind uint8

const (
	KindOpaque Kind = iota
	KindBoolean
	KindHostNull
	KindAbsent
	KindString
	KindInteger
	KindFloat
	KindTuple
	KindList
	KindCodepoint
	KindBitArray
	KindRecord
	KindMap
	KindSet
	KindRegexp
	KindTime
	KindFunction
	KindError
	KindObject
)

var kindNames = [...]string{
	KindOpaque:    "opaque",
	KindBoolean:   "boolean",
	KindHostNull:  "host-null",
	KindAbsent:    "absent",
	KindString:    "string",
	KindInteger:   "integer",
	KindFloat:     "float",
	KindTuple:     "tuple",
	KindList:      "list",
	KindCodepoint: "codepoint",
	KindBitArray:  "bit-array",
	KindRecord:    "record",
	KindMap:       "map",
	KindSet:       "set",
	KindRegexp:    "regexp",
	KindTime:      "time",
	KindFunction:  "function",
	KindError:     "error",
	KindObject:    "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var (
	nilType       = reflect.TypeOf(Nil{})
	tupleType     = reflect.TypeOf(Tuple(nil))
	codepointType = reflect.TypeOf(Codepoint{})
	bitArrayType  = reflect.TypeOf(BitArray(nil))
	dictType      = reflect.TypeOf(Dict{})
	bigIntType    = reflect.TypeOf(big.Int{})
	bigIntPtrType = reflect.TypeOf((*big.Int)(nil))
	regexpPtrType = reflect.TypeOf((*regexp.Regexp)(nil))
	timeType      = reflect.TypeOf(time.Time{})
	variantType   = reflect.TypeOf((*Variant)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	emptyType     = reflect.TypeOf(struct{}{})
)

// Classify returns the Kind of v. Pointers and interfaces are followed until
// a value that renders on its own is reached.
func Classify(v any) Kind {
	return classify(settle(reflect.ValueOf(v)))
}

// classify is total: the order of the checks decides between overlapping
// kinds, so integers are recognized before floats and the wrapper types of
// this package before the generic slice and struct shapes.
func classify(v reflect.Value) Kind {
	switch {
	case !v.IsValid():
		return KindHostNull
	case v.Kind() == reflect.Bool:
		return KindBoolean
	case isNilRef(v):
		return KindHostNull
	case v.Type() == nilType:
		return KindAbsent
	case v.Kind() == reflect.String:
		return KindString
	case isInteger(v):
		return KindInteger
	case v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64:
		return KindFloat
	case v.Type() == tupleType || v.Kind() == reflect.Array:
		return KindTuple
	case v.Kind() == reflect.Slice && !isByteSlice(v.Type()):
		return KindList
	case v.Type() == codepointType:
		return KindCodepoint
	case v.Type() == bitArrayType || isByteSlice(v.Type()):
		return KindBitArray
	case implements(v, variantType):
		return KindRecord
	case v.Type() == dictType:
		return KindMap
	case v.Kind() == reflect.Map && v.Type().Elem() == emptyType:
		return KindSet
	case v.Kind() == reflect.Map:
		return KindMap
	case v.Type() == regexpPtrType:
		return KindRegexp
	case v.Type() == timeType:
		return KindTime
	case v.Kind() == reflect.Func:
		return KindFunction
	case implements(v, errorType):
		return KindError
	case v.Kind() == reflect.Struct:
		return KindObject
	default:
		return KindOpaque
	}
}

func isNilRef(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func isInteger(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	t := v.Type()
	return t == bigIntPtrType || t == bigIntType
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

func implements(v reflect.Value, iface reflect.Type) bool {
	return v.CanInterface() && v.Type().Implements(iface)
}

// keepsPointer reports whether a pointer is rendered as itself instead of
// through its target.
func keepsPointer(v reflect.Value) bool {
	t := v.Type()
	if t == bigIntPtrType || t == regexpPtrType {
		return true
	}
	return implements(v, variantType) || implements(v, errorType)
}

// settle unwraps interfaces and non-nil pointers without cycle tracking.
func settle(v reflect.Value) reflect.Value {
	for i := 0; i < maxSettleDepth && v.IsValid(); i++ {
		switch {
		case v.Kind() == reflect.Interface && !v.IsNil():
			v = v.Elem()
		case v.Kind() == reflect.Pointer && !v.IsNil() && !keepsPointer(v):
			v = v.Elem()
		default:
			return v
		}
	}
	return v
}

const maxSettleDepth = 64
