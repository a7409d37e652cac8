package pretty

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	foreignOpen  = "//go("
	foreignClose = ")"

	hostNullText = foreignOpen + "nil" + foreignClose
	cycleText    = foreignOpen + "cycle" + foreignClose
)

// FloatToString renders f so that the text always contains a decimal
// point: 1 becomes 1.0 and 1.5e+10 becomes 1.5e10.
func FloatToString(f float64) string {
	return canonicalFloat(strconv.FormatFloat(f, 'g', -1, 64))
}

// FloatToString32 is FloatToString for single precision values.
func FloatToString32(f float32) string {
	return canonicalFloat(strconv.FormatFloat(float64(f), 'g', -1, 32))
}

func canonicalFloat(s string) string {
	s = strings.Replace(s, "+", "", 1)
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

// InspectString renders s as a double-quoted literal. Control characters and
// the range between ~ and U+00A0 are escaped as \u{XXXX}.
func InspectString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			if r < ' ' || (r > '~' && r < '\u00a0') {
				fmt.Fprintf(&b, `\u{%04X}`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// InspectBitArray renders b as <<1, 2, 3>>. The output is always a single
// line regardless of length.
func InspectBitArray(b []byte) string {
	var sb strings.Builder
	sb.WriteString("<<")
	for i, c := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteString(">>")
	return sb.String()
}

// InspectCodepoint renders a single code point with the //utfcodepoint marker.
func InspectCodepoint(r rune) string {
	return "//utfcodepoint(" + string(r) + ")"
}

func inspectBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// inspectFunction renders a synthetic signature with one letter per parameter.
func inspectFunction(arity int) string {
	names := make([]string, arity)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	return "//fn(" + strings.Join(names, ", ") + ") { ... }"
}

func inspectInteger(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	}
	if !v.CanInterface() {
		return inspectOpaque(v)
	}
	switch n := v.Interface().(type) {
	case *big.Int:
		return n.String()
	case big.Int:
		return n.String()
	}
	return inspectOpaque(v)
}

func inspectFloat(v reflect.Value) string {
	if v.Kind() == reflect.Float32 {
		return canonicalFloat(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	}
	return FloatToString(v.Float())
}

func inspectTime(t time.Time) string {
	return foreignOpen + `Time("` + t.UTC().Format(time.RFC3339Nano) + `")` + foreignClose
}

func inspectRegexp(pattern string) string {
	return foreignOpen + "/" + pattern + "/" + foreignClose
}

func inspectError(msg string) string {
	return foreignOpen + "error(" + InspectString(msg) + ")" + foreignClose
}

// inspectOpaque wraps the value's own text form in the foreign marker.
// Channels and unsafe pointers use their type so output stays deterministic
// across runs.
func inspectOpaque(v reflect.Value) string {
	if !v.IsValid() {
		return hostNullText
	}
	switch v.Kind() {
	case reflect.Chan, reflect.UnsafePointer:
		return foreignOpen + v.Type().String() + foreignClose
	case reflect.Complex64:
		return foreignOpen + strconv.FormatComplex(v.Complex(), 'g', -1, 64) + foreignClose
	case reflect.Complex128:
		return foreignOpen + strconv.FormatComplex(v.Complex(), 'g', -1, 128) + foreignClose
	}
	if v.CanInterface() {
		return foreignOpen + escapeLine(fmt.Sprint(v.Interface())) + foreignClose
	}
	return foreignOpen + v.Type().String() + foreignClose
}

// escapeLine keeps foreign text on one line.
func escapeLine(s string) string {
	if !strings.ContainsAny(s, "\n\r\t") {
		return s
	}
	return strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(s)
}
