package witvalue

import (
	stderrors "errors"
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/pretty-debug/errors"
	"github.com/wippyai/pretty-debug/pretty"
)

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func render(t *testing.T, typ wit.Type, v any) string {
	t.Helper()
	lifted, err := Lift(typ, v)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	return pretty.Inspect(lifted, pretty.WithBreakLength(80))
}

func TestLift_Primitives(t *testing.T) {
	tests := []struct {
		name string
		typ  wit.Type
		in   any
		want string
	}{
		{"bool", wit.Bool{}, true, "True"},
		{"u8", wit.U8{}, uint8(7), "7"},
		{"s64", wit.S64{}, int64(-3), "-3"},
		{"u64", wit.U64{}, uint64(18446744073709551615), "18446744073709551615"},
		{"f32", wit.F32{}, float32(1.5), "1.5"},
		{"f64", wit.F64{}, 2.0, "2.0"},
		{"char", wit.Char{}, 'x', "//utfcodepoint(x)"},
		{"string", wit.String{}, "hi\n", `"hi\n"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.typ, tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLift_Record(t *testing.T) {
	point := named("point", &wit.Record{
		Fields: []wit.Field{
			{Name: "x", Type: wit.S32{}},
			{Name: "y", Type: wit.S32{}},
		},
	})

	got := render(t, point, map[string]any{"y": int32(2), "x": int32(1)})
	if want := "point(x: 1, y: 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	anon := &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{{Name: "a", Type: wit.Bool{}}}}}
	if got := render(t, anon, map[string]any{"a": false}); got != "record(a: False)" {
		t.Errorf("anonymous record: got %q", got)
	}
}

func TestLift_RecordMissingField(t *testing.T) {
	point := named("point", &wit.Record{
		Fields: []wit.Field{{Name: "x", Type: wit.S32{}}},
	})

	_, err := Lift(point, map[string]any{})
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if e.Phase != errors.PhaseLift || e.Kind != errors.KindFieldMissing {
		t.Errorf("unexpected error: %v", e)
	}
}

func TestLift_Lists(t *testing.T) {
	bytesList := &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}
	if got := render(t, bytesList, []uint8{1, 2, 3}); got != "<<1, 2, 3>>" {
		t.Errorf("list<u8>: got %q", got)
	}

	u32s := &wit.TypeDef{Kind: &wit.List{Type: wit.U32{}}}
	if got := render(t, u32s, []uint32{4, 5}); got != "[4, 5]" {
		t.Errorf("list<u32>: got %q", got)
	}
	if got := render(t, u32s, []uint32(nil)); got != "[]" {
		t.Errorf("empty list: got %q", got)
	}

	strs := &wit.TypeDef{Kind: &wit.List{Type: wit.String{}}}
	if got := render(t, strs, []string{"a", "b"}); got != `["a", "b"]` {
		t.Errorf("list<string>: got %q", got)
	}
}

func TestLift_OptionResultTuple(t *testing.T) {
	opt := &wit.TypeDef{Kind: &wit.Option{Type: wit.U32{}}}
	if got := render(t, opt, uint32(9)); got != "Some(9)" {
		t.Errorf("some: got %q", got)
	}
	if got := render(t, opt, nil); got != "None" {
		t.Errorf("none: got %q", got)
	}

	res := &wit.TypeDef{Kind: &wit.Result{OK: wit.U32{}, Err: wit.String{}}}
	if got := render(t, res, map[string]any{"ok": uint32(1)}); got != "Ok(1)" {
		t.Errorf("ok: got %q", got)
	}
	if got := render(t, res, map[string]any{"err": "boom"}); got != `Error("boom")` {
		t.Errorf("err: got %q", got)
	}

	unit := &wit.TypeDef{Kind: &wit.Result{}}
	if got := render(t, unit, map[string]any{"ok": nil}); got != "Ok(Nil)" {
		t.Errorf("unit ok: got %q", got)
	}

	tuple := &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U32{}, wit.String{}}}}
	if got := render(t, tuple, []any{uint32(1), "a"}); got != `#(1, "a")` {
		t.Errorf("tuple: got %q", got)
	}
	if _, err := Lift(tuple, []any{uint32(1)}); err == nil {
		t.Error("expected error for short tuple")
	}
}

func TestLift_EnumFlagsVariant(t *testing.T) {
	color := named("color", &wit.Enum{Cases: []wit.EnumCase{{Name: "red"}, {Name: "green"}}})
	if got := render(t, color, uint32(1)); got != "green" {
		t.Errorf("enum: got %q", got)
	}
	if _, err := Lift(color, uint32(5)); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLift, Kind: errors.KindInvalidVariant}) {
		t.Errorf("expected invalid discriminant, got %v", err)
	}

	perms := named("perms", &wit.Flags{Flags: []wit.Flag{{Name: "read"}, {Name: "write"}, {Name: "exec"}}})
	if got := render(t, perms, uint64(0b101)); got != `["read", "exec"]` {
		t.Errorf("flags: got %q", got)
	}
	if _, err := Lift(perms, uint64(0b1000)); err == nil {
		t.Error("expected error for out of range flag bit")
	}

	shape := named("shape", &wit.Variant{Cases: []wit.Case{
		{Name: "circle", Type: wit.F64{}},
		{Name: "empty"},
	}})
	if got := render(t, shape, map[string]any{"circle": 1.0}); got != "circle(1.0)" {
		t.Errorf("variant: got %q", got)
	}
	if got := render(t, shape, map[string]any{"empty": nil}); got != "empty" {
		t.Errorf("variant without payload: got %q", got)
	}
	if _, err := Lift(shape, map[string]any{"square": 1.0}); err == nil {
		t.Error("expected error for unknown case")
	}
}

func TestLift_Handles(t *testing.T) {
	file := named("file", &wit.Resource{})
	own := &wit.TypeDef{Kind: &wit.Own{Type: file}}
	if got := render(t, own, uint32(3)); got != "own<file>(3)" {
		t.Errorf("own: got %q", got)
	}

	borrow := &wit.TypeDef{Kind: &wit.Borrow{}}
	if got := render(t, borrow, uint32(4)); got != "borrow<resource>(4)" {
		t.Errorf("borrow: got %q", got)
	}
}

func TestLift_TypeMismatch(t *testing.T) {
	_, err := Lift(wit.U32{}, "nope")
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if e.Kind != errors.KindTypeMismatch || e.GoType != "string" || e.WitType != "u32" {
		t.Errorf("unexpected error: %+v", e)
	}
}

func TestLift_IntegerRange(t *testing.T) {
	tests := []struct {
		name string
		typ  wit.Type
		in   any
		ok   bool
	}{
		{"u8 max", wit.U8{}, 255, true},
		{"u8 over", wit.U8{}, 300, false},
		{"u8 negative", wit.U8{}, -1, false},
		{"s8 min", wit.S8{}, int64(-128), true},
		{"s8 unsigned over", wit.S8{}, uint8(200), false},
		{"s64 from huge uint", wit.S64{}, uint64(1 << 63), false},
		{"u32 from int64", wit.U32{}, int64(4294967295), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lift(tt.typ, tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != errors.KindOverflow {
				t.Fatalf("expected overflow error, got %v", err)
			}
			if e.WitType != TypeName(tt.typ) {
				t.Errorf("WitType = %q, want %q", e.WitType, TypeName(tt.typ))
			}
		})
	}
}

func TestLift_NestedPath(t *testing.T) {
	inner := named("inner", &wit.Record{Fields: []wit.Field{{Name: "v", Type: wit.Bool{}}}})
	list := &wit.TypeDef{Kind: &wit.List{Type: inner}}

	_, err := Lift(list, []any{map[string]any{"v": true}, map[string]any{"v": 1}})
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	want := []string{"[1]", "v"}
	if len(e.Path) != len(want) || e.Path[0] != want[0] || e.Path[1] != want[1] {
		t.Errorf("path = %v, want %v", e.Path, want)
	}
}

func TestLiftResults(t *testing.T) {
	out, err := LiftResults([]wit.Type{wit.U32{}, wit.String{}}, []any{uint32(1), "a"})
	if err != nil {
		t.Fatalf("LiftResults failed: %v", err)
	}
	if len(out) != 2 || out[0] != uint32(1) || out[1] != "a" {
		t.Errorf("unexpected results: %v", out)
	}

	if _, err := LiftResults([]wit.Type{wit.U32{}}, nil); err == nil {
		t.Error("expected error for count mismatch")
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		typ  wit.Type
		want string
	}{
		{wit.U32{}, "u32"},
		{named("point", &wit.Record{}), "point"},
		{&wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}, "list<u8>"},
		{&wit.TypeDef{Kind: &wit.Option{Type: wit.String{}}}, "option<string>"},
		{&wit.TypeDef{Kind: &wit.Result{OK: wit.U32{}}}, "result<u32, _>"},
		{&wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U8{}, wit.Bool{}}}}, "tuple<u8, bool>"},
	}

	for _, tt := range tests {
		if got := TypeName(tt.typ); got != tt.want {
			t.Errorf("TypeName = %q, want %q", got, tt.want)
		}
	}
}
