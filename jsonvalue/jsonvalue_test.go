package jsonvalue

import (
	stderrors "errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pretty-debug/errors"
	"github.com/wippyai/pretty-debug/pretty"
)

func TestDecode_Scalars(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"null", pretty.Nil{}},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"1.5", 1.5},
		{"2e3", 2000.0},
		{`"a\nb"`, "a\nb"},
		{`"é"`, "é"},
		{"  \n 12 \n", int64(12)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_BigInteger(t *testing.T) {
	got, err := Decode([]byte("123456789012345678901234567890"))
	require.NoError(t, err)

	n, ok := got.(*big.Int)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, "123456789012345678901234567890", n.String())
}

func TestDecode_ObjectOrder(t *testing.T) {
	got, err := Decode([]byte(`{"z": 1, "a": [1, "x", null], "m": {}}`))
	require.NoError(t, err)

	d, ok := got.(pretty.Dict)
	require.True(t, ok, "got %T", got)
	require.Equal(t, 3, d.Len())
	assert.Equal(t, "z", d.Pairs[0].Key)
	assert.Equal(t, "a", d.Pairs[1].Key)
	assert.Equal(t, "m", d.Pairs[2].Key)
	assert.Equal(t, []any{int64(1), "x", pretty.Nil{}}, d.Pairs[1].Value)
	assert.Equal(t, pretty.Dict{}, d.Pairs[2].Value)

	assert.Equal(t,
		`dict.from_list([#("z", 1), #("a", [1, "x", Nil]), #("m", dict.from_list([]))])`,
		pretty.Inspect(got, pretty.WithBreakLength(80)))
}

func TestDecode_TaggedRecord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"labeled", `{"$tag": "Point", "x": 1, "y": 2}`, "Point(x: 1, y: 2)"},
		{"positional", `{"$tag": "Some", "0": "v"}`, `Some("v")`},
		{"no fields", `{"$tag": "None"}`, "None"},
		{"nested", `{"$tag": "Ok", "0": {"$tag": "Pair", "0": 1, "1": 2.0}}`, "Ok(Pair(1, 2.0))"},
		{"non-string tag is a member", `{"$tag": 1}`, `dict.from_list([#("$tag", 1)])`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, pretty.Inspect(got, pretty.WithBreakLength(80)))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind errors.Kind
	}{
		{"empty", "   ", errors.KindInvalidInput},
		{"trailing data", "1 2", errors.KindInvalidData},
		{"unterminated array", "[1, 2", errors.KindInvalidData},
		{"bad literal", "nope", errors.KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in))
			require.Error(t, err)

			var e *errors.Error
			require.True(t, stderrors.As(err, &e), "got %T: %v", err, err)
			assert.Equal(t, errors.PhaseDecode, e.Phase)
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestDecodeLines(t *testing.T) {
	docs, err := DecodeLines([]byte("1\n\n[true]\n  \n\"s\"\n"))
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), []any{true}, "s"}, docs)
}

func TestDecodeLines_ErrorHasLine(t *testing.T) {
	_, err := DecodeLines([]byte("1\n2\n{\n"))
	require.Error(t, err)

	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	require.NotEmpty(t, e.Path)
	assert.Equal(t, "line 3", e.Path[0])
}
