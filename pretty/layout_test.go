package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		shape shape
		width int
		want  string
	}{
		{
			name:  "empty",
			shape: shape{prefix: "[", suffix: "]"},
			width: 80,
			want:  "[]",
		},
		{
			name:  "empty padded",
			shape: shape{prefix: "{", suffix: "}", padded: true},
			width: 80,
			want:  "{}",
		},
		{
			name:  "single line",
			shape: shape{prefix: "[", suffix: "]", items: []string{"1", "2", "3"}},
			width: 80,
			want:  "[1, 2, 3]",
		},
		{
			name:  "single line padded",
			shape: shape{prefix: "{", suffix: "}", items: []string{"a", "b"}, padded: true},
			width: 80,
			want:  "{ a, b }",
		},
		{
			name:  "one per line",
			shape: shape{prefix: "[", suffix: "]", items: []string{"1", "2", "3"}},
			width: 8,
			want:  "[\n  1,\n  2,\n  3,\n]",
		},
		{
			name:  "greedy fill",
			shape: shape{prefix: "#(", suffix: ")", items: []string{"aa", "bb", "cc", "dd"}},
			width: 12,
			want:  "#(\n  aa, bb,\n  cc, dd,\n)",
		},
		{
			name:  "non-positive width",
			shape: shape{prefix: "[", suffix: "]", items: []string{"1", "2"}},
			width: -4,
			want:  "[\n  1,\n  2,\n]",
		},
		{
			name:  "multi-line item forces break",
			shape: shape{prefix: "[", suffix: "]", items: []string{"1", "[\n  2,\n]", "3"}},
			width: 80,
			want:  "[\n  1, \n  [\n    2,\n  ], \n  3,\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout(tt.shape, tt.width))
		})
	}
}

func TestFold_DropsBlankLines(t *testing.T) {
	lines := fold([]string{"a\n\n  \nb"}, 80)
	assert.Equal(t, []string{"a", "b, "}, lines)
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, displayWidth("abc"))
	assert.Equal(t, 4, displayWidth("世界"))
	assert.Equal(t, 0, displayWidth(""))
}

func TestLayout_WideRunes(t *testing.T) {
	items := []string{`"世界世界"`, `"世界世界"`}
	// Ten columns each, fourteen bytes each.
	assert.Equal(t, `["世界世界", "世界世界"]`, layout(shape{prefix: "[", suffix: "]", items: items}, 30))

	out := layout(shape{prefix: "[", suffix: "]", items: items}, 24)
	assert.Equal(t, "[\n  \"世界世界\",\n  \"世界世界\",\n]", out)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, displayWidth(line), 24)
	}
}
