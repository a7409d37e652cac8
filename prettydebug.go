package prettydebug

import "github.com/wippyai/pretty-debug/pretty"

// Inspect renders v as debug text. See pretty.Inspect.
func Inspect(v any, opts ...pretty.Option) string {
	return pretty.Inspect(v, opts...)
}

// FloatToString renders f so that the text always contains a decimal point.
func FloatToString(f float64) string {
	return pretty.FloatToString(f)
}
