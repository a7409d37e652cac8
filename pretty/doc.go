// Package pretty renders Go values as deterministic, width-aware debug text.
//
// Values are classified into a closed set of kinds. Leaves (booleans,
// numbers, strings, code points, byte sequences, functions) render on a
// single line. Composites (tuples, lists, maps, tagged records, structs)
// are reduced to a prefix, a list of rendered children and a suffix, and
// folded greedily into lines that fit the break length:
//
//	pretty.Inspect([]int{1, 2, 3})                          // [1, 2, 3]
//	pretty.Inspect(pretty.Tuple{1, "a"})                    // #(1, "a")
//	pretty.Inspect(pretty.NewRecord("Point",
//		pretty.Labeled("x", 1), pretty.Labeled("y", 2)))    // Point(x: 1, y: 2)
//
// A composite that does not fit is broken across lines indented by two
// spaces, with the closing bracket on its own line:
//
//	[
//	  1, 2, 3, 4, 5,
//	  6, 7, 8,
//	]
//
// Line width is measured in terminal display columns, not bytes or runes, so
// East Asian wide characters count as two columns and a list of CJK strings
// breaks earlier than a byte or code unit count would suggest.
//
// Host values with no native rendering are wrapped in the //go(...) marker,
// for example //go(nil) for a Go nil and //go(Point { "X": 1 }) for a
// struct. References that loop back onto the path being rendered print as
// //go(cycle). Time values, regular expressions and big integers held in
// unexported struct fields print only their type, e.g. //go(time.Time).
package pretty
