// Package prettydebug renders Go values as deterministic, width-aware debug
// text, the way a REPL prints the result of an expression.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	prettydebug/         Root package forwarding the common entry points
//	├── pretty/          Classifier, leaf renderers, composite adapters, layout engine
//	├── jsonvalue/       JSON documents decoded into printable values (order kept)
//	├── witvalue/        Component Model values lifted into their WIT rendering
//	├── sink/            Output streams that can be suppressed and restored
//	├── config/          Settings from YAML and PRETTY_* environment variables
//	├── errors/          Structured error types for the boundary packages
//	└── cmd/inspect/     Command line front end with watch and interactive modes
//
// # Quick Start
//
//	fmt.Println(prettydebug.Inspect([]int{1, 2, 3}))
//	// [1, 2, 3]
//
//	fmt.Println(prettydebug.Inspect(pretty.NewRecord("Point",
//		pretty.Labeled("x", 1), pretty.Labeled("y", 2))))
//	// Point(x: 1, y: 2)
//
// Composites that do not fit the break length fold across lines indented by
// two spaces:
//
//	fmt.Println(prettydebug.Inspect(numbers, pretty.WithBreakLength(20)))
//	// [
//	//   1, 2, 3, 4, 5,
//	//   6, 7, 8, 9, 10,
//	// ]
//
// # Value Mapping
//
//	bool                      True / False
//	nil, nil pointers         //go(nil)
//	pretty.Nil{}              Nil
//	integers, *big.Int        decimal text
//	floats                    always with a decimal point: 1.0, 1.5e10
//	string                    double quoted with escapes
//	pretty.Tuple, arrays      #(a, b)
//	slices                    [a, b]
//	[]byte, pretty.BitArray   <<1, 2>>
//	pretty.Variant            Tag(label: value) or Tag
//	pretty.Dict, maps         dict.from_list([#(k, v)])
//	map[K]struct{}            //go(Set(a, b))
//	structs                   //go(Name { "Field": value })
//	funcs                     //fn(a, b) { ... }
//
// # Logging
//
// The pretty package logs through zap at debug level when it falls back to
// an opaque rendering or cuts a cycle. Logging is off unless configured:
//
//	pretty.SetLogger(logger)
package prettydebug
