// Package termsize reports the width of the process's output terminal.
package termsize

import (
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not attached to a terminal.
const DefaultWidth = 80

var stdoutIsTerminal int32 = -1 // -1 = unchecked, 0 = no, 1 = yes

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// StdoutWidth returns the column count of stdout when it is a terminal.
// The terminal check is cached; the size is read on every call so resizes
// are picked up.
func StdoutWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !isTerminal(fd, &stdoutIsTerminal) {
		return 0, false
	}
	return columns(fd)
}

// BreakLength returns the stdout terminal width, or DefaultWidth when stdout
// is not a terminal or its size cannot be read.
func BreakLength() int {
	if w, ok := StdoutWidth(); ok {
		return w
	}
	return DefaultWidth
}

func columns(fd int) (int, bool) {
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
