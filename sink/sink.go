// Package sink provides output streams that can be silenced and restored.
//
// Rendering never writes anywhere; the command and test harnesses write
// through a Streams value so incidental output can be suppressed around a
// full-screen view or an assertion:
//
//	streams := sink.Std()
//	streams.Suppress()
//	defer streams.Restore()
package sink

import (
	"bytes"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Switch is an io.Writer that forwards to a destination unless muted.
// Muted writes report success and are discarded.
type Switch struct {
	mu    sync.Mutex
	dest  io.Writer
	muted atomic.Int32
}

// NewSwitch returns a Switch writing to dest.
func NewSwitch(dest io.Writer) *Switch {
	return &Switch{dest: dest}
}

func (s *Switch) Write(p []byte) (int, error) {
	if s.muted.Load() > 0 {
		return len(p), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dest == nil {
		return len(p), nil
	}
	return s.dest.Write(p)
}

// Sync flushes the destination when it supports it, so a Switch can back a
// zap core.
func (s *Switch) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if syncer, ok := s.dest.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Mute discards writes until a matching Unmute. Calls nest.
func (s *Switch) Mute() {
	s.muted.Add(1)
}

// Unmute undoes one Mute. Extra calls are ignored.
func (s *Switch) Unmute() {
	for {
		n := s.muted.Load()
		if n <= 0 || s.muted.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// Muted reports whether writes are currently discarded.
func (s *Switch) Muted() bool {
	return s.muted.Load() > 0
}

// Streams pairs the two standard text outputs.
type Streams struct {
	Stdout *Switch
	Stderr *Switch
}

// NewStreams returns streams writing to stdout and stderr.
func NewStreams(stdout, stderr io.Writer) *Streams {
	return &Streams{Stdout: NewSwitch(stdout), Stderr: NewSwitch(stderr)}
}

// Buffered returns streams writing to fresh buffers, for tests.
func Buffered() (*Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewStreams(&out, &errOut), &out, &errOut
}

// Suppress silences both streams.
func (s *Streams) Suppress() {
	s.Stdout.Mute()
	s.Stderr.Mute()
}

// Restore undoes one Suppress.
func (s *Streams) Restore() {
	s.Stdout.Unmute()
	s.Stderr.Unmute()
}

var (
	std     *Streams
	stdOnce sync.Once
)

// Std returns the process-wide streams over os.Stdout and os.Stderr.
func Std() *Streams {
	stdOnce.Do(func() {
		std = NewStreams(os.Stdout, os.Stderr)
	})
	return std
}
