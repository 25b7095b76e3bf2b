package converter

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single input line
const maxLineSize = 1024 * 1024

// LineSource yields input lines one at a time, in order. It is finite and
// not restartable. *bufio.Scanner satisfies it.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// NewLineSource splits r into lines with LF and CRLF terminators stripped
func NewLineSource(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

type sliceSource struct {
	lines []string
	cur   string
}

// Lines returns an in-memory LineSource over lines
func Lines(lines ...string) LineSource {
	return &sliceSource{lines: lines}
}

func (s *sliceSource) Scan() bool {
	if len(s.lines) == 0 {
		return false
	}
	s.cur, s.lines = s.lines[0], s.lines[1:]
	return true
}

func (s *sliceSource) Text() string { return s.cur }

func (s *sliceSource) Err() error { return nil }
