package source

import (
	"fmt"
)

// Span is a half-open column range inside one input line.
type Span struct {
	Start uint32 // колонка в рунах, включительно (0-based)
	End   uint32 // не включительно
}

// At returns the one-column span starting at col.
func At(col uint32) Span {
	return Span{Start: col, End: col + 1}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
