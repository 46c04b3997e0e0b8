package driver

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"bares/internal/diag"
	"bares/internal/source"
	"bares/internal/trace"
)

// LineSource yields input lines one at a time. source.Reader implements it.
type LineSource interface {
	Next() bool
	Line() source.Line
	Err() error
}

// Sink receives exactly one Outcome per processed line.
type Sink interface {
	Emit(o Outcome) error
	Flush() error
}

// Stats summarizes a run.
type Stats struct {
	Inputs int
	Lines  int
	OK     int
	Failed int
	ByCode map[diag.Code]int
}

// Merge adds other into s.
func (s *Stats) Merge(other Stats) {
	s.Inputs += other.Inputs
	s.Lines += other.Lines
	s.OK += other.OK
	s.Failed += other.Failed
	if len(other.ByCode) == 0 {
		return
	}
	if s.ByCode == nil {
		s.ByCode = make(map[diag.Code]int, len(other.ByCode))
	}
	for code, n := range other.ByCode {
		s.ByCode[code] += n
	}
}

// Run processes every line of lines and emits one Outcome per line to sink.
// A failing line never stops the loop; the returned error is a read error,
// a sink error or the context's error.
func Run(ctx context.Context, lines LineSource, sink Sink, opts Options) (Stats, error) {
	tr := trace.FromContext(ctx)
	name := "<input>"
	if n, ok := lines.(interface{ Name() string }); ok {
		name = n.Name()
	}
	span := trace.Begin(tr, trace.ScopeDriver, "input", trace.CurrentSpan(ctx).SpanID).WithExtra("name", name)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	bag := diag.NewBag(0)
	opts.Reporter = diag.MultiReporter{opts.Reporter, diag.BagReporter{Bag: bag}}

	stats := Stats{Inputs: 1}
	finish := func(err error) (Stats, error) {
		stats.ByCode = bag.CountByCode()
		if ferr := sink.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", ferr)
		}
		span.WithExtra("lines", strconv.Itoa(stats.Lines)).
			WithExtra("failed", strconv.Itoa(stats.Failed))
		if err != nil {
			span.End(err.Error())
		} else {
			span.End("")
		}
		return stats, err
	}

	for lines.Next() {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		out := Process(ctx, lines.Line(), opts)
		stats.Lines++
		if out.OK() {
			stats.OK++
		} else {
			stats.Failed++
		}
		if err := sink.Emit(out); err != nil {
			return finish(fmt.Errorf("write output: %w", err))
		}
		if opts.FlushEachLine {
			if err := sink.Flush(); err != nil {
				return finish(fmt.Errorf("flush output: %w", err))
			}
		}
	}
	return finish(lines.Err())
}

// SliceSource serves lines from memory; handy for tests and the REPL.
type SliceSource struct {
	name  string
	lines []string
	pos   int
}

// NewSliceSource returns a LineSource over lines, numbered from 1.
func NewSliceSource(name string, lines ...string) *SliceSource {
	return &SliceSource{name: name, lines: lines}
}

func (s *SliceSource) Next() bool {
	if s.pos >= len(s.lines) {
		return false
	}
	s.pos++
	return true
}

func (s *SliceSource) Line() source.Line {
	return source.Line{Name: s.name, Num: uint32(s.pos), Text: s.lines[s.pos-1]} //nolint:gosec // строк в памяти заведомо меньше 2^32
}

func (s *SliceSource) Err() error   { return nil }
func (s *SliceSource) Name() string { return s.name }

// Codes returns the failure codes seen, in ascending order.
func (s Stats) Codes() []diag.Code {
	return slices.Sorted(maps.Keys(s.ByCode))
}
