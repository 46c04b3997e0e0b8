package driver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"bares/internal/source"
	"bares/internal/trace"
)

// StdinName is the source name used for standard input.
const StdinName = "<stdin>"

// Input is one named stream of expression lines.
type Input struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileInput returns an Input reading path; "-" means standard input.
func FileInput(path string) Input {
	if path == "-" {
		return StdinInput(os.Stdin)
	}
	return Input{
		Name: path,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// StdinInput wraps r as the standard input stream. r is never closed.
func StdinInput(r io.Reader) Input {
	return Input{
		Name: StdinName,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// StringInput serves text from memory.
func StringInput(name, text string) Input {
	return Input{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(text)), nil },
	}
}

// SinkFactory creates a sink writing to w.
type SinkFactory func(w io.Writer) Sink

// RunFiles processes inputs and writes their outputs to out in input order.
//
// With one input or jobs == 1 the inputs are processed one after another and
// output is streamed. Otherwise up to jobs inputs (GOMAXPROCS when jobs <= 0)
// run concurrently, each with its own reader, buffer and sink; buffers are
// written to out after all workers finish. Lines inside one input are always
// processed in order.
func RunFiles(ctx context.Context, inputs []Input, jobs int, out io.Writer, newSink SinkFactory, opts Options) (Stats, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeDriver, "run", trace.CurrentSpan(ctx).SpanID).
		WithExtra("inputs", fmt.Sprint(len(inputs)))
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var (
		total Stats
		err   error
	)
	if len(inputs) <= 1 || jobs == 1 {
		total, err = runSequential(ctx, inputs, out, newSink, opts)
	} else {
		total, err = runParallel(ctx, inputs, jobs, out, newSink, opts)
	}

	if err != nil {
		span.End(err.Error())
	} else {
		span.End(fmt.Sprintf("%d lines", total.Lines))
	}
	return total, err
}

func runSequential(ctx context.Context, inputs []Input, out io.Writer, newSink SinkFactory, opts Options) (Stats, error) {
	var total Stats
	sink := newSink(out)
	for _, in := range inputs {
		st, err := runInput(ctx, in, sink, opts)
		total.Merge(st)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func runParallel(ctx context.Context, inputs []Input, jobs int, out io.Writer, newSink SinkFactory, opts Options) (Stats, error) {
	// индексы уникальны для каждой горутины, мьютекс не нужен
	bufs := make([]bytes.Buffer, len(inputs))
	stats := make([]Stats, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, in := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			st, err := runInput(gctx, in, newSink(&bufs[i]), opts)
			stats[i] = st
			return err
		})
	}
	err := g.Wait()

	var total Stats
	for i := range inputs {
		total.Merge(stats[i])
		if _, werr := bufs[i].WriteTo(out); werr != nil && err == nil {
			err = fmt.Errorf("write output: %w", werr)
		}
	}
	return total, err
}

func runInput(ctx context.Context, in Input, sink Sink, opts Options) (Stats, error) {
	rc, err := in.Open()
	if err != nil {
		return Stats{}, fmt.Errorf("input %s: %w", in.Name, err)
	}
	defer rc.Close()
	trace.Point(trace.FromContext(ctx), trace.ScopeDriver, "open", in.Name, trace.CurrentSpan(ctx).SpanID)
	return Run(ctx, source.NewReader(in.Name, rc, opts.MaxLineBytes), sink, opts)
}
