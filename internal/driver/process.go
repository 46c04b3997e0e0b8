package driver

import (
	"context"
	"strconv"
	"time"

	"bares/internal/diag"
	"bares/internal/eval"
	"bares/internal/lexer"
	"bares/internal/postfix"
	"bares/internal/source"
	"bares/internal/token"
	"bares/internal/trace"
)

// Outcome is the result of one line: exactly one of Value and Diag is
// meaningful. Infix and Postfix are kept for listings; Postfix is nil when
// the line failed to lex.
type Outcome struct {
	Line    source.Line
	Infix   []token.Token
	Postfix []token.Token
	Value   int64
	Diag    *diag.Diagnostic
}

// OK reports whether the line produced a value.
func (o Outcome) OK() bool { return o.Diag == nil }

// Process runs one line through lexer, converter and evaluator, stopping at
// the first failure. It keeps no state between calls.
func Process(ctx context.Context, line source.Line, opts Options) Outcome {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeLine, "line", trace.CurrentSpan(ctx).SpanID).
		WithExtra("input", line.Name).
		WithExtra("num", strconv.FormatUint(uint64(line.Num), 10))

	out := Outcome{Line: line}
	rep := diag.LineReporter{Next: opts.Reporter, Source: line.Name, Line: line.Num}
	p := &pipeline{tracer: tr, parent: span.ID(), opts: opts}

	text := line.Text
	if opts.FoldWidth {
		text = FoldWidth(text)
	}

	var err error
	if line.Overlong {
		// строка не прочитана целиком, конвейер не запускается
		d := diag.NewEvalError(diag.InputLineTooLong)
		rep.Report(d)
		err = d
	} else {
		err = p.run(&out, text, rep)
	}

	if err != nil {
		d := *asDiagnostic(err)
		d.Source, d.Line = line.Name, line.Num
		out.Diag = &d
		out.Value = 0
		span.End(d.Code.Name())
		return out
	}
	span.End(strconv.FormatInt(out.Value, 10))
	return out
}

// run passes text through lexing, conversion and evaluation.
func (p *pipeline) run(out *Outcome, text string, rep diag.Reporter) error {
	var err error
	p.stage(StageLex, func() error {
		out.Infix, err = lexer.Scan(text, lexer.Options{
			Min:      p.opts.Domain.InputMin(),
			Max:      p.opts.Domain.InputMax(),
			Reporter: rep,
		})
		return err
	})
	if err != nil {
		return err
	}
	p.stage(StagePostfix, func() error {
		out.Postfix = postfix.Convert(out.Infix)
		return nil
	})
	p.stage(StageEval, func() error {
		out.Value, err = eval.Evaluate(out.Postfix, p.opts.Domain)
		if err != nil {
			rep.Report(asDiagnostic(err))
		}
		return err
	})
	return err
}

// asDiagnostic turns a stage error into a diagnostic. Only a malformed
// postfix sequence yields a plain error, which cannot happen for a
// sequence produced by the lexer and converter.
func asDiagnostic(err error) *diag.Diagnostic {
	if d, ok := diag.AsDiagnostic(err); ok {
		return d
	}
	return diag.NewEvalError(diag.UnknownCode)
}

type pipeline struct {
	tracer trace.Tracer
	parent uint64
	opts   Options
}

func (p *pipeline) stage(name string, fn func() error) {
	if p.opts.Observer != nil {
		p.opts.Observer(PhaseEvent{Name: name, Status: PhaseStart})
	}
	span := trace.Begin(p.tracer, trace.ScopeStage, name, p.parent)
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	detail := ""
	if err != nil {
		detail = asDiagnostic(err).Code.Name()
	}
	span.End(detail)
	p.opts.Timer.Add(name, elapsed, "")
	if p.opts.Observer != nil {
		p.opts.Observer(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: elapsed})
	}
}
