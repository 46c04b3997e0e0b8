// Package trace provides a tracing subsystem for the bares evaluator.
//
// Tracing records when inputs, lines and pipeline stages start and finish.
// It is the tool's own log: expression diagnostics go to the output sink,
// trace events go to stderr or a file.
//
// # Usage
//
//	bares --trace=- --trace-level=line exprs.txt
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelDriver: Inputs and the run loop
//   - LevelLine: One span per processed line
//   - LevelDebug: Everything, including lex/convert/eval stages
//
// # Scopes
//
//   - ScopeDriver: Top-level CLI operations and inputs
//   - ScopeLine: One input line
//   - ScopeStage: lex, postfix, eval
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeLine, "line", trace.CurrentSpan(ctx).SpanID)
//	defer span.End("")
package trace
