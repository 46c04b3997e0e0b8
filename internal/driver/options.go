package driver

import (
	"bares/internal/diag"
	"bares/internal/eval"
	"bares/internal/observ"
)

// Options configures the pipeline. The zero value evaluates in the default
// int16 domain without folding, timing or extra reporting.
type Options struct {
	Domain eval.Domain
	// FoldWidth maps full-width digits and operators to ASCII before lexing.
	FoldWidth bool
	// Reporter additionally receives every line diagnostic, stamped with
	// the input name and line number.
	Reporter diag.Reporter
	// Timer, if set, accumulates per-stage durations.
	Timer *observ.Timer
	// Observer, if set, is notified at every stage boundary.
	Observer PhaseObserver
	// MaxLineBytes bounds input lines in RunFiles (0 = source.DefaultMaxLineBytes).
	MaxLineBytes int
	// FlushEachLine flushes the sink after every line (interactive stdin).
	FlushEachLine bool
}
