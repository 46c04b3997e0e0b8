package lexer

import (
	"math"

	"bares/internal/diag"
)

// Options configures a single Scan.
type Options struct {
	// Min and Max bound integer literals, sign included.
	// Both zero selects the full int64 range.
	Min, Max int64
	// Reporter may be nil; the diagnostic is always returned as well.
	Reporter diag.Reporter
}

func (o Options) bounds() (lo, hi int64) {
	if o.Min == 0 && o.Max == 0 {
		return math.MinInt64, math.MaxInt64
	}
	return o.Min, o.Max
}

func (lx *Lexer) report(d *diag.Diagnostic) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(d)
	}
}
