package diag

import (
	"errors"
	"fmt"

	"bares/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Primary  source.Span
	// Source and Line are filled in by the driver; zero when unknown.
	Source string
	Line   uint32
}

func New(sev Severity, code Code, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
	}
}

func NewError(code Code, primary source.Span) *Diagnostic {
	return New(SevError, code, primary)
}

// NewEvalError builds a diagnostic that carries no column.
func NewEvalError(code Code) *Diagnostic {
	return New(SevError, code, source.Span{})
}

// Col returns the 0-based column of the failure.
func (d *Diagnostic) Col() uint32 {
	return d.Primary.Start
}

func (d *Diagnostic) Error() string {
	if d.Code.Positional() {
		return fmt.Sprintf("%s %s at column %d", d.Code.ID(), d.Code.Title(), d.Col()+1)
	}
	return fmt.Sprintf("%s %s", d.Code.ID(), d.Code.Title())
}

// Is matches diagnostics by code, so errors.Is(err, diag.NewEvalError(diag.EvalOverflow)) works.
func (d *Diagnostic) Is(target error) bool {
	var other *Diagnostic
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == d.Code
}

// AsDiagnostic extracts a *Diagnostic from err.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
