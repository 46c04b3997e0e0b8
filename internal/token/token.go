package token

import (
	"strings"

	"bares/internal/source"
)

// Token represents a single token of an expression line.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
}

// Col returns the 0-based start column.
func (t Token) Col() uint32 { return t.Span.Start }

// IsOperand reports whether the token is an integer literal.
func (t Token) IsOperand() bool { return t.Kind == Operand }

// IsOperator reports whether the token is a binary operator.
func (t Token) IsOperator() bool { return t.Kind.IsOperator() }

func (t Token) String() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.Symbol()
}

// Join renders a sequence separated by single spaces.
func Join(seq []Token) string {
	var b strings.Builder
	for i, t := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
