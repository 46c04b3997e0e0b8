// Package testkit checks structural invariants of pipeline results. It is
// used by fuzz harnesses and package tests.
package testkit

import (
	"fmt"

	"bares/internal/driver"
	"bares/internal/eval"
	"bares/internal/source"
	"bares/internal/token"
)

// CheckTokenInvariants runs a minimal set of checks on the infix tokens of line:
// 1) every span is non-empty and lies inside the line
// 2) spans start in non-decreasing order
// 3) parentheses are balanced and never close more than was opened
// 4) with parentheses removed, operands and operators alternate, starting
// and ending with an operand
func CheckTokenInvariants(line string, toks []token.Token) error {
	width := source.Width(line)
	var (
		prevStart uint32
		depth     int
		wantTerm  = true
	)
	for i, tok := range toks {
		sp := tok.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d %q: empty span %v", i, tok, sp)
		}
		if sp.End > width {
			return fmt.Errorf("token %d %q: span %v beyond line width %d", i, tok, sp, width)
		}
		if sp.Start < prevStart {
			return fmt.Errorf("token %d %q: span %v starts before previous token", i, tok, sp)
		}
		prevStart = sp.Start

		switch {
		case tok.Kind == token.LParen:
			if !wantTerm {
				return fmt.Errorf("token %d: '(' after a term", i)
			}
			depth++
		case tok.Kind == token.RParen:
			if wantTerm {
				return fmt.Errorf("token %d: ')' where a term is expected", i)
			}
			depth--
			if depth < 0 {
				return fmt.Errorf("token %d: unbalanced ')'", i)
			}
		case tok.IsOperand():
			if !wantTerm {
				return fmt.Errorf("token %d %q: operand after a term", i, tok)
			}
			wantTerm = false
		case tok.IsOperator():
			if wantTerm {
				return fmt.Errorf("token %d %q: operator where a term is expected", i, tok)
			}
			wantTerm = true
		default:
			return fmt.Errorf("token %d: unexpected kind %v", i, tok.Kind)
		}
	}
	if len(toks) > 0 && wantTerm {
		return fmt.Errorf("sequence ends without a term")
	}
	if depth != 0 {
		return fmt.Errorf("%d unclosed '('", depth)
	}
	return nil
}

// CheckOutcome verifies a processed line: a success carries tokens and a value
// inside d, a failure carries no value and a position inside the line.
func CheckOutcome(o driver.Outcome, d eval.Domain) error {
	if o.OK() {
		if len(o.Infix) == 0 || len(o.Postfix) == 0 {
			return fmt.Errorf("successful line without tokens")
		}
		if !d.Contains(o.Value) {
			return fmt.Errorf("value %d outside %s", o.Value, d)
		}
		return CheckTokenInvariants(o.Line.Text, o.Infix)
	}
	if o.Value != 0 {
		return fmt.Errorf("failed line carries value %d", o.Value)
	}
	if o.Diag.Code.Positional() {
		if o.Infix != nil {
			return fmt.Errorf("lexer failure %s still produced tokens", o.Diag.Code.Name())
		}
		if o.Diag.Primary.Start > source.Width(o.Line.Text) {
			return fmt.Errorf("%s column %d beyond line width %d",
				o.Diag.Code.Name(), o.Diag.Primary.Start, source.Width(o.Line.Text))
		}
	}
	return nil
}
