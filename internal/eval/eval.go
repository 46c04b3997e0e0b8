// Package eval computes the value of a postfix token sequence.
//
// Arithmetic runs in int64; every intermediate and the final value must fit
// the configured Domain, otherwise the evaluation fails with
// diag.EvalOverflow. Division or modulo by zero fails with
// diag.EvalDivisionByZero.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"bares/internal/diag"
	"bares/internal/stack"
	"bares/internal/token"
)

// ErrMalformed reports a postfix sequence that did not come from
// postfix.Convert over a validated line.
var ErrMalformed = errors.New("malformed postfix sequence")

// Evaluate returns the value of seq. Failures of the computation itself are
// *diag.Diagnostic values; any other error means seq was malformed.
func Evaluate(seq []token.Token, d Domain) (int64, error) {
	st := stack.New[int64](len(seq)/2 + 1)

	for i, tok := range seq {
		switch {
		case tok.IsOperand():
			v, err := strconv.ParseInt(tok.Text, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: operand %q at %d: %w", ErrMalformed, tok.Text, i, err)
			}
			st.Push(v)
		case tok.IsOperator():
			rhs, okR := st.Pop()
			lhs, okL := st.Pop()
			if !okR || !okL {
				return 0, fmt.Errorf("%w: operator %s at %d lacks operands", ErrMalformed, tok, i)
			}
			r, err := apply(tok.Kind.Symbol()[0], lhs, rhs, d)
			if err != nil {
				return 0, err
			}
			st.Push(r)
		default:
			return 0, fmt.Errorf("%w: unexpected %v at %d", ErrMalformed, tok.Kind, i)
		}
	}

	v, ok := st.Pop()
	if !ok {
		return 0, fmt.Errorf("%w: empty sequence", ErrMalformed)
	}
	if !st.Empty() {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrMalformed, st.Len()+1)
	}
	// одиночный операнд тоже должен помещаться в домен
	if !d.Contains(v) {
		return 0, diag.NewEvalError(diag.EvalOverflow)
	}
	return v, nil
}
