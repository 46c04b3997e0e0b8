package eval

import (
	"math"

	"bares/internal/diag"
)

// Все операции выполняются в int64 с проверкой переполнения.
// Проверка попадания в Domain делается вызывающим.

func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func subChecked(a, b int64) (int64, bool) {
	s := a - b
	if (b > 0 && s > a) || (b < 0 && s < a) {
		return 0, false
	}
	return s, true
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// powChecked raises base to exp. A negative exponent yields 0 and exp == 0
// yields 1, 0^0 included. For |base| >= 2 the loop stops as soon as the
// running product leaves d; the returned value is then outside d.
func powChecked(base, exp int64, d Domain) (int64, bool) {
	switch {
	case exp == 0:
		return 1, true
	case exp < 0:
		return 0, true
	case base == 0 || base == 1:
		return base, true
	case base == -1:
		if exp%2 == 0 {
			return 1, true
		}
		return -1, true
	}
	r := int64(1)
	for range exp {
		var ok bool
		if r, ok = mulChecked(r, base); !ok {
			return 0, false
		}
		if !d.Contains(r) {
			break
		}
	}
	return r, true
}

// apply performs one binary operation and checks the result against d.
func apply(op byte, lhs, rhs int64, d Domain) (int64, error) {
	var (
		r  int64
		ok = true
	)
	switch op {
	case '+':
		r, ok = addChecked(lhs, rhs)
	case '-':
		r, ok = subChecked(lhs, rhs)
	case '*':
		r, ok = mulChecked(lhs, rhs)
	case '/':
		if rhs == 0 {
			return 0, diag.NewEvalError(diag.EvalDivisionByZero)
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return 0, diag.NewEvalError(diag.EvalOverflow)
		}
		r = lhs / rhs
	case '%':
		if rhs == 0 {
			return 0, diag.NewEvalError(diag.EvalDivisionByZero)
		}
		r = lhs % rhs
	case '^':
		r, ok = powChecked(lhs, rhs, d)
	}
	if !ok || !d.Contains(r) {
		return 0, diag.NewEvalError(diag.EvalOverflow)
	}
	return r, nil
}
