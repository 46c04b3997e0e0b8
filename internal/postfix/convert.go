// Package postfix rewrites a validated infix token sequence into postfix
// (reverse Polish) order with the shunting-yard algorithm.
package postfix

import (
	"bares/internal/stack"
	"bares/internal/token"
)

// Convert returns a new postfix sequence; infix is left untouched.
//
// The input must come from a successful lexer.Scan: balanced parentheses and
// only binary operators. All operators, '^' included, associate to the left.
func Convert(infix []token.Token) []token.Token {
	out := make([]token.Token, 0, len(infix))
	ops := stack.New[token.Token](len(infix) / 2)

	for _, tok := range infix {
		switch {
		case tok.IsOperand():
			out = append(out, tok)
		case tok.Kind == token.LParen:
			ops.Push(tok)
		case tok.Kind == token.RParen:
			for {
				top, ok := ops.Pop()
				if !ok || top.Kind == token.LParen {
					break
				}
				out = append(out, top)
			}
		case tok.IsOperator():
			out = popWhileBinds(ops, out, tok.Kind.Precedence())
			ops.Push(tok)
		}
	}

	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		if top.Kind != token.LParen {
			out = append(out, top)
		}
	}
	return out
}

// popWhileBinds переносит в вывод операторы со стека, пока они связывают не
// слабее текущего. '(' никогда не снимается.
func popWhileBinds(ops *stack.Stack[token.Token], out []token.Token, prec int) []token.Token {
	for {
		top, ok := ops.Top()
		if !ok || !top.IsOperator() || top.Kind.Precedence() < prec {
			return out
		}
		ops.Pop()
		out = append(out, top)
	}
}

// String renders a postfix sequence separated by single spaces.
func String(seq []token.Token) string {
	return token.Join(seq)
}
