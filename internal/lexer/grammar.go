package lexer

import (
	"bares/internal/diag"
	"bares/internal/source"
	"bares/internal/token"
)

// expr разбирает term { op term }. Возвращает nil, встретив конец строки или
// символ, который не является оператором: решение принимает вызывающий.
func (lx *Lexer) expr() error {
	if err := lx.term(); err != nil {
		return err
	}
	for {
		lx.skipBlanks()
		if lx.cursor.EOF() {
			return nil
		}
		kind, ok := token.OperatorKind(lx.cursor.Peek())
		if !ok {
			return nil
		}
		lx.emitFixed(kind)
		if err := lx.term(); err != nil {
			return err
		}
	}
}

func (lx *Lexer) term() error {
	lx.skipBlanks()
	if lx.cursor.EOF() {
		return lx.fail(diag.LexUnexpectedEnd, lx.cursor.Here())
	}

	start := lx.cursor.Mark()
	var sign byte
	if b := lx.cursor.Peek(); isSign(b) {
		sign = b
		lx.cursor.Bump()
		lx.skipBlanks()
		if lx.cursor.EOF() {
			return lx.fail(diag.LexUnexpectedEnd, lx.cursor.Here())
		}
	}

	switch b := lx.cursor.Peek(); {
	case isDec(b):
		return lx.integer(start, sign)
	case b == '(':
		return lx.group(start, sign)
	case sign != 0:
		// знак начал число, но за ним нет цифр
		return lx.fail(diag.LexIllFormedInteger, lx.cursor.Here())
	default:
		return lx.fail(diag.LexMissingTerm, lx.cursor.Here())
	}
}

// group разбирает "(" expr ")". Унарный минус перед скобкой раскрывается в
// сбалансированную последовательность ( 0 - ( expr ) ), чтобы дальше по
// конвейеру шли только бинарные операторы.
func (lx *Lexer) group(start Mark, sign byte) error {
	signSpan := source.Span{Start: start.col, End: start.col + 1}
	negate := sign == '-'
	if negate {
		lx.emit(token.LParen, "", signSpan)
		lx.emit(token.Operand, "0", signSpan)
		lx.emit(token.Minus, "", signSpan)
	}

	open := lx.emitFixed(token.LParen)
	if err := lx.expr(); err != nil {
		return err
	}
	lx.skipBlanks()
	if lx.cursor.Peek() != ')' {
		return lx.fail(diag.LexMissingClosing, open)
	}
	closeSpan := lx.emitFixed(token.RParen)
	if negate {
		lx.emit(token.RParen, "", closeSpan)
	}
	return nil
}
