package lexer

import (
	"errors"
	"strconv"

	"bares/internal/diag"
	"bares/internal/token"
)

// integer сканирует цифры после необязательного знака. Знак '-' входит в
// текст операнда, '+' отбрасывается; пробелы между знаком и цифрами
// допускаются. Span операнда начинается со знака.
func (lx *Lexer) integer(start Mark, sign byte) error {
	digits := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if isNumeralTail(lx.cursor.Peek()) {
		return lx.fail(diag.LexIllFormedInteger, lx.cursor.Here())
	}

	text := lx.cursor.TextFrom(digits)
	if sign == '-' {
		text = "-" + text
	}
	sp := lx.cursor.SpanFrom(start)

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return lx.fail(diag.LexIntegerOutOfRange, sp)
		}
		return lx.fail(diag.LexIllFormedInteger, sp)
	}
	if lo, hi := lx.opts.bounds(); v < lo || v > hi {
		return lx.fail(diag.LexIntegerOutOfRange, sp)
	}

	lx.emit(token.Operand, text, sp)
	return nil
}
