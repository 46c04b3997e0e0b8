package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические и синтаксические (обнаруживает лексер)
	LexUnexpectedEnd     Code = 1001
	LexIllFormedInteger  Code = 1002
	LexMissingTerm       Code = 1003
	LexExtraneousSymbol  Code = 1004
	LexIntegerOutOfRange Code = 1005
	LexMissingClosing    Code = 1006

	// Ошибки чтения ввода
	InputLineTooLong Code = 2001

	// Ошибки вычисления
	EvalDivisionByZero Code = 3001
	EvalOverflow       Code = 3002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		LexUnexpectedEnd:     "Unexpected end of expression",
		LexIllFormedInteger:  "Ill formed integer",
		LexMissingTerm:       "Missing term",
		LexExtraneousSymbol:  "Extraneous symbol after valid expression",
		LexIntegerOutOfRange: "Integer constant out of range",
		LexMissingClosing:    "Missing closing parenthesis",
		InputLineTooLong:     "Input line exceeds the length limit",
		EvalDivisionByZero:   "Division by zero",
		EvalOverflow:         "Numeric overflow",
	}

	codeNames = map[Code]string{
		UnknownCode:          "UNKNOWN",
		LexUnexpectedEnd:     "UNEXPECTED_END_OF_EXPRESSION",
		LexIllFormedInteger:  "ILL_FORMED_INTEGER",
		LexMissingTerm:       "MISSING_TERM",
		LexExtraneousSymbol:  "EXTRANEOUS_SYMBOL",
		LexIntegerOutOfRange: "INTEGER_OUT_OF_RANGE",
		LexMissingClosing:    "MISSING_CLOSING",
		InputLineTooLong:     "LINE_TOO_LONG",
		EvalDivisionByZero:   "DIVISION_BY_ZERO",
		EvalOverflow:         "OVERFLOW_ERROR",
	}
)

// AllCodes lists every known non-zero code in ascending order.
func AllCodes() []Code {
	return []Code{
		LexUnexpectedEnd, LexIllFormedInteger, LexMissingTerm,
		LexExtraneousSymbol, LexIntegerOutOfRange, LexMissingClosing,
		InputLineTooLong,
		EvalDivisionByZero, EvalOverflow,
	}
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("INP%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

// Name returns the taxonomy name, e.g. MISSING_TERM.
func (c Code) Name() string {
	name, ok := codeNames[c]
	if !ok {
		return codeNames[UnknownCode]
	}
	return name
}

// Positional reports whether diagnostics with this code point at a column.
// Input and evaluation failures are not tied to a position.
func (c Code) Positional() bool {
	return c >= 1000 && c < 2000
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
