// Package lexer scans one expression line and validates it against the
// expression grammar in the same pass:
//
//	expr    := term { ("+"|"-"|"*"|"/"|"%"|"^") term }
//	term    := ["-"|"+"] ( integer | "(" expr ")" )
//	integer := digit { digit }
//
// A successful scan yields the infix token sequence; a failed scan yields
// the first violation as a *diag.Diagnostic and no tokens.
package lexer

import (
	"bares/internal/diag"
	"bares/internal/source"
	"bares/internal/token"
)

type Lexer struct {
	cursor Cursor
	opts   Options
	tokens []token.Token
}

func New(line string, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(line),
		opts:   opts,
		tokens: make([]token.Token, 0, len(line)/2+1),
	}
}

// Scan validates line and returns its infix token sequence.
// On failure the error is a *diag.Diagnostic and the token slice is nil.
func Scan(line string, opts Options) ([]token.Token, error) {
	return New(line, opts).Run()
}

// Run scans the whole line. A Lexer must not be reused after Run.
func (lx *Lexer) Run() ([]token.Token, error) {
	lx.skipBlanks()
	if lx.cursor.EOF() {
		// ни одного операнда так и не появилось
		return nil, lx.fail(diag.LexMissingTerm, source.At(0))
	}
	if err := lx.expr(); err != nil {
		return nil, err
	}
	lx.skipBlanks()
	if !lx.cursor.EOF() {
		return nil, lx.fail(diag.LexExtraneousSymbol, lx.cursor.Here())
	}
	return lx.tokens, nil
}

func (lx *Lexer) fail(code diag.Code, sp source.Span) error {
	d := diag.NewError(code, sp)
	lx.report(d)
	lx.tokens = nil
	return d
}

func (lx *Lexer) emit(kind token.Kind, text string, sp source.Span) {
	lx.tokens = append(lx.tokens, token.Token{Kind: kind, Text: text, Span: sp})
}

// emitFixed consumes one byte and emits the corresponding fixed token.
func (lx *Lexer) emitFixed(kind token.Kind) source.Span {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.emit(kind, "", sp)
	return sp
}
