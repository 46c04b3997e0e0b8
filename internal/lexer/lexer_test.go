package lexer_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"bares/internal/diag"
	"bares/internal/lexer"
	"bares/internal/source"
	"bares/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []*diag.Diagnostic
}

func (r *testReporter) Report(d *diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)@%d", tok.Kind, tok.String(), tok.Col())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов и их колонки
func expectTokens(t *testing.T, input string, want []token.Token) {
	t.Helper()
	got, err := lexer.Scan(input, lexer.Options{})
	if err != nil {
		t.Fatalf("Scan(%q) failed: %v", input, err)
	}
	if len(got) != len(want) {
		t.Fatalf("Scan(%q): expected %d tokens, got %d\nTokens: %s",
			input, len(want), len(got), tokensToString(got))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Scan(%q) token %d: expected %+v, got %+v", input, i, want[i], got[i])
		}
	}
}

// expectFailure проверяет код и колонку первой ошибки
func expectFailure(t *testing.T, input string, code diag.Code, col uint32) {
	t.Helper()
	rep := &testReporter{}
	toks, err := lexer.Scan(input, lexer.Options{Reporter: rep})
	if err == nil {
		t.Fatalf("Scan(%q) = %s, want %s", input, tokensToString(toks), code.Name())
	}
	if toks != nil {
		t.Errorf("Scan(%q) returned partial tokens: %s", input, tokensToString(toks))
	}
	d, ok := diag.AsDiagnostic(err)
	if !ok {
		t.Fatalf("Scan(%q) error is not a diagnostic: %v", input, err)
	}
	if d.Code != code || d.Col() != col {
		t.Errorf("Scan(%q) = %s at %d, want %s at %d", input, d.Code.Name(), d.Col(), code.Name(), col)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0] != d {
		t.Errorf("Scan(%q): reporter got %d diagnostics", input, len(rep.diagnostics))
	}
}

func operand(text string, start, end uint32) token.Token {
	return token.Token{Kind: token.Operand, Text: text, Span: source.Span{Start: start, End: end}}
}

func fixed(k token.Kind, col uint32) token.Token {
	return token.Token{Kind: k, Span: source.At(col)}
}

// ====== Корректные выражения ======

func TestSimpleSum(t *testing.T) {
	expectTokens(t, "4 + 3", []token.Token{
		operand("4", 0, 1), fixed(token.Plus, 2), operand("3", 4, 5),
	})
}

func TestAllOperators(t *testing.T) {
	expectTokens(t, "1+2-3*4/5%6^7", []token.Token{
		operand("1", 0, 1), fixed(token.Plus, 1),
		operand("2", 2, 3), fixed(token.Minus, 3),
		operand("3", 4, 5), fixed(token.Star, 5),
		operand("4", 6, 7), fixed(token.Slash, 7),
		operand("5", 8, 9), fixed(token.Percent, 9),
		operand("6", 10, 11), fixed(token.Caret, 11),
		operand("7", 12, 13),
	})
}

func TestSignedOperands(t *testing.T) {
	expectTokens(t, "5 + -3", []token.Token{
		operand("5", 0, 1), fixed(token.Plus, 2), operand("-3", 4, 6),
	})
	expectTokens(t, "+12", []token.Token{operand("12", 0, 3)})
	expectTokens(t, "- 3", []token.Token{operand("-3", 0, 3)})
	expectTokens(t, "-3+-5+-6", []token.Token{
		operand("-3", 0, 2), fixed(token.Plus, 2),
		operand("-5", 3, 5), fixed(token.Plus, 5),
		operand("-6", 6, 8),
	})
}

func TestLeadingZerosAccepted(t *testing.T) {
	expectTokens(t, "4 + 03", []token.Token{
		operand("4", 0, 1), fixed(token.Plus, 2), operand("03", 4, 6),
	})
}

func TestParentheses(t *testing.T) {
	expectTokens(t, "(1 + 2) * 3", []token.Token{
		fixed(token.LParen, 0), operand("1", 1, 2), fixed(token.Plus, 3), operand("2", 5, 6),
		fixed(token.RParen, 6), fixed(token.Star, 8), operand("3", 10, 11),
	})
}

func TestNegatedGroupExpands(t *testing.T) {
	got, err := lexer.Scan("2*-(1+1)", lexer.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := token.Join(got); s != "2 * ( 0 - ( 1 + 1 ) )" {
		t.Fatalf("Join = %q", s)
	}
	// синтетические токены стоят на колонке знака
	for _, i := range []int{2, 3, 4} {
		if got[i].Col() != 2 {
			t.Errorf("synthetic token %d at col %d, want 2", i, got[i].Col())
		}
	}
	if got[len(got)-1].Col() != 7 {
		t.Errorf("closing synthetic paren at col %d, want 7", got[len(got)-1].Col())
	}
}

func TestPositiveGroupDropsSign(t *testing.T) {
	got, err := lexer.Scan("+(4)", lexer.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := token.Join(got); s != "( 4 )" {
		t.Fatalf("Join = %q", s)
	}
}

func TestTabsAndTrailingBlanks(t *testing.T) {
	expectTokens(t, "\t7\t*\t6  ", []token.Token{
		operand("7", 1, 2), fixed(token.Star, 3), operand("6", 5, 6),
	})
}

// ====== Ошибки ======

func TestFailures(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
		col   uint32
	}{
		{"", diag.LexMissingTerm, 0},
		{"       ", diag.LexMissingTerm, 0},
		{"4 + ", diag.LexUnexpectedEnd, 4},
		{"43 + 54 -   ", diag.LexUnexpectedEnd, 12},
		{"4 + -", diag.LexUnexpectedEnd, 5},
		{"(", diag.LexUnexpectedEnd, 1},
		{"    12    +    4   8", diag.LexExtraneousSymbol, 19},
		{"1 + 2)", diag.LexExtraneousSymbol, 5},
		{"(1+2))", diag.LexExtraneousSymbol, 5},
		{"3 # 4", diag.LexExtraneousSymbol, 2},
		{"2 é", diag.LexExtraneousSymbol, 2},
		{"1.3 * 4", diag.LexIllFormedInteger, 1},
		{"32a23", diag.LexIllFormedInteger, 2},
		{"7_000", diag.LexIllFormedInteger, 1},
		{"4 + - * 3", diag.LexIllFormedInteger, 6},
		{"--3", diag.LexIllFormedInteger, 1},
		{"a + 4", diag.LexMissingTerm, 0},
		{"4 + * 3", diag.LexMissingTerm, 4},
		{"()", diag.LexMissingTerm, 1},
		{"2 + é", diag.LexMissingTerm, 4},
		{"１+2", diag.LexMissingTerm, 0},
		{"99999999999999999999 + 1", diag.LexIntegerOutOfRange, 0},
		{"1 + -99999999999999999999", diag.LexIntegerOutOfRange, 4},
		{"(1 + 2", diag.LexMissingClosing, 0},
		{"((1+2)", diag.LexMissingClosing, 0},
		{"2 * (1 2)", diag.LexMissingClosing, 4},
		{"(1 + (2", diag.LexMissingClosing, 5},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectFailure(t, tt.input, tt.code, tt.col)
		})
	}
}

func TestOutOfRangeSpanCoversLiteral(t *testing.T) {
	_, err := lexer.Scan("1 + -99999999999999999999", lexer.Options{})
	d, ok := diag.AsDiagnostic(err)
	if !ok {
		t.Fatalf("expected diagnostic, got %v", err)
	}
	if d.Primary != (source.Span{Start: 4, End: 25}) {
		t.Fatalf("span = %v", d.Primary)
	}
}

func TestInputRangeBounds(t *testing.T) {
	opts := lexer.Options{Min: math.MinInt32, Max: math.MaxInt32}
	if _, err := lexer.Scan("-2147483648 + 2147483647", opts); err != nil {
		t.Fatalf("bounds must be inclusive: %v", err)
	}
	_, err := lexer.Scan("1 - 2147483648", opts)
	d, ok := diag.AsDiagnostic(err)
	if !ok || d.Code != diag.LexIntegerOutOfRange || d.Col() != 4 {
		t.Fatalf("want INTEGER_OUT_OF_RANGE at 4, got %v", err)
	}
}

func TestFirstViolationWins(t *testing.T) {
	// и лишний символ, и незакрытая скобка: побеждает то, что левее
	expectFailure(t, "1 $ (", diag.LexExtraneousSymbol, 2)
	expectFailure(t, "1.5 + )", diag.LexIllFormedInteger, 1)
}

func TestScanIsIdempotent(t *testing.T) {
	in := "(7 - 2) ^ 2 % 5"
	a, errA := lexer.Scan(in, lexer.Options{})
	b, errB := lexer.Scan(in, lexer.Options{})
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v %v", errA, errB)
	}
	if tokensToString(a) != tokensToString(b) {
		t.Fatalf("different results: %s vs %s", tokensToString(a), tokensToString(b))
	}
}
