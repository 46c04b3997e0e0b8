package driver_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bares/internal/diag"
	"bares/internal/driver"
	"bares/internal/eval"
	"bares/internal/observ"
	"bares/internal/source"
	"bares/internal/token"
	"bares/internal/trace"
)

// recordSink запоминает результаты; lineSink пишет "name:num value|code@col".
type recordSink struct {
	outcomes []driver.Outcome
	flushes  int
	failOn   int
}

func (s *recordSink) Emit(o driver.Outcome) error {
	if s.failOn > 0 && len(s.outcomes)+1 == s.failOn {
		return errors.New("disk full")
	}
	s.outcomes = append(s.outcomes, o)
	return nil
}

func (s *recordSink) Flush() error { s.flushes++; return nil }

type lineSink struct{ w io.Writer }

func (s lineSink) Emit(o driver.Outcome) error {
	if o.OK() {
		_, err := fmt.Fprintf(s.w, "%s:%d %d\n", o.Line.Name, o.Line.Num, o.Value)
		return err
	}
	_, err := fmt.Fprintf(s.w, "%s:%d %s@%d\n", o.Line.Name, o.Line.Num, o.Diag.Code.Name(), o.Diag.Col())
	return err
}

func (lineSink) Flush() error { return nil }

func newLineSink(w io.Writer) driver.Sink { return lineSink{w: w} }

func process(text string, opts driver.Options) driver.Outcome {
	return driver.Process(context.Background(), source.Line{Name: "t", Num: 1, Text: text}, opts)
}

func TestProcessSampleLines(t *testing.T) {
	tests := []struct {
		line  string
		value int64
		code  diag.Code
		col   uint32
	}{
		{line: "4 + 03", value: 7},
		{line: "10", value: 10},
		{line: "    12    +    4   8", code: diag.LexExtraneousSymbol, col: 19},
		{line: "32767 - 32768 + 3", value: 2},
		{line: "5 + -32766", value: -32761},
		{line: "5 + -32769", value: -32764},
		{line: "12 + 3", value: 15},
		{line: "-3+-5+-6", value: -14},
		{line: "12 + 3     -3 + -34 ", value: -22},
		{line: "+12", value: 12},
		{line: "1.3 * 4", code: diag.LexIllFormedInteger, col: 1},
		{line: "a + 4", code: diag.LexMissingTerm, col: 0},
		{line: "       ", code: diag.LexMissingTerm, col: 0},
		{line: "  123 *  548", code: diag.EvalOverflow},
		{line: "4 + ", code: diag.LexUnexpectedEnd, col: 4},
		{line: "32a23", code: diag.LexIllFormedInteger, col: 2},
		{line: "43 + 54 -   ", code: diag.LexUnexpectedEnd, col: 12},
		{line: "3 / 0", code: diag.EvalDivisionByZero},
		{line: "99999999999999999999 + 1", code: diag.LexIntegerOutOfRange, col: 0},
		{line: "(1 + 2", code: diag.LexMissingClosing, col: 0},
		{line: "", code: diag.LexMissingTerm, col: 0},
		{line: "2 ^ 3 ^ 2", value: 64},
		{line: "32768", code: diag.EvalOverflow},
		{line: "2147483648", code: diag.LexIntegerOutOfRange, col: 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			o := process(tt.line, driver.Options{})
			if tt.code == diag.UnknownCode {
				require.True(t, o.OK(), "unexpected diagnostic %v", o.Diag)
				assert.Equal(t, tt.value, o.Value)
				assert.NotEmpty(t, o.Postfix)
				return
			}
			require.False(t, o.OK(), "expected %s, got value %d", tt.code.Name(), o.Value)
			assert.Equal(t, tt.code, o.Diag.Code)
			assert.Equal(t, tt.col, o.Diag.Col())
			assert.Equal(t, "t", o.Diag.Source)
			assert.Equal(t, uint32(1), o.Diag.Line)
			assert.Zero(t, o.Value)
		})
	}
}

func TestProcessLexFailureHasNoTokens(t *testing.T) {
	o := process("(1 + 2", driver.Options{})
	assert.Nil(t, o.Infix)
	assert.Nil(t, o.Postfix)
}

func TestProcessIsIdempotent(t *testing.T) {
	for _, line := range []string{"(7 - 2) ^ 2 % 5", "1 / 0", "1 +"} {
		a := process(line, driver.Options{})
		b := process(line, driver.Options{})
		assert.Equal(t, a, b, line)
	}
}

func TestProcessDomains(t *testing.T) {
	o := process("100 + 100", driver.Options{Domain: eval.Int8})
	require.False(t, o.OK())
	assert.Equal(t, diag.EvalOverflow, o.Diag.Code)

	o = process("32767 * 2", driver.Options{Domain: eval.Int32})
	require.True(t, o.OK())
	assert.Equal(t, int64(65534), o.Value)

	// для int8 литералы ограничены int16
	o = process("40000 - 39999", driver.Options{Domain: eval.Int8})
	require.False(t, o.OK())
	assert.Equal(t, diag.LexIntegerOutOfRange, o.Diag.Code)
}

func TestProcessFoldWidth(t *testing.T) {
	o := process("１２＋３", driver.Options{})
	require.False(t, o.OK())
	assert.Equal(t, diag.LexMissingTerm, o.Diag.Code)

	o = process("１２＋３　*　2", driver.Options{FoldWidth: true})
	require.True(t, o.OK(), "diag: %v", o.Diag)
	assert.Equal(t, int64(18), o.Value)
	assert.Equal(t, uint32(5), o.Infix[3].Col(), "columns must be preserved by folding")
}

func TestProcessReportsStampedDiagnostics(t *testing.T) {
	bag := diag.NewBag(0)
	opts := driver.Options{Reporter: diag.BagReporter{Bag: bag}}
	driver.Process(context.Background(), source.Line{Name: "a.txt", Num: 3, Text: "1 +"}, opts)
	driver.Process(context.Background(), source.Line{Name: "a.txt", Num: 4, Text: "1 / 0"}, opts)
	driver.Process(context.Background(), source.Line{Name: "a.txt", Num: 5, Text: "1"}, opts)

	require.Equal(t, 2, bag.Len())
	assert.Equal(t,
		"error LEX1001 a.txt:3:4 Unexpected end of expression\n"+
			"error EVL3001 a.txt:4:0 Division by zero",
		diag.FormatGoldenDiagnostics(bag.Items()))
}

func TestProcessTimerAndObserver(t *testing.T) {
	tm := observ.NewTimer()
	var events []string
	opts := driver.Options{
		Timer: tm,
		Observer: func(ev driver.PhaseEvent) {
			if ev.Status == driver.PhaseStart {
				events = append(events, "+"+ev.Name)
			} else {
				events = append(events, "-"+ev.Name)
			}
		},
	}
	process("1 + 1", opts)
	process("1 +", opts)

	assert.Equal(t, []string{
		"+lex", "-lex", "+postfix", "-postfix", "+eval", "-eval",
		"+lex", "-lex",
	}, events)
	r := tm.Report()
	require.Len(t, r.Phases, 3)
	assert.Equal(t, driver.StageLex, r.Phases[0].Name)
	assert.Equal(t, 2, r.Phases[0].Count)
	assert.Equal(t, 1, r.Phases[2].Count)
}

func TestProcessTracesStages(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	driver.Process(ctx, source.Line{Name: "t", Num: 1, Text: "2 * 2"}, driver.Options{})

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanEnd {
			names = append(names, ev.Scope.String()+":"+ev.Name+"="+ev.Detail)
		}
	}
	assert.Equal(t, []string{"stage:lex=", "stage:postfix=", "stage:eval=", "line:line=4"}, names)
}

func TestRunEmitsOnePerLine(t *testing.T) {
	src := driver.NewSliceSource("mem", "1 + 1", "", "2 ^ 3", "1 / 0", "x")
	sink := &recordSink{}
	stats, err := driver.Run(context.Background(), src, sink, driver.Options{})
	require.NoError(t, err)

	require.Len(t, sink.outcomes, 5)
	for i, o := range sink.outcomes {
		assert.Equal(t, uint32(i+1), o.Line.Num)
	}
	assert.Equal(t, 5, stats.Lines)
	assert.Equal(t, 2, stats.OK)
	assert.Equal(t, 3, stats.Failed)
	assert.Equal(t, map[diag.Code]int{diag.LexMissingTerm: 2, diag.EvalDivisionByZero: 1}, stats.ByCode)
	assert.Equal(t, []diag.Code{diag.LexMissingTerm, diag.EvalDivisionByZero}, stats.Codes())
	assert.Equal(t, 1, sink.flushes)
}

func TestRunFlushEachLine(t *testing.T) {
	sink := &recordSink{}
	_, err := driver.Run(context.Background(), driver.NewSliceSource("mem", "1", "2"), sink, driver.Options{FlushEachLine: true})
	require.NoError(t, err)
	assert.Equal(t, 3, sink.flushes)
}

func TestRunStopsOnSinkError(t *testing.T) {
	sink := &recordSink{failOn: 2}
	stats, err := driver.Run(context.Background(), driver.NewSliceSource("mem", "1", "2", "3"), sink, driver.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 2, stats.Lines)
}

func TestRunReportsOverlongLineAndContinues(t *testing.T) {
	long := strings.Repeat("1", 100)
	r := source.NewReader("big", strings.NewReader("1 + 1\n"+long+"\n2 * 3\n"), 16)
	sink := &recordSink{}
	stats, err := driver.Run(context.Background(), r, sink, driver.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Lines)
	assert.Equal(t, 2, stats.OK)
	assert.Equal(t, 1, stats.ByCode[diag.InputLineTooLong])

	require.Len(t, sink.outcomes, 3)
	bad := sink.outcomes[1]
	require.NotNil(t, bad.Diag)
	assert.Equal(t, diag.InputLineTooLong, bad.Diag.Code)
	assert.Equal(t, uint32(2), bad.Diag.Line)
	assert.Nil(t, bad.Infix)
	assert.Equal(t, int64(6), sink.outcomes[2].Value)
}

func TestProcessOverlongLineReports(t *testing.T) {
	bag := diag.NewBag(0)
	o := driver.Process(context.Background(),
		source.Line{Name: "in", Num: 4, Overlong: true},
		driver.Options{Reporter: diag.BagReporter{Bag: bag}})
	require.False(t, o.OK())
	assert.False(t, o.Diag.Code.Positional())
	require.Len(t, bag.Items(), 1)
	assert.Equal(t, uint32(4), bag.Items()[0].Line)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.Run(ctx, driver.NewSliceSource("mem", "1"), &recordSink{}, driver.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunFilesKeepsInputOrder(t *testing.T) {
	var inputs []driver.Input
	var want strings.Builder
	for i := range 8 {
		name := fmt.Sprintf("in%d", i)
		var text strings.Builder
		for j := range 50 {
			fmt.Fprintf(&text, "%d * %d\n", i, j)
			fmt.Fprintf(&want, "%s:%d %d\n", name, j+1, i*j)
		}
		text.WriteString("(\n")
		fmt.Fprintf(&want, "%s:51 UNEXPECTED_END_OF_EXPRESSION@1\n", name)
		inputs = append(inputs, driver.StringInput(name, text.String()))
	}

	for _, jobs := range []int{1, 3, 0} {
		var out bytes.Buffer
		stats, err := driver.RunFiles(context.Background(), inputs, jobs, &out, newLineSink, driver.Options{})
		require.NoError(t, err)
		assert.Equal(t, want.String(), out.String(), "jobs=%d", jobs)
		assert.Equal(t, 8, stats.Inputs)
		assert.Equal(t, 8*51, stats.Lines)
		assert.Equal(t, 8, stats.ByCode[diag.LexUnexpectedEnd])
	}
}

func TestRunFilesOpenError(t *testing.T) {
	inputs := []driver.Input{
		driver.StringInput("ok", "1\n"),
		driver.FileInput("/nonexistent/bares-input.txt"),
	}
	var out bytes.Buffer
	_, err := driver.RunFiles(context.Background(), inputs, 2, &out, newLineSink, driver.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/bares-input.txt")
}

func TestFoldWidth(t *testing.T) {
	assert.Equal(t, "12+3", driver.FoldWidth("１２＋３"))
	assert.Equal(t, "1 + 2", driver.FoldWidth("1 + 2"))
	assert.Equal(t, "(7)", driver.FoldWidth("（７）"))
}

func TestInfixIsPreservedForListings(t *testing.T) {
	o := process("-(1)", driver.Options{})
	require.True(t, o.OK())
	assert.Equal(t, "( 0 - ( 1 ) )", token.Join(o.Infix))
	assert.Equal(t, "0 1 -", token.Join(o.Postfix))
}
