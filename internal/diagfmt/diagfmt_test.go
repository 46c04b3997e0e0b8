package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bares/internal/diag"
	"bares/internal/driver"
	"bares/internal/source"
)

// render прогоняет строки через драйвер и возвращает вывод sink'а
func render(t *testing.T, f Format, opts Opts, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sink := SinkFactory(f, opts)(&out)
	_, err := driver.Run(context.Background(), driver.NewSliceSource("in", lines...), sink, driver.Options{})
	require.NoError(t, err)
	return out.String()
}

func TestTextSinkMessages(t *testing.T) {
	got := render(t, FormatText, Opts{},
		"4 + 03",
		"    12    +    4   8",
		"32767 - 32768 + 3",
		"1.3 * 4",
		"a + 4",
		"       ",
		"  123 *  548",
		"4 + ",
		"32a23",
		"99999999999999999999 + 1",
		"(1 + 2",
		"3 / 0",
	)
	want := strings.Join([]string{
		"7",
		"Extraneous symbol after valid expression found at column (20)!",
		"2",
		"Ill formed integer at column (2)!",
		"Missing <term> at column (1)!",
		"Missing <term> at column (1)!",
		"Numeric overflow error!",
		"Unexpected end of input at column (5)!",
		"Ill formed integer at column (3)!",
		"Integer constant out of range beginning at column (1)!",
		"Missing closing \")\" at column (1)!",
		"Division by zero!",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestTextSinkShowSource(t *testing.T) {
	got := render(t, FormatText, Opts{ShowSource: true, ShowName: true}, "4 + * 3", "1 / 0")
	assert.Equal(t,
		"in:1: Missing <term> at column (5)!\n"+
			"\"4 + * 3\"\n"+
			"     ^\n"+
			"in:2: Division by zero!\n",
		got)
}

func TestPrettySinkWithoutColor(t *testing.T) {
	got := render(t, FormatPretty, Opts{}, "2 ^ 3", "1 + 99999999999")
	assert.Equal(t,
		"in:1: = 8\n"+
			"in:2: error[LEX1005]: Integer constant out of range beginning at column (5)!\n"+
			"   | 1 + 99999999999\n"+
			"   |     ^~~~~~~~~~~\n",
		got)
}

func TestCaretLine(t *testing.T) {
	tests := []struct {
		text string
		span source.Span
		want string
	}{
		{"4 + ", source.Span{Start: 4, End: 4}, "    ^"},
		{"(1 + 2", source.At(0), "^"},
		{"\t1 $", source.At(3), "\t  ^"},
		// «世界» занимает четыре колонки экрана
		{"世界 + x", source.At(5), "       ^"},
		{"-12a", source.Span{Start: 0, End: 3}, "^~~"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CaretLine(tt.text, tt.span), tt.text)
	}
}

func TestJSONSink(t *testing.T) {
	got := render(t, FormatJSON, Opts{}, "5 + -3", "4 + ", "1 % 0")
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)

	var ok, lexErr, evalErr Record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &lexErr))
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &evalErr))

	require.NotNil(t, ok.Value)
	assert.Equal(t, int64(2), *ok.Value)
	assert.True(t, ok.OK)
	assert.Nil(t, ok.Error)

	require.NotNil(t, lexErr.Error)
	assert.Equal(t, "UNEXPECTED_END_OF_EXPRESSION", lexErr.Error.Kind)
	assert.Equal(t, "LEX1001", lexErr.Error.ID)
	assert.Equal(t, uint32(5), lexErr.Error.Column)
	assert.Equal(t, uint32(2), lexErr.Line)
	assert.Equal(t, "4 + ", lexErr.Input)

	require.NotNil(t, evalErr.Error)
	assert.Equal(t, "Division by zero!", evalErr.Error.Message)
	assert.Zero(t, evalErr.Error.Column)
	assert.NotContains(t, lines[2], `"column"`)
}

func TestMsgpackSinkRoundTrip(t *testing.T) {
	got := render(t, FormatMsgpack, Opts{}, "2 ^ 3 ^ 2", "(1 + 2")
	recs, err := DecodeRecords(strings.NewReader(got))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.NotNil(t, recs[0].Value)
	assert.Equal(t, int64(64), *recs[0].Value)
	require.NotNil(t, recs[1].Error)
	assert.Equal(t, "MISSING_CLOSING", recs[1].Error.Kind)
	assert.Equal(t, uint32(1), recs[1].Error.Column)
}

func TestMessageCoversEveryCode(t *testing.T) {
	for _, code := range diag.AllCodes() {
		msg := Message(diag.NewError(code, source.At(0)))
		assert.NotEqual(t, "Unhandled error found!", msg, code.Name())
		assert.True(t, strings.HasSuffix(msg, "!"), msg)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatText, FormatPretty, FormatJSON, FormatMsgpack} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestTokenListings(t *testing.T) {
	o := driver.Process(context.Background(), source.Line{Text: "-(12)"}, driver.Options{})
	var pretty bytes.Buffer
	require.NoError(t, FormatTokensPretty(&pretty, o.Infix))
	assert.Contains(t, pretty.String(), `  1: LParen   "("    at 1-1`)
	assert.Contains(t, pretty.String(), `  5: Operand  "12"   at 3-4`)

	var js bytes.Buffer
	require.NoError(t, FormatTokensJSON(&js, o.Postfix))
	var out []TokenOutput
	require.NoError(t, json.Unmarshal(js.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, "Minus", out[2].Kind)
}

func TestWriteStats(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteStats(&out, driver.Stats{
		Inputs: 1, Lines: 4, OK: 2, Failed: 2,
		ByCode: map[diag.Code]int{diag.EvalOverflow: 1, diag.LexMissingTerm: 1},
	}))
	s := out.String()
	assert.Contains(t, s, "MISSING_TERM")
	assert.Contains(t, s, "EVL3002")
	assert.Less(t, strings.Index(s, "MISSING_TERM"), strings.Index(s, "OVERFLOW_ERROR"))
	assert.True(t, strings.HasSuffix(s, "(1 input)\n"), s)

	out.Reset()
	require.NoError(t, WriteStats(&out, driver.Stats{Inputs: 3, Lines: 3, OK: 3}))
	assert.True(t, strings.HasSuffix(out.String(), "(3 inputs)\n"), out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stderr closed") }

func TestWriteStatsReportsWriteError(t *testing.T) {
	err := WriteStats(failingWriter{}, driver.Stats{Inputs: 1, Lines: 1, OK: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stderr closed")
}
