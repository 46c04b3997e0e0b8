package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"bares/internal/driver"
)

// TextSink writes one line per outcome: the decimal value or the message.
type TextSink struct {
	w    *bufio.Writer
	opts Opts
}

func NewTextSink(w io.Writer, opts Opts) *TextSink {
	return &TextSink{w: bufio.NewWriter(w), opts: opts}
}

func (s *TextSink) Emit(o driver.Outcome) error {
	if s.opts.ShowName {
		fmt.Fprintf(s.w, "%s:%d: ", o.Line.Name, o.Line.Num)
	}
	if o.OK() {
		s.w.WriteString(strconv.FormatInt(o.Value, 10))
		return s.w.WriteByte('\n')
	}
	s.w.WriteString(Message(o.Diag))
	s.w.WriteByte('\n')
	if s.opts.ShowSource && o.Diag.Code.Positional() {
		fmt.Fprintf(s.w, "\"%s\"\n", o.Line.Text)
		fmt.Fprintf(s.w, " %s\n", CaretLine(o.Line.Text, o.Diag.Primary))
	}
	// bufio.Writer запоминает первую ошибку записи
	_, err := s.w.Write(nil)
	return err
}

func (s *TextSink) Flush() error { return s.w.Flush() }
