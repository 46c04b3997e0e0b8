package diagfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"bares/internal/driver"
)

// PrettySink prints results for humans:
//
//	exprs.txt:3: = 7
//	exprs.txt:4: error[LEX1003]: Missing <term> at column (5)!
//	   | 4 + * 3
//	   |     ^
type PrettySink struct {
	w       *bufio.Writer
	opts    Opts
	value   *color.Color
	errHead *color.Color
	caret   *color.Color
	gutter  *color.Color
	loc     *color.Color
}

func NewPrettySink(w io.Writer, opts Opts) *PrettySink {
	s := &PrettySink{
		w:       bufio.NewWriter(w),
		opts:    opts,
		value:   color.New(color.FgGreen, color.Bold),
		errHead: color.New(color.FgRed, color.Bold),
		caret:   color.New(color.FgRed),
		gutter:  color.New(color.FgBlue),
		loc:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{s.value, s.errHead, s.caret, s.gutter, s.loc} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s *PrettySink) Emit(o driver.Outcome) error {
	s.loc.Fprintf(s.w, "%s:%d:", o.Line.Name, o.Line.Num)
	s.w.WriteByte(' ')
	if o.OK() {
		s.value.Fprintf(s.w, "= %d", o.Value)
		return s.w.WriteByte('\n')
	}

	s.errHead.Fprintf(s.w, "error[%s]:", o.Diag.Code.ID())
	fmt.Fprintf(s.w, " %s\n", Message(o.Diag))
	if o.Diag.Code.Positional() {
		s.gutter.Fprint(s.w, "   | ")
		fmt.Fprintln(s.w, o.Line.Text)
		s.gutter.Fprint(s.w, "   | ")
		s.caret.Fprintln(s.w, CaretLine(o.Line.Text, o.Diag.Primary))
	}
	_, err := s.w.Write(nil)
	return err
}

func (s *PrettySink) Flush() error { return s.w.Flush() }
