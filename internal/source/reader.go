package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 1 << 20

const readBufferSize = 64 * 1024

// Reader produces the lines of a stream one at a time.
// It is finite and cannot be restarted; once Next reports false, Err tells
// whether the stream ended normally.
//
// A line longer than the limit is not an error of the stream: its bytes are
// discarded up to the next newline and the line comes out with Overlong set.
type Reader struct {
	name string
	br   *bufio.Reader
	max  int
	num  uint32
	cur  Line
	err  error
}

// NewReader wraps r. maxLineBytes <= 0 selects DefaultMaxLineBytes.
func NewReader(name string, r io.Reader, maxLineBytes int) *Reader {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	return &Reader{name: name, br: bufio.NewReaderSize(r, readBufferSize), max: maxLineBytes}
}

// Name returns the source name used in positions.
func (r *Reader) Name() string { return r.name }

// Next advances to the next line. It returns false at end of stream or on error.
func (r *Reader) Next() bool {
	if r.br == nil {
		return false
	}
	text, overlong, read, err := r.readLine()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = fmt.Errorf("%s: line %d: %w", r.name, r.num+1, err)
			r.br = nil
			return false
		}
		// последняя строка без \n ещё отдаётся
		r.br = nil
		if !read {
			return false
		}
	}
	r.num++
	s := strings.TrimSuffix(string(text), "\r")
	if r.num == 1 {
		s = removeBOM(s)
	}
	r.cur = Line{Name: r.name, Num: r.num, Text: s, Overlong: overlong}
	return true
}

// readLine returns the next line without its '\n'. read is false only when
// the stream ended before any byte of a new line.
func (r *Reader) readLine() (text []byte, overlong, read bool, err error) {
	for {
		chunk, rerr := r.br.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !overlong {
			text = append(text, chunk...)
			if len(bytes.TrimSuffix(text, []byte("\n"))) > r.max {
				overlong, text = true, nil
			}
		}
		switch {
		case rerr == nil:
			return bytes.TrimSuffix(text, []byte("\n")), overlong, true, nil
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		default:
			return text, overlong, read, rerr
		}
	}
}

// Line returns the line read by the last successful Next.
func (r *Reader) Line() Line { return r.cur }

// Err returns the first read error, if any.
func (r *Reader) Err() error { return r.err }
