package diagfmt

import (
	"bufio"
	"encoding/json"
	"io"

	"bares/internal/driver"
)

// JSONSink writes newline-delimited JSON, one Record per line.
type JSONSink struct {
	w   *bufio.Writer
	enc *json.Encoder
}

func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONSink{w: bw, enc: enc}
}

func (s *JSONSink) Emit(o driver.Outcome) error {
	return s.enc.Encode(NewRecord(o))
}

func (s *JSONSink) Flush() error { return s.w.Flush() }
