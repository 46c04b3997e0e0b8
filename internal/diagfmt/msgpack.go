package diagfmt

import (
	"bufio"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"bares/internal/driver"
)

// MsgpackSink writes a stream of msgpack-encoded Records.
type MsgpackSink struct {
	w   *bufio.Writer
	enc *msgpack.Encoder
}

func NewMsgpackSink(w io.Writer) *MsgpackSink {
	bw := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(bw)
	enc.UseCompactInts(true)
	return &MsgpackSink{w: bw, enc: enc}
}

func (s *MsgpackSink) Emit(o driver.Outcome) error {
	return s.enc.Encode(NewRecord(o))
}

func (s *MsgpackSink) Flush() error { return s.w.Flush() }

// DecodeRecords reads every Record of a msgpack stream.
func DecodeRecords(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var out []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, rec)
	}
}
