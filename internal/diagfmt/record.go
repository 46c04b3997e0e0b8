package diagfmt

import (
	"bares/internal/driver"
)

// Record is the machine-readable form of one Outcome, shared by the JSON
// and msgpack sinks.
type Record struct {
	Source string     `json:"source" msgpack:"source"`
	Line   uint32     `json:"line" msgpack:"line"`
	Input  string     `json:"input" msgpack:"input"`
	OK     bool       `json:"ok" msgpack:"ok"`
	Value  *int64     `json:"value,omitempty" msgpack:"value,omitempty"`
	Error  *ErrorInfo `json:"error,omitempty" msgpack:"error,omitempty"`
}

// ErrorInfo describes a failed line. Column is 1-based and omitted for
// evaluation failures.
type ErrorInfo struct {
	ID      string `json:"id" msgpack:"id"`
	Kind    string `json:"kind" msgpack:"kind"`
	Message string `json:"message" msgpack:"message"`
	Column  uint32 `json:"column,omitempty" msgpack:"column,omitempty"`
	Length  uint32 `json:"length,omitempty" msgpack:"length,omitempty"`
}

// NewRecord converts o.
func NewRecord(o driver.Outcome) Record {
	r := Record{
		Source: o.Line.Name,
		Line:   o.Line.Num,
		Input:  o.Line.Text,
		OK:     o.OK(),
	}
	if o.OK() {
		v := o.Value
		r.Value = &v
		return r
	}
	info := &ErrorInfo{
		ID:      o.Diag.Code.ID(),
		Kind:    o.Diag.Code.Name(),
		Message: Message(o.Diag),
	}
	if o.Diag.Code.Positional() {
		info.Column = o.Line.Pos(o.Diag.Col()).Col
		info.Length = max(o.Diag.Primary.Len(), 1)
	}
	r.Error = info
	return r
}
