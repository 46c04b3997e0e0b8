package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"bares/internal/driver"
)

// Format selects how outcomes are written.
type Format uint8

const (
	// FormatText prints the value or the message, one line per input line.
	FormatText Format = iota
	// FormatPretty adds colors and a caret under the offending column.
	FormatPretty
	FormatJSON
	FormatMsgpack
)

var formatNames = [...]string{
	FormatText:    "text",
	FormatPretty:  "pretty",
	FormatJSON:    "json",
	FormatMsgpack: "msgpack",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat converts a flag or config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "pretty":
		return FormatPretty, nil
	case "json", "ndjson":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q (expected: text|pretty|json|msgpack)", s)
}

// Opts configures the sinks.
type Opts struct {
	Color      bool
	ShowSource bool // text: echo the line and a caret under the failing column
	ShowName   bool // prefix each line with input:line (several inputs)
}

// SinkFactory returns a factory producing sinks of format f.
func SinkFactory(f Format, opts Opts) driver.SinkFactory {
	return func(w io.Writer) driver.Sink {
		switch f {
		case FormatPretty:
			return NewPrettySink(w, opts)
		case FormatJSON:
			return NewJSONSink(w)
		case FormatMsgpack:
			return NewMsgpackSink(w)
		default:
			return NewTextSink(w, opts)
		}
	}
}
