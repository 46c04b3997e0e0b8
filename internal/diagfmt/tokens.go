package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"bares/internal/source"
	"bares/internal/token"
)

type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-8s %-6q at %d-%d\n",
			i+1, tok.Kind.String(), tok.String(), tok.Span.Start+1, tok.Span.End); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены одной строки как JSON-массив
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.String(),
			Span: tok.Span,
		})
	}
	enc := json.NewEncoder(w)
	return enc.Encode(output)
}
