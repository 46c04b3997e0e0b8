package diagfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"bares/internal/source"
)

// CaretLine builds the marker line "    ^~~" that sits under sp in text.
// Padding is measured in display cells so wide runes keep the marker aligned;
// tabs are copied through.
func CaretLine(text string, sp source.Span) string {
	var (
		b    strings.Builder
		col  uint32
		mark int
	)
	for _, r := range text {
		if col >= sp.Start {
			if col < sp.End {
				mark += max(runewidth.RuneWidth(r), 1)
			}
		} else if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		col++
	}
	// позиция за концом строки (UNEXPECTED_END)
	for ; col < sp.Start; col++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	if mark > 1 {
		b.WriteString(strings.Repeat("~", mark-1))
	}
	return b.String()
}
