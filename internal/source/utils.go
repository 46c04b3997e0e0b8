package source

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

const bom = "\ufeff"

func removeBOM(s string) string {
	return strings.TrimPrefix(s, bom)
}

// ColumnOf returns the rune column of byte offset off in s.
func ColumnOf(s string, off int) uint32 {
	if off > len(s) {
		off = len(s)
	}
	col, err := safecast.Conv[uint32](utf8.RuneCountInString(s[:off]))
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return col
}

// Width returns the number of columns (runes) in s.
func Width(s string) uint32 {
	return ColumnOf(s, len(s))
}
