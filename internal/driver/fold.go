package driver

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// FoldWidth maps full-width forms ("１２＋３") to their ASCII counterparts.
// Every rune maps to exactly one rune, so columns are preserved.
func FoldWidth(s string) string {
	if isASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if p := width.LookupRune(r); p.Kind() == width.EastAsianFullwidth && p.Narrow() != 0 {
			r = p.Narrow()
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
