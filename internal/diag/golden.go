package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// goldenEntry is one rendered line of FormatGoldenDiagnostics.
type goldenEntry struct {
	sev  string
	id   string
	path string
	line uint32
	col  uint32 // 1-based; 0 for evaluation failures
	msg  string
}

func (e goldenEntry) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", e.sev, e.id, e.path, e.line, e.col, e.msg)
}

// FormatGoldenDiagnostics renders diagnostics one per line for golden
// comparisons: "error LEX1003 exprs.txt:4:5 Missing <term>". Entries are
// ordered by path, line, column and ID; nil entries are skipped.
func FormatGoldenDiagnostics(diags []*Diagnostic) string {
	entries := make([]goldenEntry, 0, len(diags))
	for _, d := range diags {
		if d == nil {
			continue
		}
		e := goldenEntry{
			sev:  strings.ToLower(d.Severity.String()),
			id:   d.Code.ID(),
			path: trimDotSlash(filepath.ToSlash(d.Source)),
			line: d.Line,
			msg:  d.Code.Title(),
		}
		if d.Code.Positional() {
			e.col = d.Col() + 1
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b goldenEntry) int {
		return cmp.Or(
			cmp.Compare(a.path, b.path),
			cmp.Compare(a.line, b.line),
			cmp.Compare(a.col, b.col),
			cmp.Compare(a.id, b.id),
		)
	})

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

func trimDotSlash(p string) string {
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}
