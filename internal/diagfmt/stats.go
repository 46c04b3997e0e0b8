package diagfmt

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"bares/internal/driver"
)

// WriteStats renders the run summary as a table.
func WriteStats(w io.Writer, st driver.Stats) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Result", "ID", "Lines"})

	t.AppendRow(table.Row{"OK", "", st.OK})
	for _, code := range st.Codes() {
		t.AppendRow(table.Row{code.Name(), code.ID(), st.ByCode[code]})
	}
	t.AppendFooter(table.Row{"Total", "", st.Lines})
	noun := "inputs"
	if st.Inputs == 1 {
		noun = "input"
	}
	if _, err := fmt.Fprintf(w, "%s\n(%d %s)\n", t.Render(), st.Inputs, noun); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}
