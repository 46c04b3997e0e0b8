package diag

// Reporter — минимальный контракт получения диагностик от стадий.
// Реализации: BagReporter (кладёт в Bag), LineReporter (проставляет строку).
type Reporter interface {
	Report(d *Diagnostic)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d *Diagnostic) {
	if r.Bag == nil || d == nil {
		return
	}
	r.Bag.Add(d)
}

// LineReporter stamps the origin of the current line before forwarding.
type LineReporter struct {
	Next   Reporter
	Source string
	Line   uint32
}

func (r LineReporter) Report(d *Diagnostic) {
	if r.Next == nil || d == nil {
		return
	}
	c := *d
	c.Source = r.Source
	c.Line = r.Line
	r.Next.Report(&c)
}

// MultiReporter forwards every diagnostic to each non-nil reporter.
type MultiReporter []Reporter

func (m MultiReporter) Report(d *Diagnostic) {
	for _, r := range m {
		if r != nil {
			r.Report(d)
		}
	}
}
