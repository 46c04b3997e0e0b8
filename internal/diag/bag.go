package diag

import (
	"sort"
)

type Bag struct {
	items   []*Diagnostic
	max     int
	dropped int
}

// NewBag creates a bag keeping at most max diagnostics (max <= 0 means unlimited).
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]*Diagnostic, 0, capHint(max)),
		max:   max,
	}
}

func capHint(n int) int {
	if n <= 0 || n > 64 {
		return 64
	}
	return n
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d *Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Dropped returns how many diagnostics were rejected by the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag, игнорируя лимит.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// CountByCode returns the number of diagnostics per code.
func (b *Bag) CountByCode() map[Code]int {
	out := make(map[Code]int)
	for _, d := range b.items {
		out[d.Code]++
	}
	return out
}

// Sort сортирует диагностики по: source, line, column, code
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Source != dj.Source {
			return di.Source < dj.Source
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		return di.Code < dj.Code
	})
}
