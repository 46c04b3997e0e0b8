package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAccumulatesRuns(t *testing.T) {
	tm := NewTimer()
	tm.Add("lex", 2*time.Millisecond, "")
	tm.Add("eval", time.Millisecond, "")
	tm.Add("lex", 3*time.Millisecond, "2 lines")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	lex := r.Phases[0]
	if lex.Name != "lex" || lex.Count != 2 || lex.DurationMS != 5 || lex.Note != "2 lines" {
		t.Errorf("unexpected lex phase: %+v", lex)
	}
	if r.TotalMS != 6 {
		t.Errorf("TotalMS = %v, want 6", r.TotalMS)
	}
	if s := tm.Summary(); !strings.Contains(s, "lex") || !strings.Contains(s, "total") {
		t.Errorf("summary:\n%s", s)
	}
}

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("read")
	tm.End(idx, "")
	tm.End(99, "") // неизвестный индекс игнорируется
	if r := tm.Report(); len(r.Phases) != 1 || r.Phases[0].Count != 1 {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				tm.Add("line", time.Microsecond, "")
			}
		}()
	}
	wg.Wait()
	if c := tm.Report().Phases[0].Count; c != 800 {
		t.Fatalf("Count = %d, want 800", c)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	tm.Add("x", time.Second, "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatal("nil timer must report nothing")
	}
}
