package driver

import "time"

// PhaseStatus reports whether a stage started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a pipeline stage has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Stage names reported to observers, timers and tracers.
const (
	StageLex     = "lex"
	StagePostfix = "postfix"
	StageEval    = "eval"
)

// PhaseEvent describes a stage boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted by Process.
type PhaseObserver func(PhaseEvent)
