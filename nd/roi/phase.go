package roi

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-nd/nd/img"
)

// Phase is the position of an operator in its check/process/result
// protocol.
type Phase int

const (
	Unchecked Phase = iota
	CheckedOK
	CheckedFailed
	Processed
	ProcessFailed
)

var phaseNames = [...]string{"unchecked", "checked-ok", "checked-failed", "processed", "process-failed"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Status summarises a run.
type Status int

const (
	NotRun Status = iota
	Ok
	Failed
)

func (s Status) String() string {
	switch s {
	case NotRun:
		return "not-run"
	case Ok:
		return "ok"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is what Process returns. Result is set only when Status is Ok and
// Err only when Status is Failed.
type Outcome[T any] struct {
	Status Status
	Result img.Img[T]
	Err    error
}

func (o Outcome[T]) OK() bool { return o.Status == Ok }

// Message returns the failure text, or "" when there is none.
func (o Outcome[T]) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

func succeeded[T any](result img.Img[T]) Outcome[T] {
	return Outcome[T]{Status: Ok, Result: result}
}

func failed[T any](err error) Outcome[T] {
	return Outcome[T]{Status: Failed, Err: err}
}

// Algorithm is the protocol every local operator obeys:
//
//	CheckInput -> Process -> Result
//
// CheckInput records a failure instead of panicking. Process runs the check
// itself when it has not passed yet, so callers that skip it still get a
// Failed outcome rather than a crash. Result is nil until Process succeeds.
type Algorithm[T any] interface {
	CheckInput() bool
	Process() Outcome[T]
	Result() img.Img[T]
	// Outcome returns the last Process outcome, NotRun before the first.
	Outcome() Outcome[T]
	ErrorMessage() string
	Err() error
	Phase() Phase
	ProcessingTime() time.Duration
	Close() error
}
