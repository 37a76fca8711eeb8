package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidationError reports a transition payload missing a required field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// InvalidStateError reports a transition attempted from a terminal state.
type InvalidStateError struct {
	From Status
	To   Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("appointment is %s; no transition to %s permitted", e.From, e.To)
}

// InvalidTargetError reports a transition to an unknown target status.
type InvalidTargetError struct {
	Target Status
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("unknown target status %q", e.Target)
}

// TransitionPayload carries the data a target status requires. Completion
// needs Notes; rescheduling needs Date, Time and SpecialtyID (Reason and
// Amount overwrite the prior values).
type TransitionPayload struct {
	Notes       string
	Date        time.Time
	Time        string
	SpecialtyID uuid.UUID
	Reason      string
	Amount      float64
}

// Transition validates and applies a status change, returning the mutated
// appointment. The input record is not modified and nothing is persisted;
// the caller hands the result to the store. Errors are always one of
// *ValidationError, *InvalidStateError or *InvalidTargetError.
func Transition(a *Appointment, target Status, payload TransitionPayload) (*Appointment, error) {
	if !target.Valid() || target == StatusPending {
		// pending is only ever the initial state set at booking time.
		return nil, &InvalidTargetError{Target: target}
	}
	if a.Status.Terminal() {
		return nil, &InvalidStateError{From: a.Status, To: target}
	}

	out := *a
	switch target {
	case StatusCompleted:
		if strings.TrimSpace(payload.Notes) == "" {
			return nil, &ValidationError{Msg: "notes required"}
		}
		notes := payload.Notes
		out.Status = StatusCompleted
		out.Notes = &notes

	case StatusCancelled:
		out.Status = StatusCancelled

	case StatusRescheduled:
		if payload.Date.IsZero() {
			return nil, &ValidationError{Msg: "new date required"}
		}
		if _, err := ParseTimeOfDay(payload.Time); err != nil {
			return nil, &ValidationError{Msg: "new time required"}
		}
		if payload.SpecialtyID == uuid.Nil {
			return nil, &ValidationError{Msg: "specialty required"}
		}
		// In-place reschedule: same identity, prior slot data overwritten.
		out.Status = StatusRescheduled
		out.Date = payload.Date.UTC()
		out.Time = payload.Time
		out.SpecialtyID = payload.SpecialtyID
		out.Reason = payload.Reason
		out.Amount = payload.Amount
	}
	return &out, nil
}
