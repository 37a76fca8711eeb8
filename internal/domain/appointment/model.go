package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPending     Status = "pending"
	StatusRescheduled Status = "rescheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusRescheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Appointment maps to the appointment table. Date carries the civil day at
// UTC midnight; Time is the "HH:MM" start time kept as a separate column,
// matching the dashboard's storage convention.
type Appointment struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	PatientID      uuid.UUID  `db:"patient_id" json:"patient_id"`
	DoctorID       uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	SpecialtyID    uuid.UUID  `db:"specialty_id" json:"specialty_id"`
	Date           time.Time  `db:"date" json:"date"`
	Time           string     `db:"time" json:"time"`
	Status         Status     `db:"status" json:"status"`
	Reason         string     `db:"reason" json:"reason"`
	PaymentMode    string     `db:"payment_mode" json:"payment_mode"`
	Amount         float64    `db:"amount" json:"amount"`
	Notes          *string    `db:"notes" json:"notes,omitempty"`
	PrescriptionID *uuid.UUID `db:"prescription_id" json:"prescription_id,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// EffectiveInstant combines the appointment's civil date and "HH:MM" start
// time into a single UTC instant. The stored date already carries a UTC day
// boundary, so it is never re-localized before combining. The pair is
// recomputed on every call rather than cached on the record.
func (a *Appointment) EffectiveInstant() (time.Time, error) {
	tod, err := ParseTimeOfDay(a.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment %s: %w", a.ID, err)
	}
	d := a.Date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), tod.Hour, tod.Minute, 0, 0, time.UTC), nil
}

// TimeOfDay is a civil wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a 24h "HH:MM" string. Zero padding is optional;
// anything beyond the two fields is rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	h, herr := strconv.Atoi(hh)
	m, merr := strconv.Atoi(mm)
	if herr != nil || merr != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the offset from midnight in minutes.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// AddMinutes returns the time advanced by n minutes. The result is not
// normalized past midnight; callers stay inside a single workday.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	total := t.Minutes() + n
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// Before reports whether t is earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// SameDay reports whether a's civil date equals the given UTC day.
func (a *Appointment) SameDay(day time.Time) bool {
	ad, dd := a.Date.UTC(), day.UTC()
	return ad.Year() == dd.Year() && ad.Month() == dd.Month() && ad.Day() == dd.Day()
}
