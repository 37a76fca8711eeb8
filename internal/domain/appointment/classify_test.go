package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseWireDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func appt(t *testing.T, date, tod string, status Status) *Appointment {
	t.Helper()
	return &Appointment{
		ID:     uuid.New(),
		Date:   mustDate(t, date),
		Time:   tod,
		Status: status,
	}
}

func TestClassify_PastIsOverdue(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	a := appt(t, "2024-01-10", "09:00", StatusPending)

	cls := Classify([]*Appointment{a}, now)
	if len(cls.Overdue) != 1 || len(cls.Upcoming) != 0 {
		t.Fatalf("expected 1 overdue, 0 upcoming; got %d/%d", len(cls.Overdue), len(cls.Upcoming))
	}
	if cls.Overdue[0].ID != a.ID {
		t.Errorf("wrong appointment in overdue bucket")
	}
}

func TestClassify_FutureIsUpcoming(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	a := appt(t, "2024-01-20", "11:30", StatusRescheduled)

	cls := Classify([]*Appointment{a}, now)
	if len(cls.Upcoming) != 1 || len(cls.Overdue) != 0 {
		t.Fatalf("expected 1 upcoming, 0 overdue; got %d/%d", len(cls.Upcoming), len(cls.Overdue))
	}
}

func TestClassify_BoundaryEqualToNowIsUpcoming(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	a := appt(t, "2024-01-15", "10:30", StatusPending)

	cls := Classify([]*Appointment{a}, now)
	if len(cls.Upcoming) != 1 {
		t.Fatalf("appointment exactly at now should be upcoming, got %d upcoming / %d overdue",
			len(cls.Upcoming), len(cls.Overdue))
	}
}

func TestClassify_TerminalExcluded(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	appts := []*Appointment{
		appt(t, "2024-01-10", "09:00", StatusCompleted),
		appt(t, "2024-01-20", "09:00", StatusCancelled),
	}

	cls := Classify(appts, now)
	if len(cls.Upcoming) != 0 || len(cls.Overdue) != 0 {
		t.Errorf("terminal appointments must not appear in either bucket, got %d/%d",
			len(cls.Upcoming), len(cls.Overdue))
	}
}

func TestClassify_SortedAscending(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	late := appt(t, "2024-01-20", "15:00", StatusPending)
	early := appt(t, "2024-01-16", "09:00", StatusPending)
	mid := appt(t, "2024-01-16", "10:30", StatusRescheduled)

	cls := Classify([]*Appointment{late, early, mid}, now)
	if len(cls.Upcoming) != 3 {
		t.Fatalf("expected 3 upcoming, got %d", len(cls.Upcoming))
	}
	if cls.Upcoming[0].ID != early.ID || cls.Upcoming[1].ID != mid.ID || cls.Upcoming[2].ID != late.ID {
		t.Errorf("upcoming not sorted by effective instant ascending")
	}
	if cls.Next().ID != early.ID {
		t.Errorf("Next should be the soonest upcoming appointment")
	}
}

func TestClassify_OverdueSortedAscending(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	older := appt(t, "2024-01-05", "09:00", StatusPending)
	newer := appt(t, "2024-01-20", "09:00", StatusPending)

	cls := Classify([]*Appointment{newer, older}, now)
	if len(cls.Overdue) != 2 {
		t.Fatalf("expected 2 overdue, got %d", len(cls.Overdue))
	}
	if cls.Overdue[0].ID != older.ID {
		t.Errorf("overdue not sorted by effective instant ascending")
	}
}

func TestClassify_UnparseableTimeSkipped(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	bad := appt(t, "2024-01-20", "25:99", StatusPending)
	good := appt(t, "2024-01-20", "09:00", StatusPending)

	cls := Classify([]*Appointment{bad, good}, now)
	if len(cls.Upcoming) != 1 || cls.Upcoming[0].ID != good.ID {
		t.Errorf("record with unparseable time must be skipped, not fail the partition")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	appts := []*Appointment{
		appt(t, "2024-01-10", "09:00", StatusPending),
		appt(t, "2024-01-16", "09:00", StatusRescheduled),
		appt(t, "2024-01-12", "14:00", StatusCompleted),
	}

	first := Classify(appts, now)
	second := Classify(appts, now)
	if len(first.Upcoming) != len(second.Upcoming) || len(first.Overdue) != len(second.Overdue) {
		t.Fatalf("same inputs must produce the same partition")
	}
	for i := range first.Upcoming {
		if first.Upcoming[i].ID != second.Upcoming[i].ID {
			t.Errorf("upcoming order differs between runs")
		}
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	cls := Classify(nil, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	if len(cls.Upcoming) != 0 || len(cls.Overdue) != 0 {
		t.Errorf("empty input should produce empty buckets")
	}
	if cls.Next() != nil {
		t.Errorf("Next on empty classification should be nil")
	}
}

func TestEffectiveInstant(t *testing.T) {
	a := appt(t, "2024-03-05", "08:45", StatusPending)
	at, err := a.EffectiveInstant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 5, 8, 45, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("expected %v, got %v", want, at)
	}
}

func TestEffectiveInstant_IgnoresStoredClock(t *testing.T) {
	// A date stored with a stray non-midnight clock still combines with the
	// HH:MM column, not the stored clock.
	a := &Appointment{
		Date:   time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC),
		Time:   "10:00",
		Status: StatusPending,
	}
	at, err := a.EffectiveInstant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("expected %v, got %v", want, at)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tod.Hour != 9 || tod.Minute != 5 {
		t.Errorf("expected 09:05, got %v", tod)
	}
	if tod.String() != "09:05" {
		t.Errorf("expected zero-padded string, got %q", tod.String())
	}

	for _, bad := range []string{"", "24:00", "10:60", "-1:00", "abc", "10:30pm", "10:30:00", "1030"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	tod := TimeOfDay{Hour: 10, Minute: 45}
	got := tod.AddMinutes(30)
	if got.Hour != 11 || got.Minute != 15 {
		t.Errorf("expected 11:15, got %v", got)
	}
}
