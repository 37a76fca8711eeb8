package appointment

import (
	"sort"
	"time"
)

// Classification partitions a doctor's open appointments relative to a
// reference instant. Upcoming holds appointments whose effective instant is
// at or after the reference; Overdue holds those strictly before it. Both
// lists are ordered by effective instant ascending so the dashboard's "next
// appointment" is always the head of Upcoming.
type Classification struct {
	Upcoming []*Appointment
	Overdue  []*Appointment
}

// Classify buckets appointments into upcoming and overdue. Only pending and
// rescheduled appointments participate; terminal ones belong to history and
// are dropped from both lists. Records whose time-of-day fails to parse are
// skipped rather than failing the whole partition.
//
// now must be supplied by the caller. Classify never consults the system
// clock, so identical inputs always produce identical output.
func Classify(appointments []*Appointment, now time.Time) Classification {
	type timed struct {
		appt *Appointment
		at   time.Time
	}
	var upcoming, overdue []timed

	for _, a := range appointments {
		if a.Status != StatusPending && a.Status != StatusRescheduled {
			continue
		}
		at, err := a.EffectiveInstant()
		if err != nil {
			continue
		}
		if at.Before(now) {
			overdue = append(overdue, timed{a, at})
		} else {
			upcoming = append(upcoming, timed{a, at})
		}
	}

	byInstant := func(list []timed) []*Appointment {
		sort.SliceStable(list, func(i, j int) bool { return list[i].at.Before(list[j].at) })
		out := make([]*Appointment, len(list))
		for i, t := range list {
			out[i] = t.appt
		}
		return out
	}

	return Classification{
		Upcoming: byInstant(upcoming),
		Overdue:  byInstant(overdue),
	}
}

// Next returns the soonest upcoming appointment, or nil when none exist.
func (c Classification) Next() *Appointment {
	if len(c.Upcoming) == 0 {
		return nil
	}
	return c.Upcoming[0]
}
