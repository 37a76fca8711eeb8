package appointment

import "time"

// Workday defaults for slot generation. The clinic books consultations on a
// fixed 10:00–16:00 window in half-hour steps.
var (
	DefaultWorkdayStart = TimeOfDay{Hour: 10}
	DefaultWorkdayEnd   = TimeOfDay{Hour: 16}
)

const DefaultSlotStepMinutes = 30

// SlotOptions overrides the workday window used by AvailableSlots. The zero
// value selects the defaults.
type SlotOptions struct {
	WorkdayStart TimeOfDay
	WorkdayEnd   TimeOfDay
	StepMinutes  int
}

func (o SlotOptions) withDefaults() SlotOptions {
	if o.WorkdayStart == (TimeOfDay{}) {
		o.WorkdayStart = DefaultWorkdayStart
	}
	if o.WorkdayEnd == (TimeOfDay{}) {
		o.WorkdayEnd = DefaultWorkdayEnd
	}
	if o.StepMinutes <= 0 {
		o.StepMinutes = DefaultSlotStepMinutes
	}
	return o
}

// AvailableSlots returns the ascending candidate start times on the given
// day, from workday start to end inclusive, minus any time already taken by
// a non-terminal appointment on that day. Cancelled and completed
// appointments do not block a slot. Collision is on the exact start time
// only; consultation duration is not modeled.
func AvailableSlots(day time.Time, existing []*Appointment, opts SlotOptions) []TimeOfDay {
	opts = opts.withDefaults()

	taken := make(map[string]struct{})
	for _, a := range existing {
		if a.Status.Terminal() {
			continue
		}
		if !a.SameDay(day) {
			continue
		}
		tod, err := ParseTimeOfDay(a.Time)
		if err != nil {
			continue
		}
		taken[tod.String()] = struct{}{}
	}

	var slots []TimeOfDay
	for t := opts.WorkdayStart; !opts.WorkdayEnd.Before(t); t = t.AddMinutes(opts.StepMinutes) {
		if _, busy := taken[t.String()]; busy {
			continue
		}
		slots = append(slots, t)
	}
	return slots
}
