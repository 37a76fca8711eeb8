package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vita-health/vita/internal/platform/websocket"
)

// Directory resolves patient and specialty references for wire expansion.
// Implemented by the identity service; wired in main to avoid a package
// cycle between the appointment and identity domains.
type Directory interface {
	PatientRef(ctx context.Context, id uuid.UUID) (*PatientRef, error)
	SpecialtyRef(ctx context.Context, id uuid.UUID) (*SpecialtyRef, error)
}

// Notifier stores the bell-badge copy of a lifecycle event. Implemented by
// the notification service; wired in main, same as Directory.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, message string) error
}

// Service owns appointment booking and lifecycle. The pure engine functions
// (Classify, Transition, AvailableSlots) do the deciding; the service loads
// and persists around them and publishes lifecycle events.
type Service struct {
	repo      Repository
	dir       Directory
	publisher websocket.EventPublisher
	notifier  Notifier
	slotOpts  SlotOptions
}

// NewService constructs an appointment service. dir and publisher may be nil;
// responses then omit expanded references and no events are emitted.
func NewService(repo Repository, dir Directory, publisher websocket.EventPublisher) *Service {
	return &Service{repo: repo, dir: dir, publisher: publisher}
}

// SetSlotOptions overrides the default workday window for slot generation.
func (s *Service) SetSlotOptions(opts SlotOptions) { s.slotOpts = opts }

// SetNotifier attaches the persistent notification store. Lifecycle events
// then land there as well as on the socket.
func (s *Service) SetNotifier(n Notifier) { s.notifier = n }

// Book creates a pending appointment after checking the slot is still free.
func (s *Service) Book(ctx context.Context, a *Appointment) error {
	if a.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.SpecialtyID == uuid.Nil {
		return fmt.Errorf("specialty_id is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	tod, err := ParseTimeOfDay(a.Time)
	if err != nil {
		return fmt.Errorf("time is required: %w", err)
	}
	if a.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	a.Time = tod.String()
	a.Date = a.Date.UTC()
	a.Status = StatusPending

	sameDay, err := s.repo.ListByDoctorOnDay(ctx, a.DoctorID, a.Date)
	if err != nil {
		return err
	}
	for _, other := range sameDay {
		if !other.Status.Terminal() && other.Time == a.Time {
			return fmt.Errorf("slot %s on %s is already booked", a.Time, a.Date.Format("2006-01-02"))
		}
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}
	s.publish(ctx, "appointment.created", a)
	return nil
}

// Get loads a single appointment.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByDoctor returns all of a doctor's appointments.
func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// ClassifyForDoctor loads a doctor's appointments and partitions them
// relative to now. now comes from the caller so handlers and tests control
// the reference instant.
func (s *Service) ClassifyForDoctor(ctx context.Context, doctorID uuid.UUID, now time.Time) (Classification, error) {
	appts, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return Classification{}, err
	}
	return Classify(appts, now), nil
}

// ApplyTransition loads the appointment, runs the transition engine and
// persists the result. Engine errors pass through untouched so the handler
// can map each kind to a status code.
func (s *Service) ApplyTransition(ctx context.Context, id uuid.UUID, target Status, payload TransitionPayload) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := Transition(a, target, payload)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	s.publish(ctx, "appointment."+string(target), updated)
	return updated, nil
}

// CompleteWithNotes finishes a consultation by attaching clinical notes.
func (s *Service) CompleteWithNotes(ctx context.Context, id uuid.UUID, notes string) (*Appointment, error) {
	return s.ApplyTransition(ctx, id, StatusCompleted, TransitionPayload{Notes: notes})
}

// History returns a doctor's terminal appointments, newest first.
func (s *Service) History(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListTerminalByDoctor(ctx, doctorID, limit, offset)
}

// SlotsForDoctor returns the free start times for a doctor on a day.
func (s *Service) SlotsForDoctor(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]TimeOfDay, error) {
	existing, err := s.repo.ListByDoctorOnDay(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}
	return AvailableSlots(day, existing, s.slotOpts), nil
}

// Summary are the dashboard's headline counters.
type Summary struct {
	Upcoming  int `json:"citasProgramadas"`
	Overdue   int `json:"citasAtrasadas"`
	Completed int `json:"citasCompletadas"`
	Cancelled int `json:"citasCanceladas"`
}

// SummaryForDoctor computes the dashboard counters relative to now. The
// open buckets come from Classify; the terminal counters come straight
// from the repository.
func (s *Service) SummaryForDoctor(ctx context.Context, doctorID uuid.UUID, now time.Time) (Summary, error) {
	appts, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return Summary{}, err
	}
	counts, err := s.repo.CountByStatus(ctx, doctorID)
	if err != nil {
		return Summary{}, err
	}
	cls := Classify(appts, now)
	return Summary{
		Upcoming:  len(cls.Upcoming),
		Overdue:   len(cls.Overdue),
		Completed: counts[StatusCompleted],
		Cancelled: counts[StatusCancelled],
	}, nil
}

// LinkPrescription records the back-reference after a prescription is saved.
func (s *Service) LinkPrescription(ctx context.Context, id, prescriptionID uuid.UUID) error {
	return s.repo.SetPrescription(ctx, id, prescriptionID)
}

// ToWire expands an appointment with its patient and specialty references.
// Resolution failures degrade to a bare reference rather than failing the
// response.
func (s *Service) ToWire(ctx context.Context, a *Appointment) Wire {
	var patient *PatientRef
	var specialty *SpecialtyRef
	if s.dir != nil {
		patient, _ = s.dir.PatientRef(ctx, a.PatientID)
		specialty, _ = s.dir.SpecialtyRef(ctx, a.SpecialtyID)
	}
	return a.ToWire(patient, specialty)
}

// ToWireList expands a slice of appointments.
func (s *Service) ToWireList(ctx context.Context, appts []*Appointment) []Wire {
	out := make([]Wire, len(appts))
	for i, a := range appts {
		out[i] = s.ToWire(ctx, a)
	}
	return out
}

func (s *Service) publish(ctx context.Context, eventType string, a *Appointment) {
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, websocket.Event{
			Type:         eventType,
			Topic:        "doctor:" + a.DoctorID.String(),
			ResourceType: "Appointment",
			ResourceID:   a.ID.String(),
			Timestamp:    time.Now().UTC(),
		})
	}
	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, a.DoctorID, notificationMessage(eventType, a))
	}
}

// notificationMessage renders the stored, client-facing copy of an event.
func notificationMessage(eventType string, a *Appointment) string {
	day := a.Date.UTC().Format("02/01/2006")
	switch eventType {
	case "appointment.created":
		return fmt.Sprintf("Nueva cita agendada para el %s a las %s", day, a.Time)
	case "appointment.rescheduled":
		return fmt.Sprintf("Cita reprogramada para el %s a las %s", day, a.Time)
	case "appointment.completed":
		return fmt.Sprintf("Consulta del %s a las %s completada", day, a.Time)
	case "appointment.cancelled":
		return fmt.Sprintf("Cita del %s a las %s cancelada", day, a.Time)
	}
	return fmt.Sprintf("Cita del %s a las %s actualizada", day, a.Time)
}
