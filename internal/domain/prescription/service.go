package prescription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// AppointmentLinker records the prescription back-reference on the
// appointment. Implemented by the appointment service; wired in main.
type AppointmentLinker interface {
	LinkPrescription(ctx context.Context, appointmentID, prescriptionID uuid.UUID) error
}

type Service struct {
	repo   Repository
	linker AppointmentLinker
}

func NewService(repo Repository, linker AppointmentLinker) *Service {
	return &Service{repo: repo, linker: linker}
}

// Create stores a prescription for an appointment. An appointment takes at
// most one prescription; a second submit returns ErrDuplicate. Incomplete
// medication lines are dropped; at least one complete line is required. On
// success the appointment's recetaId back-reference is updated.
func (s *Service) Create(ctx context.Context, p *Prescription) error {
	if p.AppointmentID == uuid.Nil {
		return fmt.Errorf("appointment id is required")
	}
	if existing, _ := s.repo.GetByAppointment(ctx, p.AppointmentID); existing != nil {
		return ErrDuplicate
	}

	complete := p.Medications[:0]
	for _, m := range p.Medications {
		if m.Complete() {
			complete = append(complete, m)
		}
	}
	p.Medications = complete
	if len(p.Medications) == 0 {
		return fmt.Errorf("at least one complete medication is required")
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	if s.linker != nil {
		if err := s.linker.LinkPrescription(ctx, p.AppointmentID, p.ID); err != nil {
			return fmt.Errorf("link prescription to appointment: %w", err)
		}
	}
	return nil
}

// GetByAppointment fetches the prescription attached to an appointment.
func (s *Service) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Prescription, error) {
	return s.repo.GetByAppointment(ctx, appointmentID)
}
