package prescription

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrDuplicate reports that the appointment already has a prescription.
var ErrDuplicate = errors.New("appointment already has a prescription")

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Prescription, error)
}
