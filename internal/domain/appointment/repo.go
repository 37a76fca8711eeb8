package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for appointments. The engine
// (classify/transition/slots) never touches it; only the service does.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	// ListByDoctor returns every appointment for a doctor, any status.
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)
	// ListByDoctorOnDay returns a doctor's appointments on a UTC civil day.
	ListByDoctorOnDay(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]*Appointment, error)
	// ListTerminalByDoctor returns completed and cancelled appointments,
	// newest first, for the history view.
	ListTerminalByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	CountByStatus(ctx context.Context, doctorID uuid.UUID) (map[Status]int, error)
	SetPrescription(ctx context.Context, id, prescriptionID uuid.UUID) error
}
