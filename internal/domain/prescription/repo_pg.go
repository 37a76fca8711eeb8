package prescription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a PostgreSQL-backed prescription repository. Medication
// line items live in a JSONB column; their shape is owned by the model.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	meds, err := json.Marshal(p.Medications)
	if err != nil {
		return fmt.Errorf("encode medications: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO prescription (id, appointment_id, medications, observations)
		VALUES ($1,$2,$3,$4)`,
		p.ID, p.AppointmentID, meds, p.Observations)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return ErrDuplicate
	}
	return err
}

func (r *repoPG) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Prescription, error) {
	var p Prescription
	var meds []byte
	err := r.pool.QueryRow(ctx, `
		SELECT id, appointment_id, medications, observations, created_at
		FROM prescription WHERE appointment_id = $1`,
		appointmentID).
		Scan(&p.ID, &p.AppointmentID, &meds, &p.Observations, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(meds, &p.Medications); err != nil {
		return nil, fmt.Errorf("decode medications: %w", err)
	}
	return &p, nil
}
