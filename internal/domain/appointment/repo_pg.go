package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a PostgreSQL-backed appointment repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, patient_id, doctor_id, specialty_id, date, time, status,
	reason, payment_mode, amount, notes, prescription_id, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.SpecialtyID, &a.Date, &a.Time,
		&a.Status, &a.Reason, &a.PaymentMode, &a.Amount, &a.Notes, &a.PrescriptionID,
		&a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func collectAppointments(rows pgx.Rows) ([]*Appointment, error) {
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, doctor_id, specialty_id, date, time,
			status, reason, payment_mode, amount, notes, prescription_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		a.ID, a.PatientID, a.DoctorID, a.SpecialtyID, a.Date, a.Time,
		a.Status, a.Reason, a.PaymentMode, a.Amount, a.Notes, a.PrescriptionID)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointment SET specialty_id=$2, date=$3, time=$4, status=$5, reason=$6,
			payment_mode=$7, amount=$8, notes=$9, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.SpecialtyID, a.Date, a.Time, a.Status, a.Reason,
		a.PaymentMode, a.Amount, a.Notes)
	return err
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE doctor_id = $1 ORDER BY date, time`, doctorID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *repoPG) ListByDoctorOnDay(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE doctor_id = $1 AND date = $2 ORDER BY time`,
		doctorID, day.UTC().Truncate(24*time.Hour))
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *repoPG) ListTerminalByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointment WHERE doctor_id = $1 AND status IN ('completed','cancelled')`,
		doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE doctor_id = $1 AND status IN ('completed','cancelled')
		ORDER BY date DESC, time DESC LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items, err := collectAppointments(rows)
	return items, total, err
}

func (r *repoPG) CountByStatus(ctx context.Context, doctorID uuid.UUID) (map[Status]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM appointment WHERE doctor_id = $1 GROUP BY status`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[Status]int)
	for rows.Next() {
		var s Status
		var n int
		if err := rows.Scan(&s, &n); err != nil {
			return nil, err
		}
		counts[s] = n
	}
	return counts, rows.Err()
}

func (r *repoPG) SetPrescription(ctx context.Context, id, prescriptionID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE appointment SET prescription_id = $2, updated_at = NOW() WHERE id = $1`,
		id, prescriptionID)
	return err
}
