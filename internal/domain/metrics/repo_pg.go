package metrics

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a PostgreSQL-backed metrics repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func collectRevenue(rows pgx.Rows) ([]RevenuePoint, error) {
	defer rows.Close()
	var points []RevenuePoint
	for rows.Next() {
		var p RevenuePoint
		if err := rows.Scan(&p.Period, &p.Total); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// WeeklyRevenue sums completed-appointment fees per day over the last seven
// days, including the current day.
func (r *repoPG) WeeklyRevenue(ctx context.Context, doctorID uuid.UUID) ([]RevenuePoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD') AS period, COALESCE(SUM(amount), 0)
		FROM appointment
		WHERE doctor_id = $1 AND status = 'completed'
		  AND date >= (CURRENT_DATE - INTERVAL '6 days')
		GROUP BY date ORDER BY date`,
		doctorID)
	if err != nil {
		return nil, err
	}
	return collectRevenue(rows)
}

// MonthlyRevenue sums completed-appointment fees per month over the last
// six months.
func (r *repoPG) MonthlyRevenue(ctx context.Context, doctorID uuid.UUID) ([]RevenuePoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(date_trunc('month', date), 'YYYY-MM') AS period, COALESCE(SUM(amount), 0)
		FROM appointment
		WHERE doctor_id = $1 AND status = 'completed'
		  AND date >= date_trunc('month', CURRENT_DATE) - INTERVAL '5 months'
		GROUP BY date_trunc('month', date) ORDER BY date_trunc('month', date)`,
		doctorID)
	if err != nil {
		return nil, err
	}
	return collectRevenue(rows)
}

func (r *repoPG) AppointmentsByStatus(ctx context.Context, doctorID uuid.UUID) ([]StatusCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*) FROM appointment
		WHERE doctor_id = $1 GROUP BY status ORDER BY status`,
		doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wire := map[string]string{
		"pending":     "pendiente",
		"rescheduled": "reprogramada",
		"completed":   "completada",
		"cancelled":   "cancelada",
	}
	var counts []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		if w, ok := wire[sc.Status]; ok {
			sc.Status = w
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// PatientsByType counts patients with a single appointment as new and the
// rest as returning.
func (r *repoPG) PatientsByType(ctx context.Context, doctorID uuid.UUID) ([]PatientTypeCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT CASE WHEN visits = 1 THEN 'nuevo' ELSE 'recurrente' END AS type, COUNT(*)
		FROM (
			SELECT patient_id, COUNT(*) AS visits
			FROM appointment WHERE doctor_id = $1
			GROUP BY patient_id
		) per_patient
		GROUP BY type ORDER BY type DESC`,
		doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var counts []PatientTypeCount
	for rows.Next() {
		var tc PatientTypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

func (r *repoPG) DemandByHour(ctx context.Context, doctorID uuid.UUID) ([]HourDemand, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT time, COUNT(*) FROM appointment
		WHERE doctor_id = $1 GROUP BY time ORDER BY time`,
		doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var demand []HourDemand
	for rows.Next() {
		var hd HourDemand
		if err := rows.Scan(&hd.Hour, &hd.Count); err != nil {
			return nil, err
		}
		demand = append(demand, hd)
	}
	return demand, rows.Err()
}
