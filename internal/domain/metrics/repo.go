package metrics

import (
	"context"

	"github.com/google/uuid"
)

// Repository computes KPI aggregates over a doctor's appointments. All
// queries are read-only; the appointment domain owns the table.
type Repository interface {
	WeeklyRevenue(ctx context.Context, doctorID uuid.UUID) ([]RevenuePoint, error)
	MonthlyRevenue(ctx context.Context, doctorID uuid.UUID) ([]RevenuePoint, error)
	AppointmentsByStatus(ctx context.Context, doctorID uuid.UUID) ([]StatusCount, error)
	PatientsByType(ctx context.Context, doctorID uuid.UUID) ([]PatientTypeCount, error)
	DemandByHour(ctx context.Context, doctorID uuid.UUID) ([]HourDemand, error)
}
