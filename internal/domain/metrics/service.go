package metrics

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) WeeklyRevenue(ctx context.Context, doctorID uuid.UUID) ([]RevenuePoint, error) {
	return s.repo.WeeklyRevenue(ctx, doctorID)
}

func (s *Service) MonthlyRevenue(ctx context.Context, doctorID uuid.UUID) ([]RevenuePoint, error) {
	return s.repo.MonthlyRevenue(ctx, doctorID)
}

func (s *Service) AppointmentsByStatus(ctx context.Context, doctorID uuid.UUID) ([]StatusCount, error) {
	return s.repo.AppointmentsByStatus(ctx, doctorID)
}

func (s *Service) PatientsByType(ctx context.Context, doctorID uuid.UUID) ([]PatientTypeCount, error) {
	return s.repo.PatientsByType(ctx, doctorID)
}

func (s *Service) DemandByHour(ctx context.Context, doctorID uuid.UUID) ([]HourDemand, error) {
	return s.repo.DemandByHour(ctx, doctorID)
}
