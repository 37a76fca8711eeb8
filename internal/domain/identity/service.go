package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vita-health/vita/internal/domain/appointment"
	"github.com/vita-health/vita/internal/platform/auth"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so login responses do not leak which half failed.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

const patientSearchLimit = 10

type Service struct {
	users       UserRepository
	specialties SpecialtyRepository
	tokens      *auth.TokenIssuer
}

func NewService(users UserRepository, specialties SpecialtyRepository, tokens *auth.TokenIssuer) *Service {
	return &Service{users: users, specialties: specialties, tokens: tokens}
}

// Login verifies credentials and issues a session token. Only doctors and
// admins may open a dashboard session.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if u.Role == RolePatient {
		return "", nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID, u.Role, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Register creates an account with a hashed password.
func (s *Service) Register(ctx context.Context, u *User, password string) error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.Role == "" {
		u.Role = RolePatient
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.users.Create(ctx, u)
}

// GetProfile loads an account.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile overwrites the editable profile fields.
func (s *Service) UpdateProfile(ctx context.Context, u *User) error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	return s.users.Update(ctx, u)
}

// SearchPatients finds patients by name fragment. Queries below two
// characters return nothing, matching the dashboard's autocomplete contract.
func (s *Service) SearchPatients(ctx context.Context, query string) ([]*User, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, nil
	}
	return s.users.SearchPatients(ctx, query, patientSearchLimit)
}

// Specialties lists the bookable specialties.
func (s *Service) Specialties(ctx context.Context) ([]*Specialty, error) {
	return s.specialties.List(ctx)
}

// PatientRef implements appointment.Directory.
func (s *Service) PatientRef(ctx context.Context, id uuid.UUID) (*appointment.PatientRef, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &appointment.PatientRef{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}, nil
}

// SpecialtyRef implements appointment.Directory.
func (s *Service) SpecialtyRef(ctx context.Context, id uuid.UUID) (*appointment.SpecialtyRef, error) {
	sp, err := s.specialties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &appointment.SpecialtyRef{ID: sp.ID, Name: sp.Name}, nil
}
