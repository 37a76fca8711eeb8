package identity

import (
	"context"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	// SearchPatients matches patients whose first or last name contains the
	// query fragment, case-insensitively.
	SearchPatients(ctx context.Context, query string, limit int) ([]*User, error)
}

type SpecialtyRepository interface {
	List(ctx context.Context) ([]*Specialty, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Specialty, error)
}
