package identity

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes account kinds. Doctors log into the dashboard; patients
// exist as bookable records and, in a later phase, portal accounts.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// User maps to the app_user table.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Role         string     `db:"role" json:"role"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Phone        *string    `db:"phone" json:"phone,omitempty"`
	SpecialtyID  *uuid.UUID `db:"specialty_id" json:"specialty_id,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Specialty maps to the specialty table.
type Specialty struct {
	ID   uuid.UUID `db:"id" json:"_id"`
	Name string    `db:"name" json:"nombre"`
}

// Profile is the client-facing account representation, using the wire
// vocabulary the dashboard expects.
type Profile struct {
	ID          uuid.UUID  `json:"_id"`
	FirstName   string     `json:"nombre"`
	LastName    string     `json:"apellido"`
	Email       string     `json:"email"`
	Phone       string     `json:"telefono,omitempty"`
	SpecialtyID *uuid.UUID `json:"especialidadId,omitempty"`
	Role        string     `json:"rol"`
}

// ToProfile converts a user record to its wire form.
func (u *User) ToProfile() Profile {
	p := Profile{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		SpecialtyID: u.SpecialtyID,
		Role:        u.Role,
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	return p
}
