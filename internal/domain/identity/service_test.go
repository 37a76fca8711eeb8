package identity

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vita-health/vita/internal/platform/auth"
)

// -- Mock Repositories --

type mockUserRepo struct {
	users map[uuid.UUID]*User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockUserRepo) Update(_ context.Context, u *User) error {
	if _, ok := m.users[u.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) SearchPatients(_ context.Context, query string, limit int) ([]*User, error) {
	q := strings.ToLower(query)
	var result []*User
	for _, u := range m.users {
		if u.Role != RolePatient {
			continue
		}
		if strings.Contains(strings.ToLower(u.FirstName), q) ||
			strings.Contains(strings.ToLower(u.LastName), q) {
			result = append(result, u)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

type mockSpecialtyRepo struct {
	specialties map[uuid.UUID]*Specialty
}

func newMockSpecialtyRepo() *mockSpecialtyRepo {
	return &mockSpecialtyRepo{specialties: make(map[uuid.UUID]*Specialty)}
}

func (m *mockSpecialtyRepo) List(_ context.Context) ([]*Specialty, error) {
	var result []*Specialty
	for _, s := range m.specialties {
		result = append(result, s)
	}
	return result, nil
}

func (m *mockSpecialtyRepo) GetByID(_ context.Context, id uuid.UUID) (*Specialty, error) {
	s, ok := m.specialties[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return s, nil
}

func newTestService() (*Service, *mockUserRepo, *mockSpecialtyRepo) {
	users := newMockUserRepo()
	specialties := newMockSpecialtyRepo()
	issuer := auth.NewTokenIssuer([]byte("test-secret"), "vita", time.Hour)
	return NewService(users, specialties, issuer), users, specialties
}

func seedUser(t *testing.T, svc *Service, role, email, password string) *User {
	t.Helper()
	u := &User{
		Role:      role,
		FirstName: "Ana",
		LastName:  "Garcia",
		Email:     email,
	}
	if err := svc.Register(context.Background(), u, password); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return u
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()
	u := seedUser(t, svc, RoleDoctor, "ana@vita.mx", "s3cret")

	token, got, err := svc.Login(context.Background(), "ana@vita.mx", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Errorf("expected a session token")
	}
	if got.ID != u.ID {
		t.Errorf("wrong user returned")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	seedUser(t, svc, RoleDoctor, "ana@vita.mx", "s3cret")

	if _, _, err := svc.Login(context.Background(), "ana@vita.mx", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()
	if _, _, err := svc.Login(context.Background(), "nadie@vita.mx", "x"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_PatientRejected(t *testing.T) {
	svc, _, _ := newTestService()
	seedUser(t, svc, RolePatient, "pedro@vita.mx", "s3cret")

	if _, _, err := svc.Login(context.Background(), "pedro@vita.mx", "s3cret"); err != ErrInvalidCredentials {
		t.Errorf("patients cannot open dashboard sessions, got %v", err)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, users, _ := newTestService()
	u := seedUser(t, svc, RoleDoctor, "ana@vita.mx", "s3cret")

	stored := users.users[u.ID]
	if stored.PasswordHash == "s3cret" || stored.PasswordHash == "" {
		t.Errorf("password must be stored hashed")
	}
	if !auth.CheckPassword(stored.PasswordHash, "s3cret") {
		t.Errorf("stored hash does not verify")
	}
}

func TestRegister_EmailRequired(t *testing.T) {
	svc, _, _ := newTestService()
	if err := svc.Register(context.Background(), &User{Role: RoleDoctor}, "x"); err == nil {
		t.Errorf("expected error for missing email")
	}
}

func TestSearchPatients_ShortQuery(t *testing.T) {
	svc, _, _ := newTestService()
	seedUser(t, svc, RolePatient, "pedro@vita.mx", "x")

	got, err := svc.SearchPatients(context.Background(), " a ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("queries under two characters return nothing, got %d results", len(got))
	}
}

func TestSearchPatients(t *testing.T) {
	svc, _, _ := newTestService()
	seedUser(t, svc, RolePatient, "pedro@vita.mx", "x")
	seedUser(t, svc, RoleDoctor, "doc@vita.mx", "x")

	got, err := svc.SearchPatients(context.Background(), "gar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Role != RolePatient {
		t.Errorf("expected the single patient match, got %d results", len(got))
	}
}

func TestDirectoryRefs(t *testing.T) {
	svc, _, specialties := newTestService()
	u := seedUser(t, svc, RolePatient, "pedro@vita.mx", "x")
	sp := &Specialty{ID: uuid.New(), Name: "Cardiología"}
	specialties.specialties[sp.ID] = sp

	ref, err := svc.PatientRef(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.FirstName != "Ana" || ref.LastName != "Garcia" {
		t.Errorf("wrong patient ref: %+v", ref)
	}

	spRef, err := svc.SpecialtyRef(context.Background(), sp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spRef.Name != "Cardiología" {
		t.Errorf("wrong specialty ref: %+v", spRef)
	}
}
