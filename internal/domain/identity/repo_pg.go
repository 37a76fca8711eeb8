package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepoPG struct{ pool *pgxpool.Pool }

// NewUserRepoPG returns a PostgreSQL-backed user repository.
func NewUserRepoPG(pool *pgxpool.Pool) UserRepository { return &userRepoPG{pool: pool} }

const userCols = `id, role, first_name, last_name, email, password_hash, phone,
	specialty_id, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Role, &u.FirstName, &u.LastName, &u.Email,
		&u.PasswordHash, &u.Phone, &u.SpecialtyID, &u.CreatedAt, &u.UpdatedAt)
	return &u, err
}

func (r *userRepoPG) Create(ctx context.Context, u *User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO app_user (id, role, first_name, last_name, email, password_hash, phone, specialty_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.ID, u.Role, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Phone, u.SpecialtyID)
	return err
}

func (r *userRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM app_user WHERE id = $1`, id))
}

func (r *userRepoPG) GetByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM app_user WHERE lower(email) = lower($1)`, email))
}

func (r *userRepoPG) Update(ctx context.Context, u *User) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE app_user SET first_name=$2, last_name=$3, email=$4, phone=$5,
			specialty_id=$6, updated_at=NOW()
		WHERE id = $1`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.SpecialtyID)
	return err
}

func (r *userRepoPG) SearchPatients(ctx context.Context, query string, limit int) ([]*User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userCols+` FROM app_user
		WHERE role = 'patient'
		  AND (first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%')
		ORDER BY last_name, first_name LIMIT $2`,
		query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

type specialtyRepoPG struct{ pool *pgxpool.Pool }

// NewSpecialtyRepoPG returns a PostgreSQL-backed specialty repository.
func NewSpecialtyRepoPG(pool *pgxpool.Pool) SpecialtyRepository { return &specialtyRepoPG{pool: pool} }

func (r *specialtyRepoPG) List(ctx context.Context) ([]*Specialty, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM specialty ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Specialty
	for rows.Next() {
		var s Specialty
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

func (r *specialtyRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Specialty, error) {
	var s Specialty
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM specialty WHERE id = $1`, id).
		Scan(&s.ID, &s.Name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
