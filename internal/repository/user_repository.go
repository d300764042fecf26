package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
)

// UserRepositoryInterface defines methods used by the auth service.
type UserRepositoryInterface interface {
	GetByUsernameOrEmail(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// UserRepository is the Postgres implementation.
type UserRepository struct {
	DB *sql.DB
}

const userColumns = "id, username, email, password, name, role, created_at, updated_at"

// GetByUsernameOrEmail matches the login string against both username and
// email, mirroring the login form which accepts either.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, login string) (*model.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE username = $1 OR email = $1
    `
	return r.scanOne(r.DB.QueryRowContext(ctx, query, login))
}

// GetByID fetches one user, nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// Create inserts a new user. Password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	query := `
        INSERT INTO users (username, email, password, name, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query,
		u.Username, u.Email, u.Password, u.Name, u.Role, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &u, nil
}
