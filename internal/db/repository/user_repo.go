package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// User is an account row.
type User struct {
	ID           uuid.UUID
	Email        *string
	PasswordHash *string
	DisplayName  string
	IsPremium    bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// UserRepository persists accounts in Postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a user repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a new account and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash *string, displayName string) (User, error) {
	const q = `
		INSERT INTO users (user_id, email, password_hash, display_name)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, email, password_hash, display_name, is_premium, created_at, last_login_at`

	row := r.pool.QueryRow(ctx, q, uuid.New(), email, passwordHash, displayName)
	u, err := scanUser(row)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetByEmail looks an account up by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	const q = `
		SELECT user_id, email, password_hash, display_name, is_premium, created_at, last_login_at
		FROM users WHERE email = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, q, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetByID looks an account up by id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	const q = `
		SELECT user_id, email, password_hash, display_name, is_premium, created_at, last_login_at
		FROM users WHERE user_id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// UpdateLogin stamps the last login time.
func (r *UserRepository) UpdateLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("update login: %w", err)
	}
	return nil
}

// SetPremium toggles the premium flag.
func (r *UserRepository) SetPremium(ctx context.Context, id uuid.UUID, premium bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET is_premium = $2 WHERE user_id = $1`, id, premium)
	if err != nil {
		return fmt.Errorf("set premium: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.IsPremium, &u.CreatedAt, &u.LastLoginAt)
	return u, err
}
