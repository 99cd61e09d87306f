package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shop_api/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?`
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
// The modernc driver surfaces constraint errors as plain strings.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a new user and returns its ID. Returns ErrDuplicate when the
// email is already taken, including when a concurrent registration won the race.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, name, email, passwordHash, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email), email)
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprint(id))
}

func (r *UserRepository) scanUser(row *sql.Row, key string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", key, err)
	}
	return &u, nil
}
