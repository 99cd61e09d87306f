package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shop_api/internal/models"

	"github.com/google/uuid"
)

type TokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

var _ Tokens = (*TokenRepository)(nil)

const (
	insertTokenSQL = `INSERT INTO auth_tokens (id, user_id, name, token_hash, created_at) VALUES (?, ?, ?, ?, ?)`

	selectUserByTokenHashSQL = `
		SELECT u.id, u.name, u.email, u.password_hash, u.created_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token_hash = ?
	`

	deleteTokensByUserSQL = `DELETE FROM auth_tokens WHERE user_id = ?`
)

// Insert persists a token record. If ID or CreatedAt are empty, they’re set.
func (r *TokenRepository) Insert(ctx context.Context, t models.AuthToken) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, insertTokenSQL, t.ID, t.UserID, t.Name, t.TokenHash, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert token for user %d: %w", t.UserID, err)
	}
	return nil
}

// GetUserByTokenHash resolves a stored token digest to its owning user.
// Returns (nil, nil) when no live token matches, i.e. never issued or revoked.
func (r *TokenRepository) GetUserByTokenHash(ctx context.Context, tokenHash string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByTokenHashSQL, tokenHash).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by token: %w", err)
	}
	return &u, nil
}

// DeleteByUser revokes every token the user holds, across all sessions.
func (r *TokenRepository) DeleteByUser(ctx context.Context, userID int) error {
	if _, err := r.db.ExecContext(ctx, deleteTokensByUserSQL, userID); err != nil {
		return fmt.Errorf("delete tokens for user %d: %w", userID, err)
	}
	return nil
}
