package models

import "time"

// AuthToken is one issued session credential. Only the SHA-256 digest of the
// bearer value is stored; the plaintext leaves the system exactly once, in the
// login response.
type AuthToken struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"` // label, e.g. "auth::token"
	TokenHash string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
