package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"shop_api/internal/models"
	"shop_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 8
	tokenByteLen   = 32 // 64 hex chars on the wire
	tokenLabel     = "auth::token"
)

// AuthService handles registration and the bearer-token lifecycle.
type AuthService struct {
	users      repository.Users
	tokens     repository.Tokens
	notifier   Notifications
	bcryptCost int
}

func NewAuthService(users repository.Users, tokens repository.Tokens, notifier Notifications, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, notifier: notifier, bcryptCost: bcryptCost}
}

// Register validates input, stores the user with a bcrypt hash and emits a
// fire-and-forget registration notification.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)

	if err := s.validateRegistration(ctx, p); err != nil {
		return nil, err
	}

	hash, err := hashPassword(p.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, p.Name, p.Email, hash)
	if err != nil {
		// A concurrent registration with the same email wins at the store;
		// report it the same way the pre-check would have.
		if errors.Is(err, repository.ErrDuplicate) {
			ve := &ValidationError{}
			ve.add("email", "The email has already been taken.")
			return nil, ve
		}
		return nil, err
	}

	user := &models.User{ID: id, Name: p.Name, Email: p.Email}
	if s.notifier != nil {
		s.notifier.UserRegistered(*user)
	}
	return user, nil
}

func (s *AuthService) validateRegistration(ctx context.Context, p RegisterParams) error {
	ve := &ValidationError{}

	if p.Name == "" {
		ve.add("name", "The name field is required.")
	}

	switch {
	case p.Email == "":
		ve.add("email", "The email field is required.")
	case !isValidEmail(p.Email):
		ve.add("email", "The email must be a valid email address.")
	default:
		existing, err := s.users.GetByEmail(ctx, p.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			ve.add("email", "The email has already been taken.")
		}
	}

	switch {
	case p.Password == "":
		ve.add("password", "The password field is required.")
	case len(p.Password) < minPasswordLen:
		ve.add("password", fmt.Sprintf("The password must be at least %d characters.", minPasswordLen))
	}
	if p.Password != p.PasswordConfirmation {
		ve.add("password", "The password confirmation does not match.")
	}

	return ve.orNil()
}

// Login checks credentials and mints a new opaque token. The plaintext token
// is returned exactly once; only its digest is persisted.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", err
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := verifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	plaintext, err := makeRandHexToken(tokenByteLen)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	token := models.AuthToken{
		UserID:    user.ID,
		Name:      tokenLabel,
		TokenHash: hashToken(plaintext),
	}
	if err := s.tokens.Insert(ctx, token); err != nil {
		return nil, "", err
	}
	return user, plaintext, nil
}

// Validate resolves a presented bearer value to its owning user.
// Revoked (deleted) tokens fail exactly like tokens that never existed.
func (s *AuthService) Validate(ctx context.Context, token string) (*models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}
	user, err := s.tokens.GetUserByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// Logout revokes every token the user holds, ending all sessions, not just
// the one that made the request.
func (s *AuthService) Logout(ctx context.Context, userID int) error {
	return s.tokens.DeleteByUser(ctx, userID)
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// helper: hash password safely
func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash (bcrypt compares in constant time)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// makeRandHexToken returns size random bytes hex-encoded, so the final string
// is twice as long as size.
func makeRandHexToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashToken derives the storage digest of a plaintext token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
