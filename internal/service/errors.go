package service

import "errors"

// Domain errors surfaced to the HTTP layer. Handlers map them to status codes;
// anything else is treated as an internal fault.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers missing, malformed and revoked bearer tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrAlreadyInWishlist is returned on a duplicate wishlist add.
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
	// ErrNotInWishlist is returned when removing a product the user never saved.
	ErrNotInWishlist = errors.New("product not found in wishlist")
	// ErrProductNotFound is returned by catalog lookups for unknown ids.
	ErrProductNotFound = errors.New("product not found")
)

// ValidationError carries field-level messages for unprocessable input.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "the given data is invalid"
}

// add appends a message for a field, allocating the map lazily.
func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// orNil returns the error only if any field failed.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
