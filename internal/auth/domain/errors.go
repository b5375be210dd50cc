package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for a wrong username and a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Identity is what a verified token says about its bearer.
type Identity struct {
	Username string
}
