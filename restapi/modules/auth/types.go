// Package auth provides authentication and authorization for the REST API.
package auth

import "errors"

// Context keys stored in fiber Locals by the middleware
const (
	LocalUserID    = "user_id"
	LocalUsername  = "username"
	LocalRole      = "role"
	LocalAuthState = "is_authenticated"
)

// Auth failure modes, mapped to HTTP statuses at the handler boundary
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("insufficient permissions")
)
