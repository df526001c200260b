package auth

import (
	"context"
	"errors"
	"time"
)

// Differentiated login failures so the client can tell the user what
// actually went wrong.
var (
	ErrBadCredentials = errors.New("invalid credentials")
	ErrRateLimited    = errors.New("too many attempts, try again later")
)

// Session is an issued admin session token. Its expiry bounds the session:
// there is no server-side logout, the client just discards the token.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}
