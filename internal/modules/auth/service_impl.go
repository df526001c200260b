package auth

import (
	"context"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds an admin session. Short by design: the gate is
// convenience, not a hard security boundary.
const sessionTTL = 12 * time.Hour

// Credential is one allow-list entry: a username and a bcrypt password hash.
type Credential struct {
	Username     string
	PasswordHash string
}

// ParseAllowList parses the ADMIN_ALLOWLIST format:
// "user:bcrypt-hash,user2:bcrypt-hash". Malformed entries are skipped.
func ParseAllowList(s string) []Credential {
	var creds []Credential
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		creds = append(creds, Credential{Username: parts[0], PasswordHash: parts[1]})
	}
	return creds
}

type service struct {
	allowList []Credential
	remote    RemoteAuthenticator // nil when remote auth is not configured
	jwtKey    []byte
}

// NewService creates a new auth service. remote may be nil.
func NewService(allowList []Credential, remote RemoteAuthenticator, jwtKey []byte) Service {
	return &service{allowList: allowList, remote: remote, jwtKey: jwtKey}
}

// Login grants a session when the pair matches the local allow-list or, when
// configured, the remote auth service accepts it. The remote call is only
// attempted after the local check misses.
func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	if s.matchesAllowList(username, password) {
		return s.issueSession(username)
	}
	if s.remote != nil {
		if err := s.remote.SignIn(ctx, username, password); err != nil {
			return nil, err
		}
		return s.issueSession(username)
	}
	return nil, ErrBadCredentials
}

func (s *service) matchesAllowList(username, password string) bool {
	for _, c := range s.allowList {
		if c.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil {
			return true
		}
	}
	return false
}

func (s *service) issueSession(username string) (*Session, error) {
	expiresAt := time.Now().Add(sessionTTL)
	claims := &jwt.StandardClaims{
		Subject:   username,
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, err
	}
	return &Session{Token: signed, Username: username, ExpiresAt: expiresAt}, nil
}
