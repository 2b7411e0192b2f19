// Package gate implements the portal's password gates.
//
// Two areas are protected by shared secrets: the teachers' room and the
// admin panel. A correct password yields a random session token stored
// server-side; the gate never hands credentials to anything downstream,
// only a yes/no per protected request.
package gate

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Area identifies one protected view of the portal.
type Area string

const (
	AreaTeachers Area = "teachers"
	AreaAdmin    Area = "admin"
)

var (
	ErrUnknownArea     = errors.New("unknown gate area")
	ErrInvalidPassword = errors.New("invalid password")
)

// SessionStore persists issued gate tokens for the length of a session.
type SessionStore interface {
	Save(ctx context.Context, token, area string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// Service checks gate passwords and manages gate sessions.
type Service struct {
	secrets  map[Area]string
	sessions SessionStore
	ttl      time.Duration
}

// NewService builds a gate service. Secrets may be plain strings or bcrypt
// hashes; hashed values are recognized by their "$2" prefix so deployments
// can avoid keeping the passwords themselves in the environment.
func NewService(teachersSecret, adminSecret string, sessions SessionStore, ttl time.Duration) *Service {
	return &Service{
		secrets: map[Area]string{
			AreaTeachers: teachersSecret,
			AreaAdmin:    adminSecret,
		},
		sessions: sessions,
		ttl:      ttl,
	}
}

// Login checks the password for an area and, on success, issues a session
// token that stays valid for the configured lifetime.
func (s *Service) Login(ctx context.Context, area Area, password string) (string, time.Time, error) {
	secret, ok := s.secrets[area]
	if !ok || secret == "" {
		return "", time.Time{}, ErrUnknownArea
	}

	if !match(secret, password) {
		return "", time.Time{}, ErrInvalidPassword
	}

	token, err := generateToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate session token: %w", err)
	}

	if err := s.sessions.Save(ctx, token, string(area), s.ttl); err != nil {
		return "", time.Time{}, fmt.Errorf("save session: %w", err)
	}

	return token, time.Now().UTC().Add(s.ttl), nil
}

// Authorize reports whether the token grants access to the area. An admin
// token opens the teachers' room as well, never the other way around.
func (s *Service) Authorize(ctx context.Context, token string, area Area) error {
	if token == "" {
		return ErrInvalidPassword
	}
	got, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		return ErrInvalidPassword
	}
	if got == string(area) || got == string(AreaAdmin) {
		return nil
	}
	return ErrInvalidPassword
}

// Logout revokes a session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token)
}

func match(secret, password string) bool {
	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}

// generateToken creates a secure random token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
