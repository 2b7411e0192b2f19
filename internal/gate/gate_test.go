package gate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryStore is an in-memory SessionStore for tests.
type memoryStore struct {
	sessions map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]string)}
}

func (m *memoryStore) Save(_ context.Context, token, area string, _ time.Duration) error {
	m.sessions[token] = area
	return nil
}

func (m *memoryStore) Lookup(_ context.Context, token string) (string, error) {
	area, ok := m.sessions[token]
	if !ok {
		return "", ErrInvalidPassword
	}
	return area, nil
}

func (m *memoryStore) Revoke(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password issues a token", func(t *testing.T) {
		svc := NewService("sala-prof", "senha-admin", newMemoryStore(), time.Hour)

		token, expires, err := svc.Login(ctx, AreaTeachers, "sala-prof")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, expires.After(time.Now()))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc := NewService("sala-prof", "senha-admin", newMemoryStore(), time.Hour)

		_, _, err := svc.Login(ctx, AreaAdmin, "chute")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("unknown area is rejected", func(t *testing.T) {
		svc := NewService("sala-prof", "senha-admin", newMemoryStore(), time.Hour)

		_, _, err := svc.Login(ctx, Area("alunos"), "qualquer")
		assert.ErrorIs(t, err, ErrUnknownArea)
	})

	t.Run("unconfigured secret closes the gate", func(t *testing.T) {
		svc := NewService("sala-prof", "", newMemoryStore(), time.Hour)

		_, _, err := svc.Login(ctx, AreaAdmin, "")
		assert.ErrorIs(t, err, ErrUnknownArea)
	})

	t.Run("bcrypt-hashed secret matches the plain password", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("senha-admin"), bcrypt.MinCost)
		require.NoError(t, err)

		svc := NewService("sala-prof", string(hash), newMemoryStore(), time.Hour)

		_, _, err = svc.Login(ctx, AreaAdmin, "senha-admin")
		assert.NoError(t, err)

		_, _, err = svc.Login(ctx, AreaAdmin, "errada")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()

	t.Run("token opens its own area", func(t *testing.T) {
		svc := NewService("sala-prof", "senha-admin", newMemoryStore(), time.Hour)

		token, _, err := svc.Login(ctx, AreaTeachers, "sala-prof")
		require.NoError(t, err)

		assert.NoError(t, svc.Authorize(ctx, token, AreaTeachers))
	})

	t.Run("teachers token does not open admin", func(t *testing.T) {
		svc := NewService("sala-prof", "senha-admin", newMemoryStore(), time.Hour)

		token, _, err := svc.Login(ctx, AreaTeachers, "sala-prof")
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Authorize(ctx, token, AreaAdmin), ErrInvalidPassword)
	})

	t.Run("admin token opens teachers", func(t *testing.T) {
		svc := NewService("sala-prof", "senha-admin", newMemoryStore(), time.Hour)

		token, _, err := svc.Login(ctx, AreaAdmin, "senha-admin")
		require.NoError(t, err)

		assert.NoError(t, svc.Authorize(ctx, token, AreaTeachers))
	})

	t.Run("empty and unknown tokens are rejected", func(t *testing.T) {
		svc := NewService("sala-prof", "senha-admin", newMemoryStore(), time.Hour)

		assert.Error(t, svc.Authorize(ctx, "", AreaTeachers))
		assert.Error(t, svc.Authorize(ctx, "forged", AreaTeachers))
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc := NewService("sala-prof", "senha-admin", newMemoryStore(), time.Hour)

	token, _, err := svc.Login(ctx, AreaAdmin, "senha-admin")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	assert.Error(t, svc.Authorize(ctx, token, AreaAdmin))

	assert.NoError(t, svc.Logout(ctx, ""))
}
