package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	store, err := NewStore("redis://" + s.Addr())
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	return store, s
}

func TestNewStore(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestSaveAndLookup(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()
	if err := store.Save(ctx, "token-abc", "admin", time.Hour); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	area, err := store.Lookup(ctx, "token-abc")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if area != "admin" {
		t.Errorf("expected area admin, got %s", area)
	}
}

func TestLookupUnknownToken(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	_, err := store.Lookup(context.Background(), "never-issued")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupExpiredToken(t *testing.T) {
	store, s := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()
	if err := store.Save(ctx, "short-lived", "teachers", time.Millisecond); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s.FastForward(2 * time.Millisecond)

	_, err := store.Lookup(ctx, "short-lived")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()
	if err := store.Save(ctx, "token-xyz", "teachers", time.Hour); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Revoke(ctx, "token-xyz"); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}

	_, err := store.Lookup(ctx, "token-xyz")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after revoke, got %v", err)
	}
}

func TestRevokeUnknownTokenIsQuiet(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	if err := store.Revoke(context.Background(), "never-issued"); err != nil {
		t.Errorf("Revoke of unknown token should not fail: %v", err)
	}
}
