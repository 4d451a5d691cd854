package cache

import (
	"context"
	"testing"
	"time"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

func TestPutAndGetSession(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := &domain.Session{
		ID:        "s1",
		Token:     "tok",
		User:      domain.User{ID: "1", Email: "admin@example.com"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := store.PutSession(ctx, session); err != nil {
		t.Fatalf("PutSession failed: %v", err)
	}

	got, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.User.Email != "admin@example.com" {
		t.Errorf("got email %q", got.User.Email)
	}

	// stored copy is independent of the caller's struct
	session.User.Email = "changed@example.com"
	got, _ = store.GetSession(ctx, "s1")
	if got.User.Email != "admin@example.com" {
		t.Error("store aliased the caller's session")
	}

	if store.Count() != 1 {
		t.Errorf("Count() = %d, want 1", store.Count())
	}
}

func TestGetSession_Missing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.GetSession(context.Background(), "nope")
	if err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSession(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_ = store.PutSession(ctx, &domain.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)})
	if err := store.DeleteSession(ctx, "s1"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := store.GetSession(ctx, "s1"); err != domain.ErrSessionNotFound {
		t.Errorf("expected session to be gone, got %v", err)
	}

	// deleting twice is fine
	if err := store.DeleteSession(ctx, "s1"); err != nil {
		t.Errorf("second delete failed: %v", err)
	}
}

func TestPutSession_Expiry(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_ = store.PutSession(ctx, &domain.Session{ID: "past", ExpiresAt: time.Now().Add(-time.Minute)})
	if _, err := store.GetSession(ctx, "past"); err != domain.ErrSessionNotFound {
		t.Errorf("expired session should not be stored, got %v", err)
	}

	_ = store.PutSession(ctx, &domain.Session{ID: "short", ExpiresAt: time.Now().Add(20 * time.Millisecond)})
	time.Sleep(40 * time.Millisecond)
	if _, err := store.GetSession(ctx, "short"); err != domain.ErrSessionNotFound {
		t.Errorf("session should have expired, got %v", err)
	}
}
