package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/cache"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	svc := NewService(cache.NewSessionStore(), NewTokenService("test-secret"), NewBcryptHasher(bcrypt.MinCost), time.Hour)
	if err := svc.Register(DefaultUser, DefaultPassword); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return svc
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid", email: "admin@example.com", password: "password"},
		{name: "email case and spaces", email: "  Admin@Example.com ", password: "password"},
		{name: "wrong password", email: "admin@example.com", password: "hunter2", wantErr: true},
		{name: "unknown user", email: "viewer@example.com", password: "password", wantErr: true},
		{name: "empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidCredentials) {
					t.Errorf("expected ErrInvalidCredentials, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login failed: %v", err)
			}
			if session.Token == "" || session.ID == "" {
				t.Errorf("incomplete session: %+v", session)
			}
			if session.User.Name != "Admin User" || session.User.Role != domain.RoleAdmin {
				t.Errorf("unexpected user: %+v", session.User)
			}
			if !session.ExpiresAt.After(session.IssuedAt) {
				t.Errorf("expiry %v not after issue %v", session.ExpiresAt, session.IssuedAt)
			}
		})
	}
}

func TestCurrentUserAndLogout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, DefaultEmail, DefaultPassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	user, err := svc.CurrentUser(ctx, session.Token)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.Email != DefaultEmail {
		t.Errorf("email = %q", user.Email)
	}

	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.CurrentUser(ctx, session.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestCurrentUser_BadToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CurrentUser(ctx, "not-a-jwt"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	// token signed with another secret
	other := NewTokenService("other-secret")
	now := time.Now()
	forged, err := other.GenerateToken("sid", "1", "admin", now, now.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CurrentUser(ctx, forged); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected forged token to be rejected, got %v", err)
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("secret")
	now := time.Now()

	tok, err := tokens.GenerateToken("sid-1", "1", "admin", now, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	claims, err := tokens.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.SessionID != "sid-1" || claims.Subject != "1" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	expired, _ := tokens.GenerateToken("sid-2", "1", "admin", now.Add(-2*time.Hour), now.Add(-time.Hour))
	if _, err := tokens.ValidateToken(expired); err == nil {
		t.Error("expected expired token to fail validation")
	}

	if _, err := tokens.GenerateToken("", "1", "admin", now, now.Add(time.Minute)); err == nil {
		t.Error("expected error for empty session id")
	}
}
