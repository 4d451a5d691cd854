// Package auth implements dashboard login with explicit sessions.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

const (
	// DefaultEmail and DefaultPassword are the built-in operator credentials
	DefaultEmail    = "admin@example.com"
	DefaultPassword = "password"

	// DefaultSessionTTL is how long a login stays valid
	DefaultSessionTTL = 12 * time.Hour
)

// DefaultUser is the built-in operator account
var DefaultUser = domain.User{
	ID:    "1",
	Name:  "Admin User",
	Email: DefaultEmail,
	Role:  domain.RoleAdmin,
}

// Authenticator is the login contract consumed by transports
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

type account struct {
	user domain.User
	hash string
}

// Service authenticates operators against registered accounts
type Service struct {
	hasher Hasher
	tokens *TokenService
	store  domain.SessionStore
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	accounts map[string]account
}

// NewService builds an auth service; a non-positive ttl means DefaultSessionTTL
func NewService(store domain.SessionStore, tokens *TokenService, hasher Hasher, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		hasher:   hasher,
		tokens:   tokens,
		store:    store,
		ttl:      ttl,
		now:      time.Now,
		accounts: make(map[string]account),
	}
}

// Register adds an account. The email is matched case-insensitively.
func (s *Service) Register(user domain.User, password string) error {
	email := normalizeEmail(user.Email)
	if email == "" {
		return errors.New("auth: email required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}

	user.Email = email
	s.mu.Lock()
	s.accounts[email] = account{user: user, hash: hash}
	s.mu.Unlock()
	return nil
}

// Login checks credentials and opens a session
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	s.mu.RLock()
	acc, ok := s.accounts[email]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(acc.hash, password); err != nil {
		log.Warn().Str("email", email).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	issued := s.now().UTC().Truncate(time.Second)
	session := &domain.Session{
		ID:        uuid.NewString(),
		User:      acc.user,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(s.ttl),
	}

	token, err := s.tokens.GenerateToken(session.ID, acc.user.ID, string(acc.user.Role), session.IssuedAt, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("auth: issue token: %w", err)
	}
	session.Token = token

	if err := s.store.PutSession(ctx, session); err != nil {
		return nil, fmt.Errorf("auth: store session: %w", err)
	}

	log.Info().Str("user_id", acc.user.ID).Str("session_id", session.ID).Msg("user logged in")
	return session, nil
}

// Logout ends the session behind token
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionNotFound, err)
	}
	if err := s.store.DeleteSession(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("auth: delete session: %w", err)
	}

	log.Info().Str("session_id", claims.SessionID).Msg("user logged out")
	return nil
}

// CurrentUser resolves the user behind token. Tokens of logged-out or
// expired sessions are rejected.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionNotFound, err)
	}

	session, err := s.store.GetSession(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}

	user := session.User
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
