package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

const cleanupInterval = 10 * time.Minute

// SessionStore implements domain.SessionStore with an expiring in-memory cache
type SessionStore struct {
	cache *gocache.Cache
	now   func() time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
		now:   time.Now,
	}
}

// PutSession keeps a copy of the session until it expires
func (s *SessionStore) PutSession(ctx context.Context, session *domain.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	stored := *session
	s.cache.Set(session.ID, stored, ttl)
	return nil
}

// GetSession returns a copy of a live session
func (s *SessionStore) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	value, found := s.cache.Get(id)
	if !found {
		return nil, domain.ErrSessionNotFound
	}

	session, ok := value.(domain.Session)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

// DeleteSession removes a session
func (s *SessionStore) DeleteSession(ctx context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

// Count returns the number of live sessions
func (s *SessionStore) Count() int {
	return s.cache.ItemCount()
}
