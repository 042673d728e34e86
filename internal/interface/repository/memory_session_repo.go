package repository

import (
	"context"
	"sync"
	"time"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"

	"github.com/google/uuid"
)

// MemorySessionRepository implements SessionRepository with an in-process
// map. It backs tests and single-node deployments that run without Redis.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
}

type memorySession struct {
	session   entity.Session
	expiresAt time.Time
}

// NewMemorySessionRepository creates a new in-memory session repository
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

var _ repository.SessionRepository = (*MemorySessionRepository)(nil)

// Create stores the session under a fresh opaque token
func (r *MemorySessionRepository) Create(_ context.Context, session *entity.Session) (string, error) {
	token := uuid.NewString()
	session.Token = token

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = memorySession{
		session:   *session,
		expiresAt: r.now().Add(r.ttl),
	}
	return token, nil
}

// Get resolves a token, returning entity.ErrUnauthorized for a missing or
// expired one
func (r *MemorySessionRepository) Get(_ context.Context, token string) (*entity.Session, error) {
	r.mu.RLock()
	stored, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok || r.now().After(stored.expiresAt) {
		return nil, entity.ErrUnauthorized
	}
	session := stored.session
	return &session, nil
}

// Delete removes the session; unknown tokens are a no-op
func (r *MemorySessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}
