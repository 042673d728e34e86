package repository

import (
	"context"

	"depotlog-service/internal/domain/entity"
)

// SessionRepository is the server-side session store. Sessions are keyed by
// an opaque token and expire after the configured TTL.
type SessionRepository interface {
	// Create stores the session and returns its token.
	Create(ctx context.Context, session *entity.Session) (string, error)

	// Get resolves a token. Returns entity.ErrUnauthorized for a missing or
	// expired token.
	Get(ctx context.Context, token string) (*entity.Session, error)

	// Delete removes the session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
