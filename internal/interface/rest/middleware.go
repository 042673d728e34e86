package rest

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"depotlog-service/internal/domain/entity"
)

// sessionCookie carries the opaque session token. The session itself lives
// server-side; the cookie is just the key.
const sessionCookie = "depot_session"

type contextKey struct{ name string }

var sessionContextKey = &contextKey{"session"}

// requireSession resolves the session cookie and rejects the request with
// 401 when it is missing or stale. Gated handlers read the identity back
// with sessionFrom; it is never trusted from the payload.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromCookie(r)
		if session == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromCookie resolves the cookie token, returning nil for anonymous
// or expired callers. Used directly by the handlers where a session is
// optional rather than required.
func (s *Server) sessionFromCookie(r *http.Request) *entity.Session {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	session, err := s.auth.Resolve(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return session
}

func sessionFrom(ctx context.Context) *entity.Session {
	session, _ := ctx.Value(sessionContextKey).(*entity.Session)
	return session
}

// requestLogger logs each request as a structured line: method, path,
// status, duration and the id set by chi's RequestID middleware.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}
