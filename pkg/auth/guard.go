package auth

import (
	"errors"

	apperrors "noteserv/pkg/errors"
	"noteserv/pkg/logger"
	"noteserv/pkg/storage"
)

// Guard resolves inbound session tokens to authenticated users. Every
// protected handler goes through Resolve before touching user data.
type Guard struct {
	sessions SessionManager
	users    UserStore
}

// NewGuard creates a new authentication guard
func NewGuard(sessions SessionManager, users UserStore) *Guard {
	return &Guard{
		sessions: sessions,
		users:    users,
	}
}

// Resolve maps a session token to its user. A missing token, an unknown or
// expired session, and a session whose user has since been deleted all fail
// with ErrUnauthenticated; callers must not surface which case occurred.
func (g *Guard) Resolve(token string) (*storage.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	session, exists := g.sessions.GetSession(token)
	if !exists {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := g.users.GetUserByUsername(session.Username)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		// User deleted after session issuance. Drop the orphaned session
		// and reject; the request boundary sees the same rejection as any
		// other invalid token.
		g.sessions.DeleteSession(session.ID)
		logger.Get().WarnWith("session resolved to missing user", "username", session.Username)
		return nil, apperrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
