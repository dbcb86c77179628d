package auth

import (
	"time"

	"noteserv/pkg/storage"
)

// SessionManager defines the interface for session management
type SessionManager interface {
	// CreateSession creates a new session for a user
	CreateSession(userID int64, username string) (*Session, error)

	// GetSession retrieves a session by ID, expiring it lazily. It never
	// extends the session's lifetime.
	GetSession(sessionID string) (*Session, bool)

	// DeleteSession removes a session; deleting an absent session is a no-op
	DeleteSession(sessionID string)

	// GetAllSessions returns all unexpired sessions
	GetAllSessions() []*Session
}

// UserStore is the subset of the storage layer the guard depends on
type UserStore interface {
	GetUserByUsername(username string) (*storage.User, error)
}

// Session represents an authenticated session
type Session struct {
	ID        string
	UserID    int64
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
