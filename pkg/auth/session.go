package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

// sweepInterval controls how often the background sweeper reclaims expired
// sessions. Lazy expiry at lookup time already prevents stale sessions from
// being honored; the sweeper only bounds memory growth.
const sweepInterval = 5 * time.Minute

// SessionManagerImpl implements SessionManager interface
type SessionManagerImpl struct {
	sessions map[string]*Session
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionManager creates a new session manager with the given fixed TTL
// and starts the background sweeper
func NewSessionManager(ttl time.Duration) SessionManager {
	sm := &SessionManagerImpl{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}

	go sm.sweepExpiredSessions()

	return sm
}

// NewSessionManagerWithClock creates a session manager with an injected
// clock and no background sweeper. Intended for tests that control time.
func NewSessionManagerWithClock(ttl time.Duration, now func() time.Time) SessionManager {
	return &SessionManagerImpl{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

// CreateSession creates a new session for a user
func (sm *SessionManagerImpl) CreateSession(userID int64, username string) (*Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	now := sm.now()
	session := &Session{
		ID:        sessionID,
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(sm.ttl),
	}

	sm.mu.Lock()
	sm.sessions[sessionID] = session
	sm.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by ID. An expired entry is deleted as part
// of this call and reported as not found; once deleted, the same ID never
// resolves again. The session's expiry is never refreshed.
func (sm *SessionManagerImpl) GetSession(sessionID string) (*Session, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, false
	}

	if sm.now().After(session.ExpiresAt) {
		delete(sm.sessions, sessionID)
		return nil, false
	}

	// Hand out a copy; the store exclusively owns the map entries
	cp := *session
	return &cp, true
}

// DeleteSession removes a session
func (sm *SessionManagerImpl) DeleteSession(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, sessionID)
}

// GetAllSessions returns all unexpired sessions
func (sm *SessionManagerImpl) GetAllSessions() []*Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	var sessions []*Session
	for _, session := range sm.sessions {
		if !now.After(session.ExpiresAt) {
			cp := *session
			sessions = append(sessions, &cp)
		}
	}
	return sessions
}

// sweepExpiredSessions periodically removes expired sessions
func (sm *SessionManagerImpl) sweepExpiredSessions() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		sm.mu.Lock()
		now := sm.now()
		for id, session := range sm.sessions {
			if now.After(session.ExpiresAt) {
				delete(sm.sessions, id)
			}
		}
		sm.mu.Unlock()
	}
}

// generateSessionID generates a random URL-safe session ID with 32 bytes of
// entropy; collisions are negligible
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
