package auth

import (
	"sync"
	"testing"
	"time"
)

func TestNewSessionManager(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)
	if sm == nil {
		t.Fatal("SessionManager should not be nil")
	}
}

func TestCreateSession(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)
	session, err := sm.CreateSession(1, "alice")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if session == nil {
		t.Fatal("Session should not be nil")
	}
	if session.UserID != 1 {
		t.Errorf("Expected user ID 1, got %d", session.UserID)
	}
	if session.Username != "alice" {
		t.Errorf("Expected username 'alice', got '%s'", session.Username)
	}
	if session.ID == "" {
		t.Fatal("Session ID should not be empty")
	}
	if !session.ExpiresAt.Equal(session.CreatedAt.Add(1 * time.Hour)) {
		t.Error("ExpiresAt should be CreatedAt plus TTL")
	}
}

func TestGetSessionRoundTrip(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)
	session, err := sm.CreateSession(7, "bob")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	retrieved, exists := sm.GetSession(session.ID)
	if !exists {
		t.Fatal("Session should exist")
	}
	if retrieved.UserID != 7 || retrieved.Username != "bob" {
		t.Errorf("Round trip mismatch: got %d/%s", retrieved.UserID, retrieved.Username)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)
	_, exists := sm.GetSession("nonexistent")
	if exists {
		t.Fatal("Session should not exist")
	}
}

func TestGetSessionDoesNotExtend(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)
	session, err := sm.CreateSession(1, "alice")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	first, _ := sm.GetSession(session.ID)
	second, _ := sm.GetSession(session.ID)
	if !first.ExpiresAt.Equal(second.ExpiresAt) {
		t.Error("GetSession must not extend the expiry window")
	}
	if !first.ExpiresAt.Equal(session.ExpiresAt) {
		t.Error("GetSession must return the original expiry")
	}
}

func TestSessionExpiryWithFakeClock(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sm := NewSessionManagerWithClock(30*time.Minute, func() time.Time { return current })

	session, err := sm.CreateSession(1, "alice")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Just before expiry the session is still valid
	current = current.Add(30*time.Minute - time.Second)
	if _, exists := sm.GetSession(session.ID); !exists {
		t.Fatal("Session should still be valid before TTL elapses")
	}

	// Just after expiry the lookup deletes the entry
	current = current.Add(2 * time.Second)
	if _, exists := sm.GetSession(session.ID); exists {
		t.Fatal("Expired session should not be returned")
	}

	// The token is unrecoverable afterwards, even if time rewinds
	current = current.Add(-10 * time.Minute)
	if _, exists := sm.GetSession(session.ID); exists {
		t.Fatal("Deleted session must never resolve again")
	}
}

func TestDeleteSession(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)
	session, err := sm.CreateSession(1, "alice")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	sm.DeleteSession(session.ID)
	if _, exists := sm.GetSession(session.ID); exists {
		t.Fatal("Deleted session should not exist")
	}
}

func TestDeleteSessionIdempotent(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)
	session, err := sm.CreateSession(1, "alice")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Double delete and deleting a never-issued ID must both be no-ops
	sm.DeleteSession(session.ID)
	sm.DeleteSession(session.ID)
	sm.DeleteSession("never-issued")
}

func TestGetAllSessions(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)
	usernames := []string{"alice", "bob", "carol"}
	for i, name := range usernames {
		if _, err := sm.CreateSession(int64(i+1), name); err != nil {
			t.Fatalf("Failed to create session for %s: %v", name, err)
		}
	}
	sessions := sm.GetAllSessions()
	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(sessions))
	}
}

func TestConcurrentCreateDistinctTokens(t *testing.T) {
	sm := NewSessionManager(1 * time.Hour)

	const n = 32
	var wg sync.WaitGroup
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session, err := sm.CreateSession(int64(i), "user")
			if err != nil {
				t.Errorf("Failed to create session: %v", err)
				return
			}
			ids[i] = session.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, id := range ids {
		if id == "" {
			t.Fatal("Missing session ID")
		}
		if seen[id] {
			t.Fatalf("Duplicate session ID issued: %s", id)
		}
		seen[id] = true
		if _, exists := sm.GetSession(id); !exists {
			t.Errorf("Session %s should be resolvable", id)
		}
	}
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Now()
	session1 := &Session{
		ID:        "1",
		Username:  "alice",
		CreatedAt: now,
		ExpiresAt: now.Add(1 * time.Hour),
	}
	if session1.IsExpired() {
		t.Fatal("Non-expired session should not be expired")
	}

	session2 := &Session{
		ID:        "2",
		Username:  "alice",
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-1 * time.Hour),
	}
	if !session2.IsExpired() {
		t.Fatal("Expired session should be expired")
	}
}
