// Package auth provides the authentication core for the notes service.
//
// This package includes:
// - PBKDF2Hasher: salted, iterated password hashing and verification
// - SessionManager: in-memory session store with fixed-window expiry
// - Guard: resolves an inbound session token to an authenticated user
//
// Usage:
//
//	hasher := auth.NewPasswordHasher()
//	sessions := auth.NewSessionManager(24 * time.Hour)
//	guard := auth.NewGuard(sessions, store)
//
//	// Log a user in
//	session, err := sessions.CreateSession(user.ID, user.Username)
//
//	// Resolve a request's session cookie
//	user, err := guard.Resolve(token)
//
// Sessions are fixed-window: expiry is computed once at creation and never
// extended by activity. Expired entries are removed lazily at lookup time; a
// background sweeper reclaims sessions that are never read again.
package auth
