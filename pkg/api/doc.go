// Package api provides HTTP API handlers and middleware for the notes
// service.
//
// This package encapsulates all HTTP-related concerns:
// - REST endpoints for signup, login, logout and the current user
// - REST endpoints for note CRUD, scoped to the authenticated user
// - Authentication middleware backed by the session guard
// - Error responses
// - CORS middleware
//
// The package uses gin-gonic for routing. Authentication failures are
// rendered as a single uniform 401 body regardless of cause, so responses
// never reveal whether a token was missing, expired, or orphaned.
package api
