package errors

import "errors"

// Authentication errors
var (
	// ErrUnauthenticated is returned when a request carries no session,
	// an invalid or expired session, or a session whose user no longer exists
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials is returned when a username/password pair fails
	// verification
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User errors
var (
	// ErrDuplicateUser is returned when signing up with a username that is
	// already registered
	ErrDuplicateUser = errors.New("username already registered")

	// ErrUserNotFound is returned when a user lookup finds no row
	ErrUserNotFound = errors.New("user not found")
)

// Note errors
var (
	// ErrNoteNotFound is returned when a note does not exist or does not
	// belong to the requesting user
	ErrNoteNotFound = errors.New("note not found")
)

// Storage errors
var (
	// ErrDatabaseConnection is returned when database connection fails
	ErrDatabaseConnection = errors.New("database connection failed")
)
