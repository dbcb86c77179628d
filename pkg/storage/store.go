package storage

import "time"

// Store defines the interface for persistent storage operations
type Store interface {
	// User operations
	CreateUser(username, password string) (*User, error)
	GetUserByUsername(username string) (*User, error)
	Authenticate(username, password string) (*User, error)

	// Note operations
	CreateNote(userID int64, title, content string) (*Note, error)
	GetUserNotes(userID int64) ([]*Note, error)
	GetNoteByID(noteID, userID int64) (*Note, error)
	UpdateNote(noteID, userID int64, title, content *string) (*Note, error) // nil field = unchanged
	DeleteNote(noteID, userID int64) error

	// Lifecycle
	Close() error
}

// PasswordHasher is the credential hashing contract the storage layer
// depends on. CreateUser calls it to produce a salt and hash before
// persisting; Authenticate calls it to verify a login attempt.
type PasswordHasher interface {
	// GenerateSalt produces a new random salt
	GenerateSalt() (string, error)

	// HashPassword derives a deterministic hash from password and salt
	HashPassword(password, salt string) string

	// VerifyPassword checks a password against a stored salt and hash
	VerifyPassword(password, salt, expectedHash string) bool
}

// User represents a registered account
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Note represents a user-owned text note
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
