package storage

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	apperrors "noteserv/pkg/errors"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store interface using SQLite backend
type SQLiteStore struct {
	db     *sql.DB
	hasher PasswordHasher
}

// NewSQLiteStore creates a new SQLite-backed store
func NewSQLiteStore(dbPath string, hasher PasswordHasher) (Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{
		db:     db,
		hasher: hasher,
	}

	if err := store.initDB(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// initDB initializes the database schema
func (s *SQLiteStore) initDB() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		salt TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);

	CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		user_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_notes_user ON notes(user_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// CreateUser creates a new user with a freshly salted credential hash
func (s *SQLiteStore) CreateUser(username, password string) (*User, error) {
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	passwordHash := s.hasher.HashPassword(password, salt)

	now := time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO users (username, password_hash, salt, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		username, passwordHash, salt, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetUserByUsername retrieves a user by username
func (s *SQLiteStore) GetUserByUsername(username string) (*User, error) {
	user := &User{}
	err := s.db.QueryRow(
		`SELECT id, username, password_hash, salt, created_at, updated_at FROM users WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Salt, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. It returns
// ErrInvalidCredentials for both unknown usernames and wrong passwords so
// callers cannot distinguish the two.
func (s *SQLiteStore) Authenticate(username, password string) (*User, error) {
	user, err := s.GetUserByUsername(username)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// CreateNote creates a new note owned by userID
func (s *SQLiteStore) CreateNote(userID int64, title, content string) (*Note, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO notes (title, content, user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		title, content, userID, now, now,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Note{
		ID:        id,
		Title:     title,
		Content:   content,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetUserNotes returns all notes owned by userID
func (s *SQLiteStore) GetUserNotes(userID int64) ([]*Note, error) {
	rows, err := s.db.Query(
		`SELECT id, title, content, user_id, created_at, updated_at FROM notes WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*Note, 0)
	for rows.Next() {
		note := &Note{}
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.UserID, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// GetNoteByID retrieves a note scoped to its owner. Notes belonging to other
// users are reported as not found, never as forbidden.
func (s *SQLiteStore) GetNoteByID(noteID, userID int64) (*Note, error) {
	note := &Note{}
	err := s.db.QueryRow(
		`SELECT id, title, content, user_id, created_at, updated_at FROM notes WHERE id = ? AND user_id = ?`,
		noteID, userID,
	).Scan(&note.ID, &note.Title, &note.Content, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote updates a note's title and/or content. Nil fields are left
// unchanged.
func (s *SQLiteStore) UpdateNote(noteID, userID int64, title, content *string) (*Note, error) {
	note, err := s.GetNoteByID(noteID, userID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}
	note.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(
		`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		note.Title, note.Content, note.UpdatedAt, noteID, userID,
	)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote deletes a note scoped to its owner
func (s *SQLiteStore) DeleteNote(noteID, userID int64) error {
	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ? AND user_id = ?`, noteID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
