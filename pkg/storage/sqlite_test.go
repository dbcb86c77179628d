package storage

import (
	"errors"
	"path/filepath"
	"testing"

	apperrors "noteserv/pkg/errors"
)

// testHasher is a deterministic stand-in so storage tests don't pay the real
// stretching cost
type testHasher struct{}

func (testHasher) GenerateSalt() (string, error) {
	return "00112233445566778899aabbccddeeff", nil
}

func (testHasher) HashPassword(password, salt string) string {
	return salt + ":" + password
}

func (testHasher) VerifyPassword(password, salt, expectedHash string) bool {
	return expectedHash == salt+":"+password
}

func newTestStore(t *testing.T) Store {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), testHasher{})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	if store == nil {
		t.Fatal("Store should not be nil")
	}
}

func TestCreateAndGetUser(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser("alice", "secret1")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Error("User ID should be assigned")
	}
	if user.Salt == "" || user.PasswordHash == "" {
		t.Error("Credential should be populated")
	}

	retrieved, err := store.GetUserByUsername("alice")
	if err != nil {
		t.Fatalf("Failed to retrieve user: %v", err)
	}
	if retrieved.ID != user.ID {
		t.Errorf("Expected ID %d, got %d", user.ID, retrieved.ID)
	}
	if retrieved.Username != "alice" {
		t.Errorf("Expected username 'alice', got '%s'", retrieved.Username)
	}
}

func TestGetUserNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUserByUsername("nobody")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.CreateUser("alice", "secret1"); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	_, err := store.CreateUser("alice", "other")
	if !errors.Is(err, apperrors.ErrDuplicateUser) {
		t.Fatalf("Expected ErrDuplicateUser, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateUser("alice", "secret1")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	user, err := store.Authenticate("alice", "secret1")
	if err != nil {
		t.Fatalf("Authentication should succeed: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("Expected user ID %d, got %d", created.ID, user.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.CreateUser("alice", "secret1"); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	_, err := store.Authenticate("alice", "wrongpass")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	store := newTestStore(t)

	// Unknown username and wrong password must be indistinguishable
	_, err := store.Authenticate("nobody", "whatever")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestNoteCRUD(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser("alice", "secret1")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	note, err := store.CreateNote(user.ID, "groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("Failed to create note: %v", err)
	}
	if note.ID == 0 {
		t.Error("Note ID should be assigned")
	}

	retrieved, err := store.GetNoteByID(note.ID, user.ID)
	if err != nil {
		t.Fatalf("Failed to get note: %v", err)
	}
	if retrieved.Title != "groceries" || retrieved.Content != "milk, eggs" {
		t.Errorf("Note round trip mismatch: %s/%s", retrieved.Title, retrieved.Content)
	}

	newTitle := "errands"
	updated, err := store.UpdateNote(note.ID, user.ID, &newTitle, nil)
	if err != nil {
		t.Fatalf("Failed to update note: %v", err)
	}
	if updated.Title != "errands" {
		t.Errorf("Expected title 'errands', got '%s'", updated.Title)
	}
	if updated.Content != "milk, eggs" {
		t.Error("Nil content must leave content unchanged")
	}

	if err := store.DeleteNote(note.ID, user.ID); err != nil {
		t.Fatalf("Failed to delete note: %v", err)
	}
	if _, err := store.GetNoteByID(note.ID, user.ID); !errors.Is(err, apperrors.ErrNoteNotFound) {
		t.Fatalf("Expected ErrNoteNotFound after delete, got %v", err)
	}
}

func TestGetUserNotes(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser("alice", "secret1")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	for _, title := range []string{"one", "two", "three"} {
		if _, err := store.CreateNote(user.ID, title, ""); err != nil {
			t.Fatalf("Failed to create note '%s': %v", title, err)
		}
	}

	notes, err := store.GetUserNotes(user.ID)
	if err != nil {
		t.Fatalf("Failed to list notes: %v", err)
	}
	if len(notes) != 3 {
		t.Errorf("Expected 3 notes, got %d", len(notes))
	}
}

func TestNoteOwnershipScoping(t *testing.T) {
	store := newTestStore(t)

	alice, err := store.CreateUser("alice", "secret1")
	if err != nil {
		t.Fatalf("Failed to create alice: %v", err)
	}
	bob, err := store.CreateUser("bob", "secret2")
	if err != nil {
		t.Fatalf("Failed to create bob: %v", err)
	}

	note, err := store.CreateNote(alice.ID, "private", "alice only")
	if err != nil {
		t.Fatalf("Failed to create note: %v", err)
	}

	if _, err := store.GetNoteByID(note.ID, bob.ID); !errors.Is(err, apperrors.ErrNoteNotFound) {
		t.Fatalf("Bob reading alice's note: expected ErrNoteNotFound, got %v", err)
	}
	if err := store.DeleteNote(note.ID, bob.ID); !errors.Is(err, apperrors.ErrNoteNotFound) {
		t.Fatalf("Bob deleting alice's note: expected ErrNoteNotFound, got %v", err)
	}

	notes, err := store.GetUserNotes(bob.ID)
	if err != nil {
		t.Fatalf("Failed to list bob's notes: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Bob should have no notes, got %d", len(notes))
	}
}
