// Package storage provides persistent data storage for the notes service.
//
// This package defines the Store interface and implementations for user
// accounts (with salted credential hashes) and user-owned notes. The primary
// implementation uses SQLite for reliability and simplicity.
//
// Usage:
//
//	store, err := storage.NewSQLiteStore("./notes.db", hasher)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	user, err := store.CreateUser("alice", "secret1")
//	note, err := store.CreateNote(user.ID, "groceries", "milk, eggs")
//
// The Store interface allows for alternative backends such as MySQL while
// maintaining API compatibility. Credential hashing is injected through the
// PasswordHasher interface so the storage layer never sees plain hashes'
// construction details.
package storage
