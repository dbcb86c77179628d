package auth

import (
	"encoding/hex"
	"testing"
)

// testIterations keeps the stretching cost low in tests
const testIterations = 1000

func TestGenerateSalt(t *testing.T) {
	h := NewPasswordHasherWithIterations(testIterations)

	salt, err := h.GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	if len(salt) != 32 {
		t.Errorf("Expected 32 hex characters, got %d", len(salt))
	}
	if _, err := hex.DecodeString(salt); err != nil {
		t.Errorf("Salt is not valid hex: %v", err)
	}
}

func TestGenerateSaltUnique(t *testing.T) {
	h := NewPasswordHasherWithIterations(testIterations)

	s1, err := h.GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	s2, err := h.GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	if s1 == s2 {
		t.Error("Two generated salts should differ")
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	h := NewPasswordHasherWithIterations(testIterations)

	h1 := h.HashPassword("secret1", "aabbccdd")
	h2 := h.HashPassword("secret1", "aabbccdd")
	if h1 != h2 {
		t.Error("Same password and salt should produce identical hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(h1))
	}
}

func TestHashPasswordSaltSensitive(t *testing.T) {
	h := NewPasswordHasherWithIterations(testIterations)

	h1 := h.HashPassword("secret1", "salt-one")
	h2 := h.HashPassword("secret1", "salt-two")
	if h1 == h2 {
		t.Error("Different salts should produce different hashes")
	}
}

func TestVerifyPassword(t *testing.T) {
	h := NewPasswordHasherWithIterations(testIterations)

	salt, err := h.GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	hash := h.HashPassword("secret1", salt)

	if !h.VerifyPassword("secret1", salt, hash) {
		t.Error("Correct password should verify")
	}
	if h.VerifyPassword("wrongpass", salt, hash) {
		t.Error("Wrong password should not verify")
	}
	if h.VerifyPassword("secret1", salt, hash+"00") {
		t.Error("Tampered hash should not verify")
	}
}

func TestDefaultHasherIterations(t *testing.T) {
	h := NewPasswordHasher()
	if h.iterations != defaultIterations {
		t.Errorf("Expected %d iterations, got %d", defaultIterations, h.iterations)
	}
}
