package api

import (
	"strings"
	"time"
	"unicode"

	"noteserv/pkg/storage"
)

// signupRequest carries a new account's credentials
type signupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// loginRequest carries a login attempt's credentials
type loginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// noteCreateRequest carries a new note
type noteCreateRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"max=50000"`
}

// noteUpdateRequest carries a partial note update; nil fields are unchanged
type noteUpdateRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,max=50000"`
}

// UserResponse is the public view of a user; credentials never leave the
// storage layer
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

func toUserResponse(user *storage.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// normalizeUsername lowercases a username and reports whether it contains
// only letters, digits, and underscores
func normalizeUsername(username string) (string, bool) {
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return "", false
		}
	}
	return strings.ToLower(username), true
}
