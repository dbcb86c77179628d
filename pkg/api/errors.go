package api

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// MessageResponse represents a simple informational response
type MessageResponse struct {
	Message string `json:"message"`
}

// GinRespondError responds with error in Gin context
func GinRespondError(c *gin.Context, statusCode int, errorMsg string) {
	c.JSON(statusCode, ErrorResponse{
		Error: errorMsg,
		Code:  statusCode,
	})
}

// Common error messages. MsgNotAuthenticated is deliberately the only
// message any authentication failure produces.
const (
	MsgInvalidRequest     = "invalid request"
	MsgNotAuthenticated   = "not authenticated"
	MsgInvalidCredentials = "invalid credentials"
	MsgDuplicateUser      = "username already registered"
	MsgNoteNotFound       = "note not found"
	MsgInternalServer     = "internal server error"
)
