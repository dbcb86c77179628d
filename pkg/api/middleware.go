package api

import (
	"errors"
	"net/http"

	"noteserv/pkg/auth"
	apperrors "noteserv/pkg/errors"
	"noteserv/pkg/logger"
	"noteserv/pkg/middleware"
	"noteserv/pkg/storage"

	"github.com/gin-gonic/gin"
)

const userContextKey = "current_user"

// AuthRequired is Gin middleware that resolves the session cookie to a user
// and aborts with a uniform 401 when it cannot
func AuthRequired(guard *auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(middleware.SessionCookieName)

		user, err := guard.Resolve(token)
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			GinRespondError(c, http.StatusUnauthorized, MsgNotAuthenticated)
			c.Abort()
			return
		}
		if err != nil {
			logger.Get().ErrorWithErr("failed to resolve session", err)
			GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by
// AuthRequired. It must only be called from guarded handlers.
func CurrentUser(c *gin.Context) *storage.User {
	user, _ := c.MustGet(userContextKey).(*storage.User)
	return user
}

// CORSMiddleware handles CORS headers for Gin
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
