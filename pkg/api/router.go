package api

import (
	"noteserv/pkg/auth"
	"noteserv/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all middleware and routes registered
func NewRouter(handler *Handler, guard *auth.Guard) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(CORSMiddleware())

	handler.RegisterRoutes(router, guard)

	return router
}

// RegisterRoutes attaches all handlers to the router. Auth flow endpoints
// are public; note endpoints and /api/auth/me require a valid session.
func (h *Handler) RegisterRoutes(router *gin.Engine, guard *auth.Guard) {
	router.GET("/", h.HandleRoot)
	router.GET("/healthz", h.HandleHealth)

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/signup", h.HandleSignup)
	authRoutes.POST("/login", h.HandleLogin)
	authRoutes.POST("/logout", h.HandleLogout)
	authRoutes.GET("/me", AuthRequired(guard), h.HandleMe)

	notes := api.Group("/notes", AuthRequired(guard))
	notes.POST("", h.HandleCreateNote)
	notes.GET("", h.HandleGetNotes)
	notes.GET("/:id", h.HandleGetNote)
	notes.PUT("/:id", h.HandleUpdateNote)
	notes.DELETE("/:id", h.HandleDeleteNote)
}
