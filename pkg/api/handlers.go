package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"noteserv/pkg/auth"
	apperrors "noteserv/pkg/errors"
	"noteserv/pkg/health"
	"noteserv/pkg/logger"
	"noteserv/pkg/middleware"
	"noteserv/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Handler encapsulates the REST API handlers
type Handler struct {
	store        storage.Store
	sessions     auth.SessionManager
	monitor      *health.Monitor
	cookieMaxAge int
	cookieSecure bool
}

// NewHandler creates a new API handler. cookieMaxAge is the session TTL in
// seconds, handed to the browser so the cookie dies with the session.
func NewHandler(store storage.Store, sessions auth.SessionManager, monitor *health.Monitor, cookieMaxAge int, cookieSecure bool) *Handler {
	return &Handler{
		store:        store,
		sessions:     sessions,
		monitor:      monitor,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// HandleRoot serves the welcome message
func (h *Handler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Welcome to Notes API"})
}

// HandleHealth serves the health monitor snapshot
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.GetHealth(len(h.sessions.GetAllSessions())))
}

// HandleSignup creates a new user account
func (h *Handler) HandleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		GinRespondError(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	username, ok := normalizeUsername(req.Username)
	if !ok {
		GinRespondError(c, http.StatusBadRequest, "username must contain only letters, numbers, and underscores")
		return
	}

	user, err := h.store.CreateUser(username, req.Password)
	if errors.Is(err, apperrors.ErrDuplicateUser) {
		GinRespondError(c, http.StatusBadRequest, MsgDuplicateUser)
		return
	}
	if err != nil {
		logger.Get().ErrorWithErr("failed to create user", err, "username", username)
		GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
		return
	}

	logger.Get().InfoWith("user registered", "username", user.Username)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// HandleLogin verifies credentials and issues a session cookie
func (h *Handler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		GinRespondError(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	user, err := h.store.Authenticate(strings.ToLower(req.Username), req.Password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		logger.Get().WarnWith("failed login attempt", "username", req.Username)
		GinRespondError(c, http.StatusUnauthorized, MsgInvalidCredentials)
		return
	}
	if err != nil {
		logger.Get().ErrorWithErr("failed to authenticate user", err)
		GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
		return
	}

	session, err := h.sessions.CreateSession(user.ID, user.Username)
	if err != nil {
		logger.Get().ErrorWithErr("failed to create session", err, "username", user.Username)
		GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
		return
	}

	http.SetCookie(c.Writer, middleware.SessionCookie(session.ID, h.cookieMaxAge, h.cookieSecure))

	logger.Get().InfoWith("user logged in", "username", user.Username)
	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User:    toUserResponse(user),
	})
}

// HandleLogout deletes the session and clears the cookie. Logging out
// without a session is not an error.
func (h *Handler) HandleLogout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil {
		h.sessions.DeleteSession(token)
	}

	http.SetCookie(c.Writer, middleware.ExpiredCookie(middleware.SessionCookieName))
	c.JSON(http.StatusOK, MessageResponse{Message: "Logout successful"})
}

// HandleMe returns the current authenticated user
func (h *Handler) HandleMe(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(CurrentUser(c)))
}

// HandleCreateNote creates a new note for the authenticated user
func (h *Handler) HandleCreateNote(c *gin.Context) {
	var req noteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		GinRespondError(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	note, err := h.store.CreateNote(CurrentUser(c).ID, req.Title, req.Content)
	if err != nil {
		logger.Get().ErrorWithErr("failed to create note", err)
		GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// HandleGetNotes returns all notes owned by the authenticated user
func (h *Handler) HandleGetNotes(c *gin.Context) {
	notes, err := h.store.GetUserNotes(CurrentUser(c).ID)
	if err != nil {
		logger.Get().ErrorWithErr("failed to list notes", err)
		GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// HandleGetNote returns a single note by ID
func (h *Handler) HandleGetNote(c *gin.Context) {
	noteID, ok := parseNoteID(c)
	if !ok {
		return
	}

	note, err := h.store.GetNoteByID(noteID, CurrentUser(c).ID)
	if errors.Is(err, apperrors.ErrNoteNotFound) {
		GinRespondError(c, http.StatusNotFound, MsgNoteNotFound)
		return
	}
	if err != nil {
		logger.Get().ErrorWithErr("failed to get note", err)
		GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
		return
	}

	c.JSON(http.StatusOK, note)
}

// HandleUpdateNote updates a note's title and/or content
func (h *Handler) HandleUpdateNote(c *gin.Context) {
	noteID, ok := parseNoteID(c)
	if !ok {
		return
	}

	var req noteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		GinRespondError(c, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	note, err := h.store.UpdateNote(noteID, CurrentUser(c).ID, req.Title, req.Content)
	if errors.Is(err, apperrors.ErrNoteNotFound) {
		GinRespondError(c, http.StatusNotFound, MsgNoteNotFound)
		return
	}
	if err != nil {
		logger.Get().ErrorWithErr("failed to update note", err)
		GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
		return
	}

	c.JSON(http.StatusOK, note)
}

// HandleDeleteNote deletes a note
func (h *Handler) HandleDeleteNote(c *gin.Context) {
	noteID, ok := parseNoteID(c)
	if !ok {
		return
	}

	err := h.store.DeleteNote(noteID, CurrentUser(c).ID)
	if errors.Is(err, apperrors.ErrNoteNotFound) {
		GinRespondError(c, http.StatusNotFound, MsgNoteNotFound)
		return
	}
	if err != nil {
		logger.Get().ErrorWithErr("failed to delete note", err)
		GinRespondError(c, http.StatusInternalServerError, MsgInternalServer)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseNoteID reads the :id path parameter. A non-numeric ID can never name
// an existing note, so it is reported the same way as a missing one.
func parseNoteID(c *gin.Context) (int64, bool) {
	noteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		GinRespondError(c, http.StatusNotFound, MsgNoteNotFound)
		return 0, false
	}
	return noteID, true
}
