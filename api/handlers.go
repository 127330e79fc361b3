package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Swamy718/Expense-Tracker-backend/auth"
	"github.com/Swamy718/Expense-Tracker-backend/db"
	"github.com/Swamy718/Expense-Tracker-backend/logging"
	"github.com/Swamy718/Expense-Tracker-backend/models"
)

// Messages returned to clients.
const (
	msgUsernameTaken      = "Username already exist"
	msgEmailTaken         = "Email already exist"
	msgInvalidCredentials = "Invalid username or password"
	msgPasswordTooLong    = "Password must be at most 72 bytes"
	msgNotAuthenticated   = "Not authenticated"
	msgInvalidToken       = "Invalid or expired token"
	msgUserNotFound       = "User not found"
	msgInternal           = "internal server error"
)

type Handler struct {
	storage db.Repository
	auth    *auth.Service
	log     *slog.Logger
}

func NewHandler(s db.Repository, authService *auth.Service, logger *slog.Logger) *Handler {
	return &Handler{storage: s, auth: authService, log: logger.With("component", "api")}
}

// currentUser loads the authenticated user. It writes the 404 or 500
// response itself and returns false when the handler should stop.
func (h *Handler) currentUser(c *gin.Context) (*models.User, bool) {
	user, err := h.storage.FindByUsername(c.Request.Context(), c.GetString(usernameKey))
	if err != nil {
		h.internalError(c, err)
		return nil, false
	}
	if user == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: msgUserNotFound})
		return nil, false
	}
	return user, true
}

// respondError maps service errors onto status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, auth.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgUsernameTaken})
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgEmailTaken})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidCredentials})
	case errors.Is(err, auth.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgPasswordTooLong})
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		h.internalError(c, err)
	}
}

func (h *Handler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed", logging.FieldError, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternal})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: msg})
}
