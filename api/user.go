package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Swamy718/Expense-Tracker-backend/ledger"
	"github.com/Swamy718/Expense-Tracker-backend/models"
)

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      models.CreateUser  true  "New account"
// @Success      201   {object}  models.MessageResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req models.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.auth.Register(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.MessageResponse{Message: "User Created Successfully"})
}

// Token godoc
// @Summary      Log in and obtain a bearer token
// @Description  OAuth2 password form; username may also be the account email.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username or email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  models.TokenResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /token [post]
func (h *Handler) Token(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// VerifyToken godoc
// @Summary   Return the username of a valid token
// @Tags      auth
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {string}  string  "username"
// @Failure   401  {object}  models.ErrorResponse
// @Router    /verify-token [get]
func (h *Handler) VerifyToken(c *gin.Context) {
	c.JSON(http.StatusOK, c.GetString(usernameKey))
}

// Profile godoc
// @Summary   Current user profile
// @Tags      user
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.ProfileResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /profile [get]
func (h *Handler) Profile(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.ProfileResponse{Username: user.Username, Email: user.Email})
}

// Info godoc
// @Summary   Total income and total expense
// @Tags      user
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.InfoResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /info [get]
func (h *Handler) Info(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	income, expense := ledger.Totals(user.IncomeList, user.ExpenseList)
	c.JSON(http.StatusOK, models.InfoResponse{Income: income, Expense: expense})
}

// RecentTransactions godoc
// @Summary   Five latest incomes and expenses, newest first
// @Tags      user
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.RecentTransResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /recent-trans [get]
func (h *Handler) RecentTransactions(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	merged := ledger.Merge(user.IncomeList, user.ExpenseList)
	c.JSON(http.StatusOK, models.RecentTransResponse{View: ledger.Recent(merged, ledger.RecentLimit)})
}

// Health godoc
// @Summary  Readiness probe
// @Tags     ops
// @Produce  json
// @Success  200  {object}  models.HealthResponse
// @Failure  503  {object}  models.ErrorResponse
// @Router   /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.storage.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "storage ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "storage unavailable"})
		return
	}
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
