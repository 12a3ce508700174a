package handler

import (
	"net/http"

	"github.com/IbuoCloud/backensena/internal/logger"
	"github.com/IbuoCloud/backensena/internal/model"
	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("register.ok", "uid", u.ID, "username", u.Username)
	c.JSON(http.StatusCreated, u)
}

// POST /auth/token  (form-encoded username + password)
func (h *AuthHandler) Token(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	token, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		fail(c, err)
		return
	}
	logger.Info("login.ok", "username", req.Username)
	c.JSON(http.StatusOK, model.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.auth.FindByUsername(c.Request.Context(), c.GetString("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /auth/admin  (admin gate applied in routing)
func (h *AuthHandler) Admin(c *gin.Context) {
	h.Me(c)
}
