package handler

import (
	"net/http"

	"github.com/IbuoCloud/backensena/internal/logger"
	"github.com/IbuoCloud/backensena/internal/model"
	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-gonic/gin"
)

type APIKeyHandler struct{ keys *service.APIKeyService }

func NewAPIKeyHandler(keys *service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{keys: keys}
}

// GET /apikeys
func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.keys.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, keys)
}

// POST /apikeys — the secret is generated server-side and returned once in
// the response.
func (h *APIKeyHandler) Create(c *gin.Context) {
	var req model.APIKeyCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	k, err := h.keys.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("apikey.created", "id", k.ID, "name", k.Name)
	c.JSON(http.StatusCreated, k)
}

// DELETE /apikeys/:id
func (h *APIKeyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.keys.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /apikeys/validate?key=...
func (h *APIKeyHandler) Validate(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}
	valid, err := h.keys.Validate(c.Request.Context(), key)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}
