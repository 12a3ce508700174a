package handler

import (
	"net/http"

	"github.com/IbuoCloud/backensena/internal/model"
	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-gonic/gin"
)

type MilestoneHandler struct{ milestones *service.MilestoneService }

func NewMilestoneHandler(milestones *service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestones: milestones}
}

// GET /api/milestones?project_id=N
func (h *MilestoneHandler) List(c *gin.Context) {
	projectID, ok := queryInt(c, "project_id")
	if !ok {
		return
	}
	milestones, err := h.milestones.List(c.Request.Context(), projectID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}

// POST /api/milestones
func (h *MilestoneHandler) Create(c *gin.Context) {
	var req model.MilestoneCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.milestones.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GET /api/milestones/:id
func (h *MilestoneHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := h.milestones.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// PATCH /api/milestones/:id
func (h *MilestoneHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd model.MilestoneUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.milestones.Update(c.Request.Context(), id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DELETE /api/milestones/:id
func (h *MilestoneHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.milestones.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
