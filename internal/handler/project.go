package handler

import (
	"net/http"

	"github.com/IbuoCloud/backensena/internal/model"
	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct{ projects *service.ProjectService }

func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req model.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.projects.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// PATCH /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd model.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.projects.Update(c.Request.Context(), id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/projects/:id/team
func (h *ProjectHandler) Team(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	members, err := h.projects.Team(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if members == nil {
		members = []model.TeamMember{}
	}
	c.JSON(http.StatusOK, members)
}

// POST /api/projects/:id/team
func (h *ProjectHandler) AssignTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.AssignTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.projects.AssignTeam(c.Request.Context(), id, req.MemberIDs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/projects/:id/team/:memberId
func (h *ProjectHandler) RemoveTeamMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	if err := h.projects.RemoveTeamMember(c.Request.Context(), id, memberID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
