package handler

import (
	"net/http"

	"github.com/IbuoCloud/backensena/internal/model"
	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct{ teams *service.TeamService }

func NewTeamHandler(teams *service.TeamService) *TeamHandler { return &TeamHandler{teams: teams} }

// GET /api/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teams.ListTeams(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// POST /api/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req model.TeamCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := h.teams.CreateTeam(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GET /api/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.teams.GetTeam(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// PATCH /api/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd model.TeamUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := h.teams.UpdateTeam(c.Request.Context(), id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.teams.DeleteTeam(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/team
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teams.ListMembers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// POST /api/team
func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req model.TeamMemberCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.teams.CreateMember(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GET /api/team/:id
func (h *TeamHandler) GetMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := h.teams.GetMember(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// PATCH /api/team/:id
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd model.TeamMemberUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.teams.UpdateMember(c.Request.Context(), id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DELETE /api/team/:id
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.teams.DeleteMember(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
