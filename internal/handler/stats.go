package handler

import (
	"net/http"

	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct{ stats *service.StatsService }

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GET /api/stats
func (h *StatsHandler) Overview(c *gin.Context) {
	st, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
