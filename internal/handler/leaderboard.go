package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"launchsim/internal/simulator"
)

type LeaderboardReader interface {
	Top(ctx context.Context, limit int) ([]simulator.LeaderboardEntry, error)
}

type LeaderboardHandler struct {
	Service LeaderboardReader
	Logger  *zap.Logger
}

func (h *LeaderboardHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/simulator/leaderboard", h.top)
}

// @Summary Best-score leaderboard
// @Tags leaderboard
// @Param limit query int false "entries, 1..100 (default 10)"
// @Success 200 {object} apiResponse
// @Router /api/v1/simulator/leaderboard [get]
func (h *LeaderboardHandler) top(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	limit := simulator.NormalizeLeaderboardLimit(intQuery(c, "limit", simulator.DefaultLeaderboardLimit))
	entries, err := h.Service.Top(c.Request.Context(), limit)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("leaderboard failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, entries, map[string]any{"limit": limit, "total": len(entries)})
}
