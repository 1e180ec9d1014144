package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"

	"launchsim/internal/auth"
	"launchsim/internal/events"
	"launchsim/internal/service"
	"launchsim/internal/simulator"
)

type SessionGetter interface {
	GetSession(ctx context.Context, id string) (*simulator.Session, error)
}

// StreamHandler pushes a session's events over a websocket.
type StreamHandler struct {
	Sessions  SessionGetter
	Hub       *events.Hub
	Flags     *service.SystemSettingsService
	Heartbeat time.Duration
	Logger    *zap.Logger
}

func (h *StreamHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/simulator/sessions/:id/stream", h.stream)
}

// @Summary Stream session events (websocket)
// @Tags sessions
// @Param id path string true "session id"
// @Success 101 {string} string "switching protocols"
// @Failure 404 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/v1/simulator/sessions/{id}/stream [get]
func (h *StreamHandler) stream(c *gin.Context) {
	if h.Sessions == nil || h.Hub == nil {
		Error(c, http.StatusInternalServerError, "stream unavailable", nil)
		return
	}
	if h.Flags != nil && !h.Flags.IsEnabled(c.Request.Context(), service.FeatureSessionStream, true) {
		Error(c, http.StatusServiceUnavailable, "session stream disabled", nil)
		return
	}
	sess, err := h.Sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	if !auth.CanAct(c.Request.Context(), sess.UserAddress) {
		Error(c, http.StatusForbidden, "session belongs to another wallet", nil)
		return
	}
	if sess.Status != simulator.StatusActive {
		Error(c, http.StatusConflict, "session is "+string(sess.Status), nil)
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		// Accept already wrote the failure response
		return
	}
	err = h.Hub.Stream(c.Request.Context(), conn, sess.ID, h.Heartbeat)
	if err != nil && !errors.Is(err, context.Canceled) && websocket.CloseStatus(err) == -1 {
		if h.Logger != nil {
			h.Logger.Debug("session stream ended", zap.String("session_id", sess.ID), zap.Error(err))
		}
		_ = conn.Close(websocket.StatusInternalError, "stream error")
	}
}
