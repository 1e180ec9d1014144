package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"launchsim/internal/auth"
	"launchsim/internal/paas"
	"launchsim/internal/service"
	"launchsim/internal/simulator"
)

// SessionService is the lifecycle API the HTTP layer drives.
type SessionService interface {
	CreateSession(ctx context.Context, in service.CreateSessionInput) (*simulator.Session, error)
	GetSession(ctx context.Context, id string) (*simulator.Session, error)
	ListSessions(ctx context.Context, in service.ListSessionsInput) ([]simulator.Session, int64, error)
	RemainingDecisions(ctx context.Context, id string) ([]simulator.Decision, error)
	MakeDecision(ctx context.Context, id, decisionID, optionID string) (*service.DecisionResult, error)
	AdvanceStage(ctx context.Context, id, nextStage string) (*simulator.Session, error)
	CompleteSimulation(ctx context.Context, id string) (*service.CompletionResult, error)
	GetUserStats(ctx context.Context, userAddress string) (*simulator.UserStats, error)
}

type SimulatorHandler struct {
	Service SessionService
	Logger  *zap.Logger
}

func (h *SimulatorHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/simulator")
	group.POST("/sessions", h.createSession)
	group.GET("/sessions", h.listSessions)
	group.GET("/sessions/:id", h.getSession)
	group.GET("/sessions/:id/decisions/remaining", h.remainingDecisions)
	group.POST("/sessions/:id/decisions", h.makeDecision)
	group.POST("/sessions/:id/advance", h.advanceStage)
	group.POST("/sessions/:id/complete", h.completeSimulation)
	group.GET("/users/:address/stats", h.getUserStats)
}

type createSessionRequest struct {
	UserAddress string `json:"user_address"`
	ProjectName string `json:"project_name"`
	ProjectType string `json:"project_type"`
}

// @Summary Start a simulation
// @Tags sessions
// @Accept json
// @Param body body createSessionRequest true "session"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Failure 403 {object} apiResponse
// @Router /api/v1/simulator/sessions [post]
func (h *SimulatorHandler) createSession(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	user := strings.TrimSpace(req.UserAddress)
	if claims, ok := auth.ClaimsFromGin(c); ok && user == "" {
		user = claims.Address
	}
	sess, err := h.Service.CreateSession(c.Request.Context(), service.CreateSessionInput{
		UserAddress: user,
		ProjectName: req.ProjectName,
		ProjectType: req.ProjectType,
	})
	if err != nil {
		h.fail(c, "create session", err)
		return
	}
	paas.LogBestEffort(c, "launchsim_session_created", "info", map[string]any{
		"session_id":   sess.ID,
		"user":         sess.UserAddress,
		"project_type": sess.ProjectType,
	})
	Ok(c, sess, nil)
}

// @Summary List sessions of a user
// @Tags sessions
// @Param user_address query string false "wallet address (defaults to the token's)"
// @Param status query string false "active|completed|abandoned"
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/v1/simulator/sessions [get]
func (h *SimulatorHandler) listSessions(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	user := strings.TrimSpace(c.Query("user_address"))
	if claims, ok := auth.ClaimsFromGin(c); ok {
		if user == "" {
			user = claims.Address
		}
		if !auth.CanAct(c.Request.Context(), user) {
			Error(c, http.StatusForbidden, "cannot list sessions of another wallet", nil)
			return
		}
	}
	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)
	items, total, err := h.Service.ListSessions(c.Request.Context(), service.ListSessionsInput{
		UserAddress: user,
		Status:      c.Query("status"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		h.fail(c, "list sessions", err)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

// @Summary Get a session
// @Tags sessions
// @Param id path string true "session id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/v1/simulator/sessions/{id} [get]
func (h *SimulatorHandler) getSession(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	sess, err := h.Service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get session", err)
		return
	}
	Ok(c, sess, nil)
}

// @Summary Decisions still open at the current stage
// @Tags sessions
// @Param id path string true "session id"
// @Success 200 {object} apiResponse
// @Router /api/v1/simulator/sessions/{id}/decisions/remaining [get]
func (h *SimulatorHandler) remainingDecisions(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	items, err := h.Service.RemainingDecisions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "remaining decisions", err)
		return
	}
	Ok(c, items, map[string]any{
		"total":           len(items),
		"stage_exhausted": len(items) == 0,
	})
}

type makeDecisionRequest struct {
	DecisionID string `json:"decision_id"`
	OptionID   string `json:"option_id"`
}

// @Summary Choose an option for a decision
// @Tags sessions
// @Accept json
// @Param id path string true "session id"
// @Param body body makeDecisionRequest true "decision"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/v1/simulator/sessions/{id}/decisions [post]
func (h *SimulatorHandler) makeDecision(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req makeDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	res, err := h.Service.MakeDecision(c.Request.Context(), c.Param("id"), req.DecisionID, req.OptionID)
	if err != nil {
		h.fail(c, "make decision", err)
		return
	}
	Ok(c, res, map[string]any{"ecosystem_bonus": res.Record.EcosystemBonus})
}

type advanceStageRequest struct {
	NextStage string `json:"next_stage"`
}

// @Summary Advance to the next stage
// @Tags sessions
// @Accept json
// @Param id path string true "session id"
// @Param body body advanceStageRequest true "next stage"
// @Success 200 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/v1/simulator/sessions/{id}/advance [post]
func (h *SimulatorHandler) advanceStage(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req advanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	sess, err := h.Service.AdvanceStage(c.Request.Context(), c.Param("id"), req.NextStage)
	if err != nil {
		h.fail(c, "advance stage", err)
		return
	}
	Ok(c, sess, nil)
}

// @Summary Complete the simulation
// @Tags sessions
// @Param id path string true "session id"
// @Success 200 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Router /api/v1/simulator/sessions/{id}/complete [post]
func (h *SimulatorHandler) completeSimulation(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	res, err := h.Service.CompleteSimulation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "complete simulation", err)
		return
	}
	paas.LogBestEffort(c, "launchsim_session_completed", "info", map[string]any{
		"session_id":          res.Session.ID,
		"user":                res.Session.UserAddress,
		"overall":             res.Session.Score.Overall(),
		"success_probability": res.Outcome.SuccessProbability,
	})
	Ok(c, res, nil)
}

// @Summary Rolling statistics of a wallet
// @Tags leaderboard
// @Param address path string true "wallet address"
// @Success 200 {object} apiResponse
// @Router /api/v1/simulator/users/{address}/stats [get]
func (h *SimulatorHandler) getUserStats(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	stats, err := h.Service.GetUserStats(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.fail(c, "get user stats", err)
		return
	}
	// data is null when the wallet never completed a run
	Ok(c, stats, nil)
}

func (h *SimulatorHandler) fail(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError && h.Logger != nil {
		h.Logger.Warn(op+" failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	ServiceError(c, err)
}
