package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"

	"launchsim/internal/auth"
	"launchsim/internal/events"
	"launchsim/internal/models"
	"launchsim/internal/repository"
	"launchsim/internal/service"
	"launchsim/internal/simulator"
)

var tHandler = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type stubSessions struct {
	sessions map[string]*simulator.Session
	stats    map[string]*simulator.UserStats
	err      error
	lastIn   service.CreateSessionInput
	lastList service.ListSessionsInput
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: map[string]*simulator.Session{}, stats: map[string]*simulator.UserStats{}}
}

func (s *stubSessions) add(id, user string) *simulator.Session {
	sess, err := simulator.NewSession(id, user, "Proj", simulator.ProjectDeFi, tHandler)
	if err != nil {
		panic(err)
	}
	s.sessions[id] = sess
	return sess
}

func (s *stubSessions) get(id string) (*simulator.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, simulator.ErrNotFound)
	}
	return sess, nil
}

func (s *stubSessions) CreateSession(_ context.Context, in service.CreateSessionInput) (*simulator.Session, error) {
	s.lastIn = in
	if s.err != nil {
		return nil, s.err
	}
	typ, _ := simulator.ParseProjectType(in.ProjectType)
	return simulator.NewSession("new", in.UserAddress, in.ProjectName, typ, tHandler)
}

func (s *stubSessions) GetSession(_ context.Context, id string) (*simulator.Session, error) {
	return s.get(id)
}

func (s *stubSessions) ListSessions(_ context.Context, in service.ListSessionsInput) ([]simulator.Session, int64, error) {
	s.lastList = in
	if s.err != nil {
		return nil, 0, s.err
	}
	var out []simulator.Session
	for _, sess := range s.sessions {
		if sess.UserAddress == in.UserAddress {
			out = append(out, *sess)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubSessions) RemainingDecisions(_ context.Context, id string) ([]simulator.Decision, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return sess.RemainingDecisions(), nil
}

func (s *stubSessions) MakeDecision(_ context.Context, id, decisionID, optionID string) (*service.DecisionResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	d, o, err := simulator.FindOption(decisionID, optionID)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, simulator.ErrValidation)
	}
	rec, err := sess.ApplyDecision(d, o, tHandler)
	if err != nil {
		return nil, err
	}
	return &service.DecisionResult{Session: sess, Record: rec, Remaining: sess.RemainingDecisions()}, nil
}

func (s *stubSessions) AdvanceStage(_ context.Context, id, next string) (*simulator.Session, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return sess, sess.Advance(simulator.Stage(next))
}

func (s *stubSessions) CompleteSimulation(_ context.Context, id string) (*service.CompletionResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	outcome, err := sess.Complete(tHandler)
	if err != nil {
		return nil, err
	}
	return &service.CompletionResult{Session: sess, Outcome: outcome}, nil
}

func (s *stubSessions) GetUserStats(_ context.Context, addr string) (*simulator.UserStats, error) {
	return s.stats[simulator.NormalizeAddress(addr)], nil
}

type stubBoard struct {
	gotLimit int
	entries  []simulator.LeaderboardEntry
	err      error
}

func (b *stubBoard) Top(_ context.Context, limit int) ([]simulator.LeaderboardEntry, error) {
	b.gotLimit = limit
	return b.entries, b.err
}

// settingsRepo implements only the system settings part of the repository.
type settingsRepo struct {
	repository.Repository
	items map[string]models.SystemSetting
}

func (r *settingsRepo) UpsertSystemSetting(_ context.Context, item *models.SystemSetting) error {
	r.items[item.Key] = *item
	return nil
}

func (r *settingsRepo) GetSystemSettingByKey(_ context.Context, key string) (*models.SystemSetting, error) {
	item, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *settingsRepo) ListSystemSettings(context.Context, repository.ListSystemSettingsParams) ([]models.SystemSetting, error) {
	out := make([]models.SystemSetting, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
}

func newEngine(register ...interface{ Register(*gin.Engine) }) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, h := range register {
		h.Register(r)
	}
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestSimulatorHandler_CreateAndGet(t *testing.T) {
	svc := newStubSessions()
	r := newEngine(&SimulatorHandler{Service: svc})

	w, env := do(t, r, http.MethodPost, "/api/v1/simulator/sessions", map[string]string{
		"user_address": "0xABC", "project_name": "Moon", "project_type": "defi",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 0, env.Code)
	var sess simulator.Session
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, "0xabc", sess.UserAddress)
	assert.Equal(t, 52, sess.Score.Overall())

	w, env = do(t, r, http.MethodGet, "/api/v1/simulator/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", env.Meta["error"])

	w, _ = do(t, r, http.MethodPost, "/api/v1/simulator/sessions", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulatorHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("x: %w", simulator.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("x: %w", simulator.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("x: %w", simulator.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("x: %w", simulator.ErrInvalidTransition), http.StatusConflict},
		{simulator.ErrVersionConflict, http.StatusConflict},
		{errors.New("connection reset"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		svc := newStubSessions()
		svc.err = tc.err
		r := newEngine(&SimulatorHandler{Service: svc})
		w, env := do(t, r, http.MethodPost, "/api/v1/simulator/sessions/s1/complete", nil)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Equal(t, tc.status, env.Code)
	}
}

func TestSimulatorHandler_DecisionFlow(t *testing.T) {
	svc := newStubSessions()
	svc.add("s1", "0xabc")
	r := newEngine(&SimulatorHandler{Service: svc})

	w, env := do(t, r, http.MethodGet, "/api/v1/simulator/sessions/s1/decisions/remaining", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, env.Meta["total"])

	w, env = do(t, r, http.MethodPost, "/api/v1/simulator/sessions/s1/decisions", map[string]string{
		"decision_id": "ideation_problem_focus", "option_id": "ideation_problem_bnb_liquidity",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, simulator.BonusForOption(simulator.ProjectDeFi, "ideation_problem_bnb_liquidity"), env.Meta["ecosystem_bonus"])

	w, _ = do(t, r, http.MethodPost, "/api/v1/simulator/sessions/s1/decisions", map[string]string{
		"decision_id": "ideation_problem_focus", "option_id": "ideation_problem_onboarding",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/simulator/sessions/s1/advance", map[string]string{"next_stage": "launch"})
	assert.Equal(t, http.StatusConflict, w.Code)
	w, _ = do(t, r, http.MethodPost, "/api/v1/simulator/sessions/s1/advance", map[string]string{"next_stage": "development"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/simulator/sessions/s1/complete", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSimulatorHandler_UserStats(t *testing.T) {
	svc := newStubSessions()
	svc.stats["0xabc"] = &simulator.UserStats{UserAddress: "0xabc", BestScore: 77}
	r := newEngine(&SimulatorHandler{Service: svc})

	w, env := do(t, r, http.MethodGet, "/api/v1/simulator/users/0xABC/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats simulator.UserStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 77, stats.BestScore)

	w, env = do(t, r, http.MethodGet, "/api/v1/simulator/users/0xnobody/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", string(env.Data))
}

func TestSimulatorHandler_AuthDefaults(t *testing.T) {
	svc := newStubSessions()
	svc.add("s1", "0xabc")
	j := &auth.JWT{Secret: []byte("k")}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.Middleware(j))
	(&SimulatorHandler{Service: svc}).Register(r)

	tok, _, err := j.Sign(auth.Claims{Address: "0xabc"})
	require.NoError(t, err)
	send := func(method, path string, body any) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send(http.MethodPost, "/api/v1/simulator/sessions", map[string]string{"project_name": "P", "project_type": "dao"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0xabc", svc.lastIn.UserAddress)

	w = send(http.MethodGet, "/api/v1/simulator/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0xabc", svc.lastList.UserAddress)

	w = send(http.MethodGet, "/api/v1/simulator/sessions?user_address=0xdef", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLeaderboardHandler(t *testing.T) {
	board := &stubBoard{entries: []simulator.LeaderboardEntry{{Rank: 1, UserAddress: "0xa", BestScore: 90}}}
	r := newEngine(&LeaderboardHandler{Service: board})

	w, env := do(t, r, http.MethodGet, "/api/v1/simulator/leaderboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, simulator.DefaultLeaderboardLimit, board.gotLimit)
	var entries []simulator.LeaderboardEntry
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 1)

	do(t, r, http.MethodGet, "/api/v1/simulator/leaderboard?limit=1000", nil)
	assert.Equal(t, simulator.MaxLeaderboardLimit, board.gotLimit)

	board.err = errors.New("db down")
	w, _ = do(t, r, http.MethodGet, "/api/v1/simulator/leaderboard", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCatalogHandler(t *testing.T) {
	r := newEngine(&CatalogHandler{})

	w, env := do(t, r, http.MethodGet, "/api/v1/simulator/stages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stages []stageView
	require.NoError(t, json.Unmarshal(env.Data, &stages))
	require.Len(t, stages, 8)
	assert.Equal(t, simulator.StageIdeation, stages[0].Stage)
	assert.True(t, stages[7].Terminal)

	w, env = do(t, r, http.MethodGet, "/api/v1/simulator/stages/development/decisions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var decisions []simulator.Decision
	require.NoError(t, json.Unmarshal(env.Data, &decisions))
	assert.NotEmpty(t, decisions)

	w, _ = do(t, r, http.MethodGet, "/api/v1/simulator/stages/moon/decisions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/simulator/project-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 8, env.Meta["total"])

	w, env = do(t, r, http.MethodGet, "/api/v1/simulator/project-types?preferred_for=development_chain_bsc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var types []projectTypeView
	require.NoError(t, json.Unmarshal(env.Data, &types))
	for _, typ := range types {
		assert.Contains(t, typ.PreferredOptions, "development_chain_bsc")
	}
}

func TestSettingsHandler(t *testing.T) {
	repo := &settingsRepo{items: map[string]models.SystemSetting{}}
	r := newEngine(&SettingsHandler{Settings: &service.SystemSettingsService{Repo: repo}})

	w, _ := do(t, r, http.MethodPut, "/api/v1/settings/features/session_stream", map[string]bool{"enabled": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env := do(t, r, http.MethodGet, "/api/v1/settings/features/feature.session_stream", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sw map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &sw))
	assert.Equal(t, false, sw["enabled"])

	w, _ = do(t, r, http.MethodPut, "/api/v1/settings/features/catalog_sync", map[string]bool{"enabled": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = do(t, r, http.MethodPut, "/api/v1/settings/features/event_publish", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/settings/features", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []service.FeatureSwitch
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 3)
}

func TestStreamHandler(t *testing.T) {
	svc := newStubSessions()
	svc.add("s1", "0xabc")
	done := svc.add("s2", "0xabc")
	done.Status = simulator.StatusCompleted

	repo := &settingsRepo{items: map[string]models.SystemSetting{}}
	flags := &service.SystemSettingsService{Repo: repo}
	hub := events.NewHub(nil)
	r := newEngine(&StreamHandler{Sessions: svc, Hub: hub, Flags: flags, Heartbeat: time.Minute})

	w, _ := do(t, r, http.MethodGet, "/api/v1/simulator/sessions/nope/stream", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = do(t, r, http.MethodGet, "/api/v1/simulator/sessions/s2/stream", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	srv := httptest.NewServer(r)
	defer srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/simulator/sessions/s1/stream"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	require.Eventually(t, func() bool { return hub.Subscribers("s1") == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, hub.Publish(ctx, events.New(events.TypeSessionStageAdvance, "s1", "0xabc", "development", nil, tHandler)))
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var ev events.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, events.TypeSessionStageAdvance, ev.Type)

	require.NoError(t, flags.SetEnabled(ctx, service.FeatureSessionStream, false))
	w, _ = do(t, r, http.MethodGet, "/api/v1/simulator/sessions/s1/stream", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
