package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"launchsim/internal/auth"
	"launchsim/internal/events"
	"launchsim/internal/repository"
	"launchsim/internal/simulator"
)

type CreateSessionInput struct {
	UserAddress string
	ProjectName string
	ProjectType string
}

type ListSessionsInput struct {
	UserAddress string
	Status      string
	Limit       int
	Offset      int
}

// DecisionResult is the outcome of one MakeDecision call.
type DecisionResult struct {
	Session *simulator.Session      `json:"session"`
	Record  simulator.DecisionRecord `json:"decision"`
	// Remaining lists the current stage's decisions still open.
	Remaining []simulator.Decision `json:"remaining_decisions"`
}

type CompletionResult struct {
	Session *simulator.Session   `json:"session"`
	Outcome simulator.Outcome    `json:"outcome"`
	Stats   *simulator.UserStats `json:"user_stats"`
}

// SimulatorService owns the session lifecycle. Mutations of one session are
// serialized in-process and persisted with a version compare-and-swap.
type SimulatorService struct {
	Repo        repository.Repository
	Logger      *zap.Logger
	Flags       *SystemSettingsService
	Events      events.Publisher
	Leaderboard *LeaderboardService

	ListLimit int
	Now       func() time.Time
	NewID     func() string

	locks keyedLocker
}

func (s *SimulatorService) CreateSession(ctx context.Context, in CreateSessionInput) (*simulator.Session, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("simulator service not configured")
	}
	if !auth.CanAct(ctx, in.UserAddress) {
		return nil, fmt.Errorf("create session for %s: %w", in.UserAddress, simulator.ErrForbidden)
	}
	projectType, ok := simulator.ParseProjectType(in.ProjectType)
	if !ok {
		return nil, fmt.Errorf("unknown project_type %q: %w", in.ProjectType, simulator.ErrValidation)
	}
	sess, err := simulator.NewSession(s.newID(), in.UserAddress, in.ProjectName, projectType, s.now())
	if err != nil {
		return nil, err
	}
	sess.Version = 1
	item, err := sessionToModel(sess)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.InsertSession(ctx, item); err != nil {
		return nil, err
	}
	s.log().Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("user", sess.UserAddress),
		zap.String("project_type", string(sess.ProjectType)),
	)
	s.publish(ctx, events.TypeSessionCreated, sess, map[string]any{
		"project_name": sess.ProjectName,
		"project_type": sess.ProjectType,
	})
	return sess, nil
}

func (s *SimulatorService) GetSession(ctx context.Context, id string) (*simulator.Session, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("simulator service not configured")
	}
	return s.load(ctx, s.Repo, id)
}

func (s *SimulatorService) ListSessions(ctx context.Context, in ListSessionsInput) ([]simulator.Session, int64, error) {
	if s == nil || s.Repo == nil {
		return nil, 0, errors.New("simulator service not configured")
	}
	user := simulator.NormalizeAddress(in.UserAddress)
	if user == "" {
		return nil, 0, fmt.Errorf("user_address required: %w", simulator.ErrValidation)
	}
	params := repository.ListSessionsParams{
		Limit:       s.listLimit(in.Limit),
		Offset:      in.Offset,
		UserAddress: &user,
	}
	if status := strings.TrimSpace(in.Status); status != "" {
		params.Status = &status
	}
	rows, err := s.Repo.ListSessions(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Repo.CountSessions(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	out := make([]simulator.Session, 0, len(rows))
	for i := range rows {
		sess, err := sessionFromModel(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *sess)
	}
	return out, total, nil
}

func (s *SimulatorService) RemainingDecisions(ctx context.Context, id string) ([]simulator.Decision, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status != simulator.StatusActive {
		return []simulator.Decision{}, nil
	}
	return sess.RemainingDecisions(), nil
}

func (s *SimulatorService) MakeDecision(ctx context.Context, id, decisionID, optionID string) (*DecisionResult, error) {
	decisionID = strings.TrimSpace(decisionID)
	optionID = strings.TrimSpace(optionID)
	if decisionID == "" || optionID == "" {
		return nil, fmt.Errorf("decision_id and option_id required: %w", simulator.ErrValidation)
	}
	decision, option, err := simulator.FindOption(decisionID, optionID)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, simulator.ErrValidation)
	}

	var rec simulator.DecisionRecord
	sess, err := s.mutate(ctx, id, func(sess *simulator.Session) error {
		var err error
		rec, err = sess.ApplyDecision(decision, option, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log().Info("decision applied",
		zap.String("session_id", sess.ID),
		zap.String("decision_id", rec.DecisionID),
		zap.String("option_id", rec.OptionID),
		zap.Int("overall", sess.Score.Overall()),
	)
	s.publish(ctx, events.TypeSessionDecisionMade, sess, map[string]any{
		"decision":      rec,
		"current_score": sess.Score,
	})
	return &DecisionResult{Session: sess, Record: rec, Remaining: sess.RemainingDecisions()}, nil
}

func (s *SimulatorService) AdvanceStage(ctx context.Context, id, nextStage string) (*simulator.Session, error) {
	next, ok := simulator.ParseStage(nextStage)
	if !ok {
		return nil, fmt.Errorf("unknown stage %q: %w", nextStage, simulator.ErrValidation)
	}
	var from simulator.Stage
	sess, err := s.mutate(ctx, id, func(sess *simulator.Session) error {
		from = sess.CurrentStage
		return sess.Advance(next)
	})
	if err != nil {
		return nil, err
	}
	s.log().Info("stage advanced",
		zap.String("session_id", sess.ID),
		zap.String("from", string(from)),
		zap.String("to", string(sess.CurrentStage)),
	)
	s.publish(ctx, events.TypeSessionStageAdvance, sess, map[string]any{
		"from": from,
		"to":   sess.CurrentStage,
	})
	return sess, nil
}

// CompleteSimulation finalizes the session and folds it into the user's
// stats within one transaction.
func (s *SimulatorService) CompleteSimulation(ctx context.Context, id string) (*CompletionResult, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("simulator service not configured")
	}
	unlock := s.locks.Lock(id)
	defer unlock()

	var result CompletionResult
	err := s.Repo.InTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		sess, err := s.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if !auth.CanAct(ctx, sess.UserAddress) {
			return fmt.Errorf("session %s: %w", id, simulator.ErrForbidden)
		}
		expected := sess.Version
		now := s.now()
		outcome, err := sess.Complete(now)
		if err != nil {
			return err
		}
		if err := s.save(ctx, tx, sess, expected); err != nil {
			return err
		}
		stats, err := s.recordCompletion(ctx, tx, sess, now)
		if err != nil {
			return err
		}
		result = CompletionResult{Session: sess, Outcome: outcome, Stats: stats}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log().Info("session completed",
		zap.String("session_id", result.Session.ID),
		zap.String("user", result.Session.UserAddress),
		zap.Int("overall", result.Session.Score.Overall()),
		zap.Int("success_probability", result.Outcome.SuccessProbability),
	)
	if s.Leaderboard != nil {
		s.Leaderboard.Invalidate(ctx)
	}
	s.publish(ctx, events.TypeSessionCompleted, result.Session, map[string]any{
		"outcome": result.Outcome,
	})
	return &result, nil
}

// GetUserStats returns nil when the user never completed a simulation.
func (s *SimulatorService) GetUserStats(ctx context.Context, userAddress string) (*simulator.UserStats, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("simulator service not configured")
	}
	addr := simulator.NormalizeAddress(userAddress)
	if addr == "" {
		return nil, fmt.Errorf("user_address required: %w", simulator.ErrValidation)
	}
	row, err := s.Repo.GetUserStats(ctx, addr)
	if err != nil || row == nil {
		return nil, err
	}
	return statsFromModel(row)
}

func (s *SimulatorService) recordCompletion(ctx context.Context, tx repository.Repository, sess *simulator.Session, now time.Time) (*simulator.UserStats, error) {
	user := sess.UserAddress
	total, err := tx.CountSessions(ctx, repository.ListSessionsParams{UserAddress: &user})
	if err != nil {
		return nil, err
	}
	row, err := tx.GetUserStats(ctx, user)
	if err != nil {
		return nil, err
	}

	var stats *simulator.UserStats
	if row == nil {
		stats = simulator.NewUserStats(user, now)
	} else if stats, err = statsFromModel(row); err != nil {
		return nil, err
	}
	expected := stats.Version
	stats.RecordCompletion(sess, int(total), now)

	item, err := statsToModel(stats)
	if err != nil {
		return nil, err
	}
	if row == nil {
		item.Version = 1
		err = tx.InsertUserStats(ctx, item)
	} else {
		err = tx.UpdateUserStatsCAS(ctx, item, expected)
	}
	if err != nil {
		return nil, err
	}
	stats.Version = item.Version
	return stats, nil
}

// mutate loads the session, applies fn and writes it back guarded by the
// loaded version.
func (s *SimulatorService) mutate(ctx context.Context, id string, fn func(*simulator.Session) error) (*simulator.Session, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("simulator service not configured")
	}
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.load(ctx, s.Repo, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAct(ctx, sess.UserAddress) {
		return nil, fmt.Errorf("session %s: %w", id, simulator.ErrForbidden)
	}
	expected := sess.Version
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.save(ctx, s.Repo, sess, expected); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SimulatorService) load(ctx context.Context, repo repository.Repository, id string) (*simulator.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("session id required: %w", simulator.ErrValidation)
	}
	row, err := repo.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("session %s: %w", id, simulator.ErrNotFound)
	}
	return sessionFromModel(row)
}

func (s *SimulatorService) save(ctx context.Context, repo repository.Repository, sess *simulator.Session, expected int64) error {
	item, err := sessionToModel(sess)
	if err != nil {
		return err
	}
	if err := repo.UpdateSessionCAS(ctx, item, expected); err != nil {
		if errors.Is(err, simulator.ErrVersionConflict) {
			s.log().Warn("session version conflict",
				zap.String("session_id", sess.ID),
				zap.Int64("expected_version", expected),
			)
		}
		return err
	}
	sess.Version = item.Version
	return nil
}

func (s *SimulatorService) publish(ctx context.Context, typ events.Type, sess *simulator.Session, payload any) {
	if s.Events == nil {
		return
	}
	if s.Flags != nil && !s.Flags.IsEnabled(ctx, FeatureEventPublish, true) {
		return
	}
	ev := events.New(typ, sess.ID, sess.UserAddress, string(sess.CurrentStage), payload, s.now())
	if err := s.Events.Publish(ctx, ev); err != nil {
		s.log().Warn("publish session event failed",
			zap.String("session_id", sess.ID),
			zap.String("type", string(typ)),
			zap.Error(err),
		)
	}
}

func (s *SimulatorService) listLimit(limit int) int {
	ceiling := s.ListLimit
	if ceiling <= 0 {
		ceiling = 50
	}
	if limit <= 0 || limit > ceiling {
		return ceiling
	}
	return limit
}

func (s *SimulatorService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *SimulatorService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *SimulatorService) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
