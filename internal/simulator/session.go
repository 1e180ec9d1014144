package simulator

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	// StatusAbandoned is reserved; no operation transitions into it.
	StatusAbandoned Status = "abandoned"
)

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// DecisionRecord is an append-only log entry of one applied decision.
type DecisionRecord struct {
	DecisionID  string    `json:"decision_id"`
	OptionID    string    `json:"option_id"`
	Stage       Stage     `json:"stage"`
	Timestamp   time.Time `json:"timestamp"`
	ScoreImpact []Impact  `json:"score_impact"`
	// EcosystemBonus is the advisory project-type bonus of the chosen option.
	EcosystemBonus int `json:"ecosystem_bonus"`
}

// Session is the aggregate root of one simulation run.
type Session struct {
	ID           string           `json:"id"`
	UserAddress  string           `json:"user_address"`
	ProjectName  string           `json:"project_name"`
	ProjectType  ProjectType      `json:"project_type"`
	CurrentStage Stage            `json:"current_stage"`
	Decisions    []DecisionRecord `json:"decisions_made"`
	Score        ScoreVector      `json:"current_score"`
	Status       Status           `json:"session_status"`
	Outcome      *Outcome         `json:"final_outcome,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	// Version increases on every persisted mutation.
	Version int64 `json:"version"`
}

func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

func NewSession(id, userAddress, projectName string, projectType ProjectType, now time.Time) (*Session, error) {
	userAddress = NormalizeAddress(userAddress)
	projectName = strings.TrimSpace(projectName)
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("session id required: %w", ErrValidation)
	}
	if userAddress == "" {
		return nil, fmt.Errorf("user_address required: %w", ErrValidation)
	}
	if projectName == "" {
		return nil, fmt.Errorf("project_name required: %w", ErrValidation)
	}
	if !projectType.Valid() {
		return nil, fmt.Errorf("unknown project_type %q: %w", projectType, ErrValidation)
	}
	return &Session{
		ID:           id,
		UserAddress:  userAddress,
		ProjectName:  projectName,
		ProjectType:  projectType,
		CurrentStage: FirstStage(),
		Decisions:    []DecisionRecord{},
		Score:        InitialVector(),
		Status:       StatusActive,
		CreatedAt:    now.UTC(),
	}, nil
}

func (s *Session) requireActive(op string) error {
	if s.Status != StatusActive {
		return fmt.Errorf("%s on %s session: %w", op, s.Status, ErrInvalidTransition)
	}
	return nil
}

// HasDecided reports whether decisionID was already applied in this session.
func (s *Session) HasDecided(decisionID string) bool {
	for _, rec := range s.Decisions {
		if rec.DecisionID == decisionID {
			return true
		}
	}
	return false
}

// RemainingDecisions lists the current stage's decisions not yet made.
func (s *Session) RemainingDecisions() []Decision {
	all := DecisionsForStage(s.CurrentStage)
	out := make([]Decision, 0, len(all))
	for _, d := range all {
		if !s.HasDecided(d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// ApplyDecision records the chosen option and folds its impacts into the
// score. The stage is left unchanged.
func (s *Session) ApplyDecision(decision Decision, option Option, now time.Time) (DecisionRecord, error) {
	if err := s.requireActive("decision"); err != nil {
		return DecisionRecord{}, err
	}
	if decision.Stage != s.CurrentStage {
		return DecisionRecord{}, fmt.Errorf("decision %s belongs to stage %s, session is at %s: %w",
			decision.ID, decision.Stage, s.CurrentStage, ErrInvalidTransition)
	}
	if s.HasDecided(decision.ID) {
		return DecisionRecord{}, fmt.Errorf("decision %s already made: %w", decision.ID, ErrInvalidTransition)
	}
	rec := DecisionRecord{
		DecisionID:     decision.ID,
		OptionID:       option.ID,
		Stage:          s.CurrentStage,
		Timestamp:      now.UTC(),
		ScoreImpact:    append([]Impact(nil), option.Impacts...),
		EcosystemBonus: BonusForOption(s.ProjectType, option.ID),
	}
	s.Decisions = append(s.Decisions, rec)
	s.Score = ApplyImpacts(s.Score, option.Impacts)
	return rec, nil
}

// Advance moves the session to next, which must be the catalog successor of
// the current stage.
func (s *Session) Advance(next Stage) error {
	if err := s.requireActive("advance"); err != nil {
		return err
	}
	want, ok := NextStage(s.CurrentStage)
	if !ok {
		return fmt.Errorf("stage %s is terminal: %w", s.CurrentStage, ErrInvalidTransition)
	}
	if next != want {
		return fmt.Errorf("cannot advance from %s to %s (next is %s): %w",
			s.CurrentStage, next, want, ErrInvalidTransition)
	}
	s.CurrentStage = next
	return nil
}

// Complete finalizes the session with its computed outcome.
func (s *Session) Complete(now time.Time) (Outcome, error) {
	if err := s.requireActive("complete"); err != nil {
		return Outcome{}, err
	}
	if !s.CurrentStage.IsTerminal() {
		return Outcome{}, fmt.Errorf("cannot complete at stage %s: %w", s.CurrentStage, ErrInvalidTransition)
	}
	outcome := ComputeOutcome(s.ProjectType, s.Score, s.Decisions)
	completedAt := now.UTC()
	s.Status = StatusCompleted
	s.CompletedAt = &completedAt
	s.Outcome = &outcome
	return outcome, nil
}

// Duration is the wall time between creation and completion.
func (s *Session) Duration() time.Duration {
	if s.CompletedAt == nil {
		return 0
	}
	d := s.CompletedAt.Sub(s.CreatedAt)
	if d < 0 {
		return 0
	}
	return d
}
