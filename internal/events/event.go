package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSessionCreated      Type = "session.created"
	TypeSessionDecisionMade Type = "session.decision_made"
	TypeSessionStageAdvance Type = "session.stage_advanced"
	TypeSessionCompleted    Type = "session.completed"
)

// Event is one state change of a simulator session.
type Event struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	SessionID   string    `json:"session_id"`
	UserAddress string    `json:"user_address"`
	Stage       string    `json:"stage"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload,omitempty"`
}

func New(typ Type, sessionID, userAddress, stage string, payload any, now time.Time) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        typ,
		SessionID:   sessionID,
		UserAddress: userAddress,
		Stage:       stage,
		OccurredAt:  now.UTC(),
		Payload:     payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi publishes to every non-nil publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
