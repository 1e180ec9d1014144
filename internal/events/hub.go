package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

const subscriberBuffer = 16

// Hub fans session events out to in-process subscribers, typically
// websocket streams. Slow subscribers lose events rather than block.
type Hub struct {
	logger *zap.Logger

	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{logger: logger, subs: map[string]map[chan Event]struct{}{}}
}

// Subscribe registers for events of one session. The returned cancel
// function must be called to release the subscription.
func (h *Hub) Subscribe(sessionID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	set, ok := h.subs[sessionID]
	if !ok {
		set = map[chan Event]struct{}{}
		h.subs[sessionID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.subs[sessionID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, sessionID)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}

func (h *Hub) Publish(_ context.Context, ev Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[ev.SessionID] {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("session stream subscriber lagging, event dropped",
				zap.String("session_id", ev.SessionID),
				zap.String("type", string(ev.Type)),
			)
		}
	}
	return nil
}

// Stream writes the session's events to conn as JSON text frames until the
// client goes away or ctx ends. A terminal event closes the stream normally.
func (h *Hub) Stream(ctx context.Context, conn *websocket.Conn, sessionID string, heartbeat time.Duration) error {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	ch, cancel := h.Subscribe(sessionID)
	defer cancel()

	// reads are only needed to observe close frames
	ctx = conn.CloseRead(ctx)
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			pingCtx, pingCancel := context.WithTimeout(ctx, heartbeat)
			err := conn.Ping(pingCtx)
			pingCancel()
			if err != nil {
				return err
			}
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				return err
			}
			writeCtx, writeCancel := context.WithTimeout(ctx, 5*time.Second)
			err = conn.Write(writeCtx, websocket.MessageText, payload)
			writeCancel()
			if err != nil {
				return err
			}
			if ev.Type == TypeSessionCompleted {
				return conn.Close(websocket.StatusNormalClosure, "session completed")
			}
		}
	}
}
