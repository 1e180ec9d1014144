package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"launchsim/internal/events"
	"launchsim/internal/models"
	"launchsim/internal/repository"
	"launchsim/internal/simulator"
)

// stubRepo is an in-memory repository.Repository with version checks.
type stubRepo struct {
	mu       sync.Mutex
	sessions map[string]models.SimulatorSession
	stats    map[string]models.UserSimulatorStats
	settings map[string]models.SystemSetting

	// beforeSessionUpdate runs inside UpdateSessionCAS before the version check.
	beforeSessionUpdate func(id string)
	failStatsWrite      error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		sessions: map[string]models.SimulatorSession{},
		stats:    map[string]models.UserSimulatorStats{},
		settings: map[string]models.SystemSetting{},
	}
}

func (r *stubRepo) InTx(ctx context.Context, fn func(ctx context.Context, tx repository.Repository) error) error {
	r.mu.Lock()
	sessions := make(map[string]models.SimulatorSession, len(r.sessions))
	for k, v := range r.sessions {
		sessions[k] = v
	}
	stats := make(map[string]models.UserSimulatorStats, len(r.stats))
	for k, v := range r.stats {
		stats[k] = v
	}
	r.mu.Unlock()

	if err := fn(ctx, r); err != nil {
		r.mu.Lock()
		r.sessions = sessions
		r.stats = stats
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *stubRepo) InsertSession(_ context.Context, item *models.SimulatorSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[item.ID] = *item
	return nil
}

func (r *stubRepo) GetSessionByID(_ context.Context, id string) (*models.SimulatorSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *stubRepo) ListSessions(_ context.Context, params repository.ListSessionsParams) ([]models.SimulatorSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SimulatorSession
	for _, item := range r.sessions {
		if matchSession(item, params) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if params.Offset > len(out) {
		return nil, nil
	}
	out = out[params.Offset:]
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (r *stubRepo) CountSessions(_ context.Context, params repository.ListSessionsParams) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, item := range r.sessions {
		if matchSession(item, params) {
			n++
		}
	}
	return n, nil
}

func matchSession(item models.SimulatorSession, params repository.ListSessionsParams) bool {
	if params.UserAddress != nil && item.UserAddress != *params.UserAddress {
		return false
	}
	if params.Status != nil && item.SessionStatus != *params.Status {
		return false
	}
	return true
}

func (r *stubRepo) UpdateSessionCAS(_ context.Context, item *models.SimulatorSession, expectedVersion int64) error {
	if r.beforeSessionUpdate != nil {
		r.beforeSessionUpdate(item.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.sessions[item.ID]
	if !ok || cur.Version != expectedVersion {
		return simulator.ErrVersionConflict
	}
	item.Version = expectedVersion + 1
	r.sessions[item.ID] = *item
	return nil
}

func (r *stubRepo) GetUserStats(_ context.Context, addr string) (*models.UserSimulatorStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.stats[addr]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *stubRepo) InsertUserStats(_ context.Context, item *models.UserSimulatorStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failStatsWrite != nil {
		return r.failStatsWrite
	}
	if _, ok := r.stats[item.UserAddress]; ok {
		return simulator.ErrVersionConflict
	}
	r.stats[item.UserAddress] = *item
	return nil
}

func (r *stubRepo) UpdateUserStatsCAS(_ context.Context, item *models.UserSimulatorStats, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failStatsWrite != nil {
		return r.failStatsWrite
	}
	cur, ok := r.stats[item.UserAddress]
	if !ok || cur.Version != expectedVersion {
		return simulator.ErrVersionConflict
	}
	item.Version = expectedVersion + 1
	r.stats[item.UserAddress] = *item
	return nil
}

func (r *stubRepo) ListTopUserStats(_ context.Context, limit int) ([]models.UserSimulatorStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.UserSimulatorStats
	for _, item := range r.stats {
		if item.CompletedSimulations > 0 {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BestScore != out[j].BestScore {
			return out[i].BestScore > out[j].BestScore
		}
		return out[i].UserAddress < out[j].UserAddress
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubRepo) UpsertSystemSetting(_ context.Context, item *models.SystemSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[item.Key] = *item
	return nil
}

func (r *stubRepo) GetSystemSettingByKey(_ context.Context, key string) (*models.SystemSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.settings[key]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *stubRepo) ListSystemSettings(_ context.Context, params repository.ListSystemSettingsParams) ([]models.SystemSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SystemSetting
	for key, item := range r.settings {
		if params.Prefix != nil && !strings.HasPrefix(key, *params.Prefix) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *stubRepo) CountSystemSettings(ctx context.Context, params repository.ListSystemSettingsParams) (int64, error) {
	items, _ := r.ListSystemSettings(ctx, params)
	return int64(len(items)), nil
}

// recorder is an events.Publisher that keeps what it was given.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) Publish(_ context.Context, ev events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, string(ev.Type))
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}
