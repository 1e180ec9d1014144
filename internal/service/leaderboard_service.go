package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"launchsim/internal/cache"
	"launchsim/internal/repository"
	"launchsim/internal/simulator"
)

const leaderboardCacheKey = "launchsim:leaderboard:top"

// LeaderboardService serves the best-score ranking. The top
// MaxLeaderboardLimit entries are cached as one blob and sliced per request.
type LeaderboardService struct {
	Repo   repository.Repository
	Cache  cache.Store
	TTL    time.Duration
	Logger *zap.Logger
	Flags  *SystemSettingsService
}

func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]simulator.LeaderboardEntry, error) {
	limit = simulator.NormalizeLeaderboardLimit(limit)
	if s == nil || s.Repo == nil {
		return []simulator.LeaderboardEntry{}, nil
	}
	entries, found, err := cache.GetJSON[[]simulator.LeaderboardEntry](ctx, s.Cache, leaderboardCacheKey)
	if err != nil {
		s.log().Warn("leaderboard cache read failed", zap.Error(err))
	}
	if !found {
		entries, err = s.Refresh(ctx)
		if err != nil {
			return nil, err
		}
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Refresh rebuilds the cached ranking from storage.
func (s *LeaderboardService) Refresh(ctx context.Context) ([]simulator.LeaderboardEntry, error) {
	if s == nil || s.Repo == nil {
		return []simulator.LeaderboardEntry{}, nil
	}
	rows, err := s.Repo.ListTopUserStats(ctx, simulator.MaxLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	stats := make([]simulator.UserStats, 0, len(rows))
	for i := range rows {
		u, err := statsFromModel(&rows[i])
		if err != nil {
			return nil, err
		}
		stats = append(stats, *u)
	}
	entries := simulator.Leaderboard(stats, simulator.MaxLeaderboardLimit)
	if err := cache.SetJSON(ctx, s.Cache, leaderboardCacheKey, entries, s.ttl()); err != nil {
		s.log().Warn("leaderboard cache write failed", zap.Error(err))
	}
	return entries, nil
}

// RunOnce is the cron entry point.
func (s *LeaderboardService) RunOnce(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if s.Flags != nil && !s.Flags.IsEnabled(ctx, FeatureLeaderboardRefresh, true) {
		return nil
	}
	entries, err := s.Refresh(ctx)
	if err != nil {
		return err
	}
	s.log().Debug("leaderboard refreshed", zap.Int("entries", len(entries)))
	return nil
}

func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s == nil || s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, leaderboardCacheKey); err != nil {
		s.log().Warn("leaderboard cache invalidate failed", zap.Error(err))
	}
}

func (s *LeaderboardService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 2 * time.Minute
}

func (s *LeaderboardService) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
