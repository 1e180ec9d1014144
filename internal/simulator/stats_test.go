package simulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedSession(typ ProjectType, score ScoreVector, took time.Duration) *Session {
	done := t0.Add(took)
	return &Session{
		ID:          "s",
		UserAddress: "0xabc",
		ProjectType: typ,
		Score:       score,
		Status:      StatusCompleted,
		CreatedAt:   t0,
		CompletedAt: &done,
	}
}

func TestRecordCompletion_IncrementalMean(t *testing.T) {
	u := NewUserStats("0xABC", t0)
	u.RecordCompletion(completedSession(ProjectDeFi, vectorWith(60, 60), time.Minute), 1, t0)
	require.Equal(t, 60, u.AverageScore)
	u.RecordCompletion(completedSession(ProjectDeFi, vectorWith(80, 80), time.Minute), 2, t0)

	assert.Equal(t, "0xabc", u.UserAddress)
	assert.Equal(t, 70, u.AverageScore)
	assert.Equal(t, 80, u.BestScore)
	assert.Equal(t, 2, u.CompletedSimulations)
	assert.Equal(t, 2, u.TotalSimulations)
	assert.Equal(t, int64(120), u.TotalTimeSpent)
}

func TestRecordCompletion_BestScoreIsMax(t *testing.T) {
	u := NewUserStats("0xabc", t0)
	u.RecordCompletion(completedSession(ProjectDeFi, vectorWith(80, 80), 0), 1, t0)
	u.RecordCompletion(completedSession(ProjectDeFi, vectorWith(40, 40), 0), 2, t0)
	assert.Equal(t, 80, u.BestScore)
	assert.Equal(t, 60, u.AverageScore)
}

func TestRecordCompletion_TotalCountsStartedSessions(t *testing.T) {
	u := NewUserStats("0xabc", t0)
	u.RecordCompletion(completedSession(ProjectDeFi, InitialVector(), 0), 4, t0)
	assert.Equal(t, 4, u.TotalSimulations)
	assert.Equal(t, 1, u.CompletedSimulations)
}

func TestRecordCompletion_ExpertiseCapped(t *testing.T) {
	u := NewUserStats("0xabc", t0)
	u.RecordCompletion(completedSession(ProjectDeFi, vectorWith(50, 80), 0), 1, t0)
	assert.Equal(t, 2, u.BNBExpertiseLevel)
	u.RecordCompletion(completedSession(ProjectDeFi, vectorWith(50, 81), 0), 2, t0)
	assert.Equal(t, 7, u.BNBExpertiseLevel)

	u.BNBExpertiseLevel = 98
	u.RecordCompletion(completedSession(ProjectDeFi, vectorWith(50, 95), 0), 3, t0)
	assert.Equal(t, 100, u.BNBExpertiseLevel)
	assert.Contains(t, u.Achievements, AchievementEcosystemExpert)
	assert.Contains(t, u.Achievements, AchievementBNBMaestro)
}

func TestRecordCompletion_FavoriteProjectType(t *testing.T) {
	u := NewUserStats("0xabc", t0)
	u.RecordCompletion(completedSession(ProjectGameFi, InitialVector(), 0), 1, t0)
	assert.Equal(t, ProjectGameFi, u.FavoriteProjectType)

	// tie between gamefi and defi goes to defi, listed first
	u.RecordCompletion(completedSession(ProjectDeFi, InitialVector(), 0), 2, t0)
	assert.Equal(t, ProjectDeFi, u.FavoriteProjectType)

	u.RecordCompletion(completedSession(ProjectGameFi, InitialVector(), 0), 3, t0)
	assert.Equal(t, ProjectGameFi, u.FavoriteProjectType)
}

func TestRecordCompletion_Achievements(t *testing.T) {
	u := NewUserStats("0xabc", t0)
	for i := 1; i <= 5; i++ {
		u.RecordCompletion(completedSession(ProjectDeFi, InitialVector(), 0), i, t0)
	}
	assert.Equal(t, []string{AchievementFirstLaunch, AchievementRiskManager, AchievementSerialFounder}, u.Achievements)

	u.RecordCompletion(completedSession(ProjectDeFi, vectorWith(90, 90), 0), 6, t0)
	assert.Contains(t, u.Achievements, AchievementVisionary)
	assert.Equal(t, 1, countOf(u.Achievements, AchievementFirstLaunch))
}

func countOf(items []string, want string) int {
	n := 0
	for _, it := range items {
		if it == want {
			n++
		}
	}
	return n
}
