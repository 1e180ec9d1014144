package simulator

import (
	"math"
	"time"
)

const (
	AchievementFirstLaunch     = "first_launch"
	AchievementBNBMaestro      = "bnb_maestro"
	AchievementVisionary       = "visionary"
	AchievementRiskManager     = "risk_manager"
	AchievementSerialFounder   = "serial_founder"
	AchievementEcosystemExpert = "ecosystem_expert"

	maxExpertise = 100
)

// UserStats is the rolling per-user aggregate over completed simulations.
type UserStats struct {
	UserAddress          string              `json:"user_address"`
	TotalSimulations     int                 `json:"total_simulations"`
	CompletedSimulations int                 `json:"completed_simulations"`
	AverageScore         int                 `json:"average_score"`
	BestScore            int                 `json:"best_score"`
	FavoriteProjectType  ProjectType         `json:"favorite_project_type"`
	ProjectTypeCounts    map[ProjectType]int `json:"project_type_counts"`
	TotalTimeSpent       int64               `json:"total_time_spent"`
	Achievements         []string            `json:"achievements"`
	BNBExpertiseLevel    int                 `json:"bnb_expertise_level"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
	Version              int64               `json:"-"`
}

func NewUserStats(userAddress string, now time.Time) *UserStats {
	return &UserStats{
		UserAddress:       NormalizeAddress(userAddress),
		ProjectTypeCounts: map[ProjectType]int{},
		Achievements:      []string{},
		CreatedAt:         now.UTC(),
		UpdatedAt:         now.UTC(),
	}
}

// ExpertiseGain is the expertise earned by one completed simulation.
func ExpertiseGain(bnbIntegration int) int {
	if bnbIntegration > 80 {
		return 5
	}
	return 2
}

// RecordCompletion folds one completed session into the stats. totalSessions
// is the number of sessions the user has created so far.
func (u *UserStats) RecordCompletion(s *Session, totalSessions int, now time.Time) {
	overall := s.Score.Overall()
	n := u.CompletedSimulations + 1
	u.AverageScore = int(math.Round((float64(u.AverageScore)*float64(n-1) + float64(overall)) / float64(n)))
	u.CompletedSimulations = n
	if totalSessions < n {
		totalSessions = n
	}
	u.TotalSimulations = totalSessions
	if overall > u.BestScore {
		u.BestScore = overall
	}
	if u.ProjectTypeCounts == nil {
		u.ProjectTypeCounts = map[ProjectType]int{}
	}
	u.ProjectTypeCounts[s.ProjectType]++
	u.FavoriteProjectType = favoriteProjectType(u.ProjectTypeCounts)
	u.TotalTimeSpent += int64(s.Duration() / time.Second)

	bnb := s.Score.Get(CategoryBNBIntegration)
	u.BNBExpertiseLevel += ExpertiseGain(bnb)
	if u.BNBExpertiseLevel > maxExpertise {
		u.BNBExpertiseLevel = maxExpertise
	}

	if n == 1 {
		u.addAchievement(AchievementFirstLaunch)
	}
	if bnb >= 90 {
		u.addAchievement(AchievementBNBMaestro)
	}
	if overall >= 85 {
		u.addAchievement(AchievementVisionary)
	}
	if s.Score.RiskAssessment() >= 90 {
		u.addAchievement(AchievementRiskManager)
	}
	if n >= 5 {
		u.addAchievement(AchievementSerialFounder)
	}
	if u.BNBExpertiseLevel >= maxExpertise {
		u.addAchievement(AchievementEcosystemExpert)
	}
	u.UpdatedAt = now.UTC()
}

func (u *UserStats) addAchievement(a string) {
	for _, have := range u.Achievements {
		if have == a {
			return
		}
	}
	u.Achievements = append(u.Achievements, a)
}

// favoriteProjectType is the most completed type; ties go to the type listed
// first in the catalog.
func favoriteProjectType(counts map[ProjectType]int) ProjectType {
	var best ProjectType
	bestCount := 0
	for t, c := range counts {
		if c > bestCount || (c == bestCount && c > 0 && projectTypeRank(t) < projectTypeRank(best)) {
			best, bestCount = t, c
		}
	}
	return best
}
