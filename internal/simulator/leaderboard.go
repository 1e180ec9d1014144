package simulator

import "sort"

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

type LeaderboardEntry struct {
	Rank                 int         `json:"rank"`
	UserAddress          string      `json:"user_address"`
	BestScore            int         `json:"best_score"`
	AverageScore         int         `json:"average_score"`
	CompletedSimulations int         `json:"completed_simulations"`
	FavoriteProjectType  ProjectType `json:"favorite_project_type"`
	BNBExpertiseLevel    int         `json:"bnb_expertise_level"`
}

func NormalizeLeaderboardLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return MaxLeaderboardLimit
	}
	return limit
}

// Leaderboard ranks stats by best score. Ties are broken by average score,
// then completed simulations (both descending), then user address.
func Leaderboard(stats []UserStats, limit int) []LeaderboardEntry {
	limit = NormalizeLeaderboardLimit(limit)
	sorted := append([]UserStats(nil), stats...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.BestScore != b.BestScore {
			return a.BestScore > b.BestScore
		}
		if a.AverageScore != b.AverageScore {
			return a.AverageScore > b.AverageScore
		}
		if a.CompletedSimulations != b.CompletedSimulations {
			return a.CompletedSimulations > b.CompletedSimulations
		}
		return a.UserAddress < b.UserAddress
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]LeaderboardEntry, 0, len(sorted))
	for i, s := range sorted {
		out = append(out, LeaderboardEntry{
			Rank:                 i + 1,
			UserAddress:          s.UserAddress,
			BestScore:            s.BestScore,
			AverageScore:         s.AverageScore,
			CompletedSimulations: s.CompletedSimulations,
			FavoriteProjectType:  s.FavoriteProjectType,
			BNBExpertiseLevel:    s.BNBExpertiseLevel,
		})
	}
	return out
}
