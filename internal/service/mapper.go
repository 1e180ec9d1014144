package service

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"launchsim/internal/models"
	"launchsim/internal/simulator"
)

func sessionToModel(s *simulator.Session) (*models.SimulatorSession, error) {
	decisions := s.Decisions
	if decisions == nil {
		decisions = []simulator.DecisionRecord{}
	}
	decisionsRaw, err := json.Marshal(decisions)
	if err != nil {
		return nil, fmt.Errorf("encode decisions: %w", err)
	}
	scoreRaw, err := json.Marshal(s.Score)
	if err != nil {
		return nil, fmt.Errorf("encode score: %w", err)
	}
	var outcomeRaw datatypes.JSON
	if s.Outcome != nil {
		b, err := json.Marshal(s.Outcome)
		if err != nil {
			return nil, fmt.Errorf("encode outcome: %w", err)
		}
		outcomeRaw = datatypes.JSON(b)
	}
	return &models.SimulatorSession{
		ID:            s.ID,
		UserAddress:   s.UserAddress,
		ProjectName:   s.ProjectName,
		ProjectType:   string(s.ProjectType),
		CurrentStage:  string(s.CurrentStage),
		DecisionsMade: datatypes.JSON(decisionsRaw),
		CurrentScore:  datatypes.JSON(scoreRaw),
		SessionStatus: string(s.Status),
		FinalOutcome:  outcomeRaw,
		Version:       s.Version,
		CreatedAt:     s.CreatedAt,
		CompletedAt:   s.CompletedAt,
	}, nil
}

func sessionFromModel(m *models.SimulatorSession) (*simulator.Session, error) {
	s := &simulator.Session{
		ID:           m.ID,
		UserAddress:  m.UserAddress,
		ProjectName:  m.ProjectName,
		ProjectType:  simulator.ProjectType(m.ProjectType),
		CurrentStage: simulator.Stage(m.CurrentStage),
		Decisions:    []simulator.DecisionRecord{},
		Status:       simulator.Status(m.SessionStatus),
		CreatedAt:    m.CreatedAt.UTC(),
		Version:      m.Version,
	}
	if m.CompletedAt != nil {
		at := m.CompletedAt.UTC()
		s.CompletedAt = &at
	}
	if len(m.DecisionsMade) > 0 {
		if err := json.Unmarshal(m.DecisionsMade, &s.Decisions); err != nil {
			return nil, fmt.Errorf("decode decisions of session %s: %w", m.ID, err)
		}
	}
	if len(m.CurrentScore) > 0 {
		if err := json.Unmarshal(m.CurrentScore, &s.Score); err != nil {
			return nil, fmt.Errorf("decode score of session %s: %w", m.ID, err)
		}
	} else {
		s.Score = simulator.InitialVector()
	}
	if len(m.FinalOutcome) > 0 && string(m.FinalOutcome) != "null" {
		var outcome simulator.Outcome
		if err := json.Unmarshal(m.FinalOutcome, &outcome); err != nil {
			return nil, fmt.Errorf("decode outcome of session %s: %w", m.ID, err)
		}
		s.Outcome = &outcome
	}
	return s, nil
}

func statsToModel(u *simulator.UserStats) (*models.UserSimulatorStats, error) {
	counts := u.ProjectTypeCounts
	if counts == nil {
		counts = map[simulator.ProjectType]int{}
	}
	countsRaw, err := json.Marshal(counts)
	if err != nil {
		return nil, err
	}
	achievements := u.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	achievementsRaw, err := json.Marshal(achievements)
	if err != nil {
		return nil, err
	}
	return &models.UserSimulatorStats{
		UserAddress:          u.UserAddress,
		TotalSimulations:     u.TotalSimulations,
		CompletedSimulations: u.CompletedSimulations,
		AverageScore:         u.AverageScore,
		BestScore:            u.BestScore,
		FavoriteProjectType:  string(u.FavoriteProjectType),
		ProjectTypeCounts:    datatypes.JSON(countsRaw),
		TotalTimeSpent:       u.TotalTimeSpent,
		Achievements:         datatypes.JSON(achievementsRaw),
		BnbExpertiseLevel:    u.BNBExpertiseLevel,
		Version:              u.Version,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}, nil
}

func statsFromModel(m *models.UserSimulatorStats) (*simulator.UserStats, error) {
	u := &simulator.UserStats{
		UserAddress:          m.UserAddress,
		TotalSimulations:     m.TotalSimulations,
		CompletedSimulations: m.CompletedSimulations,
		AverageScore:         m.AverageScore,
		BestScore:            m.BestScore,
		FavoriteProjectType:  simulator.ProjectType(m.FavoriteProjectType),
		ProjectTypeCounts:    map[simulator.ProjectType]int{},
		TotalTimeSpent:       m.TotalTimeSpent,
		Achievements:         []string{},
		BNBExpertiseLevel:    m.BnbExpertiseLevel,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
		Version:              m.Version,
	}
	if len(m.ProjectTypeCounts) > 0 {
		if err := json.Unmarshal(m.ProjectTypeCounts, &u.ProjectTypeCounts); err != nil {
			return nil, fmt.Errorf("decode project type counts of %s: %w", m.UserAddress, err)
		}
	}
	if len(m.Achievements) > 0 {
		if err := json.Unmarshal(m.Achievements, &u.Achievements); err != nil {
			return nil, fmt.Errorf("decode achievements of %s: %w", m.UserAddress, err)
		}
	}
	return u, nil
}
