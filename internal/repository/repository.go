package repository

import (
	"context"

	"launchsim/internal/models"
)

// SessionRepository persists simulator sessions. Getters return (nil, nil)
// when the row does not exist.
type SessionRepository interface {
	InsertSession(ctx context.Context, item *models.SimulatorSession) error
	GetSessionByID(ctx context.Context, id string) (*models.SimulatorSession, error)
	ListSessions(ctx context.Context, params ListSessionsParams) ([]models.SimulatorSession, error)
	CountSessions(ctx context.Context, params ListSessionsParams) (int64, error)
	// UpdateSessionCAS writes item if the stored version still equals
	// expectedVersion and bumps item.Version. It returns
	// simulator.ErrVersionConflict otherwise.
	UpdateSessionCAS(ctx context.Context, item *models.SimulatorSession, expectedVersion int64) error
}

type UserStatsRepository interface {
	GetUserStats(ctx context.Context, userAddress string) (*models.UserSimulatorStats, error)
	// InsertUserStats returns simulator.ErrVersionConflict if the row
	// already exists.
	InsertUserStats(ctx context.Context, item *models.UserSimulatorStats) error
	UpdateUserStatsCAS(ctx context.Context, item *models.UserSimulatorStats, expectedVersion int64) error
	ListTopUserStats(ctx context.Context, limit int) ([]models.UserSimulatorStats, error)
}

type SystemSettingRepository interface {
	UpsertSystemSetting(ctx context.Context, item *models.SystemSetting) error
	GetSystemSettingByKey(ctx context.Context, key string) (*models.SystemSetting, error)
	ListSystemSettings(ctx context.Context, params ListSystemSettingsParams) ([]models.SystemSetting, error)
	CountSystemSettings(ctx context.Context, params ListSystemSettingsParams) (int64, error)
}

// Repository is the storage collaborator of the simulator services.
type Repository interface {
	SessionRepository
	UserStatsRepository
	SystemSettingRepository

	// InTx runs fn with a repository bound to a single transaction.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error
}

type ListSessionsParams struct {
	Limit       int
	Offset      int
	UserAddress *string
	Status      *string
	ProjectType *string
	OrderBy     string
	Asc         *bool
}

type ListSystemSettingsParams struct {
	Limit   int
	Offset  int
	Prefix  *string
	OrderBy string
	Asc     *bool
}
