package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserSimulatorStats is the rolling per-wallet aggregate of completed runs.
type UserSimulatorStats struct {
	UserAddress string `gorm:"type:varchar(100);primaryKey"`

	TotalSimulations     int `gorm:"not null;default:0"`
	CompletedSimulations int `gorm:"not null;default:0"`
	AverageScore         int `gorm:"not null;default:0"`
	BestScore            int `gorm:"not null;default:0;index"`

	FavoriteProjectType string         `gorm:"type:varchar(30)"`
	ProjectTypeCounts   datatypes.JSON `gorm:"type:jsonb"`
	TotalTimeSpent      int64          `gorm:"not null;default:0"`
	Achievements        datatypes.JSON `gorm:"type:jsonb"`
	BnbExpertiseLevel   int            `gorm:"not null;default:0"`

	Version int64 `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (UserSimulatorStats) TableName() string {
	return "user_simulator_stats"
}
