package models

import (
	"time"

	"gorm.io/datatypes"
)

// SimulatorSession is one Project Launch Simulator run.
type SimulatorSession struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	UserAddress string `gorm:"type:varchar(100);not null;index:idx_sessions_user_created,priority:1"`
	ProjectName string `gorm:"type:varchar(200);not null"`
	ProjectType string `gorm:"type:varchar(30);not null;index"`

	CurrentStage  string         `gorm:"type:varchar(30);not null"`
	DecisionsMade datatypes.JSON `gorm:"type:jsonb;not null"`
	CurrentScore  datatypes.JSON `gorm:"type:jsonb;not null"`
	SessionStatus string         `gorm:"type:varchar(20);not null;index"`
	FinalOutcome  datatypes.JSON `gorm:"type:jsonb"`

	// Version is bumped on every update; writers compare-and-swap on it.
	Version int64 `gorm:"not null;default:1"`

	CreatedAt   time.Time  `gorm:"type:timestamptz;not null;index:idx_sessions_user_created,priority:2"`
	CompletedAt *time.Time `gorm:"type:timestamptz"`
	UpdatedAt   time.Time  `gorm:"type:timestamptz;autoUpdateTime"`
}

func (SimulatorSession) TableName() string {
	return "sessions"
}
