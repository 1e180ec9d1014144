package gormrepository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"launchsim/internal/models"
	"launchsim/internal/repository"
	"launchsim/internal/simulator"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx repository.Repository) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &Store{db: tx})
	})
}

// --- sessions ----------------------------------------------------------------

func (s *Store) InsertSession(ctx context.Context, item *models.SimulatorSession) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if item.Version <= 0 {
		item.Version = 1
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetSessionByID(ctx context.Context, id string) (*models.SimulatorSession, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	var item models.SimulatorSession
	err := s.db.WithContext(ctx).Model(&models.SimulatorSession{}).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListSessions(ctx context.Context, params repository.ListSessionsParams) ([]models.SimulatorSession, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := sessionFilters(s.db.WithContext(ctx).Model(&models.SimulatorSession{}), params)
	query = applyOrder(query, params.OrderBy, params.Asc, "created_at")
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.SimulatorSession
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountSessions(ctx context.Context, params repository.ListSessionsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	query := sessionFilters(s.db.WithContext(ctx).Model(&models.SimulatorSession{}), params)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) UpdateSessionCAS(ctx context.Context, item *models.SimulatorSession, expectedVersion int64) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	next := expectedVersion + 1
	res := s.db.WithContext(ctx).
		Model(&models.SimulatorSession{}).
		Where("id = ? AND version = ?", item.ID, expectedVersion).
		Updates(map[string]any{
			"current_stage":  item.CurrentStage,
			"decisions_made": item.DecisionsMade,
			"current_score":  item.CurrentScore,
			"session_status": item.SessionStatus,
			"final_outcome":  item.FinalOutcome,
			"completed_at":   item.CompletedAt,
			"version":        next,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return simulator.ErrVersionConflict
	}
	item.Version = next
	return nil
}

func sessionFilters(query *gorm.DB, params repository.ListSessionsParams) *gorm.DB {
	if params.UserAddress != nil && strings.TrimSpace(*params.UserAddress) != "" {
		query = query.Where("user_address = ?", strings.TrimSpace(*params.UserAddress))
	}
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("session_status = ?", strings.TrimSpace(*params.Status))
	}
	if params.ProjectType != nil && strings.TrimSpace(*params.ProjectType) != "" {
		query = query.Where("project_type = ?", strings.TrimSpace(*params.ProjectType))
	}
	return query
}

// --- user stats --------------------------------------------------------------

func (s *Store) GetUserStats(ctx context.Context, userAddress string) (*models.UserSimulatorStats, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	userAddress = strings.TrimSpace(userAddress)
	if userAddress == "" {
		return nil, nil
	}
	var item models.UserSimulatorStats
	err := s.db.WithContext(ctx).Model(&models.UserSimulatorStats{}).Where("user_address = ?", userAddress).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) InsertUserStats(ctx context.Context, item *models.UserSimulatorStats) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if item.Version <= 0 {
		item.Version = 1
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_address"}},
		DoNothing: true,
	}).Create(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return simulator.ErrVersionConflict
	}
	return nil
}

func (s *Store) UpdateUserStatsCAS(ctx context.Context, item *models.UserSimulatorStats, expectedVersion int64) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	next := expectedVersion + 1
	res := s.db.WithContext(ctx).
		Model(&models.UserSimulatorStats{}).
		Where("user_address = ? AND version = ?", item.UserAddress, expectedVersion).
		Updates(map[string]any{
			"total_simulations":     item.TotalSimulations,
			"completed_simulations": item.CompletedSimulations,
			"average_score":         item.AverageScore,
			"best_score":            item.BestScore,
			"favorite_project_type": item.FavoriteProjectType,
			"project_type_counts":   item.ProjectTypeCounts,
			"total_time_spent":      item.TotalTimeSpent,
			"achievements":          item.Achievements,
			"bnb_expertise_level":   item.BnbExpertiseLevel,
			"updated_at":            item.UpdatedAt,
			"version":               next,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return simulator.ErrVersionConflict
	}
	item.Version = next
	return nil
}

// ListTopUserStats returns users with at least one completed run, best first.
func (s *Store) ListTopUserStats(ctx context.Context, limit int) ([]models.UserSimulatorStats, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	limit = normalizeLimit(limit, simulator.DefaultLeaderboardLimit)
	var items []models.UserSimulatorStats
	if err := s.db.WithContext(ctx).
		Model(&models.UserSimulatorStats{}).
		Where("completed_simulations > 0").
		Order("best_score desc").
		Order("average_score desc").
		Order("completed_simulations desc").
		Order("user_address asc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- system settings ---------------------------------------------------------

func (s *Store) UpsertSystemSetting(ctx context.Context, item *models.SystemSetting) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	item.Key = strings.TrimSpace(item.Key)
	if item.Key == "" {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"value",
			"description",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) GetSystemSettingByKey(ctx context.Context, key string) (*models.SystemSetting, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, nil
	}
	var item models.SystemSetting
	err := s.db.WithContext(ctx).Model(&models.SystemSetting{}).Where("key = ?", key).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListSystemSettings(ctx context.Context, params repository.ListSystemSettingsParams) ([]models.SystemSetting, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.SystemSetting{})
	if params.Prefix != nil && strings.TrimSpace(*params.Prefix) != "" {
		pattern := strings.TrimSpace(*params.Prefix) + "%"
		query = query.Where("key LIKE ?", pattern)
	}
	query = applyOrder(query, params.OrderBy, params.Asc, "key")
	limit := normalizeLimit(params.Limit, 500)
	offset := normalizeOffset(params.Offset)
	var items []models.SystemSetting
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountSystemSettings(ctx context.Context, params repository.ListSystemSettingsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	query := s.db.WithContext(ctx).Model(&models.SystemSetting{})
	if params.Prefix != nil && strings.TrimSpace(*params.Prefix) != "" {
		pattern := strings.TrimSpace(*params.Prefix) + "%"
		query = query.Where("key LIKE ?", pattern)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

var _ repository.Repository = (*Store)(nil)
