package gormrepository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"launchsim/internal/models"
	"launchsim/internal/repository"
	"launchsim/internal/simulator"
)

// sqlite keeps the postgres column names but needs its own time types.
var testSchema = []string{
	`CREATE TABLE sessions (
		id TEXT PRIMARY KEY,
		user_address TEXT NOT NULL,
		project_name TEXT NOT NULL,
		project_type TEXT NOT NULL,
		current_stage TEXT NOT NULL,
		decisions_made TEXT NOT NULL,
		current_score TEXT NOT NULL,
		session_status TEXT NOT NULL,
		final_outcome TEXT,
		version INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		completed_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE user_simulator_stats (
		user_address TEXT PRIMARY KEY,
		total_simulations INTEGER NOT NULL DEFAULT 0,
		completed_simulations INTEGER NOT NULL DEFAULT 0,
		average_score INTEGER NOT NULL DEFAULT 0,
		best_score INTEGER NOT NULL DEFAULT 0,
		favorite_project_type TEXT,
		project_type_counts TEXT,
		total_time_spent INTEGER NOT NULL DEFAULT 0,
		achievements TEXT,
		bnb_expertise_level INTEGER NOT NULL DEFAULT 0,
		version INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE system_settings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key TEXT NOT NULL UNIQUE,
		value TEXT NOT NULL,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqldb, err := gdb.DB()
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqldb.Close() })
	for _, ddl := range testSchema {
		require.NoError(t, gdb.Exec(ddl).Error)
	}
	return New(gdb)
}

func testSession(id, user string, created time.Time) *models.SimulatorSession {
	return &models.SimulatorSession{
		ID:            id,
		UserAddress:   user,
		ProjectName:   "Proj " + id,
		ProjectType:   "defi",
		CurrentStage:  "ideation",
		DecisionsMade: datatypes.JSON(`[]`),
		CurrentScore:  datatypes.JSON(`{"tokenomics":50}`),
		SessionStatus: "active",
		CreatedAt:     created,
	}
}

func TestStore_SessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, store.InsertSession(ctx, testSession("s1", "0xabc", now)))

	got, err := store.GetSessionByID(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0xabc", got.UserAddress)
	assert.Equal(t, int64(1), got.Version)
	assert.JSONEq(t, `{"tokenomics":50}`, string(got.CurrentScore))

	missing, err := store.GetSessionByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_UpdateSessionCAS(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	item := testSession("s1", "0xabc", now)
	require.NoError(t, store.InsertSession(ctx, item))

	item.CurrentStage = "validation"
	require.NoError(t, store.UpdateSessionCAS(ctx, item, 1))
	assert.Equal(t, int64(2), item.Version)

	stale := testSession("s1", "0xabc", now)
	stale.CurrentStage = "planning"
	err := store.UpdateSessionCAS(ctx, stale, 1)
	assert.True(t, errors.Is(err, simulator.ErrVersionConflict))

	got, err := store.GetSessionByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "validation", got.CurrentStage)
	assert.Equal(t, int64(2), got.Version)
}

func TestStore_ListSessionsFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.InsertSession(ctx, testSession("a", "0x1", base)))
	require.NoError(t, store.InsertSession(ctx, testSession("b", "0x1", base.Add(time.Hour))))
	require.NoError(t, store.InsertSession(ctx, testSession("c", "0x2", base.Add(2*time.Hour))))

	user := "0x1"
	items, err := store.ListSessions(ctx, repository.ListSessionsParams{UserAddress: &user})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)

	total, err := store.CountSessions(ctx, repository.ListSessionsParams{UserAddress: &user})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	all, err := store.CountSessions(ctx, repository.ListSessionsParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all)
}

func TestStore_UserStatsCASAndTop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	insert := func(addr string, best, avg, completed int) {
		require.NoError(t, store.InsertUserStats(ctx, &models.UserSimulatorStats{
			UserAddress:          addr,
			TotalSimulations:     completed,
			CompletedSimulations: completed,
			AverageScore:         avg,
			BestScore:            best,
			CreatedAt:            now,
			UpdatedAt:            now,
		}))
	}
	insert("0xb", 80, 60, 2)
	insert("0xa", 80, 60, 2)
	insert("0xc", 90, 50, 1)
	insert("0xd", 0, 0, 0)

	err := store.InsertUserStats(ctx, &models.UserSimulatorStats{UserAddress: "0xa", CreatedAt: now, UpdatedAt: now})
	assert.True(t, errors.Is(err, simulator.ErrVersionConflict))

	top, err := store.ListTopUserStats(ctx, 10)
	require.NoError(t, err)
	var order []string
	for _, item := range top {
		order = append(order, item.UserAddress)
	}
	assert.Equal(t, []string{"0xc", "0xa", "0xb"}, order)

	row, err := store.GetUserStats(ctx, "0xa")
	require.NoError(t, err)
	require.NotNil(t, row)
	row.BestScore = 95
	require.NoError(t, store.UpdateUserStatsCAS(ctx, row, 1))
	assert.Equal(t, int64(2), row.Version)
	assert.True(t, errors.Is(store.UpdateUserStatsCAS(ctx, row, 1), simulator.ErrVersionConflict))
}

func TestStore_InTxRollsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	boom := errors.New("boom")
	err := store.InTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		if err := tx.InsertSession(ctx, testSession("s1", "0xabc", now)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.GetSessionByID(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SystemSettings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertSystemSetting(ctx, &models.SystemSetting{Key: "feature.session_stream", Value: datatypes.JSON(`true`)}))
	require.NoError(t, store.UpsertSystemSetting(ctx, &models.SystemSetting{Key: "feature.session_stream", Value: datatypes.JSON(`false`)}))

	got, err := store.GetSystemSettingByKey(ctx, "feature.session_stream")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `false`, string(got.Value))

	prefix := "feature."
	total, err := store.CountSystemSettings(ctx, repository.ListSystemSettingsParams{Prefix: &prefix})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
