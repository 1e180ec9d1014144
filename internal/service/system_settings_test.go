package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSettings_DefaultsAndOverrides(t *testing.T) {
	repo := newStubRepo()
	svc := &SystemSettingsService{Repo: repo}
	ctx := context.Background()

	assert.True(t, svc.IsEnabled(ctx, FeatureSessionStream, true))
	require.NoError(t, svc.SetEnabled(ctx, FeatureSessionStream, false))
	require.NoError(t, svc.EnsureDefaultSwitches(ctx))

	// an operator's "off" survives EnsureDefaultSwitches
	assert.False(t, svc.IsEnabled(ctx, FeatureSessionStream, true))
	assert.True(t, svc.IsEnabled(ctx, FeatureEventPublish, false))

	switches, err := svc.ListSwitches(ctx)
	require.NoError(t, err)
	require.Len(t, switches, 3)
	assert.Equal(t, FeatureEventPublish, switches[0].Key)
	for _, sw := range switches {
		if sw.Key == FeatureSessionStream {
			assert.False(t, sw.Enabled)
		}
	}

	assert.True(t, IsKnownFeature(FeatureLeaderboardRefresh))
	assert.False(t, IsKnownFeature("feature.catalog_sync"))
}

func TestSystemSettings_NilService(t *testing.T) {
	var svc *SystemSettingsService
	assert.True(t, svc.IsEnabled(context.Background(), FeatureSessionStream, true))
	switches, err := svc.ListSwitches(context.Background())
	require.NoError(t, err)
	assert.Len(t, switches, 3)
}

func TestKeyedLocker_ReleasesEntries(t *testing.T) {
	var l keyedLocker
	unlockA := l.Lock("a")
	unlockB := l.Lock("b")
	assert.Equal(t, 2, l.size())
	unlockA()
	unlockB()
	assert.Equal(t, 0, l.size())
}
