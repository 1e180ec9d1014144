package simulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageOrder(t *testing.T) {
	want := []Stage{
		StageIdeation, StageDevelopment, StageTokenomics, StageCommunityBuilding,
		StagePartnerships, StagePreLaunch, StageLaunch, StagePostLaunch,
	}
	assert.Equal(t, want, Stages())

	for i := 0; i < len(want)-1; i++ {
		next, ok := NextStage(want[i])
		require.True(t, ok)
		assert.Equal(t, want[i+1], next)
	}
	_, ok := NextStage(StagePostLaunch)
	assert.False(t, ok)
	assert.True(t, StagePostLaunch.IsTerminal())
	assert.False(t, StageLaunch.IsTerminal())

	_, ok = NextStage(Stage("moon"))
	assert.False(t, ok)
}

func TestParseStage(t *testing.T) {
	s, ok := ParseStage(" Community_Building ")
	assert.True(t, ok)
	assert.Equal(t, StageCommunityBuilding, s)

	_, ok = ParseStage("launchpad")
	assert.False(t, ok)
}

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, validateCatalog())
	for _, stage := range Stages() {
		decisions := DecisionsForStage(stage)
		assert.NotEmpty(t, decisions, stage)
		for _, d := range decisions {
			assert.Equal(t, stage, d.Stage)
			assert.GreaterOrEqual(t, len(d.Options), 2)
			assert.LessOrEqual(t, len(d.Options), 4)
		}
	}
	assert.Empty(t, DecisionsForStage(Stage("unknown")))
}

func TestDecisionsForStageReturnsCopies(t *testing.T) {
	first := DecisionsForStage(StageIdeation)
	first[0].Options[0].Impacts[0].Value = 999
	first[0].Title = "changed"

	again := DecisionsForStage(StageIdeation)
	assert.NotEqual(t, 999, again[0].Options[0].Impacts[0].Value)
	assert.NotEqual(t, "changed", again[0].Title)
}

func TestFindOption(t *testing.T) {
	d, o, err := FindOption("development_chain_choice", "development_chain_bsc")
	require.NoError(t, err)
	assert.Equal(t, StageDevelopment, d.Stage)
	assert.Equal(t, 100, o.BNBRelevance)

	_, _, err = FindOption("development_chain_choice", "nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, _, err = FindOption("nope", "development_chain_bsc")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPreferredOptionsExistInCatalog(t *testing.T) {
	for _, info := range ProjectTypes() {
		assert.NotEmpty(t, info.ComparableProjects, info.Type)
		assert.True(t, info.BaseValuation.IsPositive(), info.Type)
		for _, id := range info.PreferredOptions {
			found := false
			for _, stage := range Stages() {
				for _, d := range DecisionsForStage(stage) {
					for _, o := range d.Options {
						if o.ID == id {
							found = true
						}
					}
				}
			}
			assert.True(t, found, "%s prefers unknown option %s", info.Type, id)
		}
	}
	assert.Len(t, ProjectTypes(), 8)
}

func TestBonusForOption(t *testing.T) {
	assert.Equal(t, 15, BonusForOption(ProjectDeFi, "development_chain_bsc"))
	assert.Equal(t, 0, BonusForOption(ProjectDeFi, "development_chain_opbnb"))
	assert.Equal(t, 12, BonusForOption(ProjectGameFi, "development_chain_opbnb"))
	assert.Equal(t, 0, BonusForOption(ProjectType("casino"), "development_chain_bsc"))
}
