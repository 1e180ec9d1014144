package simulator

import "strings"

// Stage is one phase of a simulated project's lifecycle. Stages are traversed
// strictly in stageOrder.
type Stage string

const (
	StageIdeation          Stage = "ideation"
	StageDevelopment       Stage = "development"
	StageTokenomics        Stage = "tokenomics"
	StageCommunityBuilding Stage = "community_building"
	StagePartnerships      Stage = "partnerships"
	StagePreLaunch         Stage = "pre_launch"
	StageLaunch            Stage = "launch"
	StagePostLaunch        Stage = "post_launch"
)

var stageOrder = []Stage{
	StageIdeation,
	StageDevelopment,
	StageTokenomics,
	StageCommunityBuilding,
	StagePartnerships,
	StagePreLaunch,
	StageLaunch,
	StagePostLaunch,
}

var stageTitles = map[Stage]string{
	StageIdeation:          "Ideation",
	StageDevelopment:       "Development",
	StageTokenomics:        "Tokenomics",
	StageCommunityBuilding: "Community Building",
	StagePartnerships:      "Partnerships",
	StagePreLaunch:         "Pre-Launch",
	StageLaunch:            "Launch",
	StagePostLaunch:        "Post-Launch",
}

func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

func FirstStage() Stage { return stageOrder[0] }

func ParseStage(raw string) (Stage, bool) {
	s := Stage(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

func (s Stage) Valid() bool { return s.Index() >= 0 }

// Index is the zero-based position of s in the stage order, or -1.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Stage) Title() string {
	if t, ok := stageTitles[s]; ok {
		return t
	}
	return string(s)
}

// NextStage returns the stage after s. ok is false for the terminal stage and
// for unknown stages.
func NextStage(s Stage) (next Stage, ok bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(stageOrder) {
		return "", false
	}
	return stageOrder[i+1], true
}

// IsTerminal reports whether s is the last stage, after which a session may
// be completed.
func (s Stage) IsTerminal() bool {
	return s.Valid() && s.Index() == len(stageOrder)-1
}
