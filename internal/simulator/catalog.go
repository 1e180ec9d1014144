package simulator

import (
	"fmt"
	"strings"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Impact is a signed change to one score category.
type Impact struct {
	Area   Category `json:"area"`
	Value  int      `json:"value"`
	Reason string   `json:"reason"`
}

type Option struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Cost         int64     `json:"cost"`
	Risk         RiskLevel `json:"risk_level"`
	BNBRelevance int       `json:"bnb_relevance"`
	Impacts      []Impact  `json:"impact"`
}

type Decision struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Stage       Stage      `json:"stage"`
	ImpactAreas []Category `json:"impact_areas"`
	Options     []Option   `json:"options"`
}

// DecisionsForStage returns the catalog decisions of a stage in catalog order.
// The result is a copy and safe to modify.
func DecisionsForStage(stage Stage) []Decision {
	src := decisionCatalog[stage]
	out := make([]Decision, 0, len(src))
	for _, d := range src {
		out = append(out, d.clone())
	}
	return out
}

// FindDecision looks a decision up by id across all stages.
func FindDecision(id string) (Decision, bool) {
	id = strings.TrimSpace(id)
	for _, stage := range stageOrder {
		for _, d := range decisionCatalog[stage] {
			if d.ID == id {
				return d.clone(), true
			}
		}
	}
	return Decision{}, false
}

// FindOption resolves an option of a decision.
func FindOption(decisionID, optionID string) (Decision, Option, error) {
	d, ok := FindDecision(decisionID)
	if !ok {
		return Decision{}, Option{}, fmt.Errorf("decision %q: %w", decisionID, ErrNotFound)
	}
	optionID = strings.TrimSpace(optionID)
	for _, o := range d.Options {
		if o.ID == optionID {
			return d, o, nil
		}
	}
	return Decision{}, Option{}, fmt.Errorf("option %q of decision %q: %w", optionID, decisionID, ErrNotFound)
}

func (d Decision) clone() Decision {
	out := d
	out.ImpactAreas = append([]Category(nil), d.ImpactAreas...)
	out.Options = make([]Option, len(d.Options))
	for i, o := range d.Options {
		o.Impacts = append([]Impact(nil), o.Impacts...)
		out.Options[i] = o
	}
	return out
}

// validateCatalog checks the authored catalog for structural mistakes.
func validateCatalog() error {
	seenDecisions := map[string]struct{}{}
	seenOptions := map[string]struct{}{}
	for stage, decisions := range decisionCatalog {
		if !stage.Valid() {
			return fmt.Errorf("catalog: unknown stage %q", stage)
		}
		for _, d := range decisions {
			if d.Stage != stage {
				return fmt.Errorf("catalog: decision %s listed under %s but owned by %s", d.ID, stage, d.Stage)
			}
			if _, dup := seenDecisions[d.ID]; dup {
				return fmt.Errorf("catalog: duplicate decision id %s", d.ID)
			}
			seenDecisions[d.ID] = struct{}{}
			if len(d.Options) < 2 || len(d.Options) > 4 {
				return fmt.Errorf("catalog: decision %s has %d options", d.ID, len(d.Options))
			}
			for _, o := range d.Options {
				if _, dup := seenOptions[o.ID]; dup {
					return fmt.Errorf("catalog: duplicate option id %s", o.ID)
				}
				seenOptions[o.ID] = struct{}{}
				if o.BNBRelevance < 0 || o.BNBRelevance > 100 {
					return fmt.Errorf("catalog: option %s relevance %d out of range", o.ID, o.BNBRelevance)
				}
				for _, imp := range o.Impacts {
					if !imp.Area.Valid() {
						return fmt.Errorf("catalog: option %s has invalid impact area", o.ID)
					}
				}
			}
		}
	}
	return nil
}

func init() {
	if err := validateCatalog(); err != nil {
		panic(err)
	}
}
