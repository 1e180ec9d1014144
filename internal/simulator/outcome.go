package simulator

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Outcome is the final report of a completed session.
type Outcome struct {
	SuccessProbability int      `json:"success_probability"`
	PredictedMarketCap string   `json:"predicted_market_cap"`
	TimeToBreakEven    string   `json:"time_to_break_even"`
	MainStrengths      []string `json:"main_strengths"`
	MainWeaknesses     []string `json:"main_weaknesses"`
	BNBEcosystemFit    int      `json:"bnb_ecosystem_fit"`
	Recommendations    []string `json:"recommendations"`
	ComparableProjects []string `json:"comparable_projects"`
}

const (
	strengthThreshold      = 70
	weaknessThreshold      = 50
	recommendationCeiling  = 60
	maxOutcomeListLen      = 3
	minSuccessProbability  = 5
	maxSuccessProbability  = 95
	minBreakEvenMonths     = 3
	breakEvenBaseMonths    = 36.0
	breakEvenMonthsPerUnit = 0.3
)

var recommendationByCategory = [numCategories]string{
	CategoryTokenomics:      "Rework token utility and vesting so supply pressure matches real demand.",
	CategoryCommunity:       "Invest in genuine community programs such as grants, AMAs and governance.",
	CategoryTechnology:      "Harden the product with audits and a steady release cadence.",
	CategoryPartnerships:    "Pursue integrations with established BNB Chain protocols.",
	CategoryMarketing:       "Sharpen positioning and run education-led campaigns in the ecosystem.",
	CategoryLegalCompliance: "Obtain legal counsel and add compliance controls before scaling.",
	CategoryBNBIntegration:  "Deepen BNB Chain integration: deploy natively and join ecosystem programs.",
	CategoryDeFiReadiness:   "Make the token composable with BNB Chain DeFi: liquidity pools and lending markets.",
}

const scalingRecommendation = "Fundamentals are balanced; focus on scaling users and cross-protocol integrations."

// SuccessBonus is the BNB-integration tier bonus added to overall.
func SuccessBonus(bnbIntegration int) int {
	switch {
	case bnbIntegration > 80:
		return 15
	case bnbIntegration > 60:
		return 10
	default:
		return 5
	}
}

func SuccessProbability(score ScoreVector) int {
	p := score.Overall() + SuccessBonus(score.Get(CategoryBNBIntegration))
	return clampInt(p, minSuccessProbability, maxSuccessProbability)
}

// PredictedValuation scales the project type's base valuation by the mean of
// overall and bnb_integration, where a mean of 50 yields the base valuation.
func PredictedValuation(t ProjectType, score ScoreVector) decimal.Decimal {
	info, ok := projectTypes[t]
	if !ok {
		return decimal.Zero
	}
	sum := decimal.NewFromInt(int64(score.Overall() + score.Get(CategoryBNBIntegration)))
	return info.BaseValuation.Mul(sum).Div(decimal.NewFromInt(100))
}

func FormatMarketCap(v decimal.Decimal) string {
	billion := decimal.NewFromInt(1_000_000_000)
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)
	switch {
	case v.GreaterThanOrEqual(billion):
		return "$" + v.Div(billion).StringFixed(2) + "B"
	case v.GreaterThanOrEqual(million):
		return "$" + v.Div(million).StringFixed(2) + "M"
	case v.GreaterThanOrEqual(thousand):
		return "$" + v.Div(thousand).StringFixed(0) + "K"
	default:
		return "$" + v.StringFixed(0)
	}
}

func BreakEvenMonths(overall int) int {
	m := int(math.Round(breakEvenBaseMonths - breakEvenMonthsPerUnit*float64(overall)))
	if m < minBreakEvenMonths {
		return minBreakEvenMonths
	}
	return m
}

// EcosystemFit blends bnb_integration with the mean BNB relevance of the
// options chosen during the session.
func EcosystemFit(score ScoreVector, decisions []DecisionRecord) int {
	bnb := float64(score.Get(CategoryBNBIntegration))
	relevance := bnb
	total, n := 0, 0
	for _, rec := range decisions {
		_, opt, err := FindOption(rec.DecisionID, rec.OptionID)
		if err != nil {
			continue
		}
		total += opt.BNBRelevance
		n++
	}
	if n > 0 {
		relevance = float64(total) / float64(n)
	}
	return clampInt(int(math.Round(0.7*bnb+0.3*relevance)), minScore, maxScore)
}

type categoryScore struct {
	cat   Category
	value int
}

func rankedCategories(score ScoreVector, desc bool) []categoryScore {
	out := make([]categoryScore, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, categoryScore{cat: c, value: score.Get(c)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].value > out[j].value
		}
		return out[i].value < out[j].value
	})
	return out
}

func Strengths(score ScoreVector) []string {
	out := []string{}
	for _, cs := range rankedCategories(score, true) {
		if cs.value < strengthThreshold || len(out) == maxOutcomeListLen {
			break
		}
		out = append(out, fmt.Sprintf("%s (%d/100)", cs.cat.Label(), cs.value))
	}
	return out
}

func Weaknesses(score ScoreVector) []string {
	out := []string{}
	for _, cs := range rankedCategories(score, false) {
		if cs.value >= weaknessThreshold || len(out) == maxOutcomeListLen {
			break
		}
		out = append(out, fmt.Sprintf("%s (%d/100)", cs.cat.Label(), cs.value))
	}
	return out
}

func Recommendations(score ScoreVector) []string {
	out := []string{}
	for _, cs := range rankedCategories(score, false) {
		if cs.value >= recommendationCeiling || len(out) == maxOutcomeListLen {
			break
		}
		out = append(out, recommendationByCategory[cs.cat])
	}
	if len(out) == 0 {
		out = append(out, scalingRecommendation)
	}
	return out
}

// ComputeOutcome derives the final report from the final score vector.
func ComputeOutcome(t ProjectType, score ScoreVector, decisions []DecisionRecord) Outcome {
	var comparables []string
	if info, ok := LookupProjectType(t); ok {
		comparables = info.ComparableProjects
	}
	if comparables == nil {
		comparables = []string{}
	}
	return Outcome{
		SuccessProbability: SuccessProbability(score),
		PredictedMarketCap: FormatMarketCap(PredictedValuation(t, score)),
		TimeToBreakEven:    fmt.Sprintf("%d months", BreakEvenMonths(score.Overall())),
		MainStrengths:      Strengths(score),
		MainWeaknesses:     Weaknesses(score),
		BNBEcosystemFit:    EcosystemFit(score, decisions),
		Recommendations:    Recommendations(score),
		ComparableProjects: comparables,
	}
}
