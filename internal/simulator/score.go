package simulator

import (
	"encoding/json"
	"fmt"
	"math"
)

// Category is one of the scored dimensions of a simulated project.
type Category int

const (
	CategoryTokenomics Category = iota
	CategoryCommunity
	CategoryTechnology
	CategoryPartnerships
	CategoryMarketing
	CategoryLegalCompliance
	CategoryBNBIntegration
	CategoryDeFiReadiness

	numCategories
)

var categoryKeys = [numCategories]string{
	CategoryTokenomics:      "tokenomics",
	CategoryCommunity:       "community",
	CategoryTechnology:      "technology",
	CategoryPartnerships:    "partnerships",
	CategoryMarketing:       "marketing",
	CategoryLegalCompliance: "legal_compliance",
	CategoryBNBIntegration:  "bnb_integration",
	CategoryDeFiReadiness:   "defi_readiness",
}

var categoryLabels = [numCategories]string{
	CategoryTokenomics:      "Tokenomics",
	CategoryCommunity:       "Community",
	CategoryTechnology:      "Technology",
	CategoryPartnerships:    "Partnerships",
	CategoryMarketing:       "Marketing",
	CategoryLegalCompliance: "Legal & compliance",
	CategoryBNBIntegration:  "BNB Chain integration",
	CategoryDeFiReadiness:   "DeFi readiness",
}

// categoryWeights sum to 1.0; bnb_integration carries the most weight.
var categoryWeights = [numCategories]float64{
	CategoryTokenomics:      0.15,
	CategoryCommunity:       0.12,
	CategoryTechnology:      0.15,
	CategoryPartnerships:    0.10,
	CategoryMarketing:       0.10,
	CategoryLegalCompliance: 0.08,
	CategoryBNBIntegration:  0.20,
	CategoryDeFiReadiness:   0.10,
}

func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

func (c Category) Valid() bool { return c >= 0 && c < numCategories }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryKeys[c]
}

func (c Category) Label() string {
	if !c.Valid() {
		return c.String()
	}
	return categoryLabels[c]
}

func (c Category) Weight() float64 {
	if !c.Valid() {
		return 0
	}
	return categoryWeights[c]
}

func ParseCategory(raw string) (Category, bool) {
	for c := Category(0); c < numCategories; c++ {
		if categoryKeys[c] == raw {
			return c, true
		}
	}
	return -1, false
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(categoryKeys[c]), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, ok := ParseCategory(string(b))
	if !ok {
		return fmt.Errorf("unknown category %q", string(b))
	}
	*c = parsed
	return nil
}

const (
	minScore = 0
	maxScore = 100
)

// ScoreVector holds the per-category scores of a project. Overall and
// RiskAssessment are derived and only ever written by Recompute.
type ScoreVector struct {
	values         [numCategories]int
	overall        int
	riskAssessment int
}

// InitialVector is the starting score of every new session.
func InitialVector() ScoreVector {
	var v ScoreVector
	for c := range v.values {
		v.values[c] = 50
	}
	v.values[CategoryBNBIntegration] = 60
	return Recompute(v)
}

// NewScoreVector builds a vector from explicit category values, clamping each
// into [0,100].
func NewScoreVector(values map[Category]int) ScoreVector {
	var v ScoreVector
	for c, val := range values {
		if c.Valid() {
			v.values[c] = clampInt(val, minScore, maxScore)
		}
	}
	return Recompute(v)
}

func (v ScoreVector) Get(c Category) int {
	if !c.Valid() {
		return 0
	}
	return v.values[c]
}

func (v ScoreVector) Overall() int        { return v.overall }
func (v ScoreVector) RiskAssessment() int { return v.riskAssessment }

// ApplyImpacts returns a copy of v with every impact added to its category and
// clamped into [0,100]. Unknown categories are ignored.
func ApplyImpacts(v ScoreVector, impacts []Impact) ScoreVector {
	out := v
	for _, imp := range impacts {
		if !imp.Area.Valid() {
			continue
		}
		out.values[imp.Area] = clampInt(out.values[imp.Area]+imp.Value, minScore, maxScore)
	}
	return Recompute(out)
}

// Recompute re-derives overall and risk_assessment from the category values.
func Recompute(v ScoreVector) ScoreVector {
	v.overall = weightedOverall(v.values)
	v.riskAssessment = clampInt(int(math.Round(100-stdDev(v.values))), minScore, maxScore)
	return v
}

func weightedOverall(values [numCategories]int) int {
	sum := 0.0
	for c, val := range values {
		sum += float64(val) * categoryWeights[c]
	}
	return int(math.Round(sum))
}

// stdDev is the population standard deviation of the category values.
func stdDev(values [numCategories]int) float64 {
	mean := 0.0
	for _, val := range values {
		mean += float64(val)
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, val := range values {
		d := float64(val) - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(values)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MarshalJSON writes the flat current_score record shape.
func (v ScoreVector) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, numCategories+2)
	for c := Category(0); c < numCategories; c++ {
		m[categoryKeys[c]] = v.values[c]
	}
	m["overall"] = v.overall
	m["risk_assessment"] = v.riskAssessment
	return json.Marshal(m)
}

// UnmarshalJSON reads the flat record shape. Stored derived fields are
// discarded and recomputed.
func (v *ScoreVector) UnmarshalJSON(b []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	var out ScoreVector
	for c := Category(0); c < numCategories; c++ {
		if val, ok := m[categoryKeys[c]]; ok {
			out.values[c] = clampInt(int(math.Round(val)), minScore, maxScore)
		}
	}
	*v = Recompute(out)
	return nil
}
