// Package scoring implements the championship scoring rules: the weighted
// criterion model judges score against, and the fold that turns persisted
// scores into per-team results.
package scoring

import (
	"fmt"
	"math"
)

// Score domain shared by judges and spectators.
const (
	MinScore = 0.1
	MaxScore = 10.0
)

// Criterion is one judged aspect of a performance with its share of the
// weighted average. Weights across all criteria sum to 1.0.
type Criterion struct {
	Key    string
	Weight float64
}

// Criteria is the fixed judging model, in display order.
var Criteria = []Criterion{
	{Key: "choreography", Weight: 0.45},
	{Key: "technique", Weight: 0.35},
	{Key: "artistry", Weight: 0.15},
	{Key: "overall", Weight: 0.05},
}

// CriterionScore is a single slider value with an optional comment.
// Score is nil while the judge has not touched that slider yet.
type CriterionScore struct {
	Score   *float64 `json:"score"`
	Comment string   `json:"comment"`
}

// CriterionScores carries one entry per criterion. The fields are fixed so
// the set of recognized criteria is checked at compile time rather than
// carried around as a dynamically keyed map.
type CriterionScores struct {
	Choreography CriterionScore `json:"choreography"`
	Technique    CriterionScore `json:"technique"`
	Artistry     CriterionScore `json:"artistry"`
	Overall      CriterionScore `json:"overall"`
}

func (s *CriterionScores) get(key string) CriterionScore {
	switch key {
	case "choreography":
		return s.Choreography
	case "technique":
		return s.Technique
	case "artistry":
		return s.Artistry
	case "overall":
		return s.Overall
	}
	return CriterionScore{}
}

// Validate checks every filled criterion against the score domain.
// Unfilled criteria are fine: judges save incrementally, one slider at a
// time, and the unfilled ones are simply excluded from the average.
func (s *CriterionScores) Validate() error {
	for _, c := range Criteria {
		v := s.get(c.Key).Score
		if v == nil {
			continue
		}
		if *v < MinScore || *v > MaxScore {
			return fmt.Errorf("%s score %.2f is outside [%.1f, %.1f]", c.Key, *v, MinScore, MaxScore)
		}
	}
	return nil
}

// WeightedAverage computes the proportional weighted average over the
// filled criteria: each filled value contributes value×weight, and the
// sum is divided by the sum of the participating weights only. A judge
// who has filled two of four sliders gets an average as if those two
// weights summed to 1.0, so partial saves show a meaningful running
// average instead of one diluted by unfilled criteria.
//
// Returns 0 when no criterion is filled. Callers must Validate first;
// out-of-range values here would silently skew the result.
func (s *CriterionScores) WeightedAverage() float64 {
	var totalWeighted, totalWeight float64
	for _, c := range Criteria {
		v := s.get(c.Key).Score
		if v == nil {
			continue
		}
		totalWeighted += round4(*v * c.Weight)
		totalWeight += c.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return Round2(totalWeighted / totalWeight)
}

// Round2 rounds to 2 decimal places, the display precision for every
// average the service reports.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Each term is rounded to 4 decimals before summing. Kept for exact
// parity with historically stored weighted averages.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
