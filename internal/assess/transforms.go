package assess

import (
	"github.com/jonathan/resume-compat/internal/config"
	"github.com/jonathan/resume-compat/internal/types"
)

// The scoring pipeline is an ordered chain of named transforms over a
// single 0-1 score. Each transform documents its range and whether it is
// additive or multiplicative; composition order is fixed in Assess:
//
//	weightedBase -> applyPenalty(technical) -> applyPenalty(experience)
//	  -> applySimilarityAdjustment -> toPercent
//
// The 0-100 scale exists only after toPercent; everything before it stays
// in [0,1].

// weightedBase combines the component scores into the raw overall score.
// Inputs and output are in [0,1]; weights must sum to 1.
func weightedBase(skills, experience, context float64, w config.Weights) float64 {
	return clamp01(skills*w.Skills + experience*w.Experience + context*w.Context)
}

// applyPenalty applies a normalized deduction multiplicatively:
// score * (1 - penalty). Monotonic: a higher penalty never raises the
// score. Both arguments are in [0,1].
func applyPenalty(score, penalty float64) float64 {
	return clamp01(score * (1 - clamp01(penalty)))
}

// applySimilarityAdjustment blends the external semantic-similarity signal
// additively: adjustment = (similarity - 0.5) * 2 * weight, so a neutral
// similarity of 0.5 leaves the score untouched and the adjustment is
// bounded by ±weight.
func applySimilarityAdjustment(score, similarity, weight float64) float64 {
	adjustment := (clamp01(similarity) - 0.5) * 2 * weight
	return clamp01(score + adjustment)
}

// toPercent converts the internal 0-1 score to the external 0-100 scale.
// This is the only place the scale changes.
func toPercent(score float64) float64 {
	return clamp01(score) * 100
}

// levelFor buckets a 0-100 score into a compatibility level using the
// configured cutoffs.
func levelFor(score float64, th config.Thresholds) types.CompatibilityLevel {
	switch {
	case score >= th.Excellent:
		return types.LevelExcellent
	case score >= th.Good:
		return types.LevelGood
	case score >= th.Potential:
		return types.LevelPotential
	case score >= th.Poor:
		return types.LevelPoor
	default:
		return types.LevelIncompatible
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
