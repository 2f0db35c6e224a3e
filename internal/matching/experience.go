package matching

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-compat/internal/types"
)

// ExperienceRequirement states how many years of experience a job expects
// in one area, and how much that area matters (relevance 0-1).
type ExperienceRequirement struct {
	Area          string
	RequiredYears float64
	Relevance     float64
}

// ExperienceConfig tunes experience scoring. Zero values use defaults.
type ExperienceConfig struct {
	// InsufficiencyPenalty scales the extra deduction applied in proportion
	// to a shortfall. 0-1.
	InsufficiencyPenalty float64
	// MaxExperienceBonus bounds the overall bonus granted for surplus
	// experience. 0-1.
	MaxExperienceBonus float64
	// SufficiencyThreshold is the per-area score under which the area is
	// reported as a gap.
	SufficiencyThreshold float64
}

// DefaultExperienceConfig returns the default experience scoring knobs.
func DefaultExperienceConfig() ExperienceConfig {
	return ExperienceConfig{
		InsufficiencyPenalty: 0.5,
		MaxExperienceBonus:   0.1,
		SufficiencyThreshold: 0.6,
	}
}

func (c ExperienceConfig) withDefaults() ExperienceConfig {
	d := DefaultExperienceConfig()
	if c.InsufficiencyPenalty <= 0 {
		c.InsufficiencyPenalty = d.InsufficiencyPenalty
	}
	if c.MaxExperienceBonus <= 0 {
		c.MaxExperienceBonus = d.MaxExperienceBonus
	}
	if c.SufficiencyThreshold <= 0 {
		c.SufficiencyThreshold = d.SufficiencyThreshold
	}
	return c
}

// MatchExperience compares required vs actual years per area. The overall
// score is the relevance-weighted mean of area scores plus a bounded bonus
// for areas with surplus experience, clamped to [0,1].
func MatchExperience(requirements []ExperienceRequirement, actual map[string]float64, cfg ExperienceConfig) types.ExperienceMatchResult {
	cfg = cfg.withDefaults()
	result := types.ExperienceMatchResult{}
	if len(requirements) == 0 {
		result.Score = 1.0
		return result
	}

	weightedSum := 0.0
	totalRelevance := 0.0
	surplusRelevance := 0.0

	for _, req := range requirements {
		relevance := req.Relevance
		if relevance <= 0 || relevance > 1 {
			relevance = 1.0
		}

		actualYears := actual[req.Area]
		score := scoreArea(req.RequiredYears, actualYears, relevance, cfg)

		result.Matches = append(result.Matches, types.ExperienceMatch{
			Area:      req.Area,
			Required:  req.RequiredYears,
			Actual:    actualYears,
			Score:     score,
			Relevance: relevance,
		})

		weightedSum += score * relevance
		totalRelevance += relevance
		if req.RequiredYears > 0 && actualYears > req.RequiredYears {
			surplusRelevance += relevance
		}

		if score < cfg.SufficiencyThreshold {
			result.Gaps = append(result.Gaps, req.Area)
			shortfall := req.RequiredYears - actualYears
			if shortfall > 0 {
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("Gain %.1f more years of experience in %s", shortfall, req.Area))
			}
		}
	}

	overall := weightedSum / totalRelevance
	if surplusRelevance > 0 {
		overall += cfg.MaxExperienceBonus * (surplusRelevance / totalRelevance)
	}
	result.Score = clamp01(overall)
	return result
}

// scoreArea scores a single area in [0,1]. Meeting the requirement exactly
// scores 1.0; zero actual years against a positive requirement scores 0.
// Shortfalls are dampened by relevance (low-relevance areas hurt less) and
// further reduced in proportion to the gap.
func scoreArea(required, actualYears, relevance float64, cfg ExperienceConfig) float64 {
	if required <= 0 {
		return 1.0
	}
	ratio := actualYears / required
	if ratio >= 1 {
		return 1.0
	}
	if ratio <= 0 {
		return 0.0
	}

	base := math.Pow(ratio, relevance)
	penalized := base * (1 - cfg.InsufficiencyPenalty*(1-ratio))
	return clamp01(penalized)
}
