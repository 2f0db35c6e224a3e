// Package config provides the externally overridable assessment
// configuration. Every threshold and weight the scoring pipeline uses lives
// here; nothing is hardcoded inside the scoring logic itself.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// weightSumTolerance is the allowed deviation of component weights from 1.
const weightSumTolerance = 0.001

// Weights are the component shares of the overall score. They must sum to 1.
type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Context    float64 `json:"context"`
}

// Thresholds are the compatibility level cutoffs on the 0-100 scale.
// A score below Poor is INCOMPATIBLE.
type Thresholds struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Potential float64 `json:"potential"`
	Poor      float64 `json:"poor"`
}

// Config is the single configuration object consumed at assessment time.
// All fields are optional in the JSON file; zero values fall back to
// defaults via MergeWithDefaults.
type Config struct {
	// MinimumViableScore is the 0-100 score under which isCompatible is
	// always false.
	MinimumViableScore float64 `json:"minimum_viable_score,omitempty"`
	// MaxMissingCriticalSkills is the number of missing critical skills
	// tolerated before the assessment blocks generation.
	MaxMissingCriticalSkills int `json:"max_missing_critical_skills,omitempty"`
	// Weights are the component shares of the weighted base score.
	Weights Weights `json:"weights,omitempty"`
	// Thresholds are the compatibility level cutoffs.
	Thresholds Thresholds `json:"thresholds,omitempty"`
	// AdjustmentWeight is the strength of the semantic-similarity
	// adjustment: adjustment = (similarity - 0.5) * 2 * AdjustmentWeight.
	AdjustmentWeight float64 `json:"adjustment_weight,omitempty"`

	// Skill matching knobs.
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty"`
	CompensationFactor  float64 `json:"compensation_factor,omitempty"`
	ContextMultiplier   float64 `json:"context_multiplier,omitempty"`

	// Experience scoring knobs.
	InsufficiencyPenalty float64 `json:"insufficiency_penalty,omitempty"`
	MaxExperienceBonus   float64 `json:"max_experience_bonus,omitempty"`
	SufficiencyThreshold float64 `json:"sufficiency_threshold,omitempty"`
	// RequiredYearsByLevel maps a role level (JUNIOR, MID, SENIOR, LEAD,
	// EXECUTIVE) to the overall years of experience expected when the job
	// text states no explicit requirement.
	RequiredYearsByLevel map[string]float64 `json:"required_years_by_level,omitempty"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		MinimumViableScore:       60,
		MaxMissingCriticalSkills: 2,
		Weights: Weights{
			Skills:     0.35,
			Experience: 0.35,
			Context:    0.30,
		},
		Thresholds: Thresholds{
			Excellent: 85,
			Good:      70,
			Potential: 50,
			Poor:      30,
		},
		AdjustmentWeight:     0.2,
		SimilarityThreshold:  0.8,
		CompensationFactor:   0.9,
		ContextMultiplier:    1.2,
		InsufficiencyPenalty: 0.5,
		MaxExperienceBonus:   0.1,
		SufficiencyThreshold: 0.6,
		RequiredYearsByLevel: map[string]float64{
			"JUNIOR":    0,
			"MID":       2,
			"SENIOR":    5,
			"LEAD":      7,
			"EXECUTIVE": 10,
		},
	}
}

// Load reads a configuration from a JSON file and merges it with defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	merged := cfg.MergeWithDefaults()
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// Validate checks the configuration for internally consistent values.
func (c Config) Validate() error {
	sum := c.Weights.Skills + c.Weights.Experience + c.Weights.Context
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("config error: component weights must sum to 1, got %.3f", sum)
	}

	if c.MinimumViableScore < 0 || c.MinimumViableScore > 100 {
		return fmt.Errorf("config error: minimum_viable_score must be in [0,100]")
	}
	if c.MaxMissingCriticalSkills < 0 {
		return fmt.Errorf("config error: max_missing_critical_skills must be non-negative")
	}

	th := c.Thresholds
	if !(th.Excellent > th.Good && th.Good > th.Potential && th.Potential > th.Poor) {
		return fmt.Errorf("config error: thresholds must be strictly descending")
	}

	if c.AdjustmentWeight < 0 || c.AdjustmentWeight > 1 {
		return fmt.Errorf("config error: adjustment_weight must be in [0,1]")
	}

	return nil
}

// MergeWithDefaults returns a copy with zero fields filled from Default.
// Zero cannot be distinguished from "unset", so a zero value always takes
// the default.
func (c Config) MergeWithDefaults() Config {
	d := Default()
	result := c

	if result.MinimumViableScore == 0 {
		result.MinimumViableScore = d.MinimumViableScore
	}
	if result.MaxMissingCriticalSkills == 0 {
		result.MaxMissingCriticalSkills = d.MaxMissingCriticalSkills
	}
	if result.Weights == (Weights{}) {
		result.Weights = d.Weights
	}
	if result.Thresholds == (Thresholds{}) {
		result.Thresholds = d.Thresholds
	}
	if result.AdjustmentWeight == 0 {
		result.AdjustmentWeight = d.AdjustmentWeight
	}
	if result.SimilarityThreshold == 0 {
		result.SimilarityThreshold = d.SimilarityThreshold
	}
	if result.CompensationFactor == 0 {
		result.CompensationFactor = d.CompensationFactor
	}
	if result.ContextMultiplier == 0 {
		result.ContextMultiplier = d.ContextMultiplier
	}
	if result.InsufficiencyPenalty == 0 {
		result.InsufficiencyPenalty = d.InsufficiencyPenalty
	}
	if result.MaxExperienceBonus == 0 {
		result.MaxExperienceBonus = d.MaxExperienceBonus
	}
	if result.SufficiencyThreshold == 0 {
		result.SufficiencyThreshold = d.SufficiencyThreshold
	}
	if len(result.RequiredYearsByLevel) == 0 {
		result.RequiredYearsByLevel = d.RequiredYearsByLevel
	}

	return result
}
