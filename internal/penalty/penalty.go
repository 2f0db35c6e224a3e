// Package penalty computes scalar deductions for detected mismatch
// categories. Both calculators are pure functions of their inputs and
// return a normalized deduction in [0,1].
package penalty

import (
	"github.com/jonathan/resume-compat/internal/density"
	"github.com/jonathan/resume-compat/internal/types"
)

// lowDensityThreshold marks a resume as suspiciously non-technical for an
// explicitly technical role.
const lowDensityThreshold = 0.3

// technicalAmplifier scales the extra deduction applied when a strongly
// technical role meets a low-density resume.
const technicalAmplifier = 1.5

// experienceWeights scale the experience deficit by role level: senior
// tracks are held to their stated requirements more strictly.
var experienceWeights = map[types.RoleLevel]float64{
	types.LevelJunior:    0.15,
	types.LevelMid:       0.25,
	types.LevelSenior:    0.4,
	types.LevelLead:      0.45,
	types.LevelExecutive: 0.5,
}

// TechnicalMismatch derives a deduction from the gap between the job
// description's technical density and the resume's. The gap is amplified
// when the title names a technical role but the resume shows little
// technical vocabulary. A resume at least as dense as the job yields 0.
func TechnicalMismatch(role density.RoleCheck, jobDensity, resumeDensity float64) float64 {
	gap := jobDensity - resumeDensity
	if gap < 0 {
		gap = 0
	}

	deduction := gap
	if role.IsTechnical && resumeDensity < lowDensityThreshold {
		deduction += role.Confidence * (lowDensityThreshold - resumeDensity) * technicalAmplifier
	}

	return clamp01(deduction)
}

// ExperienceMismatch derives a deduction from experience shortfalls,
// weighted more heavily for senior, lead and executive roles. A perfect
// experience score yields 0 regardless of level.
func ExperienceMismatch(level types.RoleLevel, experience types.ExperienceMatchResult) float64 {
	deficit := 1 - experience.Score
	if deficit <= 0 {
		return 0
	}

	weight, ok := experienceWeights[level]
	if !ok {
		weight = experienceWeights[types.LevelMid]
	}

	return clamp01(deficit * weight)
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
