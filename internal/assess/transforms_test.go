package assess

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-compat/internal/config"
	"github.com/jonathan/resume-compat/internal/density"
	"github.com/jonathan/resume-compat/internal/types"
)

func TestApplySimilarityAdjustment(t *testing.T) {
	// Neutral similarity is a no-op.
	assert.Equal(t, 0.5, applySimilarityAdjustment(0.5, 0.5, 0.2))

	// The adjustment is bounded by ±weight.
	assert.InDelta(t, 0.7, applySimilarityAdjustment(0.5, 1.0, 0.2), 1e-9)
	assert.InDelta(t, 0.3, applySimilarityAdjustment(0.5, 0.0, 0.2), 1e-9)

	// Clamped at the edges.
	assert.Equal(t, 1.0, applySimilarityAdjustment(0.95, 1.0, 0.2))
	assert.Equal(t, 0.0, applySimilarityAdjustment(0.05, 0.0, 0.2))
}

func TestApplyPenalty_Monotonic(t *testing.T) {
	prev := 1.0
	for _, p := range []float64{0.0, 0.1, 0.25, 0.5, 0.9, 1.0} {
		got := applyPenalty(0.8, p)
		assert.LessOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 0.0)
		prev = got
	}

	// Out-of-range penalties are clamped, never amplified.
	assert.Equal(t, 0.8, applyPenalty(0.8, -0.5))
	assert.Equal(t, 0.0, applyPenalty(0.8, 1.5))
}

func TestWeightedBase(t *testing.T) {
	w := config.Weights{Skills: 0.5, Experience: 0.3, Context: 0.2}

	assert.InDelta(t, 1.0, weightedBase(1, 1, 1, w), 1e-9)
	assert.InDelta(t, 0.5, weightedBase(1, 0, 0, w), 1e-9)
	assert.InDelta(t, 0.0, weightedBase(0, 0, 0, w), 1e-9)
}

func TestLevelFor(t *testing.T) {
	th := config.Default().Thresholds

	cases := []struct {
		score float64
		want  types.CompatibilityLevel
	}{
		{100, types.LevelExcellent},
		{85, types.LevelExcellent},
		{84.9, types.LevelGood},
		{70, types.LevelGood},
		{50, types.LevelPotential},
		{30, types.LevelPoor},
		{29.9, types.LevelIncompatible},
		{0, types.LevelIncompatible},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, levelFor(tc.score, th), "score %.1f", tc.score)
	}
}

func TestToPercent(t *testing.T) {
	assert.Equal(t, 0.0, toPercent(-0.3))
	assert.Equal(t, 100.0, toPercent(1.7))
	assert.InDelta(t, 42.0, toPercent(0.42), 1e-9)
}

func TestRequiredYears(t *testing.T) {
	byLevel := config.Default().RequiredYearsByLevel

	// Explicit requirement in the text wins.
	assert.Equal(t, 5.0, requiredYears("5+ years of experience", types.LevelMid, byLevel))
	assert.Equal(t, 3.0, requiredYears("at least 3 years shipping software", types.LevelSenior, byLevel))

	// Fall back to the per-level expectation.
	assert.Equal(t, 5.0, requiredYears("no explicit requirement", types.LevelSenior, byLevel))
	assert.Equal(t, 0.0, requiredYears("", types.LevelJunior, byLevel))
}

func TestTotalYearsOfExperience(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	entries := []types.WorkExperience{
		{StartDate: "2020-01", EndDate: "2022-01"},
		{StartDate: "2022-06"}, // ongoing, measured to now
		{StartDate: "garbage"}, // skipped
		{StartDate: "2023-01", EndDate: "2022-01"}, // inverted, skipped
	}

	total := totalYearsOfExperience(entries, now)
	assert.InDelta(t, 4.0, total, 0.05)
}

func TestExtractJobSkills_Deterministic(t *testing.T) {
	text := "React and Go services on PostgreSQL, deployed with Docker to AWS"
	first := extractJobSkills(density.AnalyzeWeighted(text))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, extractJobSkills(density.AnalyzeWeighted(text)))
	}
	assert.Contains(t, first, "react")
	assert.Contains(t, first, "go")
	assert.Contains(t, first, "postgresql")
	assert.Contains(t, first, "aws")
	assert.Contains(t, first, "docker")
}
