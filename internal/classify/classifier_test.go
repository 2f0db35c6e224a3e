package classify

import (
	"testing"

	"github.com/jonathan/resume-compat/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Technical(t *testing.T) {
	result := Classify("Senior Software Engineer", "Building backend services with React, Node.js and AWS. Full stack work.")

	assert.Equal(t, types.CategoryTechnical, result.Category)
	assert.Greater(t, result.Confidence, 0.0)
	assert.NotEmpty(t, result.MatchedKeywords)
	assert.Contains(t, result.SuggestedSkills, "programming")
	assert.Equal(t, types.LevelSenior, result.Level)
}

func TestClassify_Management(t *testing.T) {
	result := Classify("Product Manager", "")

	assert.Equal(t, types.CategoryManagement, result.Category)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestClassify_Creative(t *testing.T) {
	result := Classify("UX Designer", "Wireframes and prototyping for our design system")

	assert.Equal(t, types.CategoryCreative, result.Category)
}

func TestClassify_NoMatchIsGeneral(t *testing.T) {
	result := Classify("Barista", "Making coffee all day")

	assert.Equal(t, types.CategoryGeneral, result.Category)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.MatchedKeywords)
}

func TestClassify_EmptyInput(t *testing.T) {
	result := Classify("", "")

	assert.Equal(t, types.CategoryGeneral, result.Category)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestClassify_BonusAboveTwoMatches(t *testing.T) {
	// Four technical phrases: backend, frontend, devops, software engineer
	withBonus := Classify("Software Engineer", "backend and frontend work plus devops")
	// One phrase only
	without := Classify("Backend role", "")

	assert.Greater(t, withBonus.Confidence, without.Confidence)
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("Engineering Manager", "Lead a team of backend engineers")
	for i := 0; i < 10; i++ {
		again := Classify("Engineering Manager", "Lead a team of backend engineers")
		assert.Equal(t, first, again)
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	inputs := [][2]string{
		{"Software Engineer", "backend frontend devops full stack data engineer machine learning web developer mobile developer cloud engineer programmer sre architect"},
		{"Product Manager", "director head of chief vp"},
		{"", "nothing relevant here"},
	}
	for _, in := range inputs {
		result := Classify(in[0], in[1])
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
	}
}

func TestDetectLevel(t *testing.T) {
	assert.Equal(t, types.LevelSenior, DetectLevel("Senior Software Engineer"))
	assert.Equal(t, types.LevelLead, DetectLevel("Staff Engineer"))
	assert.Equal(t, types.LevelExecutive, DetectLevel("Director of Engineering"))
	assert.Equal(t, types.LevelJunior, DetectLevel("Junior Developer"))
	assert.Equal(t, types.LevelMid, DetectLevel("Software Engineer"))
	assert.Equal(t, types.LevelMid, DetectLevel(""))
}

func TestDetectLevel_SeniorityOrder(t *testing.T) {
	// Executive keywords win over senior ones
	assert.Equal(t, types.LevelExecutive, DetectLevel("Senior Engineering Director"))
}
