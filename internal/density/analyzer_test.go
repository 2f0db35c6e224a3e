package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_EmptyText(t *testing.T) {
	result := Analyze("")
	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.Matches)

	result = Analyze("   \n\t ")
	assert.Equal(t, 0.0, result.Score)
}

func TestAnalyze_ScoreInRange(t *testing.T) {
	texts := []string{
		"hello world",
		"React Node.js AWS PostgreSQL Docker Kubernetes Terraform Python Go Java",
		"We are looking for a software engineer with microservices, graphql, redis, mongodb, elasticsearch, jenkins, helm, prometheus, grafana, nginx, linux, lambda, django, flask, rails, laravel, swift, kotlin, scala, rust experience",
	}
	for _, text := range texts {
		result := Analyze(text)
		assert.GreaterOrEqual(t, result.Score, 0.0, text)
		assert.LessOrEqual(t, result.Score, 1.0, text)
	}
}

func TestAnalyze_MatchReasons(t *testing.T) {
	result := Analyze("Built services with React and distributed systems design")

	reasons := make(map[string]string)
	for _, m := range result.Matches {
		reasons[m.Term] = m.Reason
	}

	require.Contains(t, reasons, "react")
	require.Contains(t, reasons, "distributed systems")
}

func TestAnalyze_MultiWordOrderIndependent(t *testing.T) {
	// "systems distributed" still matches "distributed systems": every word
	// of the term is present as a token.
	result := Analyze("systems that are distributed")

	found := false
	for _, m := range result.Matches {
		if m.Term == "distributed systems" {
			found = true
			assert.Equal(t, reasonAllWords, m.Reason)
		}
	}
	assert.True(t, found)
}

func TestAnalyze_CategoryScores(t *testing.T) {
	result := Analyze("Python and Go services on PostgreSQL")

	langs := result.CategoryScores[CategoryLanguages]
	assert.Greater(t, langs.Score, 0.0)
	assert.Contains(t, langs.Matches, "python")
	assert.Contains(t, langs.Matches, "go")

	dbs := result.CategoryScores[CategoryDatabases]
	assert.Contains(t, dbs.Matches, "postgresql")
}

func TestAnalyzeWeighted_ConfidenceTiers(t *testing.T) {
	result := AnalyzeWeighted("Migrating to java and a fintech ledger")

	confidences := make(map[string]float64)
	for _, m := range result.Matches {
		confidences[m.Term] = m.Confidence
	}

	// industry-specific terms carry the lower confidence tier
	assert.Equal(t, confidenceIndustry, confidences["fintech"])
	assert.Equal(t, 1.0, confidences["java"])
}

func TestAnalyzeWeighted_PartialOverlap(t *testing.T) {
	// "payment" alone gives partial credit on "payment processing"
	result := AnalyzeWeighted("experience with payment flows")

	var partial float64
	for _, m := range result.Matches {
		if m.Term == "payment processing" {
			partial = m.Confidence
		}
	}
	require.Greater(t, partial, 0.0)
	assert.GreaterOrEqual(t, partial, 0.3)
	assert.LessOrEqual(t, partial, 0.7)
}

func TestAnalyzeWeighted_EmptyText(t *testing.T) {
	result := AnalyzeWeighted("")
	assert.Equal(t, 0.0, result.Score)
}

func TestIsTechnicalRole_ExactKeyword(t *testing.T) {
	check := IsTechnicalRole("Senior Software Engineer")
	assert.True(t, check.IsTechnical)
	assert.Equal(t, 1.0, check.Confidence)
}

func TestIsTechnicalRole_GenericIndicators(t *testing.T) {
	// "developer" and "technical" are indicators without an exact keyword
	check := IsTechnicalRole("Technical Developer Advocate")
	assert.True(t, check.IsTechnical)
	assert.LessOrEqual(t, check.Confidence, 0.8)

	// single weak indicator stays below the threshold
	check = IsTechnicalRole("Developer Relations")
	assert.False(t, check.IsTechnical)
}

func TestIsTechnicalRole_NonTechnical(t *testing.T) {
	check := IsTechnicalRole("Product Manager")
	assert.False(t, check.IsTechnical)
	assert.Equal(t, 0.0, check.Confidence)

	check = IsTechnicalRole("")
	assert.False(t, check.IsTechnical)
}

func TestTokenize_PreservesTechPunctuation(t *testing.T) {
	tokens := Tokenize("C++ and C# with ci/cd on node.js")
	assert.True(t, tokens["c++"])
	assert.True(t, tokens["c#"])
	assert.True(t, tokens["ci/cd"])
	assert.True(t, tokens["node.js"])
}
