// Package density measures how technology-dense a text is by matching it
// against a static vocabulary of technical terms. Matching 20% of the
// vocabulary saturates the score at 1.0.
package density

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-compat/internal/types"
)

// saturationRatio is the fraction of the vocabulary that must match for the
// density score to reach 1.0.
const saturationRatio = 0.2

// Confidence tiers for the weighted variant.
const (
	confidenceExact    = 1.0
	confidenceVersion  = 0.9
	confidenceIndustry = 0.85
	partialFloor       = 0.3
	partialCeiling     = 0.7
)

// Match reasons recorded on TermMatch entries.
const (
	reasonExactSubstring = "exact substring"
	reasonToken          = "token match"
	reasonAllWords       = "all words present"
	reasonPartialWords   = "partial word overlap"
)

// Tokenize lowercases text and splits it into a token set. Characters that
// commonly appear inside technology names (+ # . /) are kept as part of the
// token so "c++", "c#" and "ci/cd" survive.
func Tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens[w] = true
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '/' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// matchTerm reports whether a term is present in the text and why. Plain
// single-word terms must appear as whole tokens; substring matching would
// let short names like "go" fire inside unrelated words.
func matchTerm(term, textLower string, tokens map[string]bool) (string, bool) {
	words := strings.Fields(term)
	if len(words) > 1 {
		if strings.Contains(textLower, term) {
			return reasonExactSubstring, true
		}
		all := true
		for _, w := range words {
			if !tokens[w] {
				all = false
				break
			}
		}
		if all {
			return reasonAllWords, true
		}
		return "", false
	}

	if tokens[term] {
		return reasonToken, true
	}
	// Punctuated names ("node.js", "ci/cd") can end up glued to neighboring
	// characters in a token; they are distinctive enough for a substring
	// match.
	if strings.ContainsAny(term, "+#./") && strings.Contains(textLower, term) {
		return reasonExactSubstring, true
	}

	return "", false
}

// Analyze measures the technical density of a text. The score is the number
// of unique matched terms over 20% of the vocabulary, clamped to [0,1]; an
// empty text scores 0.
func Analyze(text string) types.TechnicalDensityResult {
	result := types.TechnicalDensityResult{
		CategoryScores: make(map[string]types.CategoryDensity, len(categoryOrder)),
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	textLower := strings.ToLower(text)
	tokens := Tokenize(text)

	matched := make(map[string]bool)
	for _, category := range categoryOrder {
		terms := termCategories[category]
		var catMatches []string
		for _, term := range terms {
			reason, ok := matchTerm(term, textLower, tokens)
			if !ok {
				continue
			}
			catMatches = append(catMatches, term)
			if !matched[term] {
				matched[term] = true
				result.Matches = append(result.Matches, types.TermMatch{
					Term:       term,
					Confidence: 1.0,
					Reason:     reason,
				})
			}
		}

		catScore := 0.0
		if len(terms) > 0 {
			catScore = clamp01(float64(len(catMatches)) / float64(len(terms)))
		}
		result.CategoryScores[category] = types.CategoryDensity{
			Score:   catScore,
			Matches: catMatches,
		}
	}

	result.Score = clamp01(float64(len(matched)) / (float64(vocabularySize()) * saturationRatio))
	return result
}

// AnalyzeWeighted is the confidence-weighted variant: each term contributes
// its confidence instead of a flat 1, and only terms with confidence > 0
// count toward the aggregate.
func AnalyzeWeighted(text string) types.TechnicalDensityResult {
	result := types.TechnicalDensityResult{
		CategoryScores: make(map[string]types.CategoryDensity, len(categoryOrder)),
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	textLower := strings.ToLower(text)
	tokens := Tokenize(text)

	seen := make(map[string]bool)
	totalConfidence := 0.0
	for _, category := range categoryOrder {
		terms := termCategories[category]
		var catMatches []string
		catConfidence := 0.0

		for _, term := range terms {
			confidence, reason := weightedTermConfidence(category, term, textLower, tokens)
			if confidence <= 0 {
				continue
			}
			catMatches = append(catMatches, term)
			catConfidence += confidence
			if !seen[term] {
				seen[term] = true
				totalConfidence += confidence
				result.Matches = append(result.Matches, types.TermMatch{
					Term:       term,
					Confidence: confidence,
					Reason:     reason,
				})
			}
		}

		catScore := 0.0
		if len(terms) > 0 {
			catScore = clamp01(catConfidence / float64(len(terms)))
		}
		result.CategoryScores[category] = types.CategoryDensity{
			Score:   catScore,
			Matches: catMatches,
		}
	}

	result.Score = clamp01(totalConfidence / (float64(vocabularySize()) * saturationRatio))
	return result
}

// weightedTermConfidence scores a single term for the weighted variant:
// 1.0 for an exact substring, 0.9 for version-specific matches, 0.85 for
// industry-specific matches, else a partial word-overlap score mapped into
// [0.3, 0.7], else 0.
func weightedTermConfidence(category, term, textLower string, tokens map[string]bool) (float64, string) {
	if reason, ok := matchTerm(term, textLower, tokens); ok {
		switch {
		case reason == reasonExactSubstring:
			return confidenceExact, reason
		case category == CategoryVersionSpecific:
			return confidenceVersion, reason
		case category == CategoryIndustrySpecific:
			return confidenceIndustry, reason
		default:
			return confidenceExact, reason
		}
	}

	// Partial overlap is only meaningful for multi-word terms.
	words := strings.Fields(term)
	if len(words) < 2 {
		return 0, ""
	}
	present := 0
	for _, w := range words {
		if tokens[w] {
			present++
		}
	}
	if present == 0 {
		return 0, ""
	}

	fraction := float64(present) / float64(len(words))
	return partialFloor + (partialCeiling-partialFloor)*fraction, reasonPartialWords
}

// RoleCheck is the result of testing whether a job title names a technical
// role.
type RoleCheck struct {
	IsTechnical bool
	Confidence  float64
}

// technicalRoleThreshold is the confidence above which a role counts as
// technical.
const technicalRoleThreshold = 0.4

// IsTechnicalRole checks a job title against known technical role keywords.
// An exact role keyword yields confidence 1.0; otherwise confidence scales
// with the number of generic technical indicator words, capped at 0.8.
func IsTechnicalRole(title string) RoleCheck {
	titleLower := strings.ToLower(strings.TrimSpace(title))
	if titleLower == "" {
		return RoleCheck{}
	}

	for _, keyword := range technicalRoleKeywords {
		if strings.Contains(titleLower, keyword) {
			return RoleCheck{IsTechnical: true, Confidence: 1.0}
		}
	}

	tokens := Tokenize(titleLower)
	count := 0
	for _, indicator := range genericTechnicalIndicators {
		if tokens[indicator] {
			count++
		}
	}

	confidence := 0.3 * float64(count)
	if confidence > 0.8 {
		confidence = 0.8
	}

	return RoleCheck{
		IsTechnical: confidence > technicalRoleThreshold,
		Confidence:  confidence,
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
