// Package classify categorizes a job title and description into a role
// category and seniority level by keyword overlap. Classification is a pure
// function: same input, same result.
package classify

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-compat/internal/types"
)

// confidenceBonus is added when a category matches more than two keyword
// phrases.
const (
	confidenceBonus = 0.3
	bonusMatchCount = 2
)

// normalizeText lowercases, strips punctuation and collapses whitespace.
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// tokenSet splits normalized text into a word set.
func tokenSet(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, w := range strings.Fields(normalizeText(text)) {
		tokens[w] = true
	}
	return tokens
}

// phraseContained reports whether every word of the phrase is present in
// the token set. This is containment, not substring matching: "head of"
// requires both "head" and "of" as tokens.
func phraseContained(phrase string, tokens map[string]bool) bool {
	words := strings.Fields(normalizeText(phrase))
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !tokens[w] {
			return false
		}
	}
	return true
}

// Classify categorizes a job by title and description. When no category
// keyword matches, the result is GENERAL with confidence 0. Ties are broken
// by category declaration order (TECHNICAL > MANAGEMENT > CREATIVE).
func Classify(title, description string) types.JobClassification {
	tokens := tokenSet(title + " " + description)

	best := types.JobClassification{
		Category: types.CategoryGeneral,
		Level:    DetectLevel(title),
	}
	bestMatches := 0

	for _, profile := range categoryProfiles {
		var matched []string
		for _, keyword := range profile.Keywords {
			if phraseContained(keyword, tokens) {
				matched = append(matched, keyword)
			}
		}

		// Strictly-greater keeps declaration order as the tie-break.
		if len(matched) > bestMatches {
			bestMatches = len(matched)

			confidence := float64(len(matched)) / float64(len(profile.Keywords))
			if len(matched) > bonusMatchCount {
				confidence += confidenceBonus
			}
			if confidence > 1 {
				confidence = 1
			}

			best.Category = profile.Category
			best.Confidence = confidence
			best.MatchedKeywords = matched
			best.SuggestedSkills = profile.RelatedSkills
		}
	}

	return best
}

// DetectLevel infers the seniority level from a job title. Titles with no
// level keyword default to MID.
func DetectLevel(title string) types.RoleLevel {
	tokens := tokenSet(title)

	for _, entry := range levelKeywords {
		for _, word := range entry.Words {
			if phraseContained(word, tokens) {
				return entry.Level
			}
		}
	}

	return types.LevelMid
}
