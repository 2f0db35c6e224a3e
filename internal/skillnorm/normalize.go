// Package skillnorm canonicalizes skill name variants and measures fuzzy
// similarity between skill strings. All functions are pure and deterministic.
package skillnorm

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultSimilarityThreshold is the minimum normalized similarity for two
// skills to count as the same skill.
const DefaultSimilarityThreshold = 0.8

// Normalize canonicalizes a skill string: lowercase, trim, strip seniority
// prefixes, then resolve known aliases to their canonical form. Unknown
// skills come back lowercased and trimmed.
func Normalize(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if normalized == "" {
		return ""
	}

	normalized = stripSeniorityPrefix(normalized)

	if canonical, ok := aliasGroups[normalized]; ok {
		return canonical
	}
	return normalized
}

// stripSeniorityPrefix removes a leading seniority qualifier, if present.
// Only one prefix is stripped; "senior lead go" keeps "lead go" intact
// through one pass and resolves the remainder on the next.
func stripSeniorityPrefix(s string) string {
	for _, prefix := range seniorityPrefixes {
		if strings.HasPrefix(s, prefix+" ") {
			return strings.TrimSpace(strings.TrimPrefix(s, prefix+" "))
		}
	}
	return s
}

// Similarity returns the normalized similarity between two skill strings in
// [0,1]. Canonical equality or shared alias group scores 1.0; otherwise the
// score is 1 - editDistance/maxLength over the canonical forms.
func Similarity(a, b string) float64 {
	ca := Normalize(a)
	cb := Normalize(b)

	if ca == "" || cb == "" {
		return 0
	}
	if ca == cb {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(ca, cb)
	maxLen := len([]rune(ca))
	if l := len([]rune(cb)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}

	sim := 1.0 - float64(dist)/float64(maxLen)
	if sim < 0 {
		sim = 0
	}
	return sim
}

// AreSimilar reports whether two skills meet the given similarity threshold.
// A threshold <= 0 falls back to DefaultSimilarityThreshold.
func AreSimilar(a, b string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return Similarity(a, b) >= threshold
}

// FindClosestSkill returns the single candidate most similar to skill at or
// above the threshold, and whether one was found. Ties are resolved by the
// first candidate encountered with the highest similarity.
func FindClosestSkill(skill string, candidates []string, threshold float64) (string, bool) {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	best := ""
	bestScore := 0.0
	found := false

	for _, candidate := range candidates {
		score := Similarity(skill, candidate)
		if score >= threshold && score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}

	return best, found
}
