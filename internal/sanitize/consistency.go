package sanitize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-compat/internal/skillnorm"
	"github.com/jonathan/resume-compat/internal/types"
)

// Consistency weights and penalties.
const (
	datePenaltyPerIssue = 0.15
	dateWeight          = 0.5
	evidenceWeight      = 0.5
)

// scoreConsistency penalizes overlapping or out-of-order employment ranges
// and skills claimed but never evidenced in any experience text. Returns
// the 0-1 score and human-readable issues for the warnings list.
func scoreConsistency(data types.Resume) (float64, []string) {
	dateScore, issues := dateConsistency(data.Experience)
	evidenceScore := skillEvidence(data.Skills, data.Experience)

	score := dateWeight*dateScore + evidenceWeight*evidenceScore
	return score, issues
}

// dateConsistency checks that ranges are internally ordered (start before
// end) and that entries, sorted by start date, do not overlap. Entries with
// missing dates are skipped rather than penalized.
func dateConsistency(entries []types.WorkExperience) (float64, []string) {
	if len(entries) == 0 {
		return 1.0, nil
	}

	var issues []string
	penalty := 0.0

	type dated struct {
		entry      types.WorkExperience
		start, end int64
		hasEnd     bool
	}

	var ranges []dated
	for _, entry := range entries {
		start, ok := parseCanonical(entry.StartDate)
		if !ok {
			continue
		}
		d := dated{entry: entry, start: start.Unix()}
		if end, ok := parseCanonical(entry.EndDate); ok {
			d.end = end.Unix()
			d.hasEnd = true
			if d.end < d.start {
				penalty += datePenaltyPerIssue
				issues = append(issues, fmt.Sprintf(
					"%s at %s ends before it starts", entry.Title, entry.Company))
			}
		}
		ranges = append(ranges, d)
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })

	for i := 1; i < len(ranges); i++ {
		prev := ranges[i-1]
		if prev.hasEnd && ranges[i].start < prev.end {
			penalty += datePenaltyPerIssue
			issues = append(issues, fmt.Sprintf(
				"%s at %s overlaps the previous role", ranges[i].entry.Title, ranges[i].entry.Company))
		}
	}

	score := 1.0 - penalty
	if score < 0 {
		score = 0
	}
	return score, issues
}

// skillEvidence returns the fraction of claimed skills that appear in at
// least one experience description or achievement. No skills claimed means
// nothing to contradict, which scores 1.
func skillEvidence(skills []string, entries []types.WorkExperience) float64 {
	if len(skills) == 0 {
		return 1.0
	}

	var corpus strings.Builder
	for _, entry := range entries {
		corpus.WriteString(strings.ToLower(entry.Description))
		corpus.WriteString(" ")
		corpus.WriteString(strings.ToLower(entry.Title))
		corpus.WriteString(" ")
		for _, a := range entry.Achievements {
			corpus.WriteString(strings.ToLower(a))
			corpus.WriteString(" ")
		}
	}
	text := corpus.String()
	if text == "" {
		return 0.0
	}

	evidenced := 0
	for _, skill := range skills {
		normalized := skillnorm.Normalize(skill)
		if normalized == "" {
			continue
		}
		if strings.Contains(text, normalized) || strings.Contains(text, strings.ToLower(skill)) {
			evidenced++
		}
	}

	return float64(evidenced) / float64(len(skills))
}
