package assess

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-compat/internal/config"
	"github.com/jonathan/resume-compat/internal/types"
)

// Suggestion types surfaced to the consumer.
const (
	suggestionMissingSkills      = "missing_critical_skills"
	suggestionSkillGap           = "skill_gap"
	suggestionRoleMismatch       = "role_mismatch"
	suggestionExperienceMismatch = "experience_mismatch"
	suggestionDataQuality        = "data_quality"
)

// lowCompletenessThreshold triggers the data-quality hint.
const lowCompletenessThreshold = 0.7

// buildSuggestions assembles the feedback list. Missing critical skills
// beyond the configured maximum are blocking; role and experience
// mismatches are warnings; the rest is informational.
func buildSuggestions(
	cfg config.Config,
	skills types.SkillMatchResult,
	experience types.ExperienceMatchResult,
	roleMismatch bool,
	completeness float64,
) []types.Suggestion {
	var suggestions []types.Suggestion

	if len(skills.MissingCritical) > cfg.MaxMissingCriticalSkills {
		suggestions = append(suggestions, types.Suggestion{
			Type:     suggestionMissingSkills,
			Severity: types.SeverityBlocking,
			Message: fmt.Sprintf("missing %d critical skills (maximum tolerated is %d): %s",
				len(skills.MissingCritical), cfg.MaxMissingCriticalSkills,
				strings.Join(skills.MissingCritical, ", ")),
		})
	} else if len(skills.MissingCritical) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:     suggestionSkillGap,
			Severity: types.SeverityInfo,
			Message: fmt.Sprintf("missing skills: %s",
				strings.Join(skills.MissingCritical, ", ")),
		})
	}

	if len(skills.Suggestions) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:     suggestionSkillGap,
			Severity: types.SeverityInfo,
			Message: fmt.Sprintf("consider learning related technologies: %s",
				strings.Join(skills.Suggestions, ", ")),
		})
	}

	if roleMismatch {
		suggestions = append(suggestions, types.Suggestion{
			Type:     suggestionRoleMismatch,
			Severity: types.SeverityWarning,
			Message:  "the resume's technical profile does not match the role type",
		})
	}

	for _, rec := range experience.Recommendations {
		suggestions = append(suggestions, types.Suggestion{
			Type:     suggestionExperienceMismatch,
			Severity: types.SeverityWarning,
			Message:  rec,
		})
	}

	if completeness < lowCompletenessThreshold {
		suggestions = append(suggestions, types.Suggestion{
			Type:     suggestionDataQuality,
			Severity: types.SeverityInfo,
			Message:  "the resume is missing optional sections; completing them improves assessment confidence",
		})
	}

	return suggestions
}
