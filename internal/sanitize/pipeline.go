// Package sanitize cleans and validates raw resume input before it reaches
// the matchers. The pipeline runs six ordered stages: field normalization,
// experience normalization, skill splitting, completeness validation,
// quality scoring and consistency scoring. Local problems become warnings;
// only missing required fields produce errors that block assessment.
package sanitize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-compat/internal/types"
)

// Stage names, recorded in SanitizationMetadata in execution order.
const (
	StageNormalizeFields      = "normalize_fields"
	StageNormalizeExperience  = "normalize_experience"
	StageSplitSkills          = "split_skills"
	StageValidateCompleteness = "validate_completeness"
	StageScoreQuality         = "score_quality"
	StageScoreConsistency     = "score_consistency"
)

// Sanitizer runs the pipeline. Safe for concurrent use; it holds no
// per-call state.
type Sanitizer struct {
	logger   *zap.Logger
	validate *validator.Validate
}

// New creates a Sanitizer. A nil logger disables logging.
func New(logger *zap.Logger) *Sanitizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sanitizer{
		logger:   logger,
		validate: validator.New(),
	}
}

// Sanitize runs all six stages over the raw resume. It never returns a Go
// error: hard problems (missing name fields) land in the result's Errors
// slice, everything else becomes a warning. Running it again on its own
// output yields identical data and no new normalization warnings.
func (s *Sanitizer) Sanitize(raw types.RawResume) types.SanitizationResult {
	result := types.SanitizationResult{}

	// (a) normalize personal string fields
	result.Data.FirstName = cleanString(raw.FirstName)
	result.Data.LastName = cleanString(raw.LastName)
	result.Data.Email = cleanString(raw.Email)
	result.Data.Phone = cleanString(raw.Phone)
	result.Data.Summary = cleanString(raw.Summary)
	result.Metadata.StagesRun = append(result.Metadata.StagesRun, StageNormalizeFields)

	// (b) normalize experience entries
	result.Data.Experience = s.sanitizeExperience(raw.Experience, &result)
	result.Metadata.StagesRun = append(result.Metadata.StagesRun, StageNormalizeExperience)

	// (c) split, trim and dedupe the skills string
	result.Data.Skills = splitSkills(raw.Skills)
	result.Metadata.StagesRun = append(result.Metadata.StagesRun, StageSplitSkills)

	// (d) completeness validation
	result.Metrics.Completeness = s.validateCompleteness(&result)
	result.Metadata.StagesRun = append(result.Metadata.StagesRun, StageValidateCompleteness)

	// (e) quality scoring
	result.Metrics.Quality = scoreQuality(result.Data)
	result.Metadata.StagesRun = append(result.Metadata.StagesRun, StageScoreQuality)

	// (f) consistency scoring
	consistency, issues := scoreConsistency(result.Data)
	result.Metrics.Consistency = consistency
	result.Warnings = append(result.Warnings, issues...)
	result.Metadata.StagesRun = append(result.Metadata.StagesRun, StageScoreConsistency)

	return result
}

// sanitizeExperience cleans every work-history entry. Unparsable dates are
// logged and replaced with an empty string; they never abort the pipeline.
func (s *Sanitizer) sanitizeExperience(entries []types.RawishExperience, result *types.SanitizationResult) []types.WorkExperience {
	if len(entries) == 0 {
		return nil
	}

	cleaned := make([]types.WorkExperience, 0, len(entries))
	for i, entry := range entries {
		exp := types.WorkExperience{
			Title:       cleanString(entry.Title),
			Company:     cleanString(entry.Company),
			Description: cleanString(entry.Description),
		}

		var ok bool
		if exp.StartDate, ok = NormalizeDate(entry.StartDate); !ok {
			s.logger.Warn("unparsable start date",
				zap.Int("entry", i),
				zap.String("value", entry.StartDate))
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("experience %d: unparsable start date %q", i, entry.StartDate))
		}
		if exp.EndDate, ok = NormalizeDate(entry.EndDate); !ok {
			s.logger.Warn("unparsable end date",
				zap.Int("entry", i),
				zap.String("value", entry.EndDate))
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("experience %d: unparsable end date %q", i, entry.EndDate))
		}

		for _, achievement := range entry.Achievements {
			if a := cleanString(achievement); a != "" {
				exp.Achievements = append(exp.Achievements, a)
			}
		}

		cleaned = append(cleaned, exp)
	}

	return cleaned
}

// validateCompleteness computes the 0-1 completeness ratio and collects
// hard errors (missing name fields) and soft warnings (missing email or
// experience descriptions).
func (s *Sanitizer) validateCompleteness(result *types.SanitizationResult) float64 {
	data := &result.Data

	if err := s.validate.Struct(data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.Field() {
				case "FirstName":
					result.Errors = append(result.Errors, "missing required field: first name")
				case "LastName":
					result.Errors = append(result.Errors, "missing required field: last name")
				case "Email":
					result.Warnings = append(result.Warnings, "email address is invalid")
				}
			}
		} else {
			result.Errors = append(result.Errors, fmt.Sprintf("resume validation failed: %v", err))
		}
	}

	filled := 0
	total := 0
	count := func(present bool) {
		total++
		if present {
			filled++
		}
	}

	count(data.FirstName != "")
	count(data.LastName != "")
	count(data.Email != "")
	count(data.Phone != "")
	count(data.Summary != "")
	count(len(data.Skills) > 0)
	count(len(data.Experience) > 0)

	if data.Email == "" {
		result.Warnings = append(result.Warnings, "missing email address")
	}
	for i, exp := range data.Experience {
		if exp.Description == "" && len(exp.Achievements) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("experience %d has no description or achievements", i))
		}
	}

	return float64(filled) / float64(total)
}

// splitSkills splits a free-text skill string on commas, semicolons and
// newlines, trims each part and drops duplicates (by normalized form,
// keeping the first spelling).
func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	seen := make(map[string]bool)
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skill := cleanString(part)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, skill)
	}

	if len(skills) == 0 {
		return nil
	}
	return skills
}

// cleanString trims, collapses runs of whitespace to a single space and
// strips control characters.
func cleanString(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		case unicode.IsControl(r):
			// drop
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}

	return strings.TrimRight(b.String(), " ")
}
