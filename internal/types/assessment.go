package types

import "time"

// TermMatch records a single technology term recognized in a text.
type TermMatch struct {
	Term       string  `json:"term"`
	Confidence float64 `json:"confidence"` // 0-1
	Reason     string  `json:"reason"`
}

// CategoryDensity is the per-category slice of a density result.
type CategoryDensity struct {
	Score   float64  `json:"score"` // 0-1
	Matches []string `json:"matches,omitempty"`
}

// TechnicalDensityResult measures how technology-dense a text is.
type TechnicalDensityResult struct {
	Score          float64                    `json:"score"` // 0-1
	Matches        []TermMatch                `json:"matches,omitempty"`
	CategoryScores map[string]CategoryDensity `json:"category_scores,omitempty"`
}

// SkillMatchType distinguishes how a required skill was satisfied.
type SkillMatchType string

// Match types.
const (
	MatchDirect  SkillMatchType = "direct"
	MatchRelated SkillMatchType = "related"
)

// SkillMatch is one satisfied job requirement.
type SkillMatch struct {
	Skill      string         `json:"skill"`
	Confidence float64        `json:"confidence"` // 0-1
	MatchType  SkillMatchType `json:"match_type"`
	Context    string         `json:"context,omitempty"`
}

// SkillCompensation records that a required skill was satisfied only through
// a related skill, with the credit factor applied.
type SkillCompensation struct {
	RequiredSkill string  `json:"required_skill"`
	RelatedSkill  string  `json:"related_skill"`
	Factor        float64 `json:"factor"` // 0-1
	Reason        string  `json:"reason"`
}

// SkillMatchResult aggregates skill matching for one (resume, job) pair.
type SkillMatchResult struct {
	Score           float64             `json:"score"` // 0-1
	Matches         []SkillMatch        `json:"matches,omitempty"`
	Compensations   []SkillCompensation `json:"compensations,omitempty"`
	MissingCritical []string            `json:"missing_critical,omitempty"`
	Suggestions     []string            `json:"suggestions,omitempty"`
}

// ExperienceMatch compares required vs actual years in one area.
type ExperienceMatch struct {
	Area      string  `json:"area"`
	Required  float64 `json:"required_years"`
	Actual    float64 `json:"actual_years"`
	Score     float64 `json:"score"`     // 0-1
	Relevance float64 `json:"relevance"` // 0-1
}

// ExperienceMatchResult aggregates experience matching across areas.
type ExperienceMatchResult struct {
	Score           float64           `json:"score"` // 0-1
	Matches         []ExperienceMatch `json:"matches,omitempty"`
	Gaps            []string          `json:"gaps,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
}

// ComponentScore is one weighted component of the overall score.
type ComponentScore struct {
	Score  float64 `json:"score"`  // 0-1
	Weight float64 `json:"weight"` // 0-1, weights across components sum to 1
}

// ContextScore is the context component with the factors that drove it.
type ContextScore struct {
	Score           float64  `json:"score"`
	Weight          float64  `json:"weight"`
	RelevantFactors []string `json:"relevant_factors,omitempty"`
}

// ScoringBreakdown exposes the weighted components behind the overall score.
// All scores here are 0-1; the 0-100 scale exists only on the final
// CompatibilityAssessment.
type ScoringBreakdown struct {
	Overall    float64                `json:"overall"`
	Skills     ComponentScore         `json:"skills"`
	Experience ComponentScore         `json:"experience"`
	Context    ContextScore           `json:"context"`
	SkillsDeta *SkillMatchResult      `json:"skills_detail,omitempty"`
	ExpDetail  *ExperienceMatchResult `json:"experience_detail,omitempty"`
}

// CompatibilityLevel buckets the final score.
type CompatibilityLevel string

// Compatibility levels from best to worst.
const (
	LevelExcellent    CompatibilityLevel = "EXCELLENT"
	LevelGood         CompatibilityLevel = "GOOD"
	LevelPotential    CompatibilityLevel = "POTENTIAL"
	LevelPoor         CompatibilityLevel = "POOR"
	LevelIncompatible CompatibilityLevel = "INCOMPATIBLE"
)

// SuggestionSeverity ranks suggestions by how strongly they should block
// downstream document generation.
type SuggestionSeverity string

// Severities.
const (
	SeverityBlocking SuggestionSeverity = "blocking"
	SeverityWarning  SuggestionSeverity = "warning"
	SeverityInfo     SuggestionSeverity = "info"
)

// Suggestion is one actionable piece of feedback attached to an assessment.
type Suggestion struct {
	Type     string             `json:"type"`
	Message  string             `json:"message"`
	Severity SuggestionSeverity `json:"severity"`
}

// AssessmentMetadata carries diagnostics and provenance for an assessment.
type AssessmentMetadata struct {
	AssessmentID          string    `json:"assessment_id"`
	SkillsMatch           float64   `json:"skills_match"` // 0-1
	MissingCriticalSkills []string  `json:"missing_critical_skills,omitempty"`
	ExperienceMismatch    bool      `json:"experience_mismatch"`
	RoleTypeMismatch      bool      `json:"role_type_mismatch"`
	AssessmentDetails     string    `json:"assessment_details,omitempty"`
	AssessmentTimestamp   time.Time `json:"assessment_timestamp"`
	AssessmentVersion     string    `json:"assessment_version"`
	HasWarnings           bool      `json:"has_warnings"`
	Warnings              []string  `json:"warnings,omitempty"`
}

// CompatibilityAssessment is the final verdict for one (resume, job) pair.
// Instances are immutable once constructed; a retry produces a new one.
type CompatibilityAssessment struct {
	IsCompatible       bool               `json:"is_compatible"`
	CompatibilityScore float64            `json:"compatibility_score"` // 0-100
	Level              CompatibilityLevel `json:"level"`
	Classification     JobClassification  `json:"classification"`
	Breakdown          ScoringBreakdown   `json:"breakdown"`
	Suggestions        []Suggestion       `json:"suggestions,omitempty"`
	Metadata           AssessmentMetadata `json:"metadata"`
}

// HasBlockingSuggestion reports whether any suggestion carries blocking
// severity. Consumers must refuse document generation when true.
func (a *CompatibilityAssessment) HasBlockingSuggestion() bool {
	for _, s := range a.Suggestions {
		if s.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}
