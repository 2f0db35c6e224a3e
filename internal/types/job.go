// Package types defines the value objects shared across the compatibility
// assessment pipeline. All types here are plain data: they are created once
// per assessment call and never mutated afterwards.
package types

// JobPosting is the target job a resume is assessed against.
// Title and Company are required; Description may be empty.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description,omitempty"`
}

// RoleCategory is the coarse classification of a job.
type RoleCategory string

// Role categories in declaration order; ties in keyword counts are broken
// by this order (TECHNICAL wins over MANAGEMENT wins over CREATIVE).
const (
	CategoryTechnical  RoleCategory = "TECHNICAL"
	CategoryManagement RoleCategory = "MANAGEMENT"
	CategoryCreative   RoleCategory = "CREATIVE"
	CategoryGeneral    RoleCategory = "GENERAL"
)

// RoleLevel is the seniority level detected from a job title.
type RoleLevel string

// Role levels from most junior to most senior.
const (
	LevelJunior    RoleLevel = "JUNIOR"
	LevelMid       RoleLevel = "MID"
	LevelSenior    RoleLevel = "SENIOR"
	LevelLead      RoleLevel = "LEAD"
	LevelExecutive RoleLevel = "EXECUTIVE"
)

// IsSeniorTrack reports whether the level carries elevated experience
// expectations for penalty weighting.
func (l RoleLevel) IsSeniorTrack() bool {
	switch l {
	case LevelSenior, LevelLead, LevelExecutive:
		return true
	}
	return false
}

// JobClassification is the result of categorizing a job title and description.
type JobClassification struct {
	Category        RoleCategory `json:"category"`
	Level           RoleLevel    `json:"level"`
	Confidence      float64      `json:"confidence"` // 0-1
	MatchedKeywords []string     `json:"matched_keywords,omitempty"`
	SuggestedSkills []string     `json:"suggested_skills,omitempty"`
}
