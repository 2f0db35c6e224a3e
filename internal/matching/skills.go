// Package matching scores candidate skills and experience against job
// requirements. The skill matcher awards full credit for direct matches and
// partial, compensated credit when the technology map relates a candidate
// skill to the required one.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-compat/internal/skillnorm"
	"github.com/jonathan/resume-compat/internal/techmap"
	"github.com/jonathan/resume-compat/internal/types"
)

// maxSuggestionsPerSkill bounds the "consider learning" hints surfaced per
// missing critical skill.
const maxSuggestionsPerSkill = 3

// Config tunes skill matching. Zero values are replaced by defaults.
type Config struct {
	// BaseWeight scales the final score. 0-1.
	BaseWeight float64
	// ContextMultiplier boosts a matched skill's contribution when its
	// group's context keywords appear in the job text. >= 1.
	ContextMultiplier float64
	// CompensationFactor scales the technology-map compensation applied to
	// related matches. 0-1.
	CompensationFactor float64
	// MinThreshold is the minimum normalized similarity for a direct match.
	MinThreshold float64
}

// DefaultConfig returns the default skill matching configuration.
func DefaultConfig() Config {
	return Config{
		BaseWeight:         1.0,
		ContextMultiplier:  1.2,
		CompensationFactor: 0.9,
		MinThreshold:       skillnorm.DefaultSimilarityThreshold,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BaseWeight <= 0 {
		c.BaseWeight = d.BaseWeight
	}
	if c.ContextMultiplier < 1 {
		c.ContextMultiplier = d.ContextMultiplier
	}
	if c.CompensationFactor <= 0 {
		c.CompensationFactor = d.CompensationFactor
	}
	if c.MinThreshold <= 0 {
		c.MinThreshold = d.MinThreshold
	}
	return c
}

// Matcher scores candidate skills against job-required skills using an
// injected technology registry.
type Matcher struct {
	registry *techmap.Registry
	cfg      Config
}

// NewMatcher creates a skill matcher. A nil registry falls back to the
// default technology map.
func NewMatcher(registry *techmap.Registry, cfg Config) *Matcher {
	if registry == nil {
		registry = techmap.DefaultRegistry()
	}
	return &Matcher{registry: registry, cfg: cfg.withDefaults()}
}

// Match scores candidateSkills against jobSkills. jobText is the free-text
// job description; it only influences the context multiplier and may be
// empty. The score is the mean of per-skill contributions over all required
// skills (unmatched skills contribute 0), scaled by BaseWeight.
func (m *Matcher) Match(jobSkills, candidateSkills []string, jobText string) types.SkillMatchResult {
	result := types.SkillMatchResult{}
	if len(jobSkills) == 0 {
		// No skill requirements to fail; same convention as experience
		// matching with no requirements.
		result.Score = 1.0
		return result
	}

	jobTextLower := strings.ToLower(jobText)
	total := 0.0

	for _, jobSkill := range jobSkills {
		match, compensation, found := m.matchOne(jobSkill, candidateSkills)
		if !found {
			result.MissingCritical = append(result.MissingCritical, jobSkill)
			continue
		}

		contribution := match.Confidence
		if m.contextApplies(jobSkill, jobTextLower) {
			contribution *= m.cfg.ContextMultiplier
			match.Context = "job context keywords present"
		}
		if contribution > 1 {
			contribution = 1
		}
		total += contribution

		result.Matches = append(result.Matches, match)
		if compensation != nil {
			result.Compensations = append(result.Compensations, *compensation)
		}
	}

	result.Score = clamp01(total / float64(len(jobSkills)) * m.cfg.BaseWeight)
	result.Suggestions = m.suggestForMissing(result.MissingCritical)
	return result
}

// matchOne finds the best match for a single required skill. The direct and
// related paths are both evaluated and the higher-confidence one wins, so
// adding candidate skills can never lower a skill's credit.
func (m *Matcher) matchOne(jobSkill string, candidateSkills []string) (types.SkillMatch, *types.SkillCompensation, bool) {
	var best types.SkillMatch
	var bestComp *types.SkillCompensation
	found := false

	// Direct: normalized equality or fuzzy similarity above the threshold.
	if closest, ok := skillnorm.FindClosestSkill(jobSkill, candidateSkills, m.cfg.MinThreshold); ok {
		best = types.SkillMatch{
			Skill:      jobSkill,
			Confidence: skillnorm.Similarity(jobSkill, closest),
			MatchType:  types.MatchDirect,
		}
		found = true
	}

	// Related: a candidate skill sharing the required skill's technology
	// group earns compensated credit.
	for _, candidate := range candidateSkills {
		group, ok := m.registry.GroupSatisfies(jobSkill, candidate)
		if !ok {
			continue
		}
		confidence := group.Compensation * m.cfg.CompensationFactor
		if found && confidence <= best.Confidence {
			continue
		}
		best = types.SkillMatch{
			Skill:      jobSkill,
			Confidence: confidence,
			MatchType:  types.MatchRelated,
		}
		bestComp = &types.SkillCompensation{
			RequiredSkill: jobSkill,
			RelatedSkill:  candidate,
			Factor:        confidence,
			Reason:        fmt.Sprintf("%s belongs to the %s group", candidate, group.Primary),
		}
		found = true
	}

	return best, bestComp, found
}

// contextApplies reports whether the skill's group context keywords appear
// in the job text.
func (m *Matcher) contextApplies(skill, jobTextLower string) bool {
	if jobTextLower == "" {
		return false
	}
	group, _, ok := m.registry.FindGroupForSkill(skill)
	if !ok {
		return false
	}
	for _, keyword := range group.Context {
		if strings.Contains(jobTextLower, keyword) {
			return true
		}
	}
	return false
}

// suggestForMissing surfaces skills from the same technology groups as the
// missing critical skills, deduplicated and capped per skill.
func (m *Matcher) suggestForMissing(missing []string) []string {
	if len(missing) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var suggestions []string
	for _, skill := range missing {
		related := m.registry.RelatedSkills(skill)
		count := 0
		for _, s := range related {
			if count >= maxSuggestionsPerSkill {
				break
			}
			normalized := skillnorm.Normalize(s)
			if seen[normalized] {
				continue
			}
			seen[normalized] = true
			suggestions = append(suggestions, s)
			count++
		}
	}

	sort.Strings(suggestions)
	return suggestions
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
