package assess

import (
	"github.com/jonathan/resume-compat/internal/density"
	"github.com/jonathan/resume-compat/internal/types"
)

// concreteSkillCategories are the density categories whose matched terms
// count as required skills when extracted from a job description. Concept
// and role-indicator terms are too broad to demand as named skills.
var concreteSkillCategories = []string{
	density.CategoryLanguages,
	density.CategoryFrameworks,
	density.CategoryDatabases,
	density.CategoryCloudDevops,
}

// extractJobSkills pulls required skill names out of the job description
// using the technical term vocabulary. Order follows the vocabulary's
// category order, so extraction is deterministic.
func extractJobSkills(result types.TechnicalDensityResult) []string {
	seen := make(map[string]bool)
	var skills []string

	for _, category := range concreteSkillCategories {
		for _, term := range result.CategoryScores[category].Matches {
			if seen[term] {
				continue
			}
			seen[term] = true
			skills = append(skills, term)
		}
	}

	return skills
}
