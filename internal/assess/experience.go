package assess

import (
	"regexp"
	"strconv"
	"time"

	"github.com/jonathan/resume-compat/internal/types"
)

// yearsPattern matches explicit experience requirements like "5+ years" or
// "3 years".
var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)

// overallArea is the experience area used when the job states a single
// overall requirement rather than per-area ones.
const overallArea = "overall"

// requiredYears extracts an explicit years requirement from the job
// description, falling back to the configured per-level expectation.
func requiredYears(description string, level types.RoleLevel, byLevel map[string]float64) float64 {
	if m := yearsPattern.FindStringSubmatch(description); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			return float64(years)
		}
	}
	return byLevel[string(level)]
}

// totalYearsOfExperience sums the duration of all work-history ranges.
// Entries without a start date are skipped; an empty end date means the
// role is ongoing and is measured up to now.
func totalYearsOfExperience(entries []types.WorkExperience, now time.Time) float64 {
	const hoursPerYear = 24 * 365.25

	total := 0.0
	for _, entry := range entries {
		start, err := time.Parse("2006-01", entry.StartDate)
		if err != nil {
			continue
		}

		end := now
		if entry.EndDate != "" {
			if parsed, err := time.Parse("2006-01", entry.EndDate); err == nil {
				end = parsed
			}
		}
		if end.Before(start) {
			continue
		}

		total += end.Sub(start).Hours() / hoursPerYear
	}

	return total
}
