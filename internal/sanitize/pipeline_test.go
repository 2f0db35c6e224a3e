package sanitize

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-compat/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeRaw() types.RawResume {
	return types.RawResume{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Summary:   "Backend engineer focused on distributed systems.",
		Skills:    "Go, PostgreSQL, Docker, Kubernetes, AWS, Terraform",
		Experience: []types.RawishExperience{
			{
				Title:       "Senior Software Engineer",
				Company:     "Analytical Engines",
				StartDate:   "2019-03",
				EndDate:     "2023-06",
				Description: "Built Go services on PostgreSQL handling 2M requests per day",
				Achievements: []string{
					"Reduced p99 latency by 40% by introducing Redis caching",
					"Led migration to Kubernetes across 30 services",
				},
			},
			{
				Title:       "Software Engineer",
				Company:     "Difference Corp",
				StartDate:   "2016-01",
				EndDate:     "2019-02",
				Description: "Developed AWS infrastructure with Terraform",
			},
		},
	}
}

func TestSanitize_CompleteResume(t *testing.T) {
	s := New(nil)

	result := s.Sanitize(completeRaw())

	assert.True(t, result.OK())
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1.0, result.Metrics.Completeness)
	assert.Greater(t, result.Metrics.Quality, 0.5)
	assert.Greater(t, result.Metrics.Consistency, 0.5)
	assert.Len(t, result.Data.Skills, 6)
}

func TestSanitize_StagesRunInOrder(t *testing.T) {
	s := New(nil)

	result := s.Sanitize(completeRaw())

	assert.Equal(t, []string{
		StageNormalizeFields,
		StageNormalizeExperience,
		StageSplitSkills,
		StageValidateCompleteness,
		StageScoreQuality,
		StageScoreConsistency,
	}, result.Metadata.StagesRun)
}

func TestSanitize_MissingNameIsError(t *testing.T) {
	s := New(nil)
	raw := completeRaw()
	raw.FirstName = ""
	raw.LastName = "  "

	result := s.Sanitize(raw)

	assert.False(t, result.OK())
	assert.Len(t, result.Errors, 2)
}

func TestSanitize_MissingEmailIsWarningOnly(t *testing.T) {
	s := New(nil)
	raw := completeRaw()
	raw.Email = ""

	result := s.Sanitize(raw)

	assert.True(t, result.OK())
	assert.Contains(t, result.Warnings, "missing email address")
	assert.Less(t, result.Metrics.Completeness, 1.0)
}

func TestSanitize_UnparsableDateWarnsNeverFails(t *testing.T) {
	s := New(nil)
	raw := completeRaw()
	raw.Experience[0].StartDate = "once upon a time"

	result := s.Sanitize(raw)

	assert.True(t, result.OK())
	assert.Equal(t, "", result.Data.Experience[0].StartDate)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "unparsable start date") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSanitize_DateFormats(t *testing.T) {
	s := New(nil)
	raw := completeRaw()
	raw.Experience[0].StartDate = "March 2019"
	raw.Experience[0].EndDate = "Present"

	result := s.Sanitize(raw)

	assert.Equal(t, "2019-03", result.Data.Experience[0].StartDate)
	assert.Equal(t, "", result.Data.Experience[0].EndDate)
	assert.Empty(t, result.Warnings)
}

func TestSanitize_SkillsSplitAndDeduped(t *testing.T) {
	s := New(nil)
	raw := completeRaw()
	raw.Skills = " Go ,go,  PostgreSQL ;Docker\nDocker , "

	result := s.Sanitize(raw)

	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, result.Data.Skills)
}

func TestSanitize_WhitespaceCollapsed(t *testing.T) {
	s := New(nil)
	raw := completeRaw()
	raw.FirstName = "  Ada \t Byron  "

	result := s.Sanitize(raw)

	assert.Equal(t, "Ada Byron", result.Data.FirstName)
}

func TestSanitize_Idempotent(t *testing.T) {
	s := New(nil)

	first := s.Sanitize(completeRaw())
	require.True(t, first.OK())

	// Re-run the pipeline on its own output.
	again := s.Sanitize(types.RawResume{
		FirstName:  first.Data.FirstName,
		LastName:   first.Data.LastName,
		Email:      first.Data.Email,
		Phone:      first.Data.Phone,
		Summary:    first.Data.Summary,
		Skills:     strings.Join(first.Data.Skills, ", "),
		Experience: rawFromClean(first.Data.Experience),
	})

	assert.Equal(t, first.Data, again.Data)
	assert.Equal(t, first.Metrics, again.Metrics)
	assert.Empty(t, again.Warnings)
}

func rawFromClean(entries []types.WorkExperience) []types.RawishExperience {
	raw := make([]types.RawishExperience, 0, len(entries))
	for _, e := range entries {
		raw = append(raw, types.RawishExperience{
			Title:        e.Title,
			Company:      e.Company,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Description:  e.Description,
			Achievements: e.Achievements,
		})
	}
	return raw
}

func TestScoreConsistency_OverlappingRanges(t *testing.T) {
	s := New(nil)
	raw := completeRaw()
	raw.Experience[1].EndDate = "2020-06" // overlaps the 2019-03 start of the other role

	result := s.Sanitize(raw)

	assert.Less(t, result.Metrics.Consistency, 1.0)
	assert.NotEmpty(t, result.Warnings)
}

func TestScoreConsistency_EndBeforeStart(t *testing.T) {
	_, issues := dateConsistency([]types.WorkExperience{
		{Title: "Engineer", Company: "X", StartDate: "2020-05", EndDate: "2019-01"},
	})
	assert.Len(t, issues, 1)
}

func TestSkillEvidence_UnevidencedSkillsPenalized(t *testing.T) {
	s := New(nil)
	raw := completeRaw()
	raw.Skills = "Go, Haskell, Prolog, Erlang, Scheme"

	result := s.Sanitize(raw)

	// only Go shows up in the experience text
	assert.Less(t, result.Metrics.Consistency, 0.8)
}

func TestMetricsAlwaysInRange(t *testing.T) {
	s := New(nil)
	inputs := []types.RawResume{
		{},
		completeRaw(),
		{FirstName: "A", LastName: "B", Skills: "x"},
	}
	for _, raw := range inputs {
		result := s.Sanitize(raw)
		for name, v := range map[string]float64{
			"completeness": result.Metrics.Completeness,
			"quality":      result.Metrics.Quality,
			"consistency":  result.Metrics.Consistency,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
	}
}
