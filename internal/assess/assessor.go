// Package assess orchestrates the compatibility pipeline: sanitize the
// resume, classify the job, score skills, experience and context, apply
// mismatch penalties, blend in the external semantic-similarity signal and
// assemble the final assessment. Each call is stateless and independent;
// the only blocking operation is the similarity call.
package assess

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-compat/internal/classify"
	"github.com/jonathan/resume-compat/internal/config"
	"github.com/jonathan/resume-compat/internal/density"
	"github.com/jonathan/resume-compat/internal/matching"
	"github.com/jonathan/resume-compat/internal/penalty"
	"github.com/jonathan/resume-compat/internal/sanitize"
	"github.com/jonathan/resume-compat/internal/similarity"
	"github.com/jonathan/resume-compat/internal/techmap"
	"github.com/jonathan/resume-compat/internal/types"
)

// assessmentVersion stamps every assessment for downstream compatibility.
const assessmentVersion = "1.0.0"

// lowResumeDensity marks a resume as non-technical when comparing it
// against a technical role classification.
const lowResumeDensity = 0.1

// Assessor runs compatibility assessments. Safe for concurrent use.
type Assessor struct {
	cfg       config.Config
	registry  *techmap.Registry
	sanitizer *sanitize.Sanitizer
	matcher   *matching.Matcher
	provider  similarity.Provider
	logger    *zap.Logger
	now       func() time.Time
}

// New creates an Assessor. A nil registry uses the default technology map,
// a nil provider uses the neutral one and a nil logger disables logging.
func New(cfg config.Config, registry *techmap.Registry, provider similarity.Provider, logger *zap.Logger) *Assessor {
	if registry == nil {
		registry = techmap.DefaultRegistry()
	}
	if provider == nil {
		provider = similarity.Neutral{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Assessor{
		cfg:       cfg,
		registry:  registry,
		sanitizer: sanitize.New(logger),
		matcher: matching.NewMatcher(registry, matching.Config{
			ContextMultiplier:  cfg.ContextMultiplier,
			CompensationFactor: cfg.CompensationFactor,
			MinThreshold:       cfg.SimilarityThreshold,
		}),
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// Assess evaluates how well a resume matches a job. It returns a
// *ValidationError when required input is missing; every other problem is
// absorbed into the assessment itself (degraded signals become metadata
// warnings, never errors).
func (a *Assessor) Assess(ctx context.Context, raw types.RawResume, job types.JobPosting) (*types.CompatibilityAssessment, error) {
	if err := validateJob(job); err != nil {
		return nil, err
	}

	sanitized := a.sanitizer.Sanitize(raw)
	if !sanitized.OK() {
		return nil, &ValidationError{Field: "resume", Problems: sanitized.Errors}
	}
	resume := sanitized.Data

	classification := classify.Classify(job.Title, job.Description)
	roleCheck := density.IsTechnicalRole(job.Title)

	// The similarity call is the only suspension point; local scoring runs
	// alongside it.
	var (
		skillsResult  types.SkillMatchResult
		expResult     types.ExperienceMatchResult
		jobDensity    types.TechnicalDensityResult
		resumeDensity types.TechnicalDensityResult
		simScore      = similarity.NeutralScore
		simDegraded   bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		score, err := a.provider.Similarity(gctx, resumeText(resume), jobText(job))
		if err != nil {
			a.logger.Warn("similarity service unavailable, using neutral signal",
				zap.Error(err))
			simScore = similarity.NeutralScore
			simDegraded = true
			return nil
		}
		simScore = score
		return nil
	})
	g.Go(func() error {
		jobDensity = density.AnalyzeWeighted(job.Description)
		resumeDensity = density.AnalyzeWeighted(resumeText(resume))

		jobSkills := extractJobSkills(jobDensity)
		skillsResult = a.matcher.Match(jobSkills, resume.Skills, job.Description)

		required := requiredYears(job.Description, classification.Level, a.cfg.RequiredYearsByLevel)
		actual := totalYearsOfExperience(resume.Experience, a.now())
		expResult = matching.MatchExperience(
			[]matching.ExperienceRequirement{
				{Area: overallArea, RequiredYears: required, Relevance: 1.0},
			},
			map[string]float64{overallArea: actual},
			matching.ExperienceConfig{
				InsufficiencyPenalty: a.cfg.InsufficiencyPenalty,
				MaxExperienceBonus:   a.cfg.MaxExperienceBonus,
				SufficiencyThreshold: a.cfg.SufficiencyThreshold,
			},
		)
		return nil
	})
	// Both goroutines absorb their own failures.
	_ = g.Wait()

	// Context component: data-quality metrics plus classification signal.
	metrics := sanitized.Metrics
	contextScore := clamp01((metrics.Completeness + metrics.Quality + metrics.Consistency) / 3)
	contextFactors := []string{
		fmt.Sprintf("completeness %.2f", metrics.Completeness),
		fmt.Sprintf("quality %.2f", metrics.Quality),
		fmt.Sprintf("consistency %.2f", metrics.Consistency),
	}

	roleMismatch := roleCheck.IsTechnical && resumeDensity.Score < lowResumeDensity

	// Ordered transform pipeline over a single 0-1 score.
	techPenalty := penalty.TechnicalMismatch(roleCheck, jobDensity.Score, resumeDensity.Score)
	expPenalty := penalty.ExperienceMismatch(classification.Level, expResult)

	score := weightedBase(skillsResult.Score, expResult.Score, contextScore, a.cfg.Weights)
	score = applyPenalty(score, techPenalty)
	score = applyPenalty(score, expPenalty)
	score = applySimilarityAdjustment(score, simScore, a.cfg.AdjustmentWeight)
	finalScore := toPercent(score)

	suggestions := buildSuggestions(a.cfg, skillsResult, expResult, roleMismatch, metrics.Completeness)

	blocking := false
	for _, s := range suggestions {
		if s.Severity == types.SeverityBlocking {
			blocking = true
		}
	}

	isCompatible := finalScore >= a.cfg.MinimumViableScore &&
		len(skillsResult.MissingCritical) <= a.cfg.MaxMissingCriticalSkills &&
		!blocking

	warnings := append([]string(nil), sanitized.Warnings...)
	if simDegraded {
		warnings = append(warnings, "semantic similarity service unavailable; assessment used a neutral signal")
	}

	assessment := &types.CompatibilityAssessment{
		IsCompatible:       isCompatible,
		CompatibilityScore: finalScore,
		Level:              levelFor(finalScore, a.cfg.Thresholds),
		Classification:     classification,
		Breakdown: types.ScoringBreakdown{
			Overall: score,
			Skills: types.ComponentScore{
				Score:  skillsResult.Score,
				Weight: a.cfg.Weights.Skills,
			},
			Experience: types.ComponentScore{
				Score:  expResult.Score,
				Weight: a.cfg.Weights.Experience,
			},
			Context: types.ContextScore{
				Score:           contextScore,
				Weight:          a.cfg.Weights.Context,
				RelevantFactors: contextFactors,
			},
			SkillsDeta: &skillsResult,
			ExpDetail:  &expResult,
		},
		Suggestions: suggestions,
		Metadata: types.AssessmentMetadata{
			AssessmentID:          uuid.NewString(),
			SkillsMatch:           skillsResult.Score,
			MissingCriticalSkills: skillsResult.MissingCritical,
			ExperienceMismatch:    len(expResult.Gaps) > 0,
			RoleTypeMismatch:      roleMismatch,
			AssessmentDetails: fmt.Sprintf(
				"category=%s level=%s techPenalty=%.3f expPenalty=%.3f similarity=%.3f",
				classification.Category, classification.Level, techPenalty, expPenalty, simScore),
			AssessmentTimestamp: a.now().UTC(),
			AssessmentVersion:   assessmentVersion,
			HasWarnings:         len(warnings) > 0,
			Warnings:            warnings,
		},
	}

	return assessment, nil
}

// validateJob checks the required job fields.
func validateJob(job types.JobPosting) error {
	var problems []string
	if strings.TrimSpace(job.Title) == "" {
		problems = append(problems, "missing job title")
	}
	if strings.TrimSpace(job.Company) == "" {
		problems = append(problems, "missing company name")
	}
	if len(problems) > 0 {
		return &ValidationError{Field: "job", Problems: problems}
	}
	return nil
}

// resumeText flattens the resume into one text blob for density analysis
// and similarity embedding.
func resumeText(r types.Resume) string {
	var b strings.Builder
	b.WriteString(r.Summary)
	b.WriteString("\n")
	b.WriteString(strings.Join(r.Skills, ", "))
	b.WriteString("\n")
	for _, exp := range r.Experience {
		b.WriteString(exp.Title)
		b.WriteString(" ")
		b.WriteString(exp.Description)
		b.WriteString(" ")
		b.WriteString(strings.Join(exp.Achievements, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// jobText flattens the job posting for similarity embedding.
func jobText(j types.JobPosting) string {
	return j.Title + " at " + j.Company + "\n" + j.Description
}
