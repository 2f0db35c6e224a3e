package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-compat/internal/assess"
	"github.com/jonathan/resume-compat/internal/config"
	"github.com/jonathan/resume-compat/internal/observability"
	"github.com/jonathan/resume-compat/internal/schemas"
	"github.com/jonathan/resume-compat/internal/similarity"
	"github.com/jonathan/resume-compat/internal/types"
)

var assessCommand = &cobra.Command{
	Use:   "assess",
	Short: "Assess how well a resume matches a job posting",
	Long: `Runs the full compatibility pipeline: sanitizes the resume, classifies the
job, matches skills and experience, applies mismatch penalties and blends in
the semantic-similarity signal. The assessment is printed to stdout as JSON.

Without an API key (--api-key or GEMINI_API_KEY) the semantic-similarity
signal is neutral and the assessment is flagged as degraded.`,
	RunE: runAssessCmd,
}

var (
	assessResumePath string
	assessJobPath    string
	assessConfigPath string
	assessAPIKey     string
	assessVerbose    bool
)

func init() {
	assessCommand.Flags().StringVarP(&assessResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	assessCommand.Flags().StringVarP(&assessJobPath, "job", "j", "", "Path to job posting JSON file (required)")
	assessCommand.Flags().StringVar(&assessConfigPath, "config", "", "Path to assessment config JSON (defaults apply when omitted)")
	assessCommand.Flags().StringVar(&assessAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	assessCommand.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print a human-readable breakdown to stderr")

	_ = assessCommand.MarkFlagRequired("resume")
	_ = assessCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(assessCommand)
}

func runAssessCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	logger := zap.NewNop()
	if assessVerbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = dev
		defer func() { _ = logger.Sync() }()
	}

	cfg := config.Default()
	if assessConfigPath != "" {
		loaded, err := config.Load(assessConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	raw, job, err := loadInputs(assessResumePath, assessJobPath)
	if err != nil {
		return err
	}

	apiKey := assessAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var provider similarity.Provider = similarity.Neutral{}
	if apiKey != "" {
		gemini, err := similarity.NewGeminiProvider(ctx, apiKey, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize similarity provider: %w", err)
		}
		defer func() { _ = gemini.Close() }()
		provider = gemini
	} else {
		logger.Warn("no API key provided, semantic similarity will be neutral")
	}

	assessor := assess.New(cfg, nil, provider, logger)
	assessment, err := assessor.Assess(ctx, raw, job)
	if err != nil {
		return err
	}

	if assessVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintClassification(assessment.Classification)
		printer.PrintBreakdown(assessment.Breakdown)
		printer.PrintSuggestions(assessment.Suggestions)
		printer.PrintAssessment(assessment)
	}

	encoded, err := json.MarshalIndent(assessment, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode assessment: %w", err)
	}
	fmt.Println(string(encoded))

	return nil
}

// loadInputs reads and schema-validates the resume and job documents. Schema
// validation is skipped when the schema files cannot be located (e.g. an
// installed binary running outside the repo); struct-level validation still
// applies downstream.
func loadInputs(resumePath, jobPath string) (types.RawResume, types.JobPosting, error) {
	var raw types.RawResume
	var job types.JobPosting

	resumeData, err := os.ReadFile(resumePath)
	if err != nil {
		return raw, job, fmt.Errorf("failed to read resume file: %w", err)
	}
	jobData, err := os.ReadFile(jobPath)
	if err != nil {
		return raw, job, fmt.Errorf("failed to read job file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "resume.schema.json")); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, resumePath); err != nil {
			return raw, job, fmt.Errorf("resume %w", err)
		}
	}
	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "job.schema.json")); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, jobPath); err != nil {
			return raw, job, fmt.Errorf("job %w", err)
		}
	}

	if err := json.Unmarshal(resumeData, &raw); err != nil {
		return raw, job, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := json.Unmarshal(jobData, &job); err != nil {
		return raw, job, fmt.Errorf("failed to parse job JSON: %w", err)
	}

	return raw, job, nil
}
