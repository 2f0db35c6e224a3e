// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-compat/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs the detected role category and level.
func (p *Printer) PrintClassification(c types.JobClassification) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Category:   %s\n", c.Category))
	sb.WriteString(fmt.Sprintf("Level:      %s\n", c.Level))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", c.Confidence))

	if len(c.MatchedKeywords) > 0 {
		keywords := strings.Join(c.MatchedKeywords, ", ")
		if len(keywords) > 40 {
			keywords = keywords[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords:   %s", keywords))
	}

	p.printBox("JOB CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs the weighted components behind the overall score,
// including skill matches, compensations and experience gaps.
func (p *Printer) PrintBreakdown(b types.ScoringBreakdown) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills:     %.2f (weight %.2f)\n", b.Skills.Score, b.Skills.Weight))
	sb.WriteString(fmt.Sprintf("Experience: %.2f (weight %.2f)\n", b.Experience.Score, b.Experience.Weight))
	sb.WriteString(fmt.Sprintf("Context:    %.2f (weight %.2f)\n", b.Context.Score, b.Context.Weight))

	if b.SkillsDeta != nil {
		detail := b.SkillsDeta
		if len(detail.Matches) > 0 {
			sb.WriteString("\nMatched skills:\n")
			count := min(len(detail.Matches), maxItemsToShow)
			for i := 0; i < count; i++ {
				m := detail.Matches[i]
				sb.WriteString(fmt.Sprintf("  • %s (%.2f, %s)\n", m.Skill, m.Confidence, m.MatchType))
			}
			if len(detail.Matches) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(detail.Matches)-maxItemsToShow))
			}
		}
		if len(detail.Compensations) > 0 {
			sb.WriteString("\nRelated-skill credit:\n")
			count := min(len(detail.Compensations), maxItemsToShow)
			for i := 0; i < count; i++ {
				c := detail.Compensations[i]
				sb.WriteString(fmt.Sprintf("  • %s ← %s (%.2f)\n", c.RequiredSkill, c.RelatedSkill, c.Factor))
			}
		}
		if len(detail.MissingCritical) > 0 {
			sb.WriteString(fmt.Sprintf("\nMissing: %s\n", strings.Join(detail.MissingCritical, ", ")))
		}
	}

	if b.ExpDetail != nil && len(b.ExpDetail.Gaps) > 0 {
		sb.WriteString(fmt.Sprintf("\nExperience gaps: %s\n", strings.Join(b.ExpDetail.Gaps, ", ")))
	}

	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs actionable feedback grouped by severity.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range suggestions {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(s.Severity)), s.Message))
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAssessment outputs the final verdict with score, level and warnings.
func (p *Printer) PrintAssessment(a *types.CompatibilityAssessment) {
	if a == nil {
		return
	}

	var sb strings.Builder

	verdict := "NOT COMPATIBLE"
	if a.IsCompatible {
		verdict = "COMPATIBLE"
	}
	sb.WriteString(fmt.Sprintf("Verdict: %s\n", verdict))
	sb.WriteString(fmt.Sprintf("Score:   %.1f / 100\n", a.CompatibilityScore))
	sb.WriteString(fmt.Sprintf("Level:   %s\n", a.Level))

	if a.Metadata.HasWarnings {
		sb.WriteString("\nWarnings:\n")
		count := min(len(a.Metadata.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", a.Metadata.Warnings[i]))
		}
	}

	p.printBox("COMPATIBILITY ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}
