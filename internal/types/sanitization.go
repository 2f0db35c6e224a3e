package types

// SanitizationMetrics quantifies the cleaned data. Each metric is 0-1.
type SanitizationMetrics struct {
	Completeness float64 `json:"completeness"`
	Quality      float64 `json:"quality"`
	Consistency  float64 `json:"consistency"`
}

// SanitizationMetadata records which stages ran and in what order.
type SanitizationMetadata struct {
	StagesRun []string `json:"stages_run"`
}

// SanitizationResult bundles the cleaned resume with metrics and any
// problems found. A non-empty Errors slice means the data failed required
// field validation and must not reach the assessor.
type SanitizationResult struct {
	Data     Resume               `json:"data"`
	Metadata SanitizationMetadata `json:"metadata"`
	Metrics  SanitizationMetrics  `json:"metrics"`
	Warnings []string             `json:"warnings,omitempty"`
	Errors   []string             `json:"errors,omitempty"`
}

// OK reports whether the sanitized data is fit for assessment.
func (r *SanitizationResult) OK() bool {
	return len(r.Errors) == 0
}
