package types

// RawResume is the untrusted resume shape as received from the document
// layer. Every field is optional at this stage; the sanitization pipeline
// validates required fields and produces a Resume with explicit semantics.
// Skills arrive as a single free-text string (comma or newline separated).
type RawResume struct {
	FirstName  string             `json:"first_name,omitempty"`
	LastName   string             `json:"last_name,omitempty"`
	Email      string             `json:"email,omitempty"`
	Phone      string             `json:"phone,omitempty"`
	Summary    string             `json:"summary,omitempty"`
	Skills     string             `json:"skills,omitempty"`
	Experience []RawishExperience `json:"experience,omitempty"`
}

// RawishExperience is a single unvalidated work-history entry.
type RawishExperience struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Resume is the sanitized, validated resume consumed by the matchers.
// Construction is all-or-nothing: the sanitizer either returns a Resume that
// passed required-field validation or a ValidationError, never a partial one.
type Resume struct {
	FirstName  string           `json:"first_name" validate:"required"`
	LastName   string           `json:"last_name" validate:"required"`
	Email      string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string           `json:"phone,omitempty"`
	Summary    string           `json:"summary,omitempty"`
	Skills     []string         `json:"skills,omitempty"`
	Experience []WorkExperience `json:"experience,omitempty" validate:"dive"`
}

// WorkExperience is a sanitized work-history entry. Dates are in canonical
// "YYYY-MM" form, or empty when the raw value was unparsable.
type WorkExperience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}
