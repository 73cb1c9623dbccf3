package model

// Severity classifies an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ExtractedTags is the flat record of SEO-relevant tags found on a page.
// Nil pointers mean the tag was not found; an empty string means it was
// found with no value.
type ExtractedTags struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Charset     *string           `json:"charset,omitempty"`
	Viewport    *string           `json:"viewport,omitempty"`
	Language    *string           `json:"language,omitempty"`
	Canonical   *string           `json:"canonical,omitempty"`
	Robots      *string           `json:"robots,omitempty"`
	OGTags      map[string]string `json:"ogTags"`
	TwitterTags map[string]string `json:"twitterTags"`
	OtherTags   map[string]string `json:"otherTags"`
}

// Issue is a single finding produced by a rule, in the order the rules ran.
// The severity is serialized as "type" for the dashboard.
type Issue struct {
	Severity       Severity `json:"type"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// BestPractice is the pass/fail summary of one rule category.
type BestPractice struct {
	Name        string `json:"name"`
	Implemented bool   `json:"implemented"`
	Description string `json:"description,omitempty"`
}

// AnalysisResult holds the complete result of analyzing a web page.
type AnalysisResult struct {
	URL string `json:"url"`
	ExtractedTags
	Score         float64        `json:"score"`
	Issues        []Issue        `json:"issues"`
	BestPractices []BestPractice `json:"bestPractices"`
	Summary       *Summary       `json:"summary,omitempty"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
