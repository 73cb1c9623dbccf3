package model

// Status is a semantic rating the dashboard maps to colors and labels.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
)

// Completeness describes whether a group of tags is fully present.
type Completeness string

const (
	Complete   Completeness = "complete"
	Partial    Completeness = "partial"
	Incomplete Completeness = "incomplete"
	Missing    Completeness = "missing"
)

// Summary is the dashboard-facing digest of an AnalysisResult. Every field
// is derived from the result; nothing here is localized.
type Summary struct {
	ScoreCategory        Status            `json:"scoreCategory"`
	RoundedScore         int               `json:"roundedScore"`
	Health               Status            `json:"health"`
	IssueCounts          IssueCounts       `json:"issueCounts"`
	ImplementedPractices int               `json:"implementedPractices"`
	TotalPractices       int               `json:"totalPractices"`
	ImplementationRate   int               `json:"implementationRate"`
	Categories           []CategorySummary `json:"categories"`
	CoreTags             Completeness      `json:"coreTags"`
	Social               Completeness      `json:"social"`
	DisplayURL           string            `json:"displayUrl"`
	Recommendations      []string          `json:"recommendations"`
}

// IssueCounts tallies issues by severity.
type IssueCounts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// CategorySummary rates one group of best practices. Detail is a label key.
type CategorySummary struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Status      Status `json:"status"`
	Implemented int    `json:"implemented"`
	Total       int    `json:"total"`
	Detail      string `json:"detail"`
}
