// Package report derives the dashboard summary from an analysis result.
// Everything here is a pure function of the result and emits semantic keys
// only; display text comes from the labels package.
package report

import (
	"math"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
)

// Category names, also used as label keys.
const (
	CategoryTechnical = "technical"
	CategoryContent   = "content"
	CategorySocial    = "social"
	CategoryStructure = "structure"
)

// Detail keys attached to category summaries.
const (
	DetailAllPresent         = "allEssentialPresent"
	DetailSomeMissing        = "someElementsMissing"
	DetailCriticalMissing    = "criticalElementsMissing"
	DetailMissingViewport    = "missingViewport"
	DetailMissingCharset     = "missingCharset"
	DetailMissingTitle       = "missingTitle"
	DetailMissingDescription = "missingDescription"
	DetailTitleTooLong       = "titleTooLong"
	DetailMissingOpenGraph   = "missingOpenGraph"
	DetailMissingTwitter     = "missingTwitterCard"
	DetailMissingCanonical   = "missingCanonical"
)

const (
	maxTitleLength       = 60
	minDescriptionLength = 70
	maxDescriptionLength = 160
)

var categoryPractices = []struct {
	name      string
	practices []string
}{
	{CategoryTechnical, []string{model.PracticeCharset, model.PracticeViewport, model.PracticeLanguage, model.PracticeRobots}},
	{CategoryContent, []string{model.PracticeTitle, model.PracticeDescription}},
	{CategorySocial, []string{model.PracticeOpenGraph, model.PracticeTwitterCard}},
	{CategoryStructure, []string{model.PracticeCanonical}},
}

var essentialOGTags = []string{"title", "description", "image", "url", "type"}

// Summarize builds the dashboard summary for r.
func Summarize(r *model.AnalysisResult) *model.Summary {
	counts := CountIssues(r.Issues)
	implemented := countImplemented(r.BestPractices)

	s := &model.Summary{
		ScoreCategory:        ScoreCategory(r.Score),
		RoundedScore:         int(math.Round(r.Score)),
		Health:               Health(r.Score, counts),
		IssueCounts:          counts,
		ImplementedPractices: implemented,
		TotalPractices:       len(r.BestPractices),
		ImplementationRate:   percent(implemented, len(r.BestPractices)),
		CoreTags:             coreTags(r.ExtractedTags),
		Social:               social(r.ExtractedTags),
		DisplayURL:           DisplayURL(r.URL),
		Recommendations:      Recommendations(r.ExtractedTags),
	}
	for _, c := range categoryPractices {
		s.Categories = append(s.Categories, summarizeCategory(c.name, c.practices, r))
	}
	return s
}

// ScoreCategory buckets a normalized score.
func ScoreCategory(score float64) model.Status {
	switch {
	case score < 50:
		return model.StatusPoor
	case score < 70:
		return model.StatusFair
	default:
		return model.StatusGood
	}
}

// Health rates the page from its score and issue counts.
func Health(score float64, counts model.IssueCounts) model.Status {
	switch {
	case counts.Errors > 0 || score < 50:
		return model.StatusPoor
	case counts.Warnings > 2 || score < 70:
		return model.StatusFair
	case counts.Warnings > 0 || score < 90:
		return model.StatusGood
	default:
		return model.StatusExcellent
	}
}

// CountIssues tallies issues by severity.
func CountIssues(issues []model.Issue) model.IssueCounts {
	var c model.IssueCounts
	for _, is := range issues {
		switch is.Severity {
		case model.SeverityError:
			c.Errors++
		case model.SeverityWarning:
			c.Warnings++
		case model.SeverityInfo:
			c.Info++
		}
	}
	return c
}

// DisplayURL strips the scheme, query and fragment for display. Input that
// does not parse is returned unchanged.
func DisplayURL(raw string) string {
	s := raw
	if lower := strings.ToLower(s); !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return u.Hostname() + path
}

// Recommendations condenses the result into short action items.
func Recommendations(tags model.ExtractedTags) []string {
	recs := []string{}

	switch {
	case !present(tags.Title):
		recs = append(recs, "Add a title tag with 50-60 characters")
	case length(tags.Title) > maxTitleLength:
		recs = append(recs, "Shorten your title tag to 50-60 characters")
	}

	switch {
	case !present(tags.Description):
		recs = append(recs, "Add a meta description with 120-160 characters")
	case length(tags.Description) < minDescriptionLength:
		recs = append(recs, "Make your meta description more descriptive (aim for 120-160 characters)")
	case length(tags.Description) > maxDescriptionLength:
		recs = append(recs, "Shorten your meta description to 120-160 characters")
	}

	if !present(tags.Canonical) {
		recs = append(recs, "Add a canonical URL tag to prevent duplicate content issues")
	}

	if len(tags.OGTags) == 0 {
		recs = append(recs, "Add Open Graph meta tags for better social media sharing")
	} else {
		var missing []string
		for _, tag := range essentialOGTags {
			if tags.OGTags[tag] == "" {
				missing = append(missing, "og:"+tag)
			}
		}
		if len(missing) > 0 {
			recs = append(recs, "Add missing Open Graph tags: "+strings.Join(missing, ", "))
		}
		if tags.OGTags["image"] != "" && (tags.OGTags["image:width"] == "" || tags.OGTags["image:height"] == "") {
			recs = append(recs, "Add og:image:width and og:image:height for better social media rendering")
		}
	}

	if len(tags.TwitterTags) == 0 {
		recs = append(recs, "Add Twitter Card meta tags for better Twitter sharing")
	}

	return recs
}

func summarizeCategory(name string, practices []string, r *model.AnalysisResult) model.CategorySummary {
	var total, implemented int
	for _, bp := range r.BestPractices {
		if !slices.Contains(practices, bp.Name) {
			continue
		}
		total++
		if bp.Implemented {
			implemented++
		}
	}

	c := model.CategorySummary{
		Name:        name,
		Score:       percent(implemented, total),
		Implemented: implemented,
		Total:       total,
	}
	switch {
	case c.Score >= 80:
		c.Status, c.Detail = model.StatusGood, DetailAllPresent
	case c.Score >= 50:
		c.Status, c.Detail = model.StatusFair, DetailSomeMissing
	default:
		c.Status, c.Detail = model.StatusPoor, DetailCriticalMissing
	}
	if d := categoryDetail(name, r.ExtractedTags); d != "" {
		c.Detail = d
	}
	return c
}

// categoryDetail names the most important gap in a category, if any.
func categoryDetail(name string, tags model.ExtractedTags) string {
	switch name {
	case CategoryTechnical:
		switch {
		case !present(tags.Viewport):
			return DetailMissingViewport
		case !present(tags.Charset):
			return DetailMissingCharset
		}
	case CategoryContent:
		switch {
		case !present(tags.Title):
			return DetailMissingTitle
		case !present(tags.Description):
			return DetailMissingDescription
		case length(tags.Title) > maxTitleLength:
			return DetailTitleTooLong
		}
	case CategorySocial:
		switch {
		case len(tags.OGTags) == 0:
			return DetailMissingOpenGraph
		case len(tags.TwitterTags) == 0:
			return DetailMissingTwitter
		}
	case CategoryStructure:
		if !present(tags.Canonical) {
			return DetailMissingCanonical
		}
	}
	return ""
}

func coreTags(tags model.ExtractedTags) model.Completeness {
	if present(tags.Title) && present(tags.Description) && present(tags.Viewport) {
		return model.Complete
	}
	return model.Incomplete
}

func social(tags model.ExtractedTags) model.Completeness {
	hasOG, hasTwitter := len(tags.OGTags) > 0, len(tags.TwitterTags) > 0
	switch {
	case hasOG && hasTwitter:
		return model.Complete
	case hasOG || hasTwitter:
		return model.Partial
	default:
		return model.Missing
	}
}

func countImplemented(practices []model.BestPractice) int {
	n := 0
	for _, bp := range practices {
		if bp.Implemented {
			n++
		}
	}
	return n
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func present(p *string) bool {
	return p != nil && *p != ""
}

func length(p *string) int {
	if p == nil {
		return 0
	}
	return utf8.RuneCountInString(*p)
}
