package seo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
)

const (
	maxTitleLength       = 60
	minDescriptionLength = 70
	maxDescriptionLength = 160
)

var (
	essentialOGTags      = []string{"title", "description", "image", "url", "type"}
	essentialTwitterTags = []string{"card", "title", "description"}
	blockingRobots       = []string{"noindex", "nofollow"}
)

// Evaluation is the outcome of running every rule over a set of tags.
type Evaluation struct {
	RawScore      float64
	Issues        []model.Issue
	BestPractices []model.BestPractice
}

// outcome is what a single rule contributes. A nil practice means the rule
// was skipped.
type outcome struct {
	points   float64
	issues   []model.Issue
	practice *model.BestPractice
}

type rule func(tags model.ExtractedTags, pageURL string) outcome

// rules run in this order, and their issues and best practices are reported
// in the same order.
var rules = []rule{
	checkTitle,
	checkDescription,
	checkViewport,
	checkCharset,
	checkCanonical,
	checkLanguage,
	checkOpenGraph,
	checkTwitterCard,
	checkRobots,
}

// Evaluate scores tags against the best-practice checklist. pageURL is the
// analyzed URL and only shows up in recommendations.
func Evaluate(tags model.ExtractedTags, pageURL string) Evaluation {
	ev := Evaluation{
		Issues:        []model.Issue{},
		BestPractices: []model.BestPractice{},
	}
	for _, r := range rules {
		out := r(tags, pageURL)
		ev.RawScore += out.points
		ev.Issues = append(ev.Issues, out.issues...)
		if out.practice != nil {
			ev.BestPractices = append(ev.BestPractices, *out.practice)
		}
	}
	return ev
}

func checkTitle(tags model.ExtractedTags, _ string) outcome {
	const rec = "Add a descriptive title between 50-60 characters"

	if tags.Title == nil {
		return failed(model.SeverityError, model.PracticeTitle, "Missing title tag", rec, "Missing title tag")
	}
	if *tags.Title == "" {
		return failed(model.SeverityError, model.PracticeTitle, "Title tag is empty", rec, "Title tag is empty")
	}

	n := utf8.RuneCountInString(*tags.Title)
	if n > maxTitleLength {
		return outcome{
			points: 10,
			issues: []model.Issue{{
				Severity:       model.SeverityWarning,
				Message:        fmt.Sprintf("Title length (%d characters) exceeds recommendation", n),
				Recommendation: "Keep title tags between 50-60 characters for optimal search engine display",
			}},
			practice: practice(model.PracticeTitle, true, "Title tag is present but exceeds optimal length"),
		}
	}
	return passed(15, model.PracticeTitle, "Title tag is present and has optimal length")
}

func checkDescription(tags model.ExtractedTags, _ string) outcome {
	const rec = "Add a descriptive meta description between 120-160 characters"

	if tags.Description == nil {
		return failed(model.SeverityError, model.PracticeDescription, "Missing meta description", rec, "Missing meta description")
	}
	if *tags.Description == "" {
		return failed(model.SeverityError, model.PracticeDescription, "Meta description is empty", rec, "Meta description is empty")
	}

	n := utf8.RuneCountInString(*tags.Description)
	switch {
	case n > maxDescriptionLength:
		return outcome{
			points: 10,
			issues: []model.Issue{{
				Severity:       model.SeverityWarning,
				Message:        fmt.Sprintf("Description length (%d characters) exceeds recommendation", n),
				Recommendation: "Keep description tags between 120-160 characters for optimal display",
			}},
			practice: practice(model.PracticeDescription, true, "Meta description is present but exceeds optimal length"),
		}
	case n < minDescriptionLength:
		return outcome{
			issues: []model.Issue{{
				Severity:       model.SeverityWarning,
				Message:        fmt.Sprintf("Description is too short (%d characters)", n),
				Recommendation: rec,
			}},
			practice: practice(model.PracticeDescription, true, "Meta description is present but too short"),
		}
	}
	return passed(15, model.PracticeDescription, "Meta description is present and has optimal length")
}

func checkViewport(tags model.ExtractedTags, _ string) outcome {
	if !present(tags.Viewport) {
		return failed(model.SeverityError, model.PracticeViewport,
			"Missing viewport meta tag",
			`Add viewport meta tag for responsive design: <meta name="viewport" content="width=device-width, initial-scale=1.0">`,
			"Missing viewport meta tag for responsive design")
	}
	return passed(10, model.PracticeViewport, "Responsive viewport meta tag is present")
}

func checkCharset(tags model.ExtractedTags, _ string) outcome {
	if !present(tags.Charset) {
		return failed(model.SeverityWarning, model.PracticeCharset,
			"Missing character encoding",
			`Add charset meta tag: <meta charset="UTF-8">`,
			"Character encoding is not specified")
	}
	return passed(5, model.PracticeCharset, "Character encoding is specified")
}

func checkCanonical(tags model.ExtractedTags, pageURL string) outcome {
	if !present(tags.Canonical) {
		return failed(model.SeverityError, model.PracticeCanonical,
			"Missing canonical tag",
			`Add a canonical tag to prevent duplicate content issues: <link rel="canonical" href="`+pageURL+`">`,
			"Missing canonical URL")
	}
	return passed(10, model.PracticeCanonical, "Canonical URL is specified")
}

func checkLanguage(tags model.ExtractedTags, _ string) outcome {
	if !present(tags.Language) {
		return failed(model.SeverityWarning, model.PracticeLanguage,
			"Missing language attribute",
			`Add language attribute to the HTML tag: <html lang="en">`,
			"HTML language attribute is not specified")
	}
	return passed(5, model.PracticeLanguage, "HTML language attribute is specified")
}

func checkOpenGraph(tags model.ExtractedTags, _ string) outcome {
	if len(tags.OGTags) == 0 {
		return failed(model.SeverityError, model.PracticeOpenGraph,
			"Missing Open Graph meta tags",
			"Add Open Graph meta tags for better social media sharing",
			"Missing Open Graph meta tags")
	}

	var issues []model.Issue
	for _, tag := range essentialOGTags {
		if tags.OGTags[tag] == "" {
			issues = append(issues, model.Issue{
				Severity:       model.SeverityWarning,
				Message:        "Missing og:" + tag + " meta tag",
				Recommendation: "Add og:" + tag + " meta tag for better social media sharing",
			})
		}
	}
	if tags.OGTags["image"] != "" && (tags.OGTags["image:width"] == "" || tags.OGTags["image:height"] == "") {
		issues = append(issues, model.Issue{
			Severity:       model.SeverityWarning,
			Message:        "Missing og:image dimensions (og:image:width, og:image:height)",
			Recommendation: "Add image dimensions to improve rendering on social platforms",
		})
	}

	desc := "All essential Open Graph tags are present"
	if len(issues) > 0 {
		desc = "Some Open Graph tags are present but missing important ones"
	}
	return outcome{points: 10, issues: issues, practice: practice(model.PracticeOpenGraph, true, desc)}
}

func checkTwitterCard(tags model.ExtractedTags, _ string) outcome {
	if len(tags.TwitterTags) == 0 {
		return failed(model.SeverityWarning, model.PracticeTwitterCard,
			"Missing Twitter Card meta tags",
			"Add Twitter Card meta tags for better Twitter sharing",
			"Missing Twitter Card meta tags")
	}

	var issues []model.Issue
	for _, tag := range essentialTwitterTags {
		if tags.TwitterTags[tag] == "" {
			issues = append(issues, model.Issue{
				Severity:       model.SeverityWarning,
				Message:        "Missing twitter:" + tag + " meta tag",
				Recommendation: "Add twitter:" + tag + " meta tag for better Twitter sharing",
			})
		}
	}

	desc := "All essential Twitter Card tags are present"
	if len(issues) > 0 {
		desc = "Some Twitter Card tags are present but missing important ones"
	}
	return outcome{points: 10, issues: issues, practice: practice(model.PracticeTwitterCard, true, desc)}
}

// checkRobots only runs when the page has a robots tag at all.
func checkRobots(tags model.ExtractedTags, _ string) outcome {
	if !present(tags.Robots) {
		return outcome{}
	}

	directives := strings.ToLower(*tags.Robots)
	for _, d := range blockingRobots {
		if strings.Contains(directives, d) {
			return outcome{
				issues: []model.Issue{{
					Severity:       model.SeverityWarning,
					Message:        "Robots meta tag is blocking search engines: " + *tags.Robots,
					Recommendation: "Remove noindex/nofollow if you want search engines to index this page",
				}},
				practice: practice(model.PracticeRobots, true, "Robots meta tag is present but blocking search engines"),
			}
		}
	}
	return passed(5, model.PracticeRobots, "Robots meta tag is properly configured")
}

func present(p *string) bool {
	return p != nil && *p != ""
}

func practice(name string, implemented bool, desc string) *model.BestPractice {
	return &model.BestPractice{Name: name, Implemented: implemented, Description: desc}
}

func passed(points float64, name, desc string) outcome {
	return outcome{points: points, practice: practice(name, true, desc)}
}

func failed(sev model.Severity, name, msg, rec, desc string) outcome {
	return outcome{
		issues:   []model.Issue{{Severity: sev, Message: msg, Recommendation: rec}},
		practice: practice(name, false, desc),
	}
}
