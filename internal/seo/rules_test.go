package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
)

const testPageURL = "https://example.com"

func emptyTags() model.ExtractedTags {
	return model.ExtractedTags{
		OGTags:      map[string]string{},
		TwitterTags: map[string]string{},
		OtherTags:   map[string]string{},
	}
}

// completeTags returns tags that pass every rule.
func completeTags() model.ExtractedTags {
	tags := emptyTags()
	tags.Title = strptr("Example Domain")
	tags.Description = strptr(strings.Repeat("d", 120))
	tags.Viewport = strptr("width=device-width, initial-scale=1")
	tags.Charset = strptr("utf-8")
	tags.Canonical = strptr("https://example.com/")
	tags.Language = strptr("en")
	tags.Robots = strptr("index, follow")
	tags.OGTags = map[string]string{
		"title": "t", "description": "d", "image": "i", "url": "u", "type": "website",
		"image:width": "1200", "image:height": "630",
	}
	tags.TwitterTags = map[string]string{"card": "summary", "title": "t", "description": "d"}
	return tags
}

func practiceByName(t *testing.T, ev Evaluation, name string) model.BestPractice {
	t.Helper()
	for _, bp := range ev.BestPractices {
		if bp.Name == name {
			return bp
		}
	}
	require.Failf(t, "best practice not found", "%q", name)
	return model.BestPractice{}
}

func issuesMatching(ev Evaluation, substr string) []model.Issue {
	var out []model.Issue
	for _, is := range ev.Issues {
		if strings.Contains(is.Message, substr) {
			out = append(out, is)
		}
	}
	return out
}

func TestEvaluate_AllPassing(t *testing.T) {
	ev := Evaluate(completeTags(), testPageURL)

	assert.Empty(t, ev.Issues)
	assert.InDelta(t, 85, ev.RawScore, 0)
	require.Len(t, ev.BestPractices, 9)
	for _, bp := range ev.BestPractices {
		assert.True(t, bp.Implemented, bp.Name)
	}
}

func TestEvaluate_Order(t *testing.T) {
	ev := Evaluate(completeTags(), testPageURL)

	var names []string
	for _, bp := range ev.BestPractices {
		names = append(names, bp.Name)
	}
	assert.Equal(t, []string{
		model.PracticeTitle,
		model.PracticeDescription,
		model.PracticeViewport,
		model.PracticeCharset,
		model.PracticeCanonical,
		model.PracticeLanguage,
		model.PracticeOpenGraph,
		model.PracticeTwitterCard,
		model.PracticeRobots,
	}, names)
}

func TestEvaluate_TitleOnly(t *testing.T) {
	tags := emptyTags()
	tags.Title = strptr("Test")

	ev := Evaluate(tags, testPageURL)

	assert.InDelta(t, 15, ev.RawScore, 0)
	assert.InDelta(t, 18.75, Normalize(ev.RawScore), 1e-9)
	require.Len(t, ev.BestPractices, 8, "robots is skipped when absent")

	assert.True(t, practiceByName(t, ev, model.PracticeTitle).Implemented)
	for _, name := range []string{
		model.PracticeDescription, model.PracticeViewport, model.PracticeCharset,
		model.PracticeCanonical, model.PracticeLanguage, model.PracticeOpenGraph,
		model.PracticeTwitterCard,
	} {
		assert.False(t, practiceByName(t, ev, name).Implemented, name)
	}

	want := []model.Issue{
		{Severity: model.SeverityError, Message: "Missing meta description"},
		{Severity: model.SeverityError, Message: "Missing viewport meta tag"},
		{Severity: model.SeverityWarning, Message: "Missing character encoding"},
		{Severity: model.SeverityError, Message: "Missing canonical tag"},
		{Severity: model.SeverityWarning, Message: "Missing language attribute"},
		{Severity: model.SeverityError, Message: "Missing Open Graph meta tags"},
		{Severity: model.SeverityWarning, Message: "Missing Twitter Card meta tags"},
	}
	require.Len(t, ev.Issues, len(want))
	for i, w := range want {
		assert.Equal(t, w.Severity, ev.Issues[i].Severity, w.Message)
		assert.Equal(t, w.Message, ev.Issues[i].Message)
		assert.NotEmpty(t, ev.Issues[i].Recommendation)
	}
}

func TestCheckTitle(t *testing.T) {
	tests := []struct {
		name        string
		title       *string
		points      float64
		implemented bool
		severity    model.Severity
		message     string
	}{
		{name: "optimal", title: strptr("Hello"), points: 15, implemented: true},
		{name: "exactly 60", title: strptr(strings.Repeat("a", 60)), points: 15, implemented: true},
		{
			name: "too long", title: strptr(strings.Repeat("a", 61)), points: 10, implemented: true,
			severity: model.SeverityWarning, message: "Title length (61 characters) exceeds recommendation",
		},
		{
			name: "multibyte counts runes", title: strptr(strings.Repeat("é", 60)), points: 15, implemented: true,
		},
		{
			name: "empty", title: strptr(""), points: 0, implemented: false,
			severity: model.SeverityError, message: "Title tag is empty",
		},
		{
			name: "absent", title: nil, points: 0, implemented: false,
			severity: model.SeverityError, message: "Missing title tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := emptyTags()
			tags.Title = tt.title
			out := checkTitle(tags, testPageURL)

			assert.InDelta(t, tt.points, out.points, 0)
			require.NotNil(t, out.practice)
			assert.Equal(t, tt.implemented, out.practice.Implemented)
			if tt.message == "" {
				assert.Empty(t, out.issues)
				return
			}
			require.Len(t, out.issues, 1)
			assert.Equal(t, tt.severity, out.issues[0].Severity)
			assert.Equal(t, tt.message, out.issues[0].Message)
		})
	}
}

func TestCheckDescription(t *testing.T) {
	tests := []struct {
		name        string
		desc        *string
		points      float64
		implemented bool
		severity    model.Severity
		message     string
	}{
		{name: "optimal", desc: strptr(strings.Repeat("a", 120)), points: 15, implemented: true},
		{name: "lower bound", desc: strptr(strings.Repeat("a", 70)), points: 15, implemented: true},
		{name: "upper bound", desc: strptr(strings.Repeat("a", 160)), points: 15, implemented: true},
		{
			name: "too long", desc: strptr(strings.Repeat("a", 161)), points: 10, implemented: true,
			severity: model.SeverityWarning, message: "Description length (161 characters) exceeds recommendation",
		},
		{
			name: "too short", desc: strptr("Short."), points: 0, implemented: true,
			severity: model.SeverityWarning, message: "Description is too short (6 characters)",
		},
		{
			name: "empty", desc: strptr(""), points: 0, implemented: false,
			severity: model.SeverityError, message: "Meta description is empty",
		},
		{
			name: "absent", desc: nil, points: 0, implemented: false,
			severity: model.SeverityError, message: "Missing meta description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := emptyTags()
			tags.Description = tt.desc
			out := checkDescription(tags, testPageURL)

			assert.InDelta(t, tt.points, out.points, 0)
			require.NotNil(t, out.practice)
			assert.Equal(t, tt.implemented, out.practice.Implemented)
			if tt.message == "" {
				assert.Empty(t, out.issues)
				return
			}
			require.Len(t, out.issues, 1)
			assert.Equal(t, tt.severity, out.issues[0].Severity)
			assert.Equal(t, tt.message, out.issues[0].Message)
		})
	}
}

func TestCheckCanonical_RecommendationEmbedsURL(t *testing.T) {
	out := checkCanonical(emptyTags(), "https://example.com/page")

	require.Len(t, out.issues, 1)
	assert.Equal(t, model.SeverityError, out.issues[0].Severity)
	assert.Contains(t, out.issues[0].Recommendation, `<link rel="canonical" href="https://example.com/page">`)
}

func TestCheckOpenGraph(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		out := checkOpenGraph(emptyTags(), testPageURL)
		assert.InDelta(t, 0, out.points, 0)
		assert.False(t, out.practice.Implemented)
		require.Len(t, out.issues, 1)
		assert.Equal(t, model.SeverityError, out.issues[0].Severity)
	})

	t.Run("partial", func(t *testing.T) {
		tags := emptyTags()
		tags.OGTags = map[string]string{"title": "t", "image": "i"}
		out := checkOpenGraph(tags, testPageURL)

		assert.InDelta(t, 10, out.points, 0)
		assert.True(t, out.practice.Implemented)
		assert.Equal(t, "Some Open Graph tags are present but missing important ones", out.practice.Description)

		var msgs []string
		for _, is := range out.issues {
			assert.Equal(t, model.SeverityWarning, is.Severity)
			msgs = append(msgs, is.Message)
		}
		assert.Equal(t, []string{
			"Missing og:description meta tag",
			"Missing og:url meta tag",
			"Missing og:type meta tag",
			"Missing og:image dimensions (og:image:width, og:image:height)",
		}, msgs)
	})

	t.Run("complete", func(t *testing.T) {
		out := checkOpenGraph(completeTags(), testPageURL)
		assert.Empty(t, out.issues)
		assert.Equal(t, "All essential Open Graph tags are present", out.practice.Description)
	})
}

func TestCheckTwitterCard(t *testing.T) {
	t.Run("none is a warning", func(t *testing.T) {
		out := checkTwitterCard(emptyTags(), testPageURL)
		assert.False(t, out.practice.Implemented)
		require.Len(t, out.issues, 1)
		assert.Equal(t, model.SeverityWarning, out.issues[0].Severity)
	})

	t.Run("partial", func(t *testing.T) {
		tags := emptyTags()
		tags.TwitterTags = map[string]string{"site": "@example"}
		out := checkTwitterCard(tags, testPageURL)

		assert.InDelta(t, 10, out.points, 0)
		assert.True(t, out.practice.Implemented)
		require.Len(t, out.issues, 3)
		assert.Equal(t, "Missing twitter:card meta tag", out.issues[0].Message)
	})
}

func TestCheckRobots(t *testing.T) {
	tests := []struct {
		name     string
		robots   *string
		points   float64
		skipped  bool
		blocking bool
	}{
		{name: "absent", robots: nil, skipped: true},
		{name: "empty", robots: strptr(""), skipped: true},
		{name: "clean", robots: strptr("index, follow"), points: 5},
		{name: "noindex", robots: strptr("noindex"), blocking: true},
		{name: "nofollow uppercase", robots: strptr("index, NOFOLLOW"), blocking: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := emptyTags()
			tags.Robots = tt.robots
			out := checkRobots(tags, testPageURL)

			if tt.skipped {
				assert.Nil(t, out.practice)
				assert.Empty(t, out.issues)
				return
			}
			assert.InDelta(t, tt.points, out.points, 0)
			assert.True(t, out.practice.Implemented)
			if tt.blocking {
				require.Len(t, out.issues, 1)
				assert.Equal(t, "Robots meta tag is blocking search engines: "+*tt.robots, out.issues[0].Message)
			} else {
				assert.Empty(t, out.issues)
			}
		})
	}
}

func TestEvaluate_Monotonic(t *testing.T) {
	fields := map[string]func(*model.ExtractedTags){
		"title":       func(t *model.ExtractedTags) { t.Title = strptr("Title") },
		"description": func(t *model.ExtractedTags) { t.Description = strptr(strings.Repeat("d", 100)) },
		"viewport":    func(t *model.ExtractedTags) { t.Viewport = strptr("width=device-width") },
		"charset":     func(t *model.ExtractedTags) { t.Charset = strptr("utf-8") },
		"canonical":   func(t *model.ExtractedTags) { t.Canonical = strptr("https://example.com/") },
		"language":    func(t *model.ExtractedTags) { t.Language = strptr("en") },
		"og":          func(t *model.ExtractedTags) { t.OGTags = map[string]string{"title": "t"} },
		"twitter":     func(t *model.ExtractedTags) { t.TwitterTags = map[string]string{"card": "summary"} },
		"robots":      func(t *model.ExtractedTags) { t.Robots = strptr("index") },
	}

	for name, add := range fields {
		t.Run(name, func(t *testing.T) {
			base := emptyTags()
			before := Normalize(Evaluate(base, testPageURL).RawScore)

			with := emptyTags()
			add(&with)
			after := Normalize(Evaluate(with, testPageURL).RawScore)

			assert.GreaterOrEqual(t, after, before)
		})
	}
}

func TestEvaluate_ViewportAddedRaisesScore(t *testing.T) {
	tags := emptyTags()
	tags.Title = strptr("Test")
	before := Evaluate(tags, testPageURL)

	tags.Viewport = strptr("width=device-width")
	after := Evaluate(tags, testPageURL)

	assert.Greater(t, after.RawScore, before.RawScore)
	assert.Empty(t, issuesMatching(after, "viewport"))
}

func TestEvaluate_NonNilSlices(t *testing.T) {
	ev := Evaluate(completeTags(), testPageURL)
	assert.NotNil(t, ev.Issues)
	assert.NotNil(t, ev.BestPractices)
}
