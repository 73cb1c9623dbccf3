package seo

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
)

const (
	ogPrefix      = "og:"
	twitterPrefix = "twitter:"
)

// first remembers the first occurrence of an attribute lookup. A matching
// element without the attribute still counts as the first occurrence.
type first struct {
	seen bool
	val  *string
}

func (f *first) offer(val string, ok bool) {
	if f.seen {
		return
	}
	f.seen = true
	if ok {
		f.val = &val
	}
}

// Extract parses an HTML document and reads the SEO tags out of it.
func Extract(r io.Reader) (model.ExtractedTags, error) {
	root, err := html.Parse(r)
	if err != nil {
		return model.ExtractedTags{}, err
	}
	return extractTags(goquery.NewDocumentFromNode(root)), nil
}

func extractTags(doc *goquery.Document) model.ExtractedTags {
	tags := model.ExtractedTags{
		OGTags:      map[string]string{},
		TwitterTags: map[string]string{},
		OtherTags:   map[string]string{},
	}

	if title := doc.Find("title").First(); title.Length() > 0 {
		text := strings.TrimSpace(title.Text())
		tags.Title = &text
	}

	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		tags.Language = &lang
	}

	var canonical first
	doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !hasToken(s.AttrOr("rel", ""), "canonical") {
			return true
		}
		canonical.offer(s.Attr("href"))
		return false
	})
	tags.Canonical = canonical.val

	var description, viewport, robots, charset, equivContentType first
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name := s.AttrOr("name", "")
		property := s.AttrOr("property", "")
		content, hasContent := s.Attr("content")
		lname := strings.ToLower(name)

		if cs, ok := s.Attr("charset"); ok {
			charset.offer(cs, true)
		}
		if strings.EqualFold(s.AttrOr("http-equiv", ""), "content-type") {
			equivContentType.offer(content, hasContent)
		}

		switch lname {
		case "description":
			description.offer(content, hasContent)
		case "viewport":
			viewport.offer(content, hasContent)
		case "robots":
			robots.offer(content, hasContent)
		}

		if content == "" {
			return
		}

		if hasPrefixFold(property, ogPrefix) {
			tags.OGTags[property[len(ogPrefix):]] = content
		}
		if hasPrefixFold(name, twitterPrefix) {
			tags.TwitterTags[name[len(twitterPrefix):]] = content
		}

		switch {
		case name != "" && !isClassifiedName(lname):
			tags.OtherTags[name] = content
		case property != "" && !hasPrefixFold(property, ogPrefix):
			tags.OtherTags[property] = content
		}
	})

	tags.Description = description.val
	tags.Viewport = viewport.val
	tags.Robots = robots.val

	// An empty <meta charset> falls through to the http-equiv declaration.
	switch {
	case charset.val != nil && *charset.val != "":
		tags.Charset = charset.val
	case equivContentType.val != nil:
		tags.Charset = equivContentType.val
	default:
		tags.Charset = charset.val
	}

	return tags
}

// isClassifiedName reports whether a lowercased meta name already has its
// own field, which keeps it out of OtherTags.
func isClassifiedName(lname string) bool {
	switch lname {
	case "description", "viewport", "robots":
		return true
	}
	return strings.HasPrefix(lname, twitterPrefix)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// hasToken reports whether the space-separated attribute value contains tok.
func hasToken(attr, tok string) bool {
	for f := range strings.FieldsSeq(attr) {
		if strings.EqualFold(f, tok) {
			return true
		}
	}
	return false
}
