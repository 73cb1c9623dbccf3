package seo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/errs"
)

const htmlContentType = "text/html"

// Engine runs the fetch, extract, evaluate and normalize pipeline for one URL.
type Engine struct {
	fetcher Fetcher
}

// NewEngine returns an Engine backed by the given Fetcher.
func NewEngine(fetcher Fetcher) *Engine {
	return &Engine{fetcher: fetcher}
}

// Analyze normalizes rawURL, fetches the page and scores its tags. Every
// failure is returned as an *errs.AppError.
func (e *Engine) Analyze(ctx context.Context, rawURL string) (*model.AnalysisResult, error) {
	targetURL, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, &errs.AppError{Kind: errs.InvalidInput, Message: err.Error()}
	}

	doc, err := e.fetchHTML(ctx, targetURL)
	if err != nil {
		return nil, err
	}

	tags, err := Extract(doc)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.ParsingFailed,
			Message: "Failed to parse the HTML content.",
			Cause:   err,
		}
	}

	ev := Evaluate(tags, targetURL)

	return &model.AnalysisResult{
		URL:           targetURL,
		ExtractedTags: tags,
		Score:         Normalize(ev.RawScore),
		Issues:        ev.Issues,
		BestPractices: ev.BestPractices,
	}, nil
}

// fetchHTML returns the page decoded to UTF-8.
func (e *Engine) fetchHTML(ctx context.Context, targetURL string) (io.Reader, error) {
	resp, err := e.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		return nil, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errs.AppError{
			Kind:           errs.UpstreamStatus,
			UpstreamStatus: resp.StatusCode,
			Message:        "Failed to fetch website: " + resp.StatusText,
		}
	}

	if !strings.Contains(strings.ToLower(resp.ContentType), htmlContentType) {
		ct := resp.ContentType
		if ct == "" {
			ct = "unknown"
		}
		return nil, &errs.AppError{
			Kind:    errs.UnsupportedContent,
			Message: "The URL does not return HTML content. Content type: " + ct,
		}
	}

	decoded, err := charset.NewReader(resp.Body, resp.ContentType)
	if err != nil {
		return nil, transportError(err)
	}
	body, err := io.ReadAll(decoded)
	if err != nil {
		return nil, transportError(err)
	}
	return bytes.NewReader(body), nil
}

// transportError reports the underlying network failure without the
// method and URL prefix net/http adds.
func transportError(err error) error {
	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		cause = urlErr.Err
	}
	return &errs.AppError{
		Kind:    errs.Unreachable,
		Message: fmt.Sprintf("Failed to fetch website: %v", cause),
		Cause:   err,
	}
}
