package analyzer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/errs"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/requestid"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/report"
)

const timeoutMessage = "Analysis timed out. The target URL may be slow to respond."

// Service orchestrates a TagAnalysisProvider, attaches the dashboard
// summary and logs results.
type Service struct {
	provider TagAnalysisProvider
	logger   *slog.Logger
}

// NewService creates a Service backed by the given provider.
func NewService(provider TagAnalysisProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Analyze delegates to the provider and logs the outcome.
func (s *Service) Analyze(ctx context.Context, rawURL string) (*model.AnalysisResult, error) {
	logger := s.logger.With("url", rawURL, "request_id", requestid.FromContext(ctx))

	result, err := s.provider.Analyze(ctx, rawURL)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &errs.AppError{
				Kind:    errs.Unreachable,
				Message: timeoutMessage,
				Cause:   err,
			}
		}

		attrs := []any{"error", err}
		var appErr *errs.AppError
		if errors.As(err, &appErr) {
			attrs = append(attrs, "kind", appErr.Kind.String())
			if appErr.UpstreamStatus != 0 {
				attrs = append(attrs, "target_status", appErr.UpstreamStatus)
			}
		}
		logger.Error("analysis failed", attrs...)
		return nil, err
	}

	result.Summary = report.Summarize(result)

	logger.Info("analysis complete",
		"score", result.Score,
		"health", result.Summary.Health,
		"errors", result.Summary.IssueCounts.Errors,
		"warnings", result.Summary.IssueCounts.Warnings,
		"implemented_practices", result.Summary.ImplementedPractices,
	)
	return result, nil
}
