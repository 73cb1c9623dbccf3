package analyzer

import (
	"context"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
)

// TagAnalysisProvider defines the contract for any analysis engine.
type TagAnalysisProvider interface {
	Analyze(ctx context.Context, rawURL string) (*model.AnalysisResult, error)
}
