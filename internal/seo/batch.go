package seo

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/errs"
)

// MaxBatchSize caps how many URLs one batch analyzes.
const MaxBatchSize = 1000

// Analyzer analyzes a single URL. *Engine satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*model.AnalysisResult, error)
}

// BatchItem is the outcome for one input URL. Exactly one of Result and
// Error is set.
type BatchItem struct {
	Input  string                `json:"input"`
	Result *model.AnalysisResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
	Status int                   `json:"status,omitempty"`
}

// BatchRunner analyzes many URLs with a bounded worker pool.
type BatchRunner struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchRunner returns a BatchRunner running at most concurrency analyses
// at a time.
func NewBatchRunner(a Analyzer, concurrency int) *BatchRunner {
	return &BatchRunner{
		analyzer:    a,
		concurrency: max(1, concurrency),
	}
}

type batchJob struct {
	index int
	input string
}

// AnalyzeAll runs every URL through the analyzer and returns the items in
// input order. URLs past MaxBatchSize are dropped.
func (b *BatchRunner) AnalyzeAll(ctx context.Context, urls []string) []BatchItem {
	limit := min(len(urls), MaxBatchSize)
	urls = urls[:limit]

	items := make([]BatchItem, limit)
	if limit == 0 {
		return items
	}

	jobs := make(chan batchJob, limit)
	numWorkers := min(limit, b.concurrency)

	// Each worker writes only its own index, so items needs no lock.
	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for job := range jobs {
				items[job.index] = b.analyzeOne(ctx, job.input)
			}
		})
	}

	for i, u := range urls {
		jobs <- batchJob{index: i, input: u}
	}
	close(jobs)
	wg.Wait()

	return items
}

func (b *BatchRunner) analyzeOne(ctx context.Context, input string) BatchItem {
	item := BatchItem{Input: input}
	if err := ctx.Err(); err != nil {
		item.Error = err.Error()
		item.Status = errs.StatusOf(err)
		return item
	}

	result, err := b.analyzer.Analyze(ctx, input)
	if err != nil {
		item.Error = message(err)
		item.Status = errs.StatusOf(err)
		return item
	}
	item.Result = result
	return item
}

// message prefers the user-facing text of an *errs.AppError.
func message(err error) string {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// ReadURLs reads one URL per line, trimming whitespace and skipping blank
// lines.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
