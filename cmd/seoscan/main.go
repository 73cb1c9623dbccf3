// Command seoscan analyzes the SEO tags of one or more pages and prints the
// results as a JSON array. URLs come from the arguments or, when there are
// none, from stdin one per line.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/config"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/logger"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/report"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/seo"
)

var errNoURLs = errors.New("no urls given")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seoscan: %v\n", err)
	}
	os.Exit(code)
}

// run returns 0 when every URL was analyzed, 1 on setup errors and 2 when
// at least one URL failed.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 1, err
	}

	fs := flag.NewFlagSet("seoscan", flag.ContinueOnError)
	concurrency := fs.Int("concurrency", cfg.BatchConcurrency, "number of pages analyzed at once")
	timeout := fs.Duration("timeout", cfg.FetchTimeout, "per-page fetch timeout")
	summary := fs.Bool("summary", false, "attach the dashboard summary to each result")
	if err := fs.Parse(args); err != nil {
		return 1, err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Output: os.Stderr})

	urls := fs.Args()
	if len(urls) == 0 {
		if urls, err = seo.ReadURLs(stdin); err != nil {
			return 1, fmt.Errorf("reading urls: %w", err)
		}
	}
	if len(urls) == 0 {
		return 1, errNoURLs
	}
	if len(urls) > seo.MaxBatchSize {
		log.Warn("batch truncated", "given", len(urls), "max", seo.MaxBatchSize)
	}

	engine := seo.NewEngine(seo.NewHTTPClient(seo.ClientOptions{
		Timeout:              *timeout,
		AllowPrivateNetworks: cfg.AllowPrivateNetworks,
	}))

	start := time.Now()
	items := seo.NewBatchRunner(engine, *concurrency).AnalyzeAll(ctx, urls)

	failed := 0
	for _, item := range items {
		if item.Result == nil {
			failed++
			log.Error("analysis failed", "url", item.Input, "status", item.Status, "error", item.Error)
			continue
		}
		if *summary {
			item.Result.Summary = report.Summarize(item.Result)
		}
	}
	log.Info("batch complete", "urls", len(items), "failed", failed, "duration", time.Since(start).String())

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return 1, err
	}

	if failed > 0 {
		return 2, nil
	}
	return 0, nil
}
