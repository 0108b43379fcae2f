package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tos-network/logcheck/internal/aggregate"
	"github.com/tos-network/logcheck/internal/analyzer"
	"github.com/tos-network/logcheck/internal/config"
	"github.com/tos-network/logcheck/internal/domain"
	"github.com/tos-network/logcheck/internal/notify"
	"github.com/tos-network/logcheck/internal/report"
	"github.com/tos-network/logcheck/internal/scanner"
	"github.com/tos-network/logcheck/internal/util"
)

// Runner orchestrates the full check: discover files, analyze them in
// parallel, aggregate, render, and optionally mail the report.
type Runner struct {
	config   *config.Config
	logger   *zap.SugaredLogger
	scanner  *scanner.Scanner
	analyzer *analyzer.Analyzer
}

// NewRunner creates a new Runner instance
func NewRunner(cfg *config.Config, logger *zap.SugaredLogger) *Runner {
	classifier := analyzer.NewClassifier(cfg.HotPathFragments, cfg.TestFragments)

	return &Runner{
		config:   cfg,
		logger:   logger,
		scanner:  scanner.New(cfg.Extension, cfg.ExcludedDirs, cfg.SkipFragments, logger),
		analyzer: analyzer.New(classifier),
	}
}

// Run executes the scan and writes the report to out (unless the
// configuration routes it to a file).
func (r *Runner) Run(ctx context.Context, out io.Writer) error {
	startTime := time.Now()

	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r.logger.Infof("Scanning %s for unguarded %s log calls", r.config.Root, r.config.Extension)

	files, err := r.scanner.FindSourceFiles(r.config.Root)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	r.logger.Infof("Found %d candidate files", len(files))

	results, err := r.analyzeAll(ctx, files)
	if err != nil {
		return err
	}

	agg := aggregate.New()
	for _, fr := range results {
		agg.Add(fr)
	}
	summary := agg.Summary()
	r.logger.Infof("Found %d unguarded log calls in %d files (%d hot path)",
		summary.Total, summary.Files, summary.HotPath)

	rpt := report.Build(summary, agg.Files())

	if err := r.writeReport(rpt, out); err != nil {
		return err
	}

	if r.config.Email.Enabled {
		notifier := notify.NewService(r.config.Email, r.logger)
		if err := notifier.SendReport(ctx, rpt); err != nil {
			return fmt.Errorf("sending email: %w", err)
		}
		r.logger.Infof("Report emailed to %s", r.config.Email.ToAddress)
	}

	r.logger.Infof("Scan complete in %s", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// analyzeAll analyzes files with a bounded worker group. Each file is
// independent; results land in a slot per file and are folded afterwards,
// so no locking is needed around the summary. A file that fails to read is
// logged and skipped; its slot stays empty and contributes nothing.
func (r *Runner) analyzeAll(ctx context.Context, files []string) ([]domain.FileResult, error) {
	results := make([]domain.FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs())

	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			abs := filepath.Join(r.config.Root, filepath.FromSlash(rel))
			fr, err := r.analyzer.AnalyzeFile(abs, rel)
			if err != nil {
				r.logger.Warnf("Could not read %s: %v", rel, err)
				return nil
			}
			results[i] = fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) jobs() int {
	if r.config.Jobs > 0 {
		return r.config.Jobs
	}
	return runtime.NumCPU()
}

func (r *Runner) writeReport(rpt *report.Report, out io.Writer) error {
	renderer := report.New(report.Format(r.config.Report.Format))

	if path := r.config.Report.OutputPath; path != "" {
		if err := util.EnsureDir(filepath.Dir(path)); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		if err := renderer.Render(f, rpt); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		r.logger.Infof("Report saved to %s", path)
		return nil
	}

	if err := renderer.Render(out, rpt); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
