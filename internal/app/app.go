package app

import (
	"context"
	"fmt"
	"time"

	"github.com/politico94/infradigest/internal/config"
	"github.com/politico94/infradigest/internal/digest"
	"github.com/politico94/infradigest/internal/fetch"
	"github.com/politico94/infradigest/internal/logger"
	"github.com/politico94/infradigest/internal/metrics"
	"github.com/politico94/infradigest/internal/render"
	"github.com/politico94/infradigest/internal/retry"
	"github.com/politico94/infradigest/internal/storage"
)

// Options are the per-invocation settings assembled in main from flags and
// environment variables.
type Options struct {
	SourcesPath   string
	OutputDir     string
	ArchiveDir    string
	DatabaseURL   string
	RetentionDays int
	DryRun        bool

	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	MinInterval    time.Duration
	UserAgent      string
}

// Run executes one digest pipeline pass: fetch, score, dedup, categorize,
// synthesize, render, archive. Everything after fetching is deterministic:
// the same item list always produces the same page.
func Run(ctx context.Context, opts Options) error {
	log := logger.With("app")
	start := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(start))
	}()

	cfg, err := config.LoadSources(opts.SourcesPath)
	if err != nil {
		return fmt.Errorf("loading sources: %w", err)
	}
	log.Info("loaded sources", "total", cfg.Metadata.TotalSources, "categories", len(cfg.Categories))

	fetcher := fetch.New(fetch.Options{
		Timeout:     opts.RequestTimeout,
		Retry:       retry.Config{Attempts: opts.RetryAttempts, Delay: opts.RetryDelay},
		UserAgent:   opts.UserAgent,
		MinInterval: opts.MinInterval,
	})

	raw := fetcher.FetchAll(ctx, cfg.Categories)
	log.Info("fetched raw items", "count", len(raw))

	scored := digest.NewScorer(cfg.Keywords).Run(raw)
	log.Info("after keyword filter", "count", len(scored))

	unique := digest.NewDeduplicator().Run(scored)
	log.Info("after dedup", "count", len(unique))

	if opts.DryRun {
		printPreview(unique)
		return nil
	}

	result := digest.NewCategorizer(digest.DefaultSections()).Run(unique)
	for _, s := range result.Sections() {
		log.Info("categorized section", "section", s.ID, "items", len(result.Items(s.ID)))
	}

	synth := digest.NewSynthesizer()
	pulse := synth.Pulse(result)
	outlook := synth.Outlook(result)

	renderer, err := render.New()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	pagePath, err := renderer.WriteFile(opts.OutputDir, result, pulse, outlook, cfg.Metadata, now)
	if err != nil {
		return err
	}
	log.Info("digest written", "path", pagePath)

	stats := digest.Stats{
		RawItems:  len(raw),
		Filtered:  len(scored),
		Unique:    len(unique),
		Published: result.TotalItems(),
	}
	metrics.Global.RecordRun(stats.RawItems, stats.Filtered, stats.Unique, stats.Published)

	rec := storage.Record{
		Date:     now.Format("2006-01-02"),
		Pulse:    pulse,
		Outlook:  outlook,
		Sections: result.BySection(),
		Stats:    stats,
	}

	archivePath, err := storage.NewFileArchive(opts.ArchiveDir).Save(rec)
	if err != nil {
		return err
	}
	log.Info("archive written", "path", archivePath)

	if opts.DatabaseURL != "" {
		pg, err := storage.NewPostgresArchive(opts.DatabaseURL, opts.RetentionDays)
		if err != nil {
			return fmt.Errorf("postgres archive: %w", err)
		}
		defer pg.Close()

		if err := pg.Save(rec); err != nil {
			return fmt.Errorf("postgres archive: %w", err)
		}
		if pruned, err := pg.Cleanup(); err != nil {
			log.Warn("archive cleanup failed", "error", err)
		} else if pruned > 0 {
			log.Info("pruned old archive runs", "count", pruned)
		}
	}

	metrics.Global.SetLastRun()
	log.Info("digest complete", "published", stats.Published, "sections", len(result.ActiveSections()))
	return nil
}
