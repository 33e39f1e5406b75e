package fetch

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/politico94/infradigest/internal/cache"
	"github.com/politico94/infradigest/internal/config"
	"github.com/politico94/infradigest/internal/digest"
	"github.com/politico94/infradigest/internal/logger"
	"github.com/politico94/infradigest/internal/metrics"
	"github.com/politico94/infradigest/internal/ratelimit"
	"github.com/politico94/infradigest/internal/retry"
	"github.com/politico94/infradigest/internal/scraper"
)

const (
	// MaxItemsPerSource caps how many entries one feed can contribute per run.
	MaxItemsPerSource = 15
	// MaxAgeDays drops entries older than the digest window.
	MaxAgeDays = 2
	// MinTitleLen drops junk entries with no real headline.
	MinTitleLen = 10
	// MaxSummaryLen truncates summaries at a word boundary.
	MaxSummaryLen = 300
)

// Options configures the fetcher's HTTP behavior.
type Options struct {
	Timeout     time.Duration
	Retry       retry.Config
	UserAgent   string
	MinInterval time.Duration // pacing between requests to the same host
}

// Fetcher pulls raw headlines from every configured source and normalizes
// them into digest items. Fetch failures are logged and skipped; the core
// pipeline only ever sees items that were fetched successfully.
type Fetcher struct {
	parser  *gofeed.Parser
	scraper *scraper.Scraper
	cache   *cache.Cache
	limiter *ratelimit.Limiter
	retry   retry.Config
}

func New(opts Options) *Fetcher {
	client := &http.Client{Timeout: opts.Timeout}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = opts.UserAgent

	return &Fetcher{
		parser:  parser,
		scraper: scraper.New(client, opts.UserAgent),
		cache:   cache.New(),
		limiter: ratelimit.New(opts.MinInterval),
		retry:   opts.Retry,
	}
}

// FetchAll walks the source roster category by category and returns the
// combined normalized item list. Order is deterministic: roster order for
// sources, feed order for entries.
func (f *Fetcher) FetchAll(ctx context.Context, categories []config.SourceCategory) []digest.Item {
	log := logger.With("fetch")

	var all []digest.Item
	for _, cat := range categories {
		log.Info("fetching category", "label", cat.Label, "sources", len(cat.Sources))
		for _, src := range cat.Sources {
			items := f.FetchSource(ctx, src)
			log.Debug("fetched source", "source", src.Name, "items", len(items))
			all = append(all, items...)
		}
	}
	return all
}

// FetchSource fetches one source, dispatching on its type. Results are cached
// by URL for the run, so a feed listed under two categories is pulled once.
func (f *Fetcher) FetchSource(ctx context.Context, src config.Source) []digest.Item {
	log := logger.With("fetch")

	target := src.FeedURL()
	if items, ok := f.cache.Get(target); ok {
		return items
	}

	if err := f.limiter.Wait(ctx, target); err != nil {
		return nil
	}

	var items []digest.Item
	var err error
	if src.Type == "rss" {
		items, err = f.fetchRSS(ctx, src)
	} else {
		items, err = f.fetchScrape(ctx, src)
	}
	if err != nil {
		log.Warn("fetch failed", "source", src.Name, "error", err)
		metrics.Global.IncrementSourceErrors()
		return nil
	}

	f.cache.Set(target, items, 15*time.Minute)
	return items
}

func (f *Fetcher) fetchRSS(ctx context.Context, src config.Source) ([]digest.Item, error) {
	var feed *gofeed.Feed
	err := retry.Do(ctx, f.retry, func() error {
		var parseErr error
		feed, parseErr = f.parser.ParseURLWithContext(src.FeedURL(), ctx)
		return parseErr
	})
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -MaxAgeDays)

	items := make([]digest.Item, 0, MaxItemsPerSource)
	for _, entry := range feed.Items {
		if len(items) >= MaxItemsPerSource {
			break
		}

		published := entryTime(entry)
		if published != nil && published.Before(cutoff) {
			continue
		}

		title := strings.TrimSpace(entry.Title)
		if len(title) < MinTitleLen {
			continue
		}

		items = append(items, digest.Item{
			Title:     title,
			URL:       strings.TrimSpace(entry.Link),
			Summary:   scraper.CleanHTML(entry.Description, MaxSummaryLen),
			Published: published,
			Source:    src.Name,
			Tier:      src.Tier,
		})
	}

	return items, nil
}

func (f *Fetcher) fetchScrape(ctx context.Context, src config.Source) ([]digest.Item, error) {
	headlines, err := f.scraper.Scrape(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	items := make([]digest.Item, 0, len(headlines))
	for _, h := range headlines {
		items = append(items, digest.Item{
			Title:  h.Title,
			URL:    h.URL,
			Source: src.Name,
			Tier:   src.Tier,
		})
	}
	return items, nil
}

func entryTime(entry *gofeed.Item) *time.Time {
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed
	}
	return entry.UpdatedParsed
}
