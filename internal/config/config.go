package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/politico94/infradigest/internal/digest"
)

// Source is one feed or page the fetcher pulls headlines from.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Feed string `yaml:"feed"` // RSS/Atom URL when it differs from the page URL
	Type string `yaml:"type"` // "rss" or "scrape"
	Tier int    `yaml:"tier"` // 1 = most authoritative, defaults to 3
}

// FeedURL returns the URL the fetcher should hit for an RSS source.
func (s Source) FeedURL() string {
	if s.Feed != "" {
		return s.Feed
	}
	return s.URL
}

// SourceCategory groups sources for fetching and logging; it is unrelated to
// the digest sections, which are assigned by rule matching after fetching.
type SourceCategory struct {
	Key     string   `yaml:"key"`
	Label   string   `yaml:"label"`
	Sources []Source `yaml:"sources"`
}

// Metadata describes the source roster for the rendered page header.
type Metadata struct {
	Title        string `yaml:"title"`
	TotalSources string `yaml:"total_sources"`
	Categories   int    `yaml:"categories"`
}

// Sources is the full sources.yaml document: the source roster plus the
// relevance keyword lists threaded into the scorer.
type Sources struct {
	Metadata   Metadata         `yaml:"metadata"`
	Keywords   digest.Keywords  `yaml:"keywords"`
	Categories []SourceCategory `yaml:"categories"`
}

// LoadSources reads and validates the sources configuration file.
func LoadSources(path string) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var cfg Sources
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sources YAML: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(cfg *Sources) {
	for ci := range cfg.Categories {
		for si := range cfg.Categories[ci].Sources {
			src := &cfg.Categories[ci].Sources[si]
			if src.Tier == 0 {
				src.Tier = 3
			}
			if src.Type == "" {
				src.Type = "scrape"
			}
		}
	}
	if cfg.Metadata.Categories == 0 {
		cfg.Metadata.Categories = len(cfg.Categories)
	}
}

func validate(cfg *Sources) error {
	if len(cfg.Categories) == 0 {
		return fmt.Errorf("sources config has no categories")
	}
	for _, cat := range cfg.Categories {
		if cat.Key == "" {
			return fmt.Errorf("source category without a key")
		}
		for _, src := range cat.Sources {
			if src.Name == "" {
				return fmt.Errorf("category %s: source without a name", cat.Key)
			}
			if src.URL == "" && src.Feed == "" {
				return fmt.Errorf("category %s: source %s has neither url nor feed", cat.Key, src.Name)
			}
			if src.Type != "rss" && src.Type != "scrape" {
				return fmt.Errorf("category %s: source %s has unknown type %q", cat.Key, src.Name, src.Type)
			}
			if src.Tier < 1 || src.Tier > 3 {
				return fmt.Errorf("category %s: source %s has tier %d, want 1-3", cat.Key, src.Name, src.Tier)
			}
		}
	}
	return nil
}
