package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSources(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadSources_AppliesDefaults(t *testing.T) {
	path := writeSources(t, `
metadata:
  title: Test Digest
  total_sources: "3"
keywords:
  primary: [infrastructure]
  secondary: [funding]
categories:
  - key: multilateral
    label: Multilateral
    sources:
      - name: World Bank News
        url: https://worldbank.example/news
        feed: https://worldbank.example/rss
        type: rss
        tier: 1
      - name: Some Think Tank
        url: https://thinktank.example
`)

	cfg, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources failed: %v", err)
	}

	src := cfg.Categories[0].Sources[1]
	if src.Tier != 3 {
		t.Errorf("Expected default tier 3, got %d", src.Tier)
	}
	if src.Type != "scrape" {
		t.Errorf("Expected default type scrape, got %s", src.Type)
	}
	if cfg.Metadata.Categories != 1 {
		t.Errorf("Expected categories count default 1, got %d", cfg.Metadata.Categories)
	}
	if len(cfg.Keywords.Primary) != 1 || cfg.Keywords.Primary[0] != "infrastructure" {
		t.Errorf("Keywords not loaded: %v", cfg.Keywords)
	}
}

func TestLoadSources_FeedURLFallsBackToPageURL(t *testing.T) {
	src := Source{URL: "https://page.example"}
	if src.FeedURL() != "https://page.example" {
		t.Errorf("FeedURL should fall back to url, got %s", src.FeedURL())
	}
	src.Feed = "https://page.example/rss"
	if src.FeedURL() != "https://page.example/rss" {
		t.Errorf("FeedURL should prefer feed, got %s", src.FeedURL())
	}
}

func TestLoadSources_RejectsInvalidConfigs(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no categories", "metadata:\n  title: x\n"},
		{"source without name", `
categories:
  - key: c
    sources:
      - url: https://x.example
`},
		{"source without url", `
categories:
  - key: c
    sources:
      - name: X
`},
		{"bad type", `
categories:
  - key: c
    sources:
      - name: X
        url: https://x.example
        type: carrier-pigeon
`},
		{"bad tier", `
categories:
  - key: c
    sources:
      - name: X
        url: https://x.example
        tier: 9
`},
	}

	for _, tc := range cases {
		path := writeSources(t, tc.content)
		if _, err := LoadSources(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadSources_MissingFile(t *testing.T) {
	if _, err := LoadSources(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
