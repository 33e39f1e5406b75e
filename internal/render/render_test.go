package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/politico94/infradigest/internal/config"
	"github.com/politico94/infradigest/internal/digest"
)

func testResult(t *testing.T) *digest.Result {
	t.Helper()
	sections := []digest.SectionRules{
		{ID: "alpha", Label: "alpha coverage", Keywords: []string{"bridge", "tunnel"}},
		{ID: "beta", Label: "beta coverage", Keywords: []string{"unmatched", "keywords"}},
	}
	items := []digest.Item{
		{Title: "Bridge tunnel project reaches financial close", URL: "https://x.example/close", Source: "Test Wire", Summary: "A short summary.", Score: 8, Tier: 2},
	}
	return digest.NewCategorizer(sections).Run(items)
}

func TestRenderer_Render_IncludesContentAndSkipsEmptySections(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	now := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	html, err := r.Render(testResult(t), "pulse text here", "outlook text here", config.Metadata{Title: "Test Digest", TotalSources: "2"}, now)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	page := string(html)
	for _, want := range []string{
		"Test Digest",
		"pulse text here",
		"outlook text here",
		"Bridge tunnel project reaches financial close",
		"https://x.example/close",
		"significance-high",
		"Friday, March 14, 2025",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Rendered page missing %q", want)
		}
	}

	if strings.Contains(page, "beta coverage") {
		t.Errorf("Empty section should not be rendered")
	}
}

func TestRenderer_WriteFile(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "output")
	path, err := r.WriteFile(dir, testResult(t), "p", "o", config.Metadata{}, time.Now())
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Base(path) != "index.html" {
		t.Errorf("Unexpected output filename: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Output file not written: %v", err)
	}
}
