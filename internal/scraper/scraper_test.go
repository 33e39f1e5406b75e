package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testPage = `<!DOCTYPE html>
<html><body>
<nav>
  <a href="/login">Member login for registered subscribers</a>
  <a href="https://twitter.com/example">Follow our infrastructure desk on Twitter</a>
  <a href="/about-us">About us and our editorial standards page</a>
</nav>
<main>
  <a href="/news/metro-line">City council approves new metro line extension plan</a>
  <a href="https://other.example/story">Regional water authority launches treatment plant tender</a>
  <a href="/short">Too short</a>
  <a href="/news/metro-line">City council approves new metro line extension plan</a>
</main>
</body></html>`

func TestScraper_Scrape_FiltersBoilerplateAndResolvesLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPage))
	}))
	defer server.Close()

	s := New(&http.Client{Timeout: 5 * time.Second}, "test-agent")

	headlines, err := s.Scrape(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}

	if len(headlines) != 2 {
		t.Fatalf("Expected 2 headlines, got %d: %+v", len(headlines), headlines)
	}

	if headlines[0].URL != server.URL+"/news/metro-line" {
		t.Errorf("Relative link not resolved: %s", headlines[0].URL)
	}
	if headlines[1].URL != "https://other.example/story" {
		t.Errorf("Absolute link changed: %s", headlines[1].URL)
	}
	for _, h := range headlines {
		if strings.Contains(h.URL, "login") || strings.Contains(h.URL, "twitter") {
			t.Errorf("Boilerplate link not skipped: %s", h.URL)
		}
	}
}

func TestScraper_Scrape_HTTPErrorReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := New(&http.Client{Timeout: 5 * time.Second}, "test-agent")

	if _, err := s.Scrape(context.Background(), server.URL); err == nil {
		t.Errorf("Expected error on HTTP 503")
	}
}

func TestCleanHTML_StripsMarkup(t *testing.T) {
	got := CleanHTML("<p>World Bank <b>approves</b>   loan</p>", 300)
	want := "World Bank approves loan"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestCleanHTML_TruncatesAtWordBoundary(t *testing.T) {
	got := CleanHTML("alpha bravo charlie delta", 14)

	if !strings.HasSuffix(got, "…") {
		t.Errorf("Truncated summary should end with ellipsis: %q", got)
	}
	if strings.Contains(got, "charli") {
		t.Errorf("Truncation should cut at a word boundary: %q", got)
	}
	if !strings.HasPrefix(got, "alpha bravo") {
		t.Errorf("Unexpected truncation result: %q", got)
	}
}

func TestCleanHTML_ShortTextUntouched(t *testing.T) {
	got := CleanHTML("short summary", 300)
	if got != "short summary" {
		t.Errorf("Short text should pass through, got %q", got)
	}
}
