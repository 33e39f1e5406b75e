package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxHeadlinesPerPage caps how many links one scraped page can contribute.
const MaxHeadlinesPerPage = 15

// Anchor text length bounds: shorter is navigation chrome, longer is body text.
const (
	minTitleLen = 20
	maxTitleLen = 300
)

// Navigation and boilerplate links we never want as headlines.
var skipPatterns = []string{
	"login", "sign-in", "subscribe", "cookie", "privacy",
	"terms", "contact", "about-us", "careers", "javascript:",
	"mailto:", "#", "facebook.com", "twitter.com", "linkedin.com",
}

// Headline is a candidate story link harvested from a webpage.
type Headline struct {
	Title string
	URL   string
}

// Scraper harvests recent headline links from pages that don't offer a feed.
type Scraper struct {
	client    *http.Client
	userAgent string
}

func New(client *http.Client, userAgent string) *Scraper {
	return &Scraper{client: client, userAgent: userAgent}
}

// Scrape fetches pageURL and returns the plausible headline links on it:
// anchors with story-length text, absolute (or resolvable) URLs, and nothing
// matching the boilerplate skip list.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) ([]Headline, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	seen := make(map[string]struct{})
	headlines := make([]Headline, 0, MaxHeadlinesPerPage)

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		href, _ := sel.Attr("href")

		if len(title) < minTitleLen || len(title) > maxTitleLen {
			return true
		}
		href = resolveHref(base, href)
		if !strings.HasPrefix(href, "http") {
			return true
		}
		if _, dup := seen[href]; dup {
			return true
		}
		if isBoilerplate(href) {
			return true
		}

		seen[href] = struct{}{}
		headlines = append(headlines, Headline{Title: title, URL: href})

		return len(headlines) < MaxHeadlinesPerPage
	})

	return headlines, nil
}

func resolveHref(base *url.URL, href string) string {
	if strings.HasPrefix(href, "/") {
		ref, err := url.Parse(href)
		if err != nil {
			return href
		}
		return base.ResolveReference(ref).String()
	}
	return href
}

func isBoilerplate(href string) bool {
	lower := strings.ToLower(href)
	for _, p := range skipPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// CleanHTML strips markup from a feed summary and truncates it to roughly
// maxLen characters at a word boundary, appending an ellipsis.
func CleanHTML(text string, maxLen int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return strings.TrimSpace(text)
	}

	clean := strings.Join(strings.Fields(doc.Text()), " ")
	if maxLen <= 0 || len(clean) <= maxLen {
		return clean
	}

	cut := clean[:maxLen]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
