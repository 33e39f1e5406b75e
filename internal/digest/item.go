package digest

import "time"

// Significance is the coarse importance label assigned during categorization.
type Significance string

const (
	SignificanceHigh   Significance = "high"
	SignificanceMedium Significance = "medium"
	SignificanceLow    Significance = "low"
)

// Item is a single normalized story produced by a fetch collaborator.
// Title, URL, Summary, Published, Source and Tier are set at fetch time;
// RelevanceScore is filled in by the Scorer and Significance by the Categorizer.
type Item struct {
	Title     string       `json:"title"`
	URL       string       `json:"url"`
	Summary   string       `json:"summary"`
	Published *time.Time   `json:"published,omitempty"`
	Source    string       `json:"source"`
	Tier      int          `json:"tier"`
	Score     int          `json:"relevance_score,omitempty"`
	Signif    Significance `json:"significance,omitempty"`
}

// Keywords holds the relevance keyword lists from the sources config.
// A missing list degrades to tier-only scoring, it is not an error.
type Keywords struct {
	Primary   []string `yaml:"primary"`
	Secondary []string `yaml:"secondary"`
}

// Stats carries per-run counts for the archive and monitoring endpoints.
type Stats struct {
	RawItems  int `json:"raw_items"`
	Filtered  int `json:"filtered"`
	Unique    int `json:"unique"`
	Published int `json:"published"`
}
