package digest

import "strings"

// RelevanceThreshold is the minimum score an item needs to survive filtering.
const RelevanceThreshold = 2

// Scorer filters items by infrastructure keyword relevance. Keyword lists are
// fixed at construction so concurrent runs with different configs don't share
// state.
type Scorer struct {
	primary   []string
	secondary []string
}

// NewScorer builds a Scorer from the configured keyword lists. Keywords are
// lowercased once up front; nil lists are fine and leave tier bonuses as the
// only signal.
func NewScorer(kw Keywords) *Scorer {
	return &Scorer{
		primary:   lowerAll(kw.Primary),
		secondary: lowerAll(kw.Secondary),
	}
}

// Run scores each item against title+summary and returns only the items that
// meet RelevanceThreshold, annotated with their score. Items below threshold
// are dropped silently.
func (s *Scorer) Run(items []Item) []Item {
	scored := make([]Item, 0, len(items))
	for _, item := range items {
		score := s.score(item)
		if score < RelevanceThreshold {
			continue
		}
		item.Score = score
		scored = append(scored, item)
	}
	return scored
}

func (s *Scorer) score(item Item) int {
	text := strings.ToLower(item.Title + " " + item.Summary)

	score := 0
	for _, kw := range s.primary {
		if strings.Contains(text, kw) {
			score += 2
		}
	}
	for _, kw := range s.secondary {
		if strings.Contains(text, kw) {
			score++
		}
	}

	// Tier 1 sources are almost always relevant
	switch item.Tier {
	case 1:
		score += 3
	case 2:
		score++
	}

	return score
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, strings.ToLower(kw))
	}
	return out
}
