package digest

import (
	"sort"
	"strings"
)

// SectionMatchThreshold is the minimum competitive match score an item needs
// against its best section to be published at all.
const SectionMatchThreshold = 2

// Categorizer assigns each item to at most one section by competitive
// rule matching. It is a greedy winner-take-all pass, not an optimizer:
// items are processed in relevance order and claim section capacity
// first-come-first-served.
type Categorizer struct {
	sections []SectionRules
}

// NewCategorizer builds a Categorizer over a fixed, ordered rule table.
// Section order is part of the contract: score ties keep the earlier section.
func NewCategorizer(sections []SectionRules) *Categorizer {
	return &Categorizer{sections: sections}
}

// Result maps each section to its accepted items, in acceptance order.
// No URL appears under more than one section.
type Result struct {
	sections []SectionRules
	items    map[string][]Item
}

// Sections returns the rule table in its fixed evaluation order.
func (r *Result) Sections() []SectionRules {
	return r.sections
}

// Items returns the accepted items for one section.
func (r *Result) Items(sectionID string) []Item {
	return r.items[sectionID]
}

// BySection returns the section id -> items mapping handed to the render and
// persistence collaborators.
func (r *Result) BySection() map[string][]Item {
	return r.items
}

// TotalItems counts accepted items across all sections.
func (r *Result) TotalItems() int {
	total := 0
	for _, items := range r.items {
		total += len(items)
	}
	return total
}

// ActiveSections returns the sections holding at least one item, in rule order.
func (r *Result) ActiveSections() []SectionRules {
	active := make([]SectionRules, 0, len(r.sections))
	for _, s := range r.sections {
		if len(r.items[s.ID]) > 0 {
			active = append(active, s)
		}
	}
	return active
}

// HighSignificanceTitles returns titles of high-significance items in
// selection order (section order, then acceptance order within a section).
func (r *Result) HighSignificanceTitles() []string {
	var titles []string
	for _, s := range r.sections {
		for _, item := range r.items[s.ID] {
			if item.Signif == SignificanceHigh {
				titles = append(titles, item.Title)
			}
		}
	}
	return titles
}

// Run sorts items by relevance descending and places each into its single
// best-matching section, enforcing the per-section capacity and the
// one-URL-one-section rule. Items with no qualifying section are dropped:
// mis-filing a story is worse than leaving it out of the digest.
func (c *Categorizer) Run(items []Item) *Result {
	result := &Result{
		sections: c.sections,
		items:    make(map[string][]Item, len(c.sections)),
	}
	for _, s := range c.sections {
		result.items[s.ID] = []Item{}
	}

	// Highest-relevance items get first claim on section capacity.
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	usedURLs := make(map[string]struct{}, len(sorted))

	for _, item := range sorted {
		bestSection, bestScore := c.bestMatch(item)
		if bestSection == "" || bestScore < SectionMatchThreshold {
			continue
		}
		if _, used := usedURLs[item.URL]; used {
			continue
		}
		if len(result.items[bestSection]) >= MaxItemsPerSection {
			continue
		}

		item.Signif = significance(item, bestScore)
		result.items[bestSection] = append(result.items[bestSection], item)
		usedURLs[item.URL] = struct{}{}
	}

	return result
}

// bestMatch scores the item against every section and returns the strictly
// highest scorer. Ties keep the section evaluated first.
func (c *Categorizer) bestMatch(item Item) (string, int) {
	text := strings.ToLower(item.Title + " " + item.Summary)
	source := strings.ToLower(item.Source)

	bestSection := ""
	bestScore := 0

	for _, rules := range c.sections {
		score := 0

		// Source name match is a strong signal; one hint is enough.
		for _, hint := range rules.SourceHints {
			if strings.Contains(source, hint) {
				score += 5
				break
			}
		}

		for _, kw := range rules.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}

		if score > bestScore {
			bestScore = score
			bestSection = rules.ID
		}
	}

	return bestSection, bestScore
}

func significance(item Item, sectionScore int) Significance {
	total := item.Score + sectionScore
	switch {
	case total >= 10 || item.Tier == 1:
		return SignificanceHigh
	case total >= 5:
		return SignificanceMedium
	default:
		return SignificanceLow
	}
}
