package digest

import (
	"fmt"
	"strings"
)

// Fixed synthesis templates. Pulse composition and outlook selection are
// deterministic functions of the categorized result, so the same input run
// always produces byte-identical text.
const (
	quietDayPulse = "A quiet day across global infrastructure — no significant developments met our relevance threshold. Check back tomorrow."

	broadOutlook = "Broad coverage across all six domains today suggests an active policy week ahead. Monitor multilateral announcements and national budget developments for signals on infrastructure spending trajectories. Subscribe via RSS or bookmark this page for tomorrow's edition."

	moderateOutlook = "Moderate activity across infrastructure policy channels. Watch for follow-up developments on today's high-significance items, particularly any cross-border procurement or financing announcements. Tomorrow's digest will track continuations."

	lightOutlook = "A lighter day in infrastructure intelligence. Policy cycles often see surges around fiscal year milestones, parliamentary sessions, and multilateral convenings. Check back tomorrow for updated coverage."
)

// Synthesizer derives the pulse and outlook texts from a categorized result.
// No free text generation: everything is template assembly over counts,
// significance flags and section labels.
type Synthesizer struct{}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Pulse builds the one-paragraph summary of the day's digest.
func (s *Synthesizer) Pulse(res *Result) string {
	total := res.TotalItems()
	if total == 0 {
		return quietDayPulse
	}

	active := res.ActiveSections()

	parts := []string{
		fmt.Sprintf("Today's digest tracks %d developments across %d domains.", total, len(active)),
	}

	if high := res.HighSignificanceTitles(); len(high) > 0 {
		top := high
		if len(top) > 3 {
			top = top[:3]
		}
		if len(top) == 1 {
			parts = append(parts, fmt.Sprintf("Top story: %s.", top[0]))
		} else {
			parts = append(parts, fmt.Sprintf("Key developments include: %s.", strings.Join(top[:2], "; ")))
		}
	}

	coverage := make([]string, 0, 4)
	for _, section := range active {
		if len(coverage) >= 4 {
			break
		}
		coverage = append(coverage, section.Label)
	}
	if len(coverage) == 1 {
		parts = append(parts, fmt.Sprintf("Coverage focuses on %s.", coverage[0]))
	} else {
		parts = append(parts, fmt.Sprintf("Coverage spans %s.", joinNatural(coverage)))
	}

	return strings.Join(parts, " ")
}

// Outlook picks one of three fixed forward-looking notes keyed purely on how
// many sections carried items today.
func (s *Synthesizer) Outlook(res *Result) string {
	active := len(res.ActiveSections())
	switch {
	case active >= 5:
		return broadOutlook
	case active >= 3:
		return moderateOutlook
	default:
		return lightOutlook
	}
}

// joinNatural joins labels with natural list punctuation:
// "A and B" for two, "A, B, and C" for three or more.
func joinNatural(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
	}
}
