package app

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/politico94/infradigest/internal/digest"
)

const previewLimit = 25

var (
	previewHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0969DA")).
				Bold(true)

	previewScoreStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F778BA")).
				Bold(true)

	previewSourceStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFA657"))

	previewDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E7681"))
)

// printPreview shows the top items a dry run would hand to the categorizer,
// highest relevance first.
func printPreview(items []digest.Item) {
	sorted := make([]digest.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	fmt.Println(previewHeaderStyle.Render(fmt.Sprintf("Dry run: top %d of %d items ready for categorization", min(previewLimit, len(sorted)), len(sorted))))

	for i, item := range sorted {
		if i >= previewLimit {
			break
		}
		title := item.Title
		if len(title) > 80 {
			title = title[:80]
		}
		fmt.Printf("  %s %s %s\n",
			previewScoreStyle.Render(fmt.Sprintf("[%2d]", item.Score)),
			previewSourceStyle.Render(item.Source+":"),
			title,
		)
	}

	fmt.Println(previewDimStyle.Render("Dry run complete. No digest was rendered or archived."))
}
