package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatFAQList groups questions under their categories.
func FormatFAQList(items []domain.FAQItem) string {
	if len(items) == 0 {
		return RenderBox("Team guide", Dim("No entries."))
	}
	var b strings.Builder
	current := ""
	for _, item := range items {
		if item.Category != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = item.Category
			b.WriteString(StylePurple.Render(current) + "\n")
		}
		fmt.Fprintf(&b, "  %s %s\n", Dim(item.ID+"."), item.Question)
	}
	return RenderBox("Team guide", strings.TrimRight(b.String(), "\n"))
}

// FormatFAQ renders one question with its answer wrapped to 64 columns.
func FormatFAQ(item *domain.FAQItem) string {
	answer := lipgloss.NewStyle().Width(64).Render(item.Answer)
	content := StylePurple.Render(item.Category) + "\n" + Bold("Q. "+item.Question) + "\n\n" + answer
	return RenderBox("", content)
}
