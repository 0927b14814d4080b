package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shopfloor/internal/deadline"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DaysLeft renders a countdown the way the shop floor reads it:
// "D-3" before the deadline, "D-day" on it, "D+2" after.
func DaysLeft(days int) string {
	switch {
	case days == 0:
		return "D-day"
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	default:
		return fmt.Sprintf("D+%d", -days)
	}
}

// DeadlineCell renders an item deadline with its countdown, colored by its
// status. Items without a deadline render as a dim dash.
func DeadlineCell(item domain.ManagementItem, now time.Time) string {
	if item.Deadline == nil {
		return Dim("--")
	}
	status := deadline.Classify(*item.Deadline, item.WarningDays, now)
	days := deadline.DaysUntil(*item.Deadline, now)
	return DeadlineColor(status).Render(fmt.Sprintf("%s (%s)", domain.FormatDate(item.Deadline), DaysLeft(days)))
}

// DateOrDash formats an optional date as YYYY-MM-DD.
func DateOrDash(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return StyleFg.Render(domain.FormatDate(t))
}

func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}

// HumanTimestamp returns a relative timestamp such as "5m ago", falling
// back to the calendar date after a day.
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.In(time.Local).Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.In(time.Local).Format("Jan 2, 2006")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
