package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DeadlineColor maps a deadline status to its style.
func DeadlineColor(status domain.DeadlineStatus) lipgloss.Style {
	switch status {
	case domain.DeadlineOverdue:
		return StyleRed
	case domain.DeadlineWarning:
		return StyleYellow
	case domain.DeadlineNormal:
		return StyleGreen
	default:
		return StyleDim
	}
}

// DeadlineBadge renders "● OVERDUE", "● WARNING" or "● NORMAL".
func DeadlineBadge(status domain.DeadlineStatus) string {
	label := strings.ToUpper(string(status))
	if label == "" {
		label = "UNKNOWN"
	}
	return DeadlineColor(status).Render("● " + label)
}

func HealthColor(status domain.HealthStatus) lipgloss.Style {
	switch status {
	case domain.HealthDelayed:
		return StyleRed
	case domain.HealthCompleted:
		return StyleBlue
	case domain.HealthNormal:
		return StyleGreen
	default:
		return StyleDim
	}
}

func HealthBadge(status domain.HealthStatus) string {
	switch status {
	case domain.HealthNormal:
		return StyleGreen.Render("● Normal")
	case domain.HealthDelayed:
		return StyleRed.Render("▲ Delayed")
	case domain.HealthCompleted:
		return StyleBlue.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// StageBadge shows the stage label with its step number, e.g. "[2/5] Confirmed Inspection".
func StageBadge(stage domain.ProcessStage) string {
	for i, s := range domain.ProcessStages {
		if s == stage {
			step := Dim(fmt.Sprintf("[%d/%d]", i+1, len(domain.ProcessStages)))
			style := StylePurple
			if stage == domain.StageShipmentCompleted {
				style = StyleDim
			}
			return step + " " + style.Render(stage.Label())
		}
	}
	return StyleDim.Render(string(stage))
}

func PriorityBadge(p domain.TaskPriority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ High")
	case domain.PriorityMedium:
		return StyleYellow.Render("■ Medium")
	case domain.PriorityLow:
		return StyleBlue.Render("▼ Low")
	default:
		return StyleDim.Render(string(p))
	}
}

// ColumnTitle is the board heading for a task status.
func ColumnTitle(status domain.TaskStatus) string {
	return status.Label()
}

func TicketPriorityBadge(p domain.TicketPriority) string {
	switch p {
	case domain.TicketHigh:
		return StyleRed.Render("high")
	case domain.TicketNormal:
		return StyleFg.Render("normal")
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
