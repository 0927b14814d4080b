package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shopfloor/internal/deadline"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatProjectList renders the project table. DEADLINE is the most urgent
// status across each project's management items.
func FormatProjectList(projects []*domain.Project, now time.Time) string {
	headers := []string{"ID", "VENDOR", "PROD NO", "PM", "STAGE", "HEALTH", "DEADLINE", "DELIVERY"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		id := TruncID(p.ID)
		if strings.TrimSpace(p.ID) == "" {
			id = Dim("--")
		}
		rows = append(rows, []string{
			id,
			Bold(p.Vendor),
			p.ProductionNumber,
			OrDash(p.PM),
			StageBadge(p.ProcessStage),
			HealthBadge(p.HealthStatus),
			DeadlineBadge(deadline.ProjectStatus(p, now)),
			DateOrDash(p.DeliveryDate),
		})
	}

	title := fmt.Sprintf("Projects (%d)", len(projects))
	return RenderBox(title, RenderTable(headers, rows, "No projects match."))
}

// FormatProjectInspect renders one project: its metadata on the left and
// its management items with their deadline status on the right.
func FormatProjectInspect(p *domain.Project, now time.Time) string {
	left := projectMetadataPanel(p)
	right := projectItemsPanel(p, now)
	return RenderBox("", lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}

func projectMetadataPanel(p *domain.Project) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Vendor) + "  " + Dim(p.ProductionNumber) + "\n")
	b.WriteString(StageBadge(p.ProcessStage) + "\n\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value)
	}
	field("HEALTH", HealthBadge(p.HealthStatus))
	field("ID", TruncID(p.ID))
	field("COUNTRY", OrDash(p.Country))
	field("PM", OrDash(p.PM))
	field("MANAGER", OrDash(p.Manager))
	field("FAT", DateOrDash(p.FATDate))
	field("DELIVERY", DateOrDash(p.DeliveryDate))
	field("UPDATED", HumanTimestamp(p.UpdatedAt, time.Now()))

	return lipgloss.NewStyle().Width(42).Render(b.String())
}

func projectItemsPanel(p *domain.Project, now time.Time) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("MANAGEMENT ITEMS") + "\n")
	b.WriteString(StyleDim.Render(strings.Repeat("─", 16)) + "\n")
	if len(p.Items) == 0 {
		b.WriteString(Dim("No management items"))
		return b.String()
	}
	b.WriteString(FormatItemTable(p.Items, now))
	return b.String()
}

// FormatItemTable lists management items in display order.
func FormatItemTable(items []domain.ManagementItem, now time.Time) string {
	headers := []string{"ID", "ITEM", "MANAGER", "DEADLINE", "WARN", "STATUS"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		status := Dim("--")
		if item.Deadline != nil {
			status = DeadlineBadge(deadline.ClassifyItem(item, now))
		}
		rows = append(rows, []string{
			TruncID(item.ID),
			Bold(item.Name),
			OrDash(item.Manager),
			DeadlineCell(item, now),
			fmt.Sprintf("%dd", item.WarningDays),
			status,
		})
	}
	return RenderTable(headers, rows)
}
