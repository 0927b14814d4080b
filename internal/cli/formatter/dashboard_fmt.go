package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/domain"
)

const chartWidth = 24

// FormatDashboard renders the home view: project health chart, stage
// pipeline, deadline alerts, board totals and recent activity.
func FormatDashboard(resp *app.DashboardResponse) string {
	var b strings.Builder

	healthBars := make([]Bar, 0, len(resp.Health))
	for _, h := range resp.Health {
		healthBars = append(healthBars, Bar{Label: h.Status.Label(), Value: h.Count, Style: HealthColor(h.Status)})
	}
	b.WriteString(Header(fmt.Sprintf("Project health (%d)", resp.ProjectsTotal)) + "\n")
	b.WriteString(RenderBarChart(healthBars, chartWidth) + "\n")

	stageBars := make([]Bar, 0, len(resp.Stages))
	for _, s := range resp.Stages {
		stageBars = append(stageBars, Bar{Label: s.Stage.Label(), Value: s.Count, Style: StylePurple})
	}
	b.WriteString(Header("Process stages") + "\n")
	b.WriteString(RenderBarChart(stageBars, chartWidth) + "\n")

	d := resp.Deadlines
	b.WriteString(Header("Deadlines") + "\n")
	fmt.Fprintf(&b, "%s  %s  %s  %s\n\n",
		StyleRed.Render(fmt.Sprintf("%d overdue", d.Overdue)),
		StyleYellow.Render(fmt.Sprintf("%d warning", d.Warning)),
		StyleGreen.Render(fmt.Sprintf("%d normal", d.Normal)),
		Dim(fmt.Sprintf("%d undated", d.Undated)))
	b.WriteString(formatAlerts(resp.Alerts) + "\n")

	b.WriteString(Header("Board") + "\n")
	cols := make([]string, 0, len(resp.Tasks))
	for _, c := range resp.Tasks {
		cols = append(cols, fmt.Sprintf("%s %s", ColumnTitle(c.Status), Bold(fmt.Sprintf("%d", c.Count))))
	}
	b.WriteString(strings.Join(cols, Dim("  │  ")) + "\n\n")

	b.WriteString(Header("Recent updates") + "\n")
	b.WriteString(formatActivity(resp.Activity, resp.GeneratedAt))

	return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n"))
}

func formatAlerts(alerts []app.DeadlineAlert) string {
	if len(alerts) == 0 {
		return Dim("No items in their warning window.") + "\n"
	}
	headers := []string{"", "VENDOR", "PROD NO", "ITEM", "MANAGER", "DEADLINE", "LEFT"}
	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		style := DeadlineColor(a.Status)
		rows = append(rows, []string{
			style.Render("●"),
			Bold(a.Vendor),
			a.ProductionNumber,
			a.ItemName,
			OrDash(a.Manager),
			a.Deadline,
			style.Render(DaysLeft(a.DaysLeft)),
		})
	}
	return RenderTable(headers, rows)
}

func formatActivity(events []*domain.ActivityEvent, now time.Time) string {
	if len(events) == 0 {
		return Dim("Nothing yet.")
	}
	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "%s %s %s %s\n",
			Dim(fmt.Sprintf("%-9s", HumanTimestamp(e.CreatedAt, now))),
			StyleBlue.Render(e.Actor), e.Action, Bold(e.Target))
	}
	return b.String()
}
