package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
)

func FormatTicketList(tickets []*domain.SupportTicket, now time.Time) string {
	headers := []string{"ID", "SUBMITTED", "TYPE", "PRIORITY", "TITLE"}
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			TruncID(t.ID),
			HumanTimestamp(t.CreatedAt, now),
			string(t.Type),
			TicketPriorityBadge(t.Priority),
			Bold(t.Title),
		})
	}
	return RenderBox(fmt.Sprintf("Support requests (%d)", len(tickets)), RenderTable(headers, rows, "No requests submitted."))
}

// FormatTicketSubmitted confirms a submitted request.
func FormatTicketSubmitted(t *domain.SupportTicket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Request submitted %s\n", StyleGreen.Render("✔"), TruncID(t.ID))
	fmt.Fprintf(&b, "  %s  %s\n", Dim("title   "), Bold(t.Title))
	fmt.Fprintf(&b, "  %s  %s\n", Dim("type    "), string(t.Type))
	fmt.Fprintf(&b, "  %s  %s", Dim("priority"), TicketPriorityBadge(t.Priority))
	return b.String()
}
