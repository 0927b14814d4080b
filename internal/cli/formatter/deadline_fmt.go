package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shopfloor/internal/deadline"
	"github.com/alexanderramin/shopfloor/internal/domain"
)

// DeadlineCheck is the input and outcome of a single classification.
type DeadlineCheck struct {
	Deadline    time.Time
	WarningDays int
	Today       time.Time
	Status      domain.DeadlineStatus
}

func FormatDeadlineCheck(c DeadlineCheck) string {
	var b strings.Builder
	b.WriteString(DeadlineBadge(c.Status) + "\n")
	fmt.Fprintf(&b, "  %s  %s\n", Dim("deadline "), domain.FormatDate(&c.Deadline))
	fmt.Fprintf(&b, "  %s  %s (%d days)\n", Dim("warn from"), formatDay(deadline.Threshold(c.Deadline, c.WarningDays)), c.WarningDays)
	fmt.Fprintf(&b, "  %s  %s\n", Dim("today    "), formatDay(c.Today))
	fmt.Fprintf(&b, "  %s  %s", Dim("left     "), DaysLeft(deadline.DaysUntil(c.Deadline, c.Today)))
	return b.String()
}

func formatDay(t time.Time) string {
	return domain.FormatDate(&t)
}
