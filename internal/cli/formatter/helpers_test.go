package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDaysLeft(t *testing.T) {
	assert.Equal(t, "D-day", DaysLeft(0))
	assert.Equal(t, "D-3", DaysLeft(3))
	assert.Equal(t, "D+2", DaysLeft(-2))
}

func TestDeadlineCell(t *testing.T) {
	now := day(2025, 3, 10)
	d := day(2025, 3, 12)

	got := stripANSI(DeadlineCell(domain.ManagementItem{Deadline: &d, WarningDays: 7}, now))
	assert.Equal(t, "2025-03-12 (D-2)", got)

	assert.Equal(t, "--", stripANSI(DeadlineCell(domain.ManagementItem{}, now)))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"seconds", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-72 * time.Hour), "Feb 4, 2026"},
		{"future", now.Add(48 * time.Hour), "Feb 9, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestamp(tt.in, now))
		})
	}
}

func TestTruncIDAndOrDash(t *testing.T) {
	assert.Equal(t, "abcdef12", stripANSI(TruncID("abcdef12-3456")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
	assert.Equal(t, "--", stripANSI(OrDash("  ")))
	assert.Equal(t, "Kim", OrDash("Kim"))
}

func TestBadges(t *testing.T) {
	assert.Equal(t, "● OVERDUE", stripANSI(DeadlineBadge(domain.DeadlineOverdue)))
	assert.Equal(t, "● WARNING", stripANSI(DeadlineBadge(domain.DeadlineWarning)))
	assert.Equal(t, "▲ Delayed", stripANSI(HealthBadge(domain.HealthDelayed)))
	assert.Equal(t, "[4/5] Confirmed Shipment", stripANSI(StageBadge(domain.StageConfirmedShipment)))
	assert.Equal(t, "bogus", stripANSI(StageBadge("bogus")))
	assert.Equal(t, "▲ High", stripANSI(PriorityBadge(domain.PriorityHigh)))
	assert.Equal(t, "To Do", ColumnTitle(domain.TaskTodo))
}

func TestRenderTable(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "LONG"}, [][]string{{"xyz", "1"}}))
	assert.Equal(t, "A    LONG\n───  ────\nxyz  1\n", out)

	empty := stripANSI(RenderTable([]string{"A"}, nil, "nothing"))
	assert.Contains(t, empty, "nothing")
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderBarChart(t *testing.T) {
	out := stripANSI(RenderBarChart([]Bar{
		{Label: "Normal", Value: 4},
		{Label: "Delayed", Value: 1},
		{Label: "Done", Value: 0},
	}, 4))
	assert.Equal(t,
		"Normal   ████ 4\n"+
			"Delayed  █░░░ 1\n"+
			"Done     ░░░░ 0\n", out)
}
