package deadline

import (
	"testing"
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestClassify_Scenarios(t *testing.T) {
	today := day(2025, 3, 1)
	cases := []struct {
		name        string
		deadline    time.Time
		warningDays int
		want        domain.DeadlineStatus
	}{
		{"far future", day(2025, 3, 10), 7, domain.DeadlineNormal},
		{"inside window", day(2025, 3, 5), 7, domain.DeadlineWarning},
		{"past deadline", day(2025, 2, 20), 5, domain.DeadlineOverdue},
		{"due today zero window", day(2025, 3, 1), 0, domain.DeadlineWarning},
		{"threshold day", day(2025, 3, 8), 7, domain.DeadlineWarning},
		{"day before threshold", day(2025, 3, 9), 7, domain.DeadlineNormal},
		{"yesterday", day(2025, 2, 28), 0, domain.DeadlineOverdue},
		{"tomorrow zero window", day(2025, 3, 2), 0, domain.DeadlineNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.deadline, tc.warningDays, today))
		})
	}
}

func TestClassify_TimeOfDayIgnored(t *testing.T) {
	deadline := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	lateNow := time.Date(2025, 3, 1, 23, 59, 59, 0, time.Local)
	assert.Equal(t, domain.DeadlineWarning, Classify(deadline, 0, lateNow))

	lateDeadline := time.Date(2025, 3, 1, 18, 30, 0, 0, time.Local)
	earlyNow := time.Date(2025, 3, 2, 0, 0, 1, 0, time.Local)
	assert.Equal(t, domain.DeadlineOverdue, Classify(lateDeadline, 3, earlyNow))
}

func TestClassify_CrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, domain.DeadlineWarning, Classify(day(2025, 1, 3), 5, day(2024, 12, 29)))
	assert.Equal(t, domain.DeadlineNormal, Classify(day(2025, 1, 3), 5, day(2024, 12, 28)))
	assert.Equal(t, domain.DeadlineWarning, Classify(day(2024, 3, 1), 1, day(2024, 2, 29)))
}

func TestClassifyDate(t *testing.T) {
	now := day(2025, 3, 1)
	assert.Equal(t, domain.DeadlineWarning, ClassifyDate("2025-03-05", 7, now))
	assert.Equal(t, domain.DeadlineOverdue, ClassifyDate("2025-02-20", 5, now))
	assert.Equal(t, domain.DeadlineNormal, ClassifyDate("", 7, now))
	assert.Equal(t, domain.DeadlineNormal, ClassifyDate("not-a-date", 7, now))
	assert.Equal(t, domain.DeadlineNormal, ClassifyDate("2025-02-30", 7, now))
}

func TestClassifyItem_NoDeadline(t *testing.T) {
	assert.Equal(t, domain.DeadlineNormal, ClassifyItem(domain.ManagementItem{Name: "BOM"}, day(2025, 3, 1)))
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, day(2025, 2, 22), Threshold(day(2025, 3, 1), 7))
	assert.Equal(t, day(2025, 3, 1), Threshold(time.Date(2025, 3, 1, 15, 0, 0, 0, time.Local), 0))
}

func TestDaysUntil(t *testing.T) {
	now := day(2025, 3, 1)
	assert.Equal(t, 9, DaysUntil(day(2025, 3, 10), now))
	assert.Equal(t, 0, DaysUntil(day(2025, 3, 1), now))
	assert.Equal(t, -9, DaysUntil(day(2025, 2, 20), now))
	assert.Equal(t, 365, DaysUntil(day(2026, 3, 1), now))
}

func TestWorst(t *testing.T) {
	assert.Equal(t, domain.DeadlineNormal, Worst())
	assert.Equal(t, domain.DeadlineWarning, Worst(domain.DeadlineNormal, domain.DeadlineWarning))
	assert.Equal(t, domain.DeadlineOverdue, Worst(domain.DeadlineOverdue, domain.DeadlineWarning, domain.DeadlineNormal))
}

func TestProjectStatus(t *testing.T) {
	now := day(2025, 3, 1)
	soon := day(2025, 3, 4)
	late := day(2025, 2, 1)
	p := &domain.Project{Items: []domain.ManagementItem{
		{Name: "BOM"},
		{Name: "Drawing", Deadline: &soon, WarningDays: 7},
	}}
	assert.Equal(t, domain.DeadlineWarning, ProjectStatus(p, now))

	p.Items = append(p.Items, domain.ManagementItem{Name: "Program", Deadline: &late})
	assert.Equal(t, domain.DeadlineOverdue, ProjectStatus(p, now))

	assert.Equal(t, domain.DeadlineNormal, ProjectStatus(&domain.Project{}, now))
}
