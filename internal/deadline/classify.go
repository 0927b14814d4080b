// Package deadline classifies management-item deadlines into normal,
// warning and overdue using calendar-day comparison.
package deadline

import (
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
)

// Classify returns the deadline status of an item due on deadline with a
// warning window of warningDays, as seen on the calendar day of now.
//
// Both instants are reduced to local midnight first, so the time of day
// never affects the result. The deadline day itself is a warning day; the
// item becomes overdue on the following day.
func Classify(deadline time.Time, warningDays int, now time.Time) domain.DeadlineStatus {
	today := domain.StartOfDay(now)
	due := domain.StartOfDay(deadline)

	if today.After(due) {
		return domain.DeadlineOverdue
	}
	if !today.Before(Threshold(due, warningDays)) {
		return domain.DeadlineWarning
	}
	return domain.DeadlineNormal
}

// ClassifyDate classifies a YYYY-MM-DD deadline string. Empty or
// unparseable input classifies as normal.
func ClassifyDate(raw string, warningDays int, now time.Time) domain.DeadlineStatus {
	if raw == "" {
		return domain.DeadlineNormal
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.DeadlineNormal
	}
	return Classify(d, warningDays, now)
}

// ClassifyItem classifies a management item. Items without a deadline are
// normal.
func ClassifyItem(item domain.ManagementItem, now time.Time) domain.DeadlineStatus {
	if item.Deadline == nil {
		return domain.DeadlineNormal
	}
	return Classify(*item.Deadline, item.WarningDays, now)
}

// Threshold is the first day of the warning window: deadline minus
// warningDays calendar days, at local midnight.
func Threshold(deadline time.Time, warningDays int) time.Time {
	return domain.StartOfDay(deadline).AddDate(0, 0, -warningDays)
}

// DaysUntil returns the number of calendar days from now's day to the
// deadline day. Zero on the deadline day, negative once overdue.
func DaysUntil(deadline, now time.Time) int {
	return dayNumber(deadline) - dayNumber(now)
}

// Worst returns the most urgent of statuses, or normal when none are given.
func Worst(statuses ...domain.DeadlineStatus) domain.DeadlineStatus {
	worst := domain.DeadlineNormal
	for _, s := range statuses {
		if s.Severity() > worst.Severity() {
			worst = s
		}
	}
	return worst
}

// ProjectStatus rolls every item of p into a single status.
func ProjectStatus(p *domain.Project, now time.Time) domain.DeadlineStatus {
	statuses := make([]domain.DeadlineStatus, 0, len(p.Items))
	for _, item := range p.Items {
		statuses = append(statuses, ClassifyItem(item, now))
	}
	return Worst(statuses...)
}

// dayNumber counts days since the epoch for the local calendar date of t.
// Mapping the date onto UTC keeps DST transitions out of the arithmetic.
func dayNumber(t time.Time) int {
	y, m, d := t.In(time.Local).Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}
