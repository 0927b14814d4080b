package app

import (
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
)

type DashboardRequest struct {
	Now *time.Time
	// AlertLimit caps the warning/overdue list. Zero means no cap.
	AlertLimit int
	// ActivityLimit caps the recent activity feed.
	ActivityLimit int
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{
		AlertLimit:    10,
		ActivityLimit: 5,
	}
}

type HealthCount struct {
	Status domain.HealthStatus
	Count  int
}

type StageCount struct {
	Stage domain.ProcessStage
	Count int
}

type DeadlineCounts struct {
	Normal  int
	Warning int
	Overdue int
	Undated int
	Total   int
}

type ColumnCount struct {
	Status domain.TaskStatus
	Count  int
}

// DeadlineAlert is a management item in its warning window or past due.
type DeadlineAlert struct {
	ProjectID        string
	Vendor           string
	ProductionNumber string
	ItemID           string
	ItemName         string
	Manager          string
	Deadline         string
	DaysLeft         int
	Status           domain.DeadlineStatus
}

type DashboardResponse struct {
	GeneratedAt   time.Time
	ProjectsTotal int
	Health        []HealthCount
	Stages        []StageCount
	Deadlines     DeadlineCounts
	Alerts        []DeadlineAlert
	Tasks         []ColumnCount
	Activity      []*domain.ActivityEvent
}
