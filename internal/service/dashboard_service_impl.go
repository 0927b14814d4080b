package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/deadline"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
)

type dashboardService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	activity repository.ActivityRepo
	observer UseCaseObserver
}

func NewDashboardService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	activity repository.ActivityRepo,
	observers ...UseCaseObserver,
) DashboardService {
	return &dashboardService{
		projects: projects,
		tasks:    tasks,
		activity: activity,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) Get(ctx context.Context, req app.DashboardRequest) (resp *app.DashboardResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "dashboard", startedAt, fields, &err) }()

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	projects, err := s.projects.List(ctx, repository.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	activity, err := s.activity.ListRecent(ctx, req.ActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("loading activity: %w", err)
	}

	resp = &app.DashboardResponse{
		GeneratedAt:   now,
		ProjectsTotal: len(projects),
		Health:        countHealth(projects),
		Stages:        countStages(projects),
		Tasks:         countColumns(tasks),
		Activity:      activity,
	}
	resp.Deadlines, resp.Alerts = collectDeadlines(projects, now)
	if req.AlertLimit > 0 && len(resp.Alerts) > req.AlertLimit {
		resp.Alerts = resp.Alerts[:req.AlertLimit]
	}

	fields["projects"] = resp.ProjectsTotal
	fields["overdue"] = resp.Deadlines.Overdue
	fields["warning"] = resp.Deadlines.Warning
	return resp, nil
}

func countHealth(projects []*domain.Project) []app.HealthCount {
	counts := make(map[domain.HealthStatus]int, len(domain.HealthStatuses))
	for _, p := range projects {
		counts[p.HealthStatus]++
	}
	out := make([]app.HealthCount, 0, len(domain.HealthStatuses))
	for _, h := range domain.HealthStatuses {
		out = append(out, app.HealthCount{Status: h, Count: counts[h]})
	}
	return out
}

func countStages(projects []*domain.Project) []app.StageCount {
	counts := make(map[domain.ProcessStage]int, len(domain.ProcessStages))
	for _, p := range projects {
		counts[p.ProcessStage]++
	}
	out := make([]app.StageCount, 0, len(domain.ProcessStages))
	for _, st := range domain.ProcessStages {
		out = append(out, app.StageCount{Stage: st, Count: counts[st]})
	}
	return out
}

func countColumns(tasks []*domain.Task) []app.ColumnCount {
	counts := make(map[domain.TaskStatus]int, len(domain.TaskStatuses))
	for _, t := range tasks {
		counts[t.Status]++
	}
	out := make([]app.ColumnCount, 0, len(domain.TaskStatuses))
	for _, st := range domain.TaskStatuses {
		out = append(out, app.ColumnCount{Status: st, Count: counts[st]})
	}
	return out
}

// collectDeadlines classifies every management item and returns the
// counts plus the warning/overdue items, most urgent first.
func collectDeadlines(projects []*domain.Project, now time.Time) (app.DeadlineCounts, []app.DeadlineAlert) {
	var counts app.DeadlineCounts
	var alerts []app.DeadlineAlert

	for _, p := range projects {
		for _, item := range p.Items {
			counts.Total++
			if item.Deadline == nil {
				counts.Undated++
				continue
			}
			status := deadline.Classify(*item.Deadline, item.WarningDays, now)
			switch status {
			case domain.DeadlineOverdue:
				counts.Overdue++
			case domain.DeadlineWarning:
				counts.Warning++
			default:
				counts.Normal++
				continue
			}
			alerts = append(alerts, app.DeadlineAlert{
				ProjectID:        p.ID,
				Vendor:           p.Vendor,
				ProductionNumber: domain.CoalesceStr(item.ProductionNumber, p.ProductionNumber),
				ItemID:           item.ID,
				ItemName:         item.Name,
				Manager:          domain.CoalesceStr(item.Manager, p.Manager),
				Deadline:         domain.FormatDate(item.Deadline),
				DaysLeft:         deadline.DaysUntil(*item.Deadline, now),
				Status:           status,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].DaysLeft != alerts[j].DaysLeft {
			return alerts[i].DaysLeft < alerts[j].DaysLeft
		}
		return alerts[i].Vendor < alerts[j].Vendor
	})
	return counts, alerts
}
