package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleProject() *domain.Project {
	overdue := day(2025, 3, 5)
	later := day(2025, 5, 1)
	delivery := day(2025, 6, 30)
	return &domain.Project{
		ID:               "abcdef12-3456-7890-abcd-ef1234567890",
		Vendor:           "Hanwha",
		ProductionNumber: "HW-1",
		PM:               "Kim",
		ProcessStage:     domain.StageConfirmedInspection,
		HealthStatus:     domain.HealthDelayed,
		DeliveryDate:     &delivery,
		Items: []domain.ManagementItem{
			{ID: "item-0001", Name: "BOM", Deadline: &overdue, WarningDays: 3, Manager: "Lee"},
			{ID: "item-0002", Name: "Drawing", Deadline: &later, WarningDays: 7},
			{ID: "item-0003", Name: "Program", WarningDays: 7},
		},
	}
}

func TestFormatProjectList(t *testing.T) {
	now := day(2025, 3, 10)
	out := stripANSI(FormatProjectList([]*domain.Project{sampleProject(), {Vendor: "Blank", ProductionNumber: "B-1"}}, now))

	assert.Contains(t, out, "PROJECTS (2)")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-3456")
	assert.Contains(t, out, "Confirmed Inspection")
	assert.Contains(t, out, "● OVERDUE")
	assert.Contains(t, out, "● NORMAL", "a project without dated items is normal")
	assert.Contains(t, out, "2025-06-30")
}

func TestFormatProjectList_Empty(t *testing.T) {
	out := stripANSI(FormatProjectList(nil, time.Now()))
	assert.Contains(t, out, "No projects match.")
}

func TestFormatProjectInspect(t *testing.T) {
	now := day(2025, 3, 10)
	out := stripANSI(FormatProjectInspect(sampleProject(), now))

	assert.Contains(t, out, "Hanwha")
	assert.Contains(t, out, "MANAGEMENT ITEMS")
	assert.Contains(t, out, "2025-03-05 (D+5)")
	assert.Contains(t, out, "2025-05-01 (D-52)")
	assert.Contains(t, out, "▲ Delayed")
	assert.Contains(t, out, "Lee")
}

func TestFormatBoard(t *testing.T) {
	board := &app.Board{Columns: []app.BoardColumn{
		{Status: domain.TaskTodo, Tasks: []*domain.Task{{Title: "Order parts", Priority: domain.PriorityHigh, Assignee: "Park"}}},
		{Status: domain.TaskDoing, Tasks: []*domain.Task{}},
		{Status: domain.TaskDone, Tasks: []*domain.Task{{Title: "Ship", Priority: domain.PriorityLow}}},
	}}

	out := stripANSI(FormatBoard(board, BoardCursor{Column: 0, Row: 0}))
	assert.Contains(t, out, "To Do (1)")
	assert.Contains(t, out, "Doing (0)")
	assert.Contains(t, out, "(empty)")
	assert.Contains(t, out, "Order parts")
	assert.Contains(t, out, "Park")
	assert.Contains(t, out, "▼ Low")
}

func TestFormatMoveResult(t *testing.T) {
	task := &domain.Task{Title: "Weld", Status: domain.TaskDoing, Position: 1}
	assert.Equal(t, "✔ Weld → Doing #2", stripANSI(FormatMoveResult(&app.MoveResult{Task: task, Changed: true})))
	assert.Contains(t, stripANSI(FormatMoveResult(&app.MoveResult{Task: task})), "nothing changed")
}

func TestFormatTaskList(t *testing.T) {
	due := day(2025, 4, 1)
	out := stripANSI(FormatTaskList([]*domain.Task{
		{ID: "t1", Title: "Order parts", Status: domain.TaskTodo, Priority: domain.PriorityMedium, DueDate: &due},
	}))
	assert.Contains(t, out, "TASKS (1)")
	assert.Contains(t, out, "■ Medium")
	assert.Contains(t, out, "2025-04-01")
}

func TestFormatDashboard(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	resp := &app.DashboardResponse{
		GeneratedAt:   now,
		ProjectsTotal: 3,
		Health: []app.HealthCount{
			{Status: domain.HealthNormal, Count: 2},
			{Status: domain.HealthDelayed, Count: 1},
			{Status: domain.HealthCompleted, Count: 0},
		},
		Stages:    []app.StageCount{{Stage: domain.StagePendingInspection, Count: 3}},
		Deadlines: app.DeadlineCounts{Overdue: 1, Warning: 2, Normal: 4, Undated: 1, Total: 8},
		Alerts: []app.DeadlineAlert{
			{Vendor: "Doosan", ProductionNumber: "DS-1", ItemName: "BOM", Deadline: "2025-03-05", DaysLeft: -5, Status: domain.DeadlineOverdue},
		},
		Tasks: []app.ColumnCount{{Status: domain.TaskTodo, Count: 4}},
		Activity: []*domain.ActivityEvent{
			{Actor: "kim", Action: "created project", Target: "Doosan DS-1", CreatedAt: now.Add(-2 * time.Minute)},
		},
	}

	out := stripANSI(FormatDashboard(resp))
	assert.Contains(t, out, "PROJECT HEALTH (3)")
	assert.Contains(t, out, "Delayed")
	assert.Contains(t, out, "Pending Inspection")
	assert.Contains(t, out, "1 overdue")
	assert.Contains(t, out, "2 warning")
	assert.Contains(t, out, "D+5")
	assert.Contains(t, out, "To Do 4")
	assert.Contains(t, out, "2m ago")
	assert.Contains(t, out, "created project")
}

func TestFormatDashboard_Empty(t *testing.T) {
	out := stripANSI(FormatDashboard(&app.DashboardResponse{}))
	assert.Contains(t, out, "No items in their warning window.")
	assert.Contains(t, out, "Nothing yet.")
}

func TestFormatFAQ(t *testing.T) {
	items := []domain.FAQItem{
		{ID: "1", Category: "Reporting", Question: "When is the report due?", Answer: "Friday."},
		{ID: "2", Category: "Tool usage", Question: "Who creates projects?", Answer: "Leads."},
	}
	list := stripANSI(FormatFAQList(items))
	assert.Contains(t, list, "Reporting")
	assert.Contains(t, list, "1. When is the report due?")
	assert.Contains(t, list, "Tool usage")

	one := stripANSI(FormatFAQ(&items[1]))
	assert.Contains(t, one, "Q. Who creates projects?")
	assert.Contains(t, one, "Leads.")

	assert.Contains(t, stripANSI(FormatFAQList(nil)), "No entries.")
}

func TestFormatTickets(t *testing.T) {
	now := time.Now()
	ticket := &domain.SupportTicket{
		ID: "ticket-123456", Title: "VPN access", Type: domain.TicketAccess,
		Priority: domain.TicketHigh, CreatedAt: now.Add(-time.Hour),
	}
	list := stripANSI(FormatTicketList([]*domain.SupportTicket{ticket}, now))
	assert.Contains(t, list, "SUPPORT REQUESTS (1)")
	assert.Contains(t, list, "1h ago")
	assert.Contains(t, list, "access")

	done := stripANSI(FormatTicketSubmitted(ticket))
	assert.Contains(t, done, "Request submitted ticket-1")
	assert.Contains(t, done, "VPN access")
}

func TestFormatDeadlineCheck(t *testing.T) {
	out := stripANSI(FormatDeadlineCheck(DeadlineCheck{
		Deadline:    day(2025, 3, 15),
		WarningDays: 7,
		Today:       day(2025, 3, 10),
		Status:      domain.DeadlineWarning,
	}))
	assert.Contains(t, out, "● WARNING")
	assert.Contains(t, out, "2025-03-08 (7 days)")
	assert.Contains(t, out, "D-5")
}
