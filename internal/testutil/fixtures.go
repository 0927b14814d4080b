package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/google/uuid"
)

var productionCounter atomic.Int64

// Date returns local midnight of the given calendar day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Project options
type ProjectOption func(*domain.Project)

func WithStage(s domain.ProcessStage) ProjectOption {
	return func(p *domain.Project) {
		p.ProcessStage = s
	}
}

func WithHealth(h domain.HealthStatus) ProjectOption {
	return func(p *domain.Project) {
		p.HealthStatus = h
	}
}

func WithPeople(pm, manager string) ProjectOption {
	return func(p *domain.Project) {
		p.PM = pm
		p.Manager = manager
	}
}

func WithProductionNumber(n string) ProjectOption {
	return func(p *domain.Project) {
		p.ProductionNumber = n
	}
}

func WithDeliveryDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.DeliveryDate = &d
	}
}

func WithFATDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.FATDate = &d
	}
}

// WithItems replaces the project's management items.
func WithItems(items ...domain.ManagementItem) ProjectOption {
	return func(p *domain.Project) {
		p.Items = items
	}
}

// NewTestProject builds a valid project for vendor with no management items.
func NewTestProject(vendor string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:               uuid.New().String(),
		Vendor:           vendor,
		Country:          "Korea",
		ProductionNumber: fmt.Sprintf("P-%04d", productionCounter.Add(1)),
		ProcessStage:     domain.StagePendingInspection,
		HealthStatus:     domain.HealthNormal,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(p)
	}
	for i := range p.Items {
		p.Items[i].ProjectID = p.ID
	}
	return p
}

// Management item options
type ItemOption func(*domain.ManagementItem)

func WithDeadline(d time.Time, warningDays int) ItemOption {
	return func(m *domain.ManagementItem) {
		m.Deadline = &d
		m.WarningDays = warningDays
	}
}

func WithItemManager(name string) ItemOption {
	return func(m *domain.ManagementItem) {
		m.Manager = name
	}
}

func WithOrderIndex(i int) ItemOption {
	return func(m *domain.ManagementItem) {
		m.OrderIndex = i
	}
}

func NewTestItem(name string, opts ...ItemOption) domain.ManagementItem {
	m := domain.ManagementItem{
		ID:          uuid.New().String(),
		Name:        name,
		WarningDays: domain.DefaultWarningDays,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithPosition(pos int) TaskOption {
	return func(t *domain.Task) {
		t.Position = pos
	}
}

func WithAssignee(name string) TaskOption {
	return func(t *domain.Task) {
		t.Assignee = name
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestTicket(title string) *domain.SupportTicket {
	return &domain.SupportTicket{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.TicketTechnical,
		Priority:  domain.TicketNormal,
		Content:   "details for " + title,
		CreatedAt: time.Now().UTC(),
	}
}
