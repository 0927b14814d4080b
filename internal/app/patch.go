package app

import (
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
)

// OptionalDate distinguishes "leave unchanged" (Set false) from "clear"
// (Set true, Value nil).
type OptionalDate struct {
	Set   bool
	Value *time.Time
}

func (o OptionalDate) Apply(current *time.Time) *time.Time {
	if !o.Set {
		return current
	}
	return o.Value
}

// ProjectPatch carries a partial project update. Nil fields are unchanged.
type ProjectPatch struct {
	Vendor           *string
	Country          *string
	ProductionNumber *string
	PM               *string
	Manager          *string
	FATDate          OptionalDate
	DeliveryDate     OptionalDate
	ProcessStage     *domain.ProcessStage
	HealthStatus     *domain.HealthStatus
}

type ItemPatch struct {
	Name             *string
	Manager          *string
	ProductionNumber *string
	Deadline         OptionalDate
	WarningDays      *int
	OrderIndex       *int
}

type TaskPatch struct {
	Title    *string
	Assignee *string
	Priority *domain.TaskPriority
	DueDate  OptionalDate
}
