package domain

import (
	"fmt"
	"strings"
	"time"
)

// ManagementItem is a deadline-tracked sub-item of a project (BOM release,
// drawing issue, program delivery and so on).
type ManagementItem struct {
	ID               string
	ProjectID        string
	ProductionNumber string
	Name             string
	Manager          string
	Deadline         *time.Time
	WarningDays      int
	OrderIndex       int
}

func (m *ManagementItem) Validate() error {
	var v ValidationError
	m.validateInto(&v, -1)
	return v.OrNil()
}

func (m *ManagementItem) validateInto(v *ValidationError, index int) {
	prefix := "item"
	if index >= 0 {
		prefix = fmt.Sprintf("items[%d]", index)
	}
	if strings.TrimSpace(m.Name) == "" {
		v.Add(prefix+".name", "is required")
	}
	if m.WarningDays < 0 {
		v.Add(prefix+".warning_days", "must be >= 0, got %d", m.WarningDays)
	}
}
