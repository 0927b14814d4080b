package domain

import (
	"strings"
	"time"
)

// DefaultItemNames are the management items every new project starts with
// when none are supplied.
var DefaultItemNames = []string{"BOM", "Drawing", "Program"}

// DefaultWarningDays is the warning window used when none is configured.
const DefaultWarningDays = 7

type Project struct {
	ID               string
	Vendor           string
	Country          string
	ProductionNumber string
	PM               string
	Manager          string
	FATDate          *time.Time
	DeliveryDate     *time.Time
	ProcessStage     ProcessStage
	HealthStatus     HealthStatus
	Items            []ManagementItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks required fields, closed enums and every management item.
func (p *Project) Validate() error {
	var v ValidationError
	if strings.TrimSpace(p.Vendor) == "" {
		v.Add("vendor", "is required")
	}
	if strings.TrimSpace(p.ProductionNumber) == "" {
		v.Add("production_number", "is required")
	}
	if !p.ProcessStage.Valid() {
		v.Add("process_stage", "invalid value %q", p.ProcessStage)
	}
	if !p.HealthStatus.Valid() {
		v.Add("health_status", "invalid value %q", p.HealthStatus)
	}
	if p.FATDate != nil && p.DeliveryDate != nil && p.DeliveryDate.Before(*p.FATDate) {
		v.Add("delivery_date", "must not be before fat_date")
	}
	for i := range p.Items {
		p.Items[i].validateInto(&v, i)
	}
	return v.OrNil()
}

// Matches reports whether the search term matches vendor, PM, manager or
// production number, case-insensitively. An empty term matches everything.
func (p *Project) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{p.Vendor, p.PM, p.Manager, p.ProductionNumber} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// ItemByID returns the management item with the given ID, or nil.
func (p *Project) ItemByID(id string) *ManagementItem {
	for i := range p.Items {
		if p.Items[i].ID == id {
			return &p.Items[i]
		}
	}
	return nil
}

// DisplayID truncates the project ID to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
