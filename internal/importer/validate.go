package importer

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/domain"
)

// ValidateSnapshot checks what the JSON schema cannot: closed enums,
// calendar-valid dates and unique IDs. Item IDs only need to be unique
// within their project. Returns every problem found.
func ValidateSnapshot(s *Snapshot) []error {
	var errs []error

	projectIDs := make(map[string]bool)
	for i := range s.Projects {
		errs = append(errs, validateProject(i, &s.Projects[i], projectIDs)...)
	}

	taskIDs := make(map[string]bool)
	for i := range s.Tasks {
		errs = append(errs, validateTask(i, &s.Tasks[i], taskIDs)...)
	}
	return errs
}

func validateProject(i int, p *ProjectJSON, projectIDs map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("projects[%d]", i)

	if p.Vendor == "" {
		errs = append(errs, fmt.Errorf("%s.vendor is required", prefix))
	}
	if projectProductionNumber(p) == "" {
		errs = append(errs, fmt.Errorf("%s.productionNumber is required", prefix))
	}
	if p.ID != "" {
		if projectIDs[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		}
		projectIDs[p.ID] = true
	}
	if _, ok := parseStage(p.ProcessStage); !ok {
		errs = append(errs, fmt.Errorf("%s.processStage: invalid value %q", prefix, p.ProcessStage))
	}
	if _, ok := parseHealth(p.HealthStatus); !ok {
		errs = append(errs, fmt.Errorf("%s.healthStatus: invalid value %q", prefix, p.HealthStatus))
	}
	errs = appendDateErr(errs, prefix+".fatDate", p.FATDate)
	errs = appendDateErr(errs, prefix+".deliveryDate", p.DeliveryDate)

	itemIDs := make(map[string]bool)
	for j, item := range p.ManagementItems {
		itemPrefix := fmt.Sprintf("%s.managementItems[%d]", prefix, j)
		if item.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", itemPrefix))
		}
		if item.ID != "" {
			if itemIDs[item.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", itemPrefix, item.ID))
			}
			itemIDs[item.ID] = true
		}
		if item.WarningDays != nil && *item.WarningDays < 0 {
			errs = append(errs, fmt.Errorf("%s.warningDays must be >= 0, got %d", itemPrefix, *item.WarningDays))
		}
		errs = appendDateErr(errs, itemPrefix+".deadline", item.Deadline)
	}

	for _, legacy := range legacySubTasks(p) {
		if legacy.sub == nil {
			continue
		}
		legacyPrefix := prefix + "." + legacy.field
		if legacy.sub.WarningDays != nil && *legacy.sub.WarningDays < 0 {
			errs = append(errs, fmt.Errorf("%s.warningDays must be >= 0, got %d", legacyPrefix, *legacy.sub.WarningDays))
		}
		errs = appendDateErr(errs, legacyPrefix+".deadline", legacy.sub.Deadline)
	}
	return errs
}

func validateTask(i int, t *TaskJSON, taskIDs map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("tasks[%d]", i)

	if t.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if t.ID != "" {
		if taskIDs[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		}
		taskIDs[t.ID] = true
	}
	if t.Priority != "" && !domain.TaskPriority(t.Priority).Valid() {
		errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
	}
	if t.Status != "" && !domain.TaskStatus(t.Status).Valid() {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
	}
	if t.Position != nil && *t.Position < 0 {
		errs = append(errs, fmt.Errorf("%s.position must be >= 0", prefix))
	}
	return appendDateErr(errs, prefix+".dueDate", t.DueDate)
}

func appendDateErr(errs []error, field string, value *string) []error {
	if value == nil || *value == "" {
		return errs
	}
	if _, err := domain.ParseDate(*value); err != nil {
		return append(errs, fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD)", field, *value))
	}
	return errs
}
