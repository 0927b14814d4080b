package importer

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/google/uuid"
)

type legacySubTask struct {
	field string
	name  string
	sub   *SubTaskJSON
}

func legacySubTasks(p *ProjectJSON) []legacySubTask {
	return []legacySubTask{
		{field: "bom", name: domain.DefaultItemNames[0], sub: p.BOM},
		{field: "drawing", name: domain.DefaultItemNames[1], sub: p.Drawing},
		{field: "program", name: domain.DefaultItemNames[2], sub: p.Program},
	}
}

// Convert turns a validated snapshot into domain objects. Records without
// an ID get a fresh one; missing enums take their defaults. Item IDs are
// unique store-wide, so an item whose ID another project already used gets
// a fresh one. A project with no managementItems but legacy
// bom/drawing/program fields gets those as items. Call ValidateSnapshot
// first.
func Convert(s *Snapshot, now time.Time) ([]*domain.Project, []*domain.Task, error) {
	now = now.UTC()

	projects := make([]*domain.Project, 0, len(s.Projects))
	itemIDs := make(map[string]bool)
	for i := range s.Projects {
		p, err := convertProject(&s.Projects[i], now, itemIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("projects[%d]: %w", i, err)
		}
		projects = append(projects, p)
	}

	tasks := make([]*domain.Task, 0, len(s.Tasks))
	nextPos := make(map[domain.TaskStatus]int)
	for i := range s.Tasks {
		t, err := convertTask(&s.Tasks[i], now, nextPos)
		if err != nil {
			return nil, nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return projects, tasks, nil
}

func convertProject(pj *ProjectJSON, now time.Time, itemIDs map[string]bool) (*domain.Project, error) {
	fat, err := optionalDate(pj.FATDate)
	if err != nil {
		return nil, err
	}
	delivery, err := optionalDate(pj.DeliveryDate)
	if err != nil {
		return nil, err
	}

	stage, ok := parseStage(pj.ProcessStage)
	if !ok {
		return nil, fmt.Errorf("processStage: invalid value %q", pj.ProcessStage)
	}
	health, ok := parseHealth(pj.HealthStatus)
	if !ok {
		return nil, fmt.Errorf("healthStatus: invalid value %q", pj.HealthStatus)
	}
	prodNo := projectProductionNumber(pj)

	p := &domain.Project{
		ID:               idOrNew(pj.ID),
		Vendor:           pj.Vendor,
		Country:          pj.Country,
		ProductionNumber: prodNo,
		PM:               pj.PM,
		Manager:          pj.Manager,
		FATDate:          fat,
		DeliveryDate:     delivery,
		ProcessStage:     stage,
		HealthStatus:     health,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for j, ij := range pj.ManagementItems {
		deadline, err := optionalDate(ij.Deadline)
		if err != nil {
			return nil, fmt.Errorf("managementItems[%d]: %w", j, err)
		}
		id := ij.ID
		if id == "" || itemIDs[id] {
			id = uuid.New().String()
		}
		itemIDs[id] = true
		p.Items = append(p.Items, domain.ManagementItem{
			ID:               id,
			ProjectID:        p.ID,
			ProductionNumber: domain.CoalesceStr(ij.ProductionNumber, prodNo),
			Name:             ij.Name,
			Manager:          ij.Manager,
			Deadline:         deadline,
			WarningDays:      domain.IntFromPtrWithDefault(domain.DefaultWarningDays, ij.WarningDays),
			OrderIndex:       j,
		})
	}

	if len(p.Items) == 0 {
		for _, legacy := range legacySubTasks(pj) {
			if legacy.sub == nil {
				continue
			}
			deadline, err := optionalDate(legacy.sub.Deadline)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", legacy.field, err)
			}
			p.Items = append(p.Items, domain.ManagementItem{
				ID:               uuid.New().String(),
				ProjectID:        p.ID,
				ProductionNumber: prodNo,
				Name:             legacy.name,
				Manager:          pj.Manager,
				Deadline:         deadline,
				WarningDays:      domain.IntFromPtrWithDefault(domain.DefaultWarningDays, legacy.sub.WarningDays),
				OrderIndex:       len(p.Items),
			})
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func convertTask(tj *TaskJSON, now time.Time, nextPos map[domain.TaskStatus]int) (*domain.Task, error) {
	due, err := optionalDate(tj.DueDate)
	if err != nil {
		return nil, err
	}
	status := domain.TaskStatus(domain.CoalesceStr(tj.Status, string(domain.TaskTodo)))
	pos := domain.IntFromPtrWithDefault(nextPos[status], tj.Position)
	if pos >= nextPos[status] {
		nextPos[status] = pos + 1
	}

	t := &domain.Task{
		ID:        idOrNew(tj.ID),
		Title:     tj.Title,
		Assignee:  tj.Assignee,
		Priority:  domain.TaskPriority(domain.CoalesceStr(tj.Priority, string(domain.PriorityMedium))),
		Status:    status,
		DueDate:   due,
		Position:  pos,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromDomain builds an export snapshot. Tasks are written in board order.
func FromDomain(projects []*domain.Project, tasks []*domain.Task, exportedAt time.Time) *Snapshot {
	s := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		Projects:   make([]ProjectJSON, 0, len(projects)),
		Tasks:      make([]TaskJSON, 0, len(tasks)),
	}

	for _, p := range projects {
		pj := ProjectJSON{
			ID:               p.ID,
			Vendor:           p.Vendor,
			Country:          p.Country,
			ProductionNumber: p.ProductionNumber,
			PM:               p.PM,
			Manager:          p.Manager,
			FATDate:          datePtr(p.FATDate),
			DeliveryDate:     datePtr(p.DeliveryDate),
			ProcessStage:     string(p.ProcessStage),
			HealthStatus:     string(p.HealthStatus),
			ManagementItems:  make([]ItemJSON, 0, len(p.Items)),
		}
		items := append([]domain.ManagementItem(nil), p.Items...)
		sort.SliceStable(items, func(i, j int) bool { return items[i].OrderIndex < items[j].OrderIndex })
		for _, item := range items {
			wd := item.WarningDays
			pj.ManagementItems = append(pj.ManagementItems, ItemJSON{
				ID:               item.ID,
				ProductionNumber: item.ProductionNumber,
				Name:             item.Name,
				Manager:          item.Manager,
				Deadline:         datePtr(item.Deadline),
				WarningDays:      &wd,
			})
		}
		s.Projects = append(s.Projects, pj)
	}

	for _, t := range tasks {
		pos := t.Position
		s.Tasks = append(s.Tasks, TaskJSON{
			ID:       t.ID,
			Title:    t.Title,
			Assignee: t.Assignee,
			Priority: string(t.Priority),
			Status:   string(t.Status),
			DueDate:  datePtr(t.DueDate),
			Position: &pos,
		})
	}
	return s
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return domain.ParseOptionalDate(*s)
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatDate(t)
	return &s
}
