package httpapi

import (
	"encoding/json"
	"time"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/deadline"
	"github.com/alexanderramin/shopfloor/internal/domain"
)

// Responses use the same camelCase field names as the snapshot document so
// a browser front end can read either.

type projectJSON struct {
	ID               string     `json:"id"`
	Vendor           string     `json:"vendor"`
	Country          string     `json:"country"`
	ProductionNumber string     `json:"productionNumber"`
	PM               string     `json:"pm"`
	Manager          string     `json:"manager"`
	FATDate          *string    `json:"fatDate"`
	DeliveryDate     *string    `json:"deliveryDate"`
	ProcessStage     string     `json:"processStage"`
	HealthStatus     string     `json:"healthStatus"`
	DeadlineStatus   string     `json:"deadlineStatus"`
	ManagementItems  []itemJSON `json:"managementItems"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type itemJSON struct {
	ID               string  `json:"id"`
	ProductionNumber string  `json:"productionNumber"`
	Name             string  `json:"name"`
	Manager          string  `json:"manager"`
	Deadline         *string `json:"deadline"`
	WarningDays      int     `json:"warningDays"`
	DeadlineStatus   string  `json:"deadlineStatus"`
}

type taskJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Assignee  string    `json:"assignee"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	DueDate   *string   `json:"dueDate"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ticketJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatDate(t)
	return &s
}

func toItemJSON(item domain.ManagementItem, now time.Time) itemJSON {
	return itemJSON{
		ID:               item.ID,
		ProductionNumber: item.ProductionNumber,
		Name:             item.Name,
		Manager:          item.Manager,
		Deadline:         dateString(item.Deadline),
		WarningDays:      item.WarningDays,
		DeadlineStatus:   string(deadline.ClassifyItem(item, now)),
	}
}

func toProjectJSON(p *domain.Project, now time.Time) projectJSON {
	out := projectJSON{
		ID:               p.ID,
		Vendor:           p.Vendor,
		Country:          p.Country,
		ProductionNumber: p.ProductionNumber,
		PM:               p.PM,
		Manager:          p.Manager,
		FATDate:          dateString(p.FATDate),
		DeliveryDate:     dateString(p.DeliveryDate),
		ProcessStage:     string(p.ProcessStage),
		HealthStatus:     string(p.HealthStatus),
		DeadlineStatus:   string(deadline.ProjectStatus(p, now)),
		ManagementItems:  make([]itemJSON, 0, len(p.Items)),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	for _, item := range p.Items {
		out.ManagementItems = append(out.ManagementItems, toItemJSON(item, now))
	}
	return out
}

func toTaskJSON(t *domain.Task) taskJSON {
	return taskJSON{
		ID:        t.ID,
		Title:     t.Title,
		Assignee:  t.Assignee,
		Priority:  string(t.Priority),
		Status:    string(t.Status),
		DueDate:   dateString(t.DueDate),
		Position:  t.Position,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTicketJSON(t *domain.SupportTicket) ticketJSON {
	return ticketJSON{
		ID:        t.ID,
		Title:     t.Title,
		Type:      string(t.Type),
		Priority:  string(t.Priority),
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

type boardColumnJSON struct {
	Status string     `json:"status"`
	Tasks  []taskJSON `json:"tasks"`
}

func toBoardJSON(b *app.Board) []boardColumnJSON {
	out := make([]boardColumnJSON, 0, len(b.Columns))
	for _, col := range b.Columns {
		c := boardColumnJSON{Status: string(col.Status), Tasks: make([]taskJSON, 0, len(col.Tasks))}
		for _, t := range col.Tasks {
			c.Tasks = append(c.Tasks, toTaskJSON(t))
		}
		out = append(out, c)
	}
	return out
}

// dateInput is a date field of a partial update. A present key sets the
// date; null or "" clears it; an absent key leaves it unchanged.
type dateInput struct {
	app.OptionalDate
}

func (d *dateInput) UnmarshalJSON(b []byte) error {
	d.Set = true
	if string(b) == "null" {
		d.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := domain.ParseOptionalDate(s)
	if err != nil {
		return err
	}
	d.Value = t
	return nil
}

type itemInput struct {
	Name             string    `json:"name"`
	Manager          string    `json:"manager"`
	ProductionNumber string    `json:"productionNumber"`
	Deadline         dateInput `json:"deadline"`
	WarningDays      *int      `json:"warningDays"`
}

func (in itemInput) item(defaultWarningDays int) domain.ManagementItem {
	wd := defaultWarningDays
	if in.WarningDays != nil {
		wd = *in.WarningDays
	}
	return domain.ManagementItem{
		Name:             in.Name,
		Manager:          in.Manager,
		ProductionNumber: in.ProductionNumber,
		Deadline:         in.Deadline.Value,
		WarningDays:      wd,
	}
}

type projectInput struct {
	Vendor           string      `json:"vendor"`
	Country          string      `json:"country"`
	ProductionNumber string      `json:"productionNumber"`
	PM               string      `json:"pm"`
	Manager          string      `json:"manager"`
	FATDate          dateInput   `json:"fatDate"`
	DeliveryDate     dateInput   `json:"deliveryDate"`
	ProcessStage     string      `json:"processStage"`
	HealthStatus     string      `json:"healthStatus"`
	ManagementItems  []itemInput `json:"managementItems"`
}

func (in projectInput) project(defaultWarningDays int) *domain.Project {
	p := &domain.Project{
		Vendor:           in.Vendor,
		Country:          in.Country,
		ProductionNumber: in.ProductionNumber,
		PM:               in.PM,
		Manager:          in.Manager,
		FATDate:          in.FATDate.Value,
		DeliveryDate:     in.DeliveryDate.Value,
		ProcessStage:     domain.ProcessStage(in.ProcessStage),
		HealthStatus:     domain.HealthStatus(in.HealthStatus),
	}
	for _, item := range in.ManagementItems {
		p.Items = append(p.Items, item.item(defaultWarningDays))
	}
	return p
}

type projectPatchInput struct {
	Vendor           *string   `json:"vendor"`
	Country          *string   `json:"country"`
	ProductionNumber *string   `json:"productionNumber"`
	PM               *string   `json:"pm"`
	Manager          *string   `json:"manager"`
	FATDate          dateInput `json:"fatDate"`
	DeliveryDate     dateInput `json:"deliveryDate"`
	ProcessStage     *string   `json:"processStage"`
	HealthStatus     *string   `json:"healthStatus"`
}

func (in projectPatchInput) patch() app.ProjectPatch {
	patch := app.ProjectPatch{
		Vendor:           in.Vendor,
		Country:          in.Country,
		ProductionNumber: in.ProductionNumber,
		PM:               in.PM,
		Manager:          in.Manager,
		FATDate:          in.FATDate.OptionalDate,
		DeliveryDate:     in.DeliveryDate.OptionalDate,
	}
	if in.ProcessStage != nil {
		stage := domain.ProcessStage(*in.ProcessStage)
		patch.ProcessStage = &stage
	}
	if in.HealthStatus != nil {
		health := domain.HealthStatus(*in.HealthStatus)
		patch.HealthStatus = &health
	}
	return patch
}

type itemPatchInput struct {
	Name             *string   `json:"name"`
	Manager          *string   `json:"manager"`
	ProductionNumber *string   `json:"productionNumber"`
	Deadline         dateInput `json:"deadline"`
	WarningDays      *int      `json:"warningDays"`
	OrderIndex       *int      `json:"orderIndex"`
}

func (in itemPatchInput) patch() app.ItemPatch {
	return app.ItemPatch{
		Name:             in.Name,
		Manager:          in.Manager,
		ProductionNumber: in.ProductionNumber,
		Deadline:         in.Deadline.OptionalDate,
		WarningDays:      in.WarningDays,
		OrderIndex:       in.OrderIndex,
	}
}

type taskInput struct {
	Title    string    `json:"title"`
	Assignee string    `json:"assignee"`
	Priority string    `json:"priority"`
	Status   string    `json:"status"`
	DueDate  dateInput `json:"dueDate"`
}

type taskPatchInput struct {
	Title    *string   `json:"title"`
	Assignee *string   `json:"assignee"`
	Priority *string   `json:"priority"`
	DueDate  dateInput `json:"dueDate"`
}

func (in taskPatchInput) patch() app.TaskPatch {
	patch := app.TaskPatch{
		Title:    in.Title,
		Assignee: in.Assignee,
		DueDate:  in.DueDate.OptionalDate,
	}
	if in.Priority != nil {
		p := domain.TaskPriority(*in.Priority)
		patch.Priority = &p
	}
	return patch
}

// moveInput is the drop of a dragged card. A missing position appends to
// the bottom of the target column.
type moveInput struct {
	Status   string `json:"status"`
	Position *int   `json:"position"`
}

type ticketInput struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Content  string `json:"content"`
}
