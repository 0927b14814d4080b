package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/importer"
	"github.com/gorilla/mux"
)

type countJSON struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type deadlineCountsJSON struct {
	Normal  int `json:"normal"`
	Warning int `json:"warning"`
	Overdue int `json:"overdue"`
	Undated int `json:"undated"`
	Total   int `json:"total"`
}

type alertJSON struct {
	ProjectID        string `json:"projectId"`
	Vendor           string `json:"vendor"`
	ProductionNumber string `json:"productionNumber"`
	ItemID           string `json:"itemId"`
	ItemName         string `json:"itemName"`
	Manager          string `json:"manager"`
	Deadline         string `json:"deadline"`
	DaysLeft         int    `json:"daysLeft"`
	Status           string `json:"status"`
}

type activityJSON struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
}

type dashboardJSON struct {
	GeneratedAt   time.Time          `json:"generatedAt"`
	ProjectsTotal int                `json:"projectsTotal"`
	Health        []countJSON        `json:"health"`
	Stages        []countJSON        `json:"stages"`
	Deadlines     deadlineCountsJSON `json:"deadlines"`
	Alerts        []alertJSON        `json:"alerts"`
	Tasks         []countJSON        `json:"tasks"`
	Activity      []activityJSON     `json:"activity"`
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &badRequest{fmt.Errorf("%s must be a non-negative integer, got %q", name, raw)}
	}
	return n, nil
}

func (a *api) dashboard(w http.ResponseWriter, r *http.Request) {
	req := app.NewDashboardRequest()
	var err error
	if req.AlertLimit, err = intParam(r, "alerts", req.AlertLimit); err != nil {
		writeError(w, err)
		return
	}
	if req.ActivityLimit, err = intParam(r, "activity", req.ActivityLimit); err != nil {
		writeError(w, err)
		return
	}
	now := a.now()
	req.Now = &now

	resp, err := a.svc.Dashboard.Get(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	out := dashboardJSON{
		GeneratedAt:   resp.GeneratedAt,
		ProjectsTotal: resp.ProjectsTotal,
		Health:        []countJSON{},
		Stages:        []countJSON{},
		Alerts:        []alertJSON{},
		Tasks:         []countJSON{},
		Activity:      []activityJSON{},
		Deadlines: deadlineCountsJSON{
			Normal:  resp.Deadlines.Normal,
			Warning: resp.Deadlines.Warning,
			Overdue: resp.Deadlines.Overdue,
			Undated: resp.Deadlines.Undated,
			Total:   resp.Deadlines.Total,
		},
	}
	for _, h := range resp.Health {
		out.Health = append(out.Health, countJSON{Key: string(h.Status), Label: h.Status.Label(), Count: h.Count})
	}
	for _, s := range resp.Stages {
		out.Stages = append(out.Stages, countJSON{Key: string(s.Stage), Label: s.Stage.Label(), Count: s.Count})
	}
	for _, c := range resp.Tasks {
		out.Tasks = append(out.Tasks, countJSON{Key: string(c.Status), Label: c.Status.Label(), Count: c.Count})
	}
	for _, al := range resp.Alerts {
		out.Alerts = append(out.Alerts, alertJSON{
			ProjectID:        al.ProjectID,
			Vendor:           al.Vendor,
			ProductionNumber: al.ProductionNumber,
			ItemID:           al.ItemID,
			ItemName:         al.ItemName,
			Manager:          al.Manager,
			Deadline:         al.Deadline,
			DaysLeft:         al.DaysLeft,
			Status:           string(al.Status),
		})
	}
	for _, e := range resp.Activity {
		out.Activity = append(out.Activity, activityJSON{Actor: e.Actor, Action: e.Action, Target: e.Target, CreatedAt: e.CreatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}

type faqJSON struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func toFAQJSON(item domain.FAQItem) faqJSON {
	return faqJSON{ID: item.ID, Category: item.Category, Question: item.Question, Answer: item.Answer}
}

func (a *api) listFAQ(w http.ResponseWriter, r *http.Request) {
	items := a.svc.Guide.List(r.URL.Query().Get("category"))
	out := make([]faqJSON, 0, len(items))
	for _, item := range items {
		out = append(out, toFAQJSON(item))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *api) getFAQ(w http.ResponseWriter, r *http.Request) {
	item, err := a.svc.Guide.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFAQJSON(*item))
}

func (a *api) listTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := a.svc.Support.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]ticketJSON, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketJSON(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *api) submitTicket(w http.ResponseWriter, r *http.Request) {
	var in ticketInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	t := &domain.SupportTicket{
		Title:    in.Title,
		Type:     domain.TicketType(in.Type),
		Priority: domain.TicketPriority(in.Priority),
		Content:  in.Content,
	}
	if err := a.svc.Support.Submit(r.Context(), t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTicketJSON(t))
}

func (a *api) exportSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := a.svc.Snapshot.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type importResultJSON struct {
	Mode            string `json:"mode"`
	ProjectsCreated int    `json:"projectsCreated"`
	ProjectsUpdated int    `json:"projectsUpdated"`
	TasksCreated    int    `json:"tasksCreated"`
	TasksUpdated    int    `json:"tasksUpdated"`
	ItemsTotal      int    `json:"itemsTotal"`
}

// importSnapshot loads a snapshot body. ?mode=replace clears the store
// first; the default merges by ID.
func (a *api) importSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, &badRequest{fmt.Errorf("reading request: %w", err)})
		return
	}
	snap, err := importer.ParseSnapshot(data)
	if err != nil {
		writeError(w, &badRequest{err})
		return
	}

	mode := app.ImportMode(r.URL.Query().Get("mode"))
	if mode != "" && !mode.Valid() {
		writeError(w, &badRequest{fmt.Errorf("unknown import mode %q (merge|replace)", mode)})
		return
	}
	result, err := a.svc.Snapshot.Import(r.Context(), snap, mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, importResultJSON{
		Mode:            string(result.Mode),
		ProjectsCreated: result.ProjectsCreated,
		ProjectsUpdated: result.ProjectsUpdated,
		TasksCreated:    result.TasksCreated,
		TasksUpdated:    result.TasksUpdated,
		ItemsTotal:      result.ItemsTotal,
	})
}
