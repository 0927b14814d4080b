package httpapi

import (
	"net/http"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/gorilla/mux"
)

func (a *api) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := a.svc.Tasks.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskJSON(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *api) board(w http.ResponseWriter, r *http.Request) {
	b, err := a.svc.Tasks.Board(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardJSON(b))
}

func (a *api) createTask(w http.ResponseWriter, r *http.Request) {
	var in taskInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	t := &domain.Task{
		Title:    in.Title,
		Assignee: in.Assignee,
		Priority: domain.TaskPriority(in.Priority),
		Status:   domain.TaskStatus(in.Status),
		DueDate:  in.DueDate.Value,
	}
	if err := a.svc.Tasks.Create(r.Context(), t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskJSON(t))
}

func (a *api) getTask(w http.ResponseWriter, r *http.Request) {
	t, err := a.svc.Tasks.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskJSON(t))
}

func (a *api) updateTask(w http.ResponseWriter, r *http.Request) {
	var in taskPatchInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	t, err := a.svc.Tasks.Update(r.Context(), mux.Vars(r)["id"], in.patch())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskJSON(t))
}

func (a *api) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := a.svc.Tasks.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveResultJSON struct {
	Task    taskJSON `json:"task"`
	Changed bool     `json:"changed"`
}

func (a *api) moveTask(w http.ResponseWriter, r *http.Request) {
	var in moveInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	result, err := a.svc.Tasks.Move(r.Context(), app.MoveRequest{
		TaskID:   mux.Vars(r)["id"],
		Status:   domain.TaskStatus(in.Status),
		Position: in.Position,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, moveResultJSON{Task: toTaskJSON(result.Task), Changed: result.Changed})
}
