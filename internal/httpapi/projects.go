package httpapi

import (
	"fmt"
	"net/http"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/gorilla/mux"
)

func (a *api) listProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ProjectFilter{
		Stage:  domain.ProcessStage(q.Get("stage")),
		Search: q.Get("search"),
	}
	if filter.Stage != "" && !filter.Stage.Valid() {
		writeError(w, &badRequest{fmt.Errorf("unknown stage %q", filter.Stage)})
		return
	}

	projects, err := a.svc.Projects.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	now := a.now()
	out := make([]projectJSON, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectJSON(p, now))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *api) createProject(w http.ResponseWriter, r *http.Request) {
	var in projectInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	p := in.project(a.opts.DefaultWarningDays)
	if err := a.svc.Projects.Create(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectJSON(p, a.now()))
}

func (a *api) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := a.svc.Projects.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectJSON(p, a.now()))
}

func (a *api) updateProject(w http.ResponseWriter, r *http.Request) {
	var in projectPatchInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	p, err := a.svc.Projects.Update(r.Context(), mux.Vars(r)["id"], in.patch())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectJSON(p, a.now()))
}

func (a *api) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := a.svc.Projects.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) addItem(w http.ResponseWriter, r *http.Request) {
	var in itemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	item := in.item(a.opts.DefaultWarningDays)
	if err := a.svc.Projects.AddItem(r.Context(), mux.Vars(r)["id"], &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemJSON(item, a.now()))
}

// itemInProject checks that itemID belongs to the project in the path.
func (a *api) itemInProject(r *http.Request) (string, error) {
	vars := mux.Vars(r)
	p, err := a.svc.Projects.GetByID(r.Context(), vars["id"])
	if err != nil {
		return "", err
	}
	if p.ItemByID(vars["itemID"]) == nil {
		return "", fmt.Errorf("item %s in project %s: %w", vars["itemID"], p.ID, repository.ErrNotFound)
	}
	return vars["itemID"], nil
}

func (a *api) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := a.itemInProject(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in itemPatchInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	item, err := a.svc.Projects.UpdateItem(r.Context(), itemID, in.patch())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemJSON(*item, a.now()))
}

func (a *api) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := a.itemInProject(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.svc.Projects.RemoveItem(r.Context(), itemID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
