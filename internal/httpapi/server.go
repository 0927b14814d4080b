// Package httpapi serves projects, tasks, the dashboard, the guide and
// support tickets as JSON for a browser front end.
package httpapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/service"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// ActorHeader names the request header carrying the user shown in the
// activity feed.
const ActorHeader = "X-Shopfloor-User"

type Services struct {
	Projects  service.ProjectService
	Tasks     service.TaskService
	Dashboard service.DashboardService
	Support   service.SupportService
	Guide     service.GuideService
	Snapshot  service.SnapshotService
}

type Options struct {
	// CORSOrigins lists allowed browser origins. Empty allows any origin.
	CORSOrigins []string
	// AccessLog receives Apache combined log lines. Nil disables it.
	AccessLog io.Writer
	// DefaultActor is used when a request has no ActorHeader.
	DefaultActor string
	// DefaultWarningDays applies to items created without warningDays.
	DefaultWarningDays int
	Now                func() time.Time
}

type api struct {
	svc  Services
	opts Options
}

func (a *api) now() time.Time {
	if a.opts.Now != nil {
		return a.opts.Now()
	}
	return time.Now()
}

// NewHandler builds the /api router wrapped in CORS and access logging.
func NewHandler(svc Services, opts Options) http.Handler {
	if opts.DefaultWarningDays < 0 {
		opts.DefaultWarningDays = domain.DefaultWarningDays
	}
	a := &api{svc: svc, opts: opts}

	r := mux.NewRouter()
	r.Use(a.actorMiddleware)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorJSON{Error: "no route for " + r.Method + " " + r.URL.Path})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorJSON{Error: "method " + r.Method + " not allowed"})
	})

	// Full paths on r so a method mismatch reaches MethodNotAllowedHandler.
	r.HandleFunc("/api/projects", a.listProjects).Methods(http.MethodGet)
	r.HandleFunc("/api/projects", a.createProject).Methods(http.MethodPost)
	r.HandleFunc("/api/projects/{id}", a.getProject).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/{id}", a.updateProject).Methods(http.MethodPatch)
	r.HandleFunc("/api/projects/{id}", a.deleteProject).Methods(http.MethodDelete)
	r.HandleFunc("/api/projects/{id}/items", a.addItem).Methods(http.MethodPost)
	r.HandleFunc("/api/projects/{id}/items/{itemID}", a.updateItem).Methods(http.MethodPatch)
	r.HandleFunc("/api/projects/{id}/items/{itemID}", a.removeItem).Methods(http.MethodDelete)

	r.HandleFunc("/api/tasks", a.listTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks", a.createTask).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/board", a.board).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/{id}", a.getTask).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/{id}", a.updateTask).Methods(http.MethodPatch)
	r.HandleFunc("/api/tasks/{id}", a.deleteTask).Methods(http.MethodDelete)
	r.HandleFunc("/api/tasks/{id}/move", a.moveTask).Methods(http.MethodPatch)

	r.HandleFunc("/api/dashboard", a.dashboard).Methods(http.MethodGet)
	r.HandleFunc("/api/faq", a.listFAQ).Methods(http.MethodGet)
	r.HandleFunc("/api/faq/{id}", a.getFAQ).Methods(http.MethodGet)
	r.HandleFunc("/api/support", a.listTickets).Methods(http.MethodGet)
	r.HandleFunc("/api/support", a.submitTicket).Methods(http.MethodPost)
	r.HandleFunc("/api/snapshot", a.exportSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/api/snapshot", a.importSnapshot).Methods(http.MethodPut)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", ActorHeader}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedOrigins(origins),
	)

	var h http.Handler = cors(r)
	if opts.AccessLog != nil {
		h = handlers.CombinedLoggingHandler(opts.AccessLog, h)
	}
	return h
}

func (a *api) actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get(ActorHeader))
		if actor == "" {
			actor = a.opts.DefaultActor
		}
		if actor != "" {
			r = r.WithContext(service.WithActor(r.Context(), actor))
		}
		next.ServeHTTP(w, r)
	})
}

// Serve runs an HTTP server for h on addr until ctx is cancelled, then
// shuts it down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
