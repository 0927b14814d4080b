package cli

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/shopfloor/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and environment CLI commands run against.
type App struct {
	Projects  service.ProjectService
	Tasks     service.TaskService
	Dashboard service.DashboardService
	Support   service.SupportService
	Guide     service.GuideService
	Snapshot  service.SnapshotService

	// Actor is recorded as the author of every change made from this process.
	Actor string

	// IsInteractive reports whether forms and the board TUI may run.
	IsInteractive func() bool

	// Now is the clock used for deadline classification.
	Now func() time.Time

	// DefaultWarningDays applies to items created without an explicit
	// warning window.
	DefaultWarningDays int

	// Server settings for the serve command.
	ListenAddr  string
	CORSOrigins []string
	AccessLog   io.Writer
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// context returns cmd's context tagged with the configured actor.
func (a *App) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.Actor == "" {
		return ctx
	}
	return service.WithActor(ctx, a.Actor)
}

// NewRootCmd creates the top-level "shopfloor" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "shopfloor",
		Short:         "Project and task tracker for the process team",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(a),
		newTaskCmd(a),
		newBoardCmd(a),
		newDashboardCmd(a),
		newGuideCmd(a),
		newSupportCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newServeCmd(a),
		newDeadlineCmd(a),
	)

	return root
}
