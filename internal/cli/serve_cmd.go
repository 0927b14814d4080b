package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/shopfloor/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API for the browser dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := httpapi.NewHandler(httpapi.Services{
				Projects:  a.Projects,
				Tasks:     a.Tasks,
				Dashboard: a.Dashboard,
				Support:   a.Support,
				Guide:     a.Guide,
				Snapshot:  a.Snapshot,
			}, httpapi.Options{
				CORSOrigins:        a.CORSOrigins,
				AccessLog:          a.AccessLog,
				DefaultActor:       a.Actor,
				DefaultWarningDays: a.DefaultWarningDays,
				Now:                a.Now,
			})

			if addr == "" {
				addr = ":8080"
			}

			ctx, stop := signal.NotifyContext(a.context(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "Listening on %s (Ctrl+C to stop)\n", addr)
			err := httpapi.Serve(ctx, addr, handler)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", a.ListenAddr, "Listen address")

	return cmd
}
