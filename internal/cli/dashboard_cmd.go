package cli

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *App) *cobra.Command {
	req := app.NewDashboardRequest()

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Show project health, stages, deadline alerts, board totals and recent updates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			req.Now = &now
			resp, err := a.Dashboard.Get(a.context(cmd), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&req.AlertLimit, "alerts", req.AlertLimit, "Maximum deadline alerts to show (0 for all)")
	cmd.Flags().IntVar(&req.ActivityLimit, "activity", req.ActivityLimit, "Recent updates to show")

	return cmd
}
