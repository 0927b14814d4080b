package cli

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/alexanderramin/shopfloor/internal/deadline"
	"github.com/spf13/cobra"
)

func newDeadlineCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Deadline status tools",
	}
	cmd.AddCommand(newDeadlineCheckCmd(a))
	return cmd
}

func newDeadlineCheckCmd(a *App) *cobra.Command {
	var (
		due         dateValue
		today       dateValue
		warningDays int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify a deadline as normal, warning or overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if warningDays < 0 {
				return fmt.Errorf("--warning must be >= 0, got %d", warningDays)
			}
			if due.t == nil {
				return fmt.Errorf("--deadline must not be empty")
			}
			now := a.now()
			if today.t != nil {
				now = *today.t
			}
			check := formatter.DeadlineCheck{
				Deadline:    *due.t,
				WarningDays: warningDays,
				Today:       now,
				Status:      deadline.Classify(*due.t, warningDays, now),
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDeadlineCheck(check))
			return nil
		},
	}

	cmd.Flags().Var(&due, "deadline", "Deadline date (YYYY-MM-DD)")
	cmd.Flags().Var(&today, "today", "Classify as of this date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&warningDays, "warning", a.DefaultWarningDays, "Warning window in days")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}
