package cli

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/spf13/cobra"
)

func newSupportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "support",
		Short: "Submit and review support requests",
	}
	cmd.AddCommand(newSupportSubmitCmd(a), newSupportListCmd(a))
	return cmd
}

func newSupportSubmitCmd(a *App) *cobra.Command {
	var in ticketInput
	kind := newEnumValue(string(domain.TicketOther), enumStrings(domain.TicketTypes))
	priority := newEnumValue(string(domain.TicketNormal), enumStrings(domain.TicketPriorities))

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a support request (opens a form when run without flags in a terminal)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.kind = kind.value
			in.priority = priority.value
			if cmd.Flags().NFlag() == 0 && a.interactive() {
				if err := ticketForm(&in).Run(); err != nil {
					return err
				}
			}

			t := in.ticket()
			if err := a.Support.Submit(a.context(cmd), t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTicketSubmitted(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.title, "title", "", "Short summary")
	cmd.Flags().StringVar(&in.content, "content", "", "Details of the request")
	cmd.Flags().Var(kind, "type", "Request type (technical|resource|access|etc)")
	cmd.Flags().Var(priority, "priority", "Priority (low|normal|high)")

	return cmd
}

func newSupportListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List submitted requests, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tickets, err := a.Support.List(a.context(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTicketList(tickets, a.now()))
			return nil
		},
	}
}
