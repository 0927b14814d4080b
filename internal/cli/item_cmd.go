package cli

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage a project's management items (BOM, drawings, programs...)",
	}

	cmd.AddCommand(
		newItemAddCmd(a),
		newItemUpdateCmd(a),
		newItemRemoveCmd(a),
	)

	return cmd
}

func newItemAddCmd(a *App) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Add a management item to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			projectID, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}

			item := &domain.ManagementItem{
				Name:             f.name,
				Manager:          f.manager,
				ProductionNumber: f.prodNo,
				Deadline:         f.deadline.t,
				WarningDays:      f.warningDays,
			}
			if !cmd.Flags().Changed("warning") {
				item.WarningDays = a.DefaultWarningDays
			}
			if err := a.Projects.AddItem(ctx, projectID, item); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s [%s] %s\n",
				item.Name, formatter.TruncID(item.ID), formatter.DeadlineCell(*item, a.now()))
			return nil
		},
	}

	cmd.Flags().AddFlagSet(f.flagSet())
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newItemUpdateCmd(a *App) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "update ITEM",
		Short: "Change a management item; only the flags given are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			itemID, err := resolveItemID(ctx, a, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var patch app.ItemPatch
			if flags.Changed("name") {
				patch.Name = &f.name
			}
			if flags.Changed("manager") {
				patch.Manager = &f.manager
			}
			if flags.Changed("prod-no") {
				patch.ProductionNumber = &f.prodNo
			}
			if flags.Changed("deadline") {
				patch.Deadline = app.OptionalDate{Set: true, Value: f.deadline.t}
			}
			if flags.Changed("warning") {
				patch.WarningDays = &f.warningDays
			}

			item, err := a.Projects.UpdateItem(ctx, itemID, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", item.Name, formatter.DeadlineCell(*item, a.now()))
			return nil
		},
	}

	cmd.Flags().AddFlagSet(f.flagSet())

	return cmd
}

func newItemRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ITEM",
		Aliases: []string{"rm"},
		Short:   "Delete a management item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			itemID, err := resolveItemID(ctx, a, args[0])
			if err != nil {
				return err
			}
			if err := a.Projects.RemoveItem(ctx, itemID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed item", formatter.TruncID(itemID))
			return nil
		},
	}
}
