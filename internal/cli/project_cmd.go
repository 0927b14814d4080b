package cli

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/spf13/cobra"
)

func newProjectCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Manage projects and their management items",
	}

	cmd.AddCommand(
		newProjectAddCmd(a),
		newProjectListCmd(a),
		newProjectInspectCmd(a),
		newProjectUpdateCmd(a),
		newProjectRemoveCmd(a),
		newItemCmd(a),
	)

	return cmd
}

func newProjectAddCmd(a *App) *cobra.Command {
	f := newProjectFlags()
	var items []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new project",
		Long: "Register a new project. Without --item the project starts with the " +
			"BOM, Drawing and Program management items.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.vendor == "" && f.prodNo == "" && a.interactive() {
				if err := projectForm(f).Run(); err != nil {
					return err
				}
			}

			p := &domain.Project{
				Vendor:           f.vendor,
				Country:          f.country,
				ProductionNumber: f.prodNo,
				PM:               f.pm,
				Manager:          f.manager,
				FATDate:          f.fat.t,
				DeliveryDate:     f.delivery.t,
				ProcessStage:     domain.ProcessStage(f.stage.value),
				HealthStatus:     domain.HealthStatus(f.health.value),
			}
			for _, name := range items {
				p.Items = append(p.Items, domain.ManagementItem{Name: name, WarningDays: a.DefaultWarningDays})
			}

			if err := a.Projects.Create(a.context(cmd), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s %s [%s] with %d items\n",
				p.Vendor, p.ProductionNumber, p.DisplayID(), len(p.Items))
			return nil
		},
	}

	cmd.Flags().AddFlagSet(f.flagSet())
	cmd.Flags().StringArrayVar(&items, "item", nil, "Management item name (repeatable)")

	return cmd
}

func newProjectListCmd(a *App) *cobra.Command {
	var search string
	stage := newEnumValue("", enumStrings(domain.ProcessStages))

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := a.Projects.List(a.context(cmd), repository.ProjectFilter{
				Stage:  domain.ProcessStage(stage.value),
				Search: search,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects, a.now()))
			return nil
		},
	}

	cmd.Flags().Var(stage, "stage", "Only projects in this process stage")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Match vendor, PM, manager or production number")

	return cmd
}

func newProjectInspectCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a project with its management items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			id, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}
			p, err := a.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectInspect(p, a.now()))
			return nil
		},
	}
}

func newProjectUpdateCmd(a *App) *cobra.Command {
	f := newProjectFlags()

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change project fields; only the flags given are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			id, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var patch app.ProjectPatch
			if flags.Changed("vendor") {
				patch.Vendor = &f.vendor
			}
			if flags.Changed("country") {
				patch.Country = &f.country
			}
			if flags.Changed("prod-no") {
				patch.ProductionNumber = &f.prodNo
			}
			if flags.Changed("pm") {
				patch.PM = &f.pm
			}
			if flags.Changed("manager") {
				patch.Manager = &f.manager
			}
			if flags.Changed("fat") {
				patch.FATDate = app.OptionalDate{Set: true, Value: f.fat.t}
			}
			if flags.Changed("delivery") {
				patch.DeliveryDate = app.OptionalDate{Set: true, Value: f.delivery.t}
			}
			if flags.Changed("stage") {
				stage := domain.ProcessStage(f.stage.value)
				patch.ProcessStage = &stage
			}
			if flags.Changed("health") {
				health := domain.HealthStatus(f.health.value)
				patch.HealthStatus = &health
			}

			p, err := a.Projects.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s %s (%s, %s)\n",
				p.Vendor, p.ProductionNumber, p.ProcessStage.Label(), p.HealthStatus)
			return nil
		},
	}

	cmd.Flags().AddFlagSet(f.flagSet())

	return cmd
}

func newProjectRemoveCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a project and its management items",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			id, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}
			p, err := a.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if !yes && a.interactive() {
				confirmed := false
				prompt := fmt.Sprintf("Delete %s %s and its %d items?", p.Vendor, p.ProductionNumber, len(p.Items))
				if err := confirmForm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := a.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s %s\n", p.Vendor, p.ProductionNumber)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
