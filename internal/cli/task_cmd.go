package cli

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage team tasks on the kanban board",
	}

	cmd.AddCommand(
		newTaskAddCmd(a),
		newTaskListCmd(a),
		newTaskMoveCmd(a),
		newTaskUpdateCmd(a),
		newTaskRemoveCmd(a),
	)

	return cmd
}

func newTaskAddCmd(a *App) *cobra.Command {
	f := newTaskFlags()
	status := newEnumValue(string(domain.TaskTodo), enumStrings(domain.TaskStatuses))

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to the bottom of a column",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				Title:    f.title,
				Assignee: f.assignee,
				Priority: domain.TaskPriority(f.priority.value),
				Status:   domain.TaskStatus(status.value),
				DueDate:  f.due.t,
			}
			if err := a.Tasks.Create(a.context(cmd), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s [%s]\n",
				t.Title, formatter.ColumnTitle(t.Status), formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().AddFlagSet(f.flagSet())
	cmd.Flags().Var(status, "status", "Column (todo|doing|done)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in board order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.Tasks.List(a.context(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}
}

func newTaskMoveCmd(a *App) *cobra.Command {
	var position string

	cmd := &cobra.Command{
		Use:   "move ID STATUS",
		Short: "Move a task to a column (todo|doing|done), optionally at a 1-based position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			id, err := resolveTaskID(ctx, a, args[0])
			if err != nil {
				return err
			}

			req := app.MoveRequest{TaskID: id, Status: domain.TaskStatus(args[1])}
			if cmd.Flags().Changed("position") {
				pos, err := parsePosition(position)
				if err != nil {
					return err
				}
				req.Position = &pos
			}

			res, err := a.Tasks.Move(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMoveResult(res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&position, "position", "p", "", "Position in the column, 1 is the top")

	return cmd
}

func newTaskUpdateCmd(a *App) *cobra.Command {
	f := newTaskFlags()

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change task fields; only the flags given are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			id, err := resolveTaskID(ctx, a, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var patch app.TaskPatch
			if flags.Changed("title") {
				patch.Title = &f.title
			}
			if flags.Changed("assignee") {
				patch.Assignee = &f.assignee
			}
			if flags.Changed("priority") {
				p := domain.TaskPriority(f.priority.value)
				patch.Priority = &p
			}
			if flags.Changed("due") {
				patch.DueDate = app.OptionalDate{Set: true, Value: f.due.t}
			}

			t, err := a.Tasks.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q\n", t.Title)
			return nil
		},
	}

	cmd.Flags().AddFlagSet(f.flagSet())

	return cmd
}

func newTaskRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			id, err := resolveTaskID(ctx, a, args[0])
			if err != nil {
				return err
			}
			t, err := a.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := a.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", t.Title)
			return nil
		},
	}
}
