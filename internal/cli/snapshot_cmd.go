package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/alexanderramin/shopfloor/internal/importer"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Save all projects and tasks to a JSON snapshot (- for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.Snapshot.Export(a.context(cmd))
			if err != nil {
				return err
			}
			data, err := snap.Marshal()
			if err != nil {
				return err
			}

			if args[0] == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d projects and %d tasks to %s\n",
				len(snap.Projects), len(snap.Tasks), args[0])
			return nil
		},
	}
}

func newImportCmd(a *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load a JSON snapshot (- for stdin), merging by ID unless --replace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(cmd, args[0])
			if err != nil {
				return err
			}

			mode := app.ImportMerge
			if replace {
				mode = app.ImportReplace
			}

			var stop func()
			if a.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Importing snapshot...")
			}
			result, err := a.Snapshot.Import(a.context(cmd), snap, mode)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported (%s): %d projects created, %d updated, %d items; %d tasks created, %d updated\n",
				result.Mode, result.ProjectsCreated, result.ProjectsUpdated, result.ItemsTotal,
				result.TasksCreated, result.TasksUpdated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Delete all projects and tasks before loading")

	return cmd
}

func readSnapshot(cmd *cobra.Command, path string) (*importer.Snapshot, error) {
	if path != "-" {
		return importer.LoadSnapshot(path)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return importer.ParseSnapshot(data)
}
