package cli

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(a *App) *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the kanban board (arrows select, h/l move between columns, K/J reorder)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			if static || !a.interactive() {
				board, err := a.Tasks.Board(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBoard(board, formatter.BoardCursor{Column: -1}))
				return nil
			}

			p := tea.NewProgram(newBoardModel(ctx, a.Tasks), tea.WithAltScreen(), tea.WithContext(ctx))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running board: %w", err)
			}
			if m, ok := final.(boardModel); ok && m.board == nil && m.err != nil {
				return m.err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&static, "print", false, "Print the board once instead of opening the interactive view")

	return cmd
}
