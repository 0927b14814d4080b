package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const boardColumnWidth = 30

// FormatTaskList renders all tasks in board order as a table.
func FormatTaskList(tasks []*domain.Task) string {
	headers := []string{"ID", "STATUS", "#", "TITLE", "ASSIGNEE", "PRIORITY", "DUE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			ColumnTitle(t.Status),
			fmt.Sprintf("%d", t.Position+1),
			Bold(t.Title),
			OrDash(t.Assignee),
			PriorityBadge(t.Priority),
			DateOrDash(t.DueDate),
		})
	}
	return RenderBox(fmt.Sprintf("Tasks (%d)", len(tasks)), RenderTable(headers, rows, "No tasks yet."))
}

// FormatTaskCard renders one task as a small card. selected draws the
// card with a highlighted border.
func FormatTaskCard(t *domain.Task, width int, selected bool) string {
	border := ColorDim
	if selected {
		border = ColorHeader
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 2).
		PaddingLeft(1)

	var b strings.Builder
	b.WriteString(StyleBold.Render(t.Title) + "\n")
	b.WriteString(PriorityBadge(t.Priority))
	if t.Assignee != "" {
		b.WriteString("  " + Dim(t.Assignee))
	}
	if t.DueDate != nil {
		b.WriteString("\n" + Dim("due "+domain.FormatDate(t.DueDate)))
	}
	return style.Render(b.String())
}

// BoardCursor marks the selected card; Column -1 selects nothing.
type BoardCursor struct {
	Column int
	Row    int
}

// FormatBoard renders the three kanban columns side by side.
func FormatBoard(board *app.Board, cursor BoardCursor) string {
	cols := make([]string, 0, len(board.Columns))
	for ci, col := range board.Columns {
		var b strings.Builder
		heading := fmt.Sprintf("%s (%d)", ColumnTitle(col.Status), len(col.Tasks))
		headStyle := StyleHeader
		if ci == cursor.Column {
			headStyle = headStyle.Underline(true)
		}
		b.WriteString(headStyle.Render(heading) + "\n")
		if len(col.Tasks) == 0 {
			b.WriteString(Dim("(empty)") + "\n")
		}
		for ri, t := range col.Tasks {
			b.WriteString(FormatTaskCard(t, boardColumnWidth, ci == cursor.Column && ri == cursor.Row) + "\n")
		}
		cols = append(cols, lipgloss.NewStyle().Width(boardColumnWidth).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(cols, "  ")...)
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

// FormatMoveResult confirms a board move.
func FormatMoveResult(res *app.MoveResult) string {
	if !res.Changed {
		return Dim(fmt.Sprintf("%q is already there; nothing changed.", res.Task.Title))
	}
	return fmt.Sprintf("%s %s %s %s",
		StyleGreen.Render("✔"), Bold(res.Task.Title),
		Dim("→"), fmt.Sprintf("%s #%d", ColumnTitle(res.Task.Status), res.Task.Position+1))
}
