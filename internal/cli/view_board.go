package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type boardKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "column")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "card")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		MoveLeft:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h/l", "move card")),
		MoveRight: key.NewBinding(key.WithKeys("l")),
		MoveUp:    key.NewBinding(key.WithKeys("K"), key.WithHelp("K/J", "reorder")),
		MoveDown:  key.NewBinding(key.WithKeys("J")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.MoveLeft, k.MoveUp, k.Refresh, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type boardLoadedMsg struct {
	board *app.Board
	err   error
}

// boardMovedMsg carries the board reloaded after a move.
type boardMovedMsg struct {
	result *app.MoveResult
	board  *app.Board
	err    error
}

// boardModel is the interactive kanban board.
type boardModel struct {
	ctx    context.Context
	tasks  service.TaskService
	keys   boardKeyMap
	help   help.Model
	board  *app.Board
	cursor formatter.BoardCursor
	status string
	err    error
}

func newBoardModel(ctx context.Context, tasks service.TaskService) boardModel {
	return boardModel{
		ctx:   ctx,
		tasks: tasks,
		keys:  defaultBoardKeys(),
		help:  help.New(),
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.load()
}

func (m boardModel) load() tea.Cmd {
	return func() tea.Msg {
		b, err := m.tasks.Board(m.ctx)
		return boardLoadedMsg{board: b, err: err}
	}
}

// move drops the selected card at (status, pos) and reloads the board.
func (m boardModel) move(t *domain.Task, status domain.TaskStatus, pos int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.tasks.Move(m.ctx, app.MoveRequest{TaskID: t.ID, Status: status, Position: &pos})
		if err != nil {
			return boardMovedMsg{err: err}
		}
		b, err := m.tasks.Board(m.ctx)
		return boardMovedMsg{result: res, board: b, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case boardLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.board = msg.board
			m.clampCursor()
		}
		return m, nil

	case boardMovedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.board = msg.board
		m.follow(msg.result.Task)
		m.status = formatter.FormatMoveResult(msg.result)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()
	}
	if m.board == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor.Column--
		m.clampCursor()
	case key.Matches(msg, m.keys.Right):
		m.cursor.Column++
		m.clampCursor()
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row--
		m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row++
		m.clampCursor()

	case key.Matches(msg, m.keys.MoveLeft), key.Matches(msg, m.keys.MoveRight):
		t := m.selected()
		target := m.cursor.Column + 1
		if key.Matches(msg, m.keys.MoveLeft) {
			target = m.cursor.Column - 1
		}
		if t == nil || target < 0 || target >= len(m.board.Columns) {
			return m, nil
		}
		col := m.board.Columns[target]
		return m, m.move(t, col.Status, min(m.cursor.Row, len(col.Tasks)))

	case key.Matches(msg, m.keys.MoveUp), key.Matches(msg, m.keys.MoveDown):
		t := m.selected()
		pos := m.cursor.Row + 1
		if key.Matches(msg, m.keys.MoveUp) {
			pos = m.cursor.Row - 1
		}
		col := m.board.Columns[m.cursor.Column]
		if t == nil || pos < 0 || pos >= len(col.Tasks) {
			return m, nil
		}
		return m, m.move(t, col.Status, pos)
	}
	return m, nil
}

func (m boardModel) selected() *domain.Task {
	if m.board == nil || m.cursor.Column >= len(m.board.Columns) {
		return nil
	}
	col := m.board.Columns[m.cursor.Column]
	if m.cursor.Row < 0 || m.cursor.Row >= len(col.Tasks) {
		return nil
	}
	return col.Tasks[m.cursor.Row]
}

func (m *boardModel) clampCursor() {
	if m.board == nil || len(m.board.Columns) == 0 {
		m.cursor = formatter.BoardCursor{}
		return
	}
	m.cursor.Column = max(0, min(m.cursor.Column, len(m.board.Columns)-1))
	n := len(m.board.Columns[m.cursor.Column].Tasks)
	m.cursor.Row = max(0, min(m.cursor.Row, n-1))
}

// follow puts the cursor on t after the board was reloaded.
func (m *boardModel) follow(t *domain.Task) {
	for ci, col := range m.board.Columns {
		for ri, other := range col.Tasks {
			if other.ID == t.ID {
				m.cursor = formatter.BoardCursor{Column: ci, Row: ri}
				return
			}
		}
	}
	m.clampCursor()
}

func (m boardModel) View() string {
	if m.board == nil {
		if m.err != nil {
			return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
		}
		return formatter.Dim("Loading board...") + "\n"
	}

	out := formatter.Header("Task board") + "\n\n" + formatter.FormatBoard(m.board, m.cursor) + "\n"
	switch {
	case m.err != nil:
		out += formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	case m.status != "":
		out += m.status + "\n"
	}
	return out + m.help.View(m.keys) + "\n"
}
