package teatest

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// counterModel counts keys and echoes every 'p' through a Cmd round trip.
type counterModel struct {
	width int
	keys  []string
	pings int
}

func (m counterModel) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{} }
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case pingMsg:
		m.pings++
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		switch msg.String() {
		case "p":
			return m, func() tea.Msg { return pingMsg{} }
		case "b":
			return m, tea.Batch(
				func() tea.Msg { return pingMsg{} },
				func() tea.Msg { return pingMsg{} },
			)
		case "s":
			return m, func() tea.Msg {
				time.Sleep(time.Second)
				return pingMsg{}
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m counterModel) View() string {
	return "keys: " + strings.Join(m.keys, ",")
}

func TestDriver_InitAndSize(t *testing.T) {
	d := New(t, counterModel{}, WithSize(100, 30))
	d.DrainInit()

	m := d.Model.(counterModel)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 1, m.pings)
}

func TestDriver_KeysAndCmds(t *testing.T) {
	d := New(t, counterModel{})
	d.PressKey('p')
	d.PressKey('b')
	d.PressLeft()
	d.PressRight()
	d.PressUp()
	d.PressDown()

	m := d.Model.(counterModel)
	assert.Equal(t, 3, m.pings)
	assert.Equal(t, []string{"p", "b", "left", "right", "up", "down"}, m.keys)
	d.RequireViewContains("keys: p,b,left")
}

func TestDriver_SlowCmdAbandoned(t *testing.T) {
	d := New(t, counterModel{}, WithCmdTimeout(10*time.Millisecond))
	d.PressKey('s')

	assert.Equal(t, 0, d.Model.(counterModel).pings)
}

func TestDriver_QuitStopsSends(t *testing.T) {
	d := New(t, counterModel{})
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('p')
	assert.Equal(t, []string{"q"}, d.Model.(counterModel).keys)
}
