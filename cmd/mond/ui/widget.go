package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mondclock/internal/display"
	"mondclock/internal/widget"
)

// boardMsg signals that the board changed and the view must repaint.
type boardMsg struct{}

// KeyMap holds the widget key bindings.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model displays the three clock slots and repaints whenever the render
// loop writes to the board. It never reads the clock itself; the board is
// its only input.
type Model struct {
	board  *display.Board
	styles Styles
	keys   KeyMap
	width  int
	height int
}

// NewModel creates the widget view over a display board.
func NewModel(board *display.Board, theme Theme) Model {
	return Model{
		board:  board,
		styles: NewStyles(theme),
		keys:   DefaultKeyMap(),
	}
}

// Init starts waiting for board updates.
func (m Model) Init() tea.Cmd {
	return watchBoard(m.board)
}

// watchBoard blocks until the board signals a write, then delivers a
// repaint message. Update re-arms it after every delivery.
func watchBoard(b *display.Board) tea.Cmd {
	return func() tea.Msg {
		<-b.Watch()
		return boardMsg{}
	}
}

// Update handles key, resize, and board messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case boardMsg:
		return m, watchBoard(m.board)
	}
	return m, nil
}

// View renders the three slots stacked and centered.
func (m Model) View() string {
	slots := m.board.Snapshot()

	face := m.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Weekday.Render(slots[widget.SlotDay]),
		m.styles.Date.Render(slots[widget.SlotDate]),
		m.styles.Time.Render(slots[widget.SlotTime]),
	))

	if m.width <= 0 || m.height <= 0 {
		return face
	}

	help := m.styles.Help.Render("q quit")
	content := lipgloss.JoinVertical(lipgloss.Center, face, help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
