package term

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend"
)

// chrome is the number of rows used by the header and footer.
const chrome = 2

// Model is a bubbletea model that previews a figure in the terminal.
// The canvas follows the terminal size; the figure itself is not resized.
type Model struct {
	fig     *pltrs.Figure
	title   string
	backend *Backend

	width  int
	height int
	color  bool
	status string
}

// NewModel creates a preview model for fig.
func NewModel(fig *pltrs.Figure, title string) Model {
	if title == "" {
		title = "pltrs"
	}
	return Model{
		fig:     fig,
		title:   title,
		backend: New(),
		color:   true,
		status:  "q quit  c color",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.redraw()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "c":
			m.color = !m.color
			m.backend.opts.color = m.color
			m.redraw()
		}
	}
	return m, nil
}

// redraw renders one frame at the current terminal size.
func (m *Model) redraw() {
	w, h := m.width, m.height-chrome
	if w <= 0 || h <= 0 {
		return
	}

	desc := backend.RenderTargetDesc{Width: w, Height: h}
	if m.backend.Canvas() == nil {
		if err := m.backend.Init(desc); err != nil {
			m.status = "init: " + err.Error()
			return
		}
	} else {
		m.backend.Resize(w, h)
	}

	if err := backend.DrawFrame(m.backend, m.fig); err != nil {
		m.status = "draw: " + err.Error()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := titleStyle.Render(fmt.Sprintf(" %s ", m.title))
	footer := dimStyle.Render(fmt.Sprintf(" %dx%d cells  %s", m.width, m.height-chrome, m.status))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.backend.Frame(), footer)
}

// Run shows fig in a full-screen terminal preview until the user quits.
func Run(fig *pltrs.Figure, title string) error {
	if fig == nil {
		return backend.ErrNilFigure
	}
	_, err := tea.NewProgram(NewModel(fig, title), tea.WithAltScreen()).Run()
	return err
}
