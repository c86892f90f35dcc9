package actionfilter

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "actionfilter/entity"
	"actionfilter/filter"
	"actionfilter/message"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model hosting the filter editor.
// It stands in for the screen that owns the query.
type Model struct {
	Query       *Query
	logger      nt.Logger
	ctx         context.Context
	errorString string

	FilterPanel filter.FilterPanel

	Width  int
	Height int
}

// NewModel creates a new bt model.
func NewModel(ctx context.Context, qry *Query, choices []filter.Choice, lgr nt.Logger) Model {

	return Model{
		Query:       qry,
		logger:      lgr,
		ctx:         ctx,
		FilterPanel: filter.NewFilterPanel(ctx, lgr, choices, Capture(ctx, lgr)),
	}
}

// Init mirrors the owner's list into the panel.
func (m Model) Init() tea.Cmd {
	return message.FiltersCmd(m.Query.Filters())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.SetFiltersMsg:
		err := m.Query.SetFilters(m.ctx, msg.Filters)
		if err != nil {
			return m, message.ErrorCmd(err)
		}
		// owner pushes back down, replacing the panel's mirror
		return m, message.FiltersCmd(m.Query.Filters())

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd tea.Cmd
		m.FilterPanel, cmd = m.FilterPanel.Update(filter.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
		return m, cmd
	}

	var cmd tea.Cmd
	m.FilterPanel, cmd = m.FilterPanel.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	screenLayer := lipgloss.NewLayer("screen", m.FilterPanel.Render())

	footerContent := RenderFooter(len(m.FilterPanel.Filters()), m.Query.Name(), m.errorString, m.Width)
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}
