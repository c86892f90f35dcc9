package message

import (
	tea "charm.land/bubbletea/v2"

	nt "actionfilter/entity"
)

// SetFiltersCmd returns a command handing an edited list to the owner
func SetFiltersCmd(list nt.FilterList) tea.Cmd {
	return func() tea.Msg {
		return SetFiltersMsg{Filters: list}
	}
}

// FiltersCmd returns a command pushing the owner's list to the editor
func FiltersCmd(list nt.FilterList) tea.Cmd {
	return func() tea.Msg {
		return FiltersMsg{Filters: list}
	}
}

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
