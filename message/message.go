package message

import (
	nt "actionfilter/entity"
)

// SetFiltersMsg carries an edited filter list up to its owner
type SetFiltersMsg struct {
	Filters nt.FilterList
}

// FiltersMsg carries the owner's filter list down to the editor
type FiltersMsg struct {
	Filters nt.FilterList
}

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}
