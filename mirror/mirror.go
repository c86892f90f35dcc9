// Package mirror keeps an editor's local copy of a filter list owned elsewhere.
//
// The local copy never becomes the source of truth.  Every edit is pushed to
// the owner through a Setter, and whatever the owner pushes back via Sync
// replaces the local copy wholesale.  An owner update arriving while the user
// is mid-gesture therefore wins over the gesture.
package mirror

import (
	"actionfilter/edible"
	nt "actionfilter/entity"
)

// ReorderedEvent is captured once for each move that changes the order.
const ReorderedEvent = "funnel step reordered"

// Setter receives the full updated list.
type Setter func(list nt.FilterList)

// Capture receives telemetry events.
type Capture func(event string)

// Mirror is a local copy of an externally owned filter list.
type Mirror struct {
	local      nt.FilterList
	setFilters Setter
	capture    Capture
}

// New creates an empty mirror, either func may be nil.
func New(set Setter, capture Capture) Mirror {
	return Mirror{
		local:      nt.FilterList{},
		setFilters: set,
		capture:    capture,
	}
}

// Sync replaces the local copy with the owner's list.
func (mr Mirror) Sync(list nt.FilterList) Mirror {
	mr.local = edible.Renumber(list)
	return mr
}

// Local returns a copy of the local list.
func (mr Mirror) Local() nt.FilterList {
	return edible.Renumber(mr.local)
}

// Len returns the number of entries.
func (mr Mirror) Len() int {
	return len(mr.local)
}

// Move relocates an entry and pushes the result to the owner.
func (mr Mirror) Move(from, to int) (Mirror, error) {

	moved, err := edible.Move(mr.local, from, to)
	if err != nil {
		return mr, err
	}

	mr = mr.push(moved)
	if from != to && mr.capture != nil {
		mr.capture(ReorderedEvent)
	}
	return mr, nil
}

// Add appends a blank entry and pushes the result to the owner.
func (mr Mirror) Add() Mirror {
	return mr.push(edible.AppendBlank(mr.local))
}

// Remove drops an entry and pushes the result to the owner.
func (mr Mirror) Remove(idx int) (Mirror, error) {

	removed, err := edible.Remove(mr.local, idx)
	if err != nil {
		return mr, err
	}
	return mr.push(removed), nil
}

// Replace swaps an entry's payload and pushes the result to the owner.
func (mr Mirror) Replace(idx int, entry nt.FilterEntry) (Mirror, error) {

	replaced, err := edible.Replace(mr.local, idx, entry)
	if err != nil {
		return mr, err
	}
	return mr.push(replaced), nil
}

// unexported

func (mr Mirror) push(list nt.FilterList) Mirror {

	mr.local = list
	if mr.setFilters != nil {
		mr.setFilters(edible.Renumber(list))
	}
	return mr
}
