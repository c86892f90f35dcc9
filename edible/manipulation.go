package edible

import (
	nt "actionfilter/entity"
)

// Move relocates the entry at from to position to and renumbers.
// from == to yields an equivalent copy.
func Move(list nt.FilterList, from, to int) (moved nt.FilterList, err error) {

	err = check("move from", list, from)
	if err != nil {
		return
	}
	err = check("move to", list, to)
	if err != nil {
		return
	}

	entry := list[from]

	moved = make(nt.FilterList, 0, len(list))
	moved = append(moved, list[:from]...)
	moved = append(moved, list[from+1:]...)

	// insert into the shortened list
	moved = append(moved[:to], append(nt.FilterList{entry}, moved[to:]...)...)

	for i := range moved {
		moved[i].Order = i
	}
	return
}

// Append adds entry at the end with order set to the new last position.
func Append(list nt.FilterList, entry nt.FilterEntry) nt.FilterList {

	appended := make(nt.FilterList, len(list), len(list)+1)
	copy(appended, list)

	entry.Order = len(list)
	return append(appended, entry)
}

// AppendBlank adds a new, unbound entry.
func AppendBlank(list nt.FilterList) nt.FilterList {

	return Append(list, nt.FilterEntry{
		Type: nt.NewEntity,
		Math: nt.Total,
	})
}

// Remove drops the entry at idx and renumbers those after it.
func Remove(list nt.FilterList, idx int) (removed nt.FilterList, err error) {

	err = check("remove", list, idx)
	if err != nil {
		return
	}

	removed = make(nt.FilterList, 0, len(list)-1)
	removed = append(removed, list[:idx]...)
	removed = append(removed, list[idx+1:]...)

	for i := idx; i < len(removed); i++ {
		removed[i].Order = i
	}
	return
}

// Replace swaps the entry at idx for entry, which takes order idx.
func Replace(list nt.FilterList, idx int, entry nt.FilterEntry) (replaced nt.FilterList, err error) {

	err = check("replace", list, idx)
	if err != nil {
		return
	}

	replaced = clone(list)

	entry.Order = idx
	replaced[idx] = entry
	return
}
