// Package edible provides copy-on-write operations over a filter list.
// No operation mutates its input; each returns a fresh, renumbered list.
package edible

import (
	"fmt"

	nt "actionfilter/entity"
)

// IndexError reports an index outside the bounds of the list being edited.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for list of length %d", err.Op, err.Index, err.Len)
}

// Renumber returns a copy of list with each order set to its position.
func Renumber(list nt.FilterList) nt.FilterList {

	renumbered := clone(list)
	for i := range renumbered {
		renumbered[i].Order = i
	}
	return renumbered
}

// unexported

func clone(list nt.FilterList) nt.FilterList {

	cloned := make(nt.FilterList, len(list))
	copy(cloned, list)
	return cloned
}

func check(op string, list nt.FilterList, idx int) error {

	if idx < 0 || idx >= len(list) {
		return &IndexError{Op: op, Index: idx, Len: len(list)}
	}
	return nil
}
