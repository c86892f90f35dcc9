package edible

// Selection tracks the selected row of a list.
// Row is -1 when the list is empty.
type Selection struct {
	row int
	len int
}

// NewSelection selects the first row of a list of length n.
func NewSelection(n int) Selection {
	return Selection{row: 0, len: 0}.Clamp(n)
}

// Row returns the selected row index.
func (sel Selection) Row() int {
	return sel.row
}

// Up moves selection up one row
func (sel Selection) Up() Selection {
	if sel.row > 0 {
		sel.row--
	}
	return sel
}

// Down moves selection down one row
func (sel Selection) Down() Selection {
	if sel.row < sel.len-1 {
		sel.row++
	}
	return sel
}

// To selects row idx, keeping it in bounds.
func (sel Selection) To(idx int) Selection {
	sel.row = idx
	return sel.Clamp(sel.len)
}

// Last selects the final row.
func (sel Selection) Last() Selection {
	return sel.To(sel.len - 1)
}

// Clamp adjusts selection for a list now of length n.
func (sel Selection) Clamp(n int) Selection {
	sel.len = n

	switch {
	case n == 0:
		sel.row = -1
	case sel.row >= n:
		sel.row = n - 1
	case sel.row < 0:
		sel.row = 0
	}
	return sel
}
