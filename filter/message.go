package filter

// SizeMsg signals the space available to the panel
type SizeMsg struct {
	Width  int
	Height int
}
