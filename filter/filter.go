package filter

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"actionfilter/edible"
	nt "actionfilter/entity"
	"actionfilter/eventname"
	"actionfilter/message"
	"actionfilter/mirror"
	"actionfilter/style"
)

const (
	panelWidth  = 60
	placeholder = "Select action or event"
	alphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Choice is an event or action that a filter row can be bound to.
type Choice struct {
	Type nt.EntityType
	ID   string
	Name string
}

// NewChoices lists actions first, then events in group order.
func NewChoices(actions []nt.Action, groups []eventname.Group) (choices []Choice) {

	for _, act := range actions {
		choices = append(choices, Choice{Type: nt.Actions, ID: act.ID, Name: act.Name})
	}
	for _, opt := range eventname.Flatten(groups) {
		choices = append(choices, Choice{Type: nt.Events, ID: opt.Value, Name: opt.Label})
	}
	return
}

// FilterPanel edits the ordered action/event filters of a query.
// Edits go up as SetFiltersMsg, the owner's list comes back down as FiltersMsg.
type FilterPanel struct {
	mirror    mirror.Mirror
	selection edible.Selection
	choices   []Choice

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// NewFilterPanel creates an empty panel offering choices.  It fills once the
// owner's list arrives as a FiltersMsg.
func NewFilterPanel(ctx context.Context, lgr nt.Logger, choices []Choice, capture mirror.Capture) FilterPanel {
	return FilterPanel{
		mirror:    mirror.New(nil, capture),
		selection: edible.NewSelection(0),
		choices:   choices,
		ctx:       ctx,
		logger:    lgr,
	}
}

// Filters returns the panel's local list.
func (pnl FilterPanel) Filters() nt.FilterList {
	return pnl.mirror.Local()
}

// Selected returns the selected row, -1 when there are no filters.
func (pnl FilterPanel) Selected() int {
	return pnl.selection.Row()
}

func (pnl FilterPanel) Update(msg tea.Msg) (FilterPanel, tea.Cmd) {
	switch msg := msg.(type) {

	case message.FiltersMsg:
		pnl.mirror = pnl.mirror.Sync(msg.Filters)
		pnl.selection = pnl.selection.Clamp(pnl.mirror.Len())

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case tea.KeyPressMsg:
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

func (pnl FilterPanel) handleKey(msg tea.KeyPressMsg) (FilterPanel, tea.Cmd) {
	row := pnl.selection.Row()

	switch msg.String() {
	case "up", "k":
		pnl.selection = pnl.selection.Up()

	case "down", "j":
		pnl.selection = pnl.selection.Down()

	case "shift+up", "K":
		if row > 0 {
			return pnl.move(row, row-1)
		}

	case "shift+down", "J":
		if row >= 0 && row < pnl.mirror.Len()-1 {
			return pnl.move(row, row+1)
		}

	case "a":
		pnl.mirror = pnl.mirror.Add()
		pnl.selection = pnl.selection.Clamp(pnl.mirror.Len()).Last()
		return pnl, pnl.setFilters()

	case "d", "delete":
		if row < 0 {
			break
		}
		mr, err := pnl.mirror.Remove(row)
		if err != nil {
			return pnl, message.ErrorCmd(err)
		}
		pnl.mirror = mr
		pnl.selection = pnl.selection.Clamp(pnl.mirror.Len())
		return pnl, pnl.setFilters()

	case "right", "l":
		return pnl.cycleChoice(1)

	case "left", "h":
		return pnl.cycleChoice(-1)

	case "m":
		return pnl.cycleMath()
	}

	return pnl, nil
}

func (pnl FilterPanel) move(from, to int) (FilterPanel, tea.Cmd) {

	mr, err := pnl.mirror.Move(from, to)
	if err != nil {
		return pnl, message.ErrorCmd(err)
	}

	pnl.logger.Info(pnl.ctx, "moved filter", "from", from, "to", to)

	pnl.mirror = mr
	pnl.selection = pnl.selection.To(to)
	return pnl, pnl.setFilters()
}

func (pnl FilterPanel) cycleChoice(step int) (FilterPanel, tea.Cmd) {
	row := pnl.selection.Row()
	if row < 0 || len(pnl.choices) == 0 {
		return pnl, nil
	}

	entry := pnl.mirror.Local()[row]

	// unbound rows start from either end
	next := 0
	if step < 0 {
		next = len(pnl.choices) - 1
	}
	for i, choice := range pnl.choices {
		if choice.Type == entry.Type && choice.ID == entry.ID {
			next = (i + step + len(pnl.choices)) % len(pnl.choices)
			break
		}
	}

	choice := pnl.choices[next]
	entry.Type = choice.Type
	entry.ID = choice.ID
	entry.Name = choice.Name

	return pnl.replace(row, entry)
}

func (pnl FilterPanel) cycleMath() (FilterPanel, tea.Cmd) {
	row := pnl.selection.Row()
	if row < 0 {
		return pnl, nil
	}

	entry := pnl.mirror.Local()[row]

	next := nt.MathTypes[0]
	for i, math := range nt.MathTypes {
		if math == entry.Math {
			next = nt.MathTypes[(i+1)%len(nt.MathTypes)]
			break
		}
	}
	entry.Math = next

	return pnl.replace(row, entry)
}

func (pnl FilterPanel) replace(row int, entry nt.FilterEntry) (FilterPanel, tea.Cmd) {

	mr, err := pnl.mirror.Replace(row, entry)
	if err != nil {
		return pnl, message.ErrorCmd(err)
	}
	pnl.mirror = mr
	return pnl, pnl.setFilters()
}

func (pnl FilterPanel) setFilters() tea.Cmd {
	return message.SetFiltersCmd(pnl.mirror.Local())
}

// Render returns the panel's content
func (pnl FilterPanel) Render() string {
	var content strings.Builder

	filters := pnl.mirror.Local()

	if len(filters) == 0 {
		content.WriteString(style.MutedStyle.Render("No filters, press a to add one") + "\n")
	}

	for i, entry := range filters {
		isSelected := i == pnl.selection.Row()

		rowPrefix := "  "
		if isSelected {
			rowPrefix = "> "
		}

		handle := " "
		if len(filters) > 1 {
			handle = "⋮"
		}

		content.WriteString(fmt.Sprintf("%s%s %s. %s %s\n",
			rowPrefix,
			handle,
			letter(i),
			style.Highlight(entryLabel(entry), isSelected),
			style.MutedStyle.Render(string(entry.Math)),
		))
	}

	helpText := "↑↓: select  K/J: move  ←→: event  m: math  a: add  d: delete  Esc: quit"
	content.WriteString("\n" + style.MutedStyle.Render(helpText))

	return style.DialogStyle(pnl.dialogWidth()).Render(content.String())
}

// unexported

func (pnl FilterPanel) dialogWidth() int {
	if pnl.width > 0 && pnl.width < panelWidth {
		return pnl.width
	}
	return panelWidth
}

func letter(idx int) string {
	if idx < len(alphabet) {
		return alphabet[idx : idx+1]
	}
	return "-"
}

func entryLabel(entry nt.FilterEntry) string {

	switch entry.Type {
	case nt.Actions:
		return "action: " + entry.Name
	case nt.Events:
		return "event: " + entry.Name
	}
	return placeholder
}
