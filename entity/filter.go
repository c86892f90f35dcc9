package entity

import "sort"

// EntityType distinguishes event filters from action filters.
type EntityType string

const (
	Events    EntityType = "events"
	Actions   EntityType = "actions"
	NewEntity EntityType = "new_entity" // blank row, not yet bound to an event or action
)

// MathType is the aggregation applied to a filter's matches.
type MathType string

const (
	Total         MathType = "total"
	Dau           MathType = "dau"
	WeeklyActive  MathType = "weekly_active"
	MonthlyActive MathType = "monthly_active"
)

// MathTypes lists aggregations in the order they are cycled through.
var MathTypes = []MathType{Total, Dau, WeeklyActive, MonthlyActive}

// Property is a constraint on an event property.
// Opaque to ordering.
type Property struct {
	Key      string `yaml:"key" json:"key"`
	Value    any    `yaml:"value" json:"value"`
	Operator string `yaml:"operator,omitempty" json:"operator,omitempty"`
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`
}

// FilterEntry is one event-or-action condition of a query.
type FilterEntry struct {
	Type       EntityType `yaml:"type"`
	ID         string     `yaml:"id"`   // event name or action id
	Name       string     `yaml:"name"` // display name
	Order      int        `yaml:"order"`
	Math       MathType   `yaml:"math,omitempty"`
	Properties []Property `yaml:"properties,omitempty"`
}

// FilterList is an ordered sequence of entries where list[i].Order == i.
type FilterList []FilterEntry

// Filters is the split form of a FilterList, as stored with a query definition.
type Filters struct {
	Events  []FilterEntry `yaml:"events,omitempty"`
	Actions []FilterEntry `yaml:"actions,omitempty"`
}

// Action is a saved action that can be chosen as a filter.
type Action struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Split buckets entries by type, keeping their order fields.
// Blank entries are dropped.
func Split(list FilterList) (filters Filters) {

	for _, entry := range list {
		switch entry.Type {
		case Events:
			filters.Events = append(filters.Events, entry)
		case Actions:
			filters.Actions = append(filters.Actions, entry)
		}
	}
	return
}

// Merge combines actions and events into one list sorted by order and renumbered.
func Merge(filters Filters) FilterList {

	list := make(FilterList, 0, len(filters.Actions)+len(filters.Events))
	list = append(list, filters.Actions...)
	list = append(list, filters.Events...)

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Order < list[j].Order
	})

	for i := range list {
		list[i].Order = i
	}
	return list
}
