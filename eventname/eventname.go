// Package eventname groups a team's event names for selection.
package eventname

import (
	"strings"
)

const (
	CustomLabel  = "Custom events"
	PostHogLabel = "PostHog events"

	noCustomHint = "You haven't sent any custom events."
	docsHint     = "See documentation (https://posthog.com/docs/integrations) on how to send custom events in lots of languages."
)

// Option is one selectable event.
type Option struct {
	Value string
	Label string
}

// Group is a labeled set of options.
type Group struct {
	Label   string
	Options []Option
}

// friendly names for built-in events
var keyLabels = map[string]string{
	"$pageview":            "Pageview",
	"$pageleave":           "Pageleave",
	"$autocapture":         "Autocapture",
	"$screen":              "Screen",
	"$identify":            "Identify",
	"$create_alias":        "Alias",
	"$feature_flag_called": "Feature flag called",
}

// Grouped splits names into custom and built-in groups, in that order.
// Both groups are always present so callers can index the custom group.
func Grouped(names []string) []Group {

	custom := Group{Label: CustomLabel, Options: []Option{}}
	builtin := Group{Label: PostHogLabel, Options: []Option{}}

	for _, name := range names {
		if strings.HasPrefix(name, "$") {
			builtin.Options = append(builtin.Options, Option{Value: name, Label: Label(name)})
			continue
		}
		custom.Options = append(custom.Options, Option{Value: name, Label: Label(name)})
	}

	return []Group{custom, builtin}
}

// Label returns the display label for an event name.
func Label(name string) string {

	label, ok := keyLabels[name]
	if ok {
		return label
	}
	return name
}

// Search keeps options whose value contains input, ignoring case.
// Groups left empty are dropped.
func Search(groups []Group, input string) []Group {

	needle := strings.ToLower(input)

	var found []Group
	for _, group := range groups {
		var options []Option
		for _, option := range group.Options {
			if strings.Contains(strings.ToLower(option.Value), needle) {
				options = append(options, option)
			}
		}
		if len(options) > 0 {
			found = append(found, Group{Label: group.Label, Options: options})
		}
	}
	return found
}

// Disabled reports whether selection is pointless for an action step,
// which is so when no custom events have been sent.
func Disabled(groups []Group, isActionStep bool) bool {

	if !isActionStep {
		return false
	}
	return len(groups) == 0 || len(groups[0].Options) == 0
}

// Hint returns guidance to show under an action step's selector.
// The documentation pointer is always there for an action step.
func Hint(groups []Group, isActionStep bool) string {

	if !isActionStep {
		return ""
	}
	if Disabled(groups, isActionStep) {
		return noCustomHint + " " + docsHint
	}
	return docsHint
}

// Flatten returns every option across groups, in group order.
func Flatten(groups []Group) (options []Option) {

	for _, group := range groups {
		options = append(options, group.Options...)
	}
	return
}
