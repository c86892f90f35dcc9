// Package person derives display headers from person records.
// Missing data falls back to placeholder text, it never fails.
package person

import (
	"regexp"
	"strings"

	"actionfilter/style"
)

const (
	displayIDLen = 5
	noIdentifier = "No email or name set"
)

// identifier properties, in order of preference
var identifierKeys = []string{"email", "name", "username"}

var nonWord = regexp.MustCompile(`\W`)

// Person is a tracked user as supplied by the person provider.
type Person struct {
	Properties   map[string]any `yaml:"properties" json:"properties"`
	DistinctIDs  []string       `yaml:"distinct_ids" json:"distinct_ids"`
	IsIdentified bool           `yaml:"is_identified" json:"is_identified"`
}

// Header is the derived display of a person.
type Header struct {
	Identified bool
	Label      string
}

// CustomIdentifier returns the person's email, name or username, whichever is set first.
func CustomIdentifier(psn *Person) string {

	if psn == nil {
		return ""
	}

	for _, key := range identifierKeys {
		val, ok := psn.Properties[key].(string)
		if ok && val != "" {
			return val
		}
	}
	return ""
}

// DisplayID returns a short tag from the first distinct id: its last five word
// characters, uppercased.  An id shorter than five keeps its trailing
// 2n-5 offset, so "abc" gives "BC".
func DisplayID(psn *Person) string {

	if psn == nil || len(psn.DistinctIDs) == 0 {
		return ""
	}

	base := nonWord.ReplaceAllString(psn.DistinctIDs[0], "")
	start := len(base) - displayIDLen
	if start < 0 {
		start = max(len(base)+start, 0)
	}
	return strings.ToUpper(base[start:])
}

// NewHeader derives the header for psn, which may be nil.
func NewHeader(psn *Person) Header {

	identifier := CustomIdentifier(psn)

	if psn != nil && psn.IsIdentified {
		if identifier == "" {
			identifier = noIdentifier
		}
		return Header{Identified: true, Label: identifier}
	}

	if identifier == "" {
		identifier = strings.TrimSpace("user " + DisplayID(psn))
	}
	return Header{Label: "Unidentified " + identifier}
}

// Render styles the header for the terminal.
func (hdr Header) Render() string {

	if hdr.Identified {
		return style.IdentifiedStyle.Render(hdr.Label)
	}
	return style.MutedStyle.Render(hdr.Label)
}
