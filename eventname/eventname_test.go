package eventname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrouped(t *testing.T) {

	groups := Grouped([]string{"signup", "$pageview", "purchase", "$custom_thing"})

	require.Len(t, groups, 2)
	assert.Equal(t, Group{
		Label: CustomLabel,
		Options: []Option{
			{Value: "signup", Label: "signup"},
			{Value: "purchase", Label: "purchase"},
		},
	}, groups[0])
	assert.Equal(t, Group{
		Label: PostHogLabel,
		Options: []Option{
			{Value: "$pageview", Label: "Pageview"},
			{Value: "$custom_thing", Label: "$custom_thing"},
		},
	}, groups[1])
}

func TestGroupedEmpty(t *testing.T) {

	groups := Grouped(nil)

	require.Len(t, groups, 2)
	assert.Empty(t, groups[0].Options)
	assert.Empty(t, groups[1].Options)
}

func TestSearch(t *testing.T) {

	groups := Grouped([]string{"Signup", "$pageview", "purchase", "$pageleave"})

	tests := []struct {
		name  string
		input string
		want  []Group
	}{
		{
			name:  "case insensitive",
			input: "SIGN",
			want: []Group{
				{Label: CustomLabel, Options: []Option{{Value: "Signup", Label: "Signup"}}},
			},
		},
		{
			name:  "matches value not label",
			input: "$page",
			want: []Group{
				{Label: PostHogLabel, Options: []Option{
					{Value: "$pageview", Label: "Pageview"},
					{Value: "$pageleave", Label: "Pageleave"},
				}},
			},
		},
		{
			name:  "empty input keeps all",
			input: "",
			want:  groups,
		},
		{
			name:  "no match",
			input: "zzz",
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Search(groups, tc.input))
		})
	}
}

func TestDisabledAndHint(t *testing.T) {

	none := Grouped([]string{"$pageview"})
	some := Grouped([]string{"signup"})

	assert.False(t, Disabled(none, false))
	assert.True(t, Disabled(none, true))
	assert.True(t, Disabled(nil, true))
	assert.False(t, Disabled(some, true))

	assert.Equal(t, noCustomHint+" "+docsHint, Hint(none, true))
	assert.Equal(t, "", Hint(none, false))
	assert.Equal(t, docsHint, Hint(some, true))
	assert.Contains(t, Hint(some, true), "https://posthog.com/docs/integrations")
}

func TestFlatten(t *testing.T) {

	options := Flatten(Grouped([]string{"$identify", "signup"}))

	assert.Equal(t, []Option{
		{Value: "signup", Label: "signup"},
		{Value: "$identify", Label: "Identify"},
	}, options)
}
