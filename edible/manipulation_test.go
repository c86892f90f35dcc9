package edible

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "actionfilter/entity"
)

func entries(ids ...string) nt.FilterList {
	list := make(nt.FilterList, len(ids))
	for i, id := range ids {
		list[i] = nt.FilterEntry{Type: nt.Events, ID: id, Name: "name-" + id, Order: i}
	}
	return list
}

func ids(list nt.FilterList) []string {
	out := make([]string, len(list))
	for i, entry := range list {
		out[i] = entry.ID
	}
	return out
}

func requireContiguous(t *testing.T, list nt.FilterList) {
	t.Helper()
	for i, entry := range list {
		require.Equal(t, i, entry.Order, "order at %d", i)
	}
}

func TestMove(t *testing.T) {

	tests := []struct {
		name     string
		list     nt.FilterList
		from, to int
		want     nt.FilterList
	}{
		{
			name: "first to last",
			list: entries("a", "b", "c"),
			from: 0, to: 2,
			want: nt.FilterList{
				{Type: nt.Events, ID: "b", Name: "name-b", Order: 0},
				{Type: nt.Events, ID: "c", Name: "name-c", Order: 1},
				{Type: nt.Events, ID: "a", Name: "name-a", Order: 2},
			},
		},
		{
			name: "second to first",
			list: entries("a", "b"),
			from: 1, to: 0,
			want: nt.FilterList{
				{Type: nt.Events, ID: "b", Name: "name-b", Order: 0},
				{Type: nt.Events, ID: "a", Name: "name-a", Order: 1},
			},
		},
		{
			name: "same index",
			list: entries("a", "b", "c"),
			from: 1, to: 1,
			want: entries("a", "b", "c"),
		},
		{
			name: "single",
			list: entries("a"),
			from: 0, to: 0,
			want: entries("a"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Move(tc.list, tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {

	list := entries("a", "b", "c", "d")
	before := entries("a", "b", "c", "d")

	moved, err := Move(list, 3, 0)
	require.NoError(t, err)

	assert.Equal(t, before, list)
	assert.Equal(t, []string{"d", "a", "b", "c"}, ids(moved))

	moved[0].Name = "changed"
	assert.Equal(t, "name-a", list[0].Name)
}

func TestMoveProperties(t *testing.T) {

	list := entries("a", "b", "c", "d", "e")
	list[2].Math = nt.Dau
	list[2].Properties = []nt.Property{{Key: "browser", Value: "Firefox", Operator: "exact"}}

	for from := range list {
		for to := range list {
			moved, err := Move(list, from, to)
			require.NoError(t, err)

			require.Len(t, moved, len(list))
			requireContiguous(t, moved)

			// moved entry appears once at to, payload intact
			count := 0
			for _, entry := range moved {
				if entry.ID == list[from].ID {
					count++
				}
			}
			require.Equal(t, 1, count)

			want := list[from]
			want.Order = to
			require.Equal(t, want, moved[to])

			// others keep relative order
			var others, movedOthers []string
			for _, entry := range list {
				if entry.ID != list[from].ID {
					others = append(others, entry.ID)
				}
			}
			for _, entry := range moved {
				if entry.ID != list[from].ID {
					movedOthers = append(movedOthers, entry.ID)
				}
			}
			require.Equal(t, others, movedOthers)
		}
	}
}

func TestMoveOutOfRange(t *testing.T) {

	tests := []struct {
		name     string
		list     nt.FilterList
		from, to int
		op       string
		idx      int
	}{
		{name: "empty", list: nil, from: 0, to: 0, op: "move from", idx: 0},
		{name: "negative from", list: entries("a"), from: -1, to: 0, op: "move from", idx: -1},
		{name: "from past end", list: entries("a", "b"), from: 2, to: 0, op: "move from", idx: 2},
		{name: "to past end", list: entries("a", "b"), from: 0, to: 2, op: "move to", idx: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Move(tc.list, tc.from, tc.to)
			require.Error(t, err)
			assert.Nil(t, got)

			var idxErr *IndexError
			require.True(t, errors.As(err, &idxErr))
			assert.Equal(t, tc.op, idxErr.Op)
			assert.Equal(t, tc.idx, idxErr.Index)
			assert.Equal(t, len(tc.list), idxErr.Len)
		})
	}
}

func TestAppend(t *testing.T) {

	list := entries("a", "b")

	appended := Append(list, nt.FilterEntry{Type: nt.Actions, ID: "9", Order: 42})

	require.Len(t, appended, 3)
	assert.Equal(t, nt.FilterEntry{Type: nt.Actions, ID: "9", Order: 2}, appended[2])
	assert.Len(t, list, 2)

	blank := AppendBlank(nil)
	assert.Equal(t, nt.FilterList{{Type: nt.NewEntity, Math: nt.Total, Order: 0}}, blank)
}

func TestRemove(t *testing.T) {

	list := entries("a", "b", "c")

	removed, err := Remove(list, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, ids(removed))
	requireContiguous(t, removed)
	assert.Equal(t, entries("a", "b", "c"), list)

	removed, err = Remove(removed, 0)
	require.NoError(t, err)
	removed, err = Remove(removed, 0)
	require.NoError(t, err)
	assert.Empty(t, removed)

	_, err = Remove(removed, 0)
	var idxErr *IndexError
	assert.True(t, errors.As(err, &idxErr))
	assert.EqualError(t, err, "remove: index 0 out of range for list of length 0")
}

func TestReplace(t *testing.T) {

	list := entries("a", "b", "c")

	replaced, err := Replace(list, 1, nt.FilterEntry{Type: nt.Actions, ID: "3", Name: "Signed up", Order: 7})
	require.NoError(t, err)

	assert.Equal(t, nt.FilterEntry{Type: nt.Actions, ID: "3", Name: "Signed up", Order: 1}, replaced[1])
	assert.Equal(t, []string{"a", "3", "c"}, ids(replaced))
	assert.Equal(t, "b", list[1].ID)

	_, err = Replace(list, 3, nt.FilterEntry{})
	assert.Error(t, err)
}

func TestRenumber(t *testing.T) {

	list := nt.FilterList{{ID: "a", Order: 4}, {ID: "b", Order: 4}}

	renumbered := Renumber(list)

	requireContiguous(t, renumbered)
	assert.Equal(t, 4, list[0].Order)
}
