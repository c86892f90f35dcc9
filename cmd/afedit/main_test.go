package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actionfilter"
	nt "actionfilter/entity"
	"actionfilter/mirror"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

// listStore keeps one query's filters, failing saves when saveErr is set.
type listStore struct {
	list    nt.FilterList
	saveErr error
}

func (st *listStore) LoadFilters(ctx context.Context, query string) (nt.FilterList, error) {
	return st.list, nil
}

func (st *listStore) SaveFilters(ctx context.Context, query string, list nt.FilterList) error {
	if st.saveErr != nil {
		return st.saveErr
	}
	st.list = list
	return nil
}

func (st *listStore) EventNames(ctx context.Context) ([]string, error) { return nil, nil }

func (st *listStore) Actions(ctx context.Context) ([]nt.Action, error) { return nil, nil }

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

func TestLoadConfigWritesSample(t *testing.T) {

	path := filepath.Join(t.TempDir(), "afedit.yaml")

	cfg, wrote, err := loadConfig(path)
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.Equal(t, &Config{
		DbPath:    "afedit.duckdb",
		LogPath:   "afedit.log",
		MaxLogLen: 999,
		Query:     "funnel",
	}, cfg)

	_, wrote, err = loadConfig(path)
	require.NoError(t, err)
	assert.False(t, wrote)
}

func TestSetup(t *testing.T) {

	dir := t.TempDir()

	events := filepath.Join(dir, "events.ndjson")
	writeFile(t, events, "{\"name\": \"signup\"}\n{\"name\": \"$pageview\"}\n")

	actions := filepath.Join(dir, "actions.ndjson")
	writeFile(t, actions, "{\"id\": \"7\", \"name\": \"Signed up\"}\n")

	seed := filepath.Join(dir, "query.yaml")
	writeFile(t, seed, `
name: funnel
events:
  - {type: events, id: $pageview, name: Pageview, order: 0, math: total}
  - {type: events, id: signup, name: signup, order: 2, math: total}
actions:
  - {type: actions, id: "7", name: Signed up, order: 1, math: dau}
`)

	cfg := &Config{
		DbPath:      "",
		LogPath:     filepath.Join(dir, "afedit.log"),
		MaxLogLen:   999,
		Query:       "funnel",
		EventsFile:  events,
		ActionsFile: actions,
		SeedFile:    seed,
	}

	ap, err := setup(context.Background(), cfg)
	require.NoError(t, err)
	defer ap.close()

	assert.Len(t, ap.choices, 3)
	assert.Equal(t, []string{"$pageview", "7", "signup"}, ids(ap.query.Filters()))

	persisted, err := ap.duck.LoadFilters(ap.ctx, "funnel")
	require.NoError(t, err)
	assert.Equal(t, ap.query.Filters(), persisted)

	// mirror pushing through the owner's setter
	mr := mirror.New(ap.query.Setter(ap.ctx), nil).Sync(ap.query.Filters())
	_, err = mr.Move(2, 0)
	require.NoError(t, err)

	persisted, err = ap.duck.LoadFilters(ap.ctx, "funnel")
	require.NoError(t, err)
	assert.Equal(t, []string{"signup", "$pageview", "7"}, ids(persisted))
}

func TestRunMove(t *testing.T) {

	ab := nt.FilterList{
		{Type: nt.Events, ID: "a", Order: 0, Math: nt.Total},
		{Type: nt.Events, ID: "b", Order: 1, Math: nt.Total},
	}

	tests := []struct {
		name     string
		saveErr  error
		from     int
		to       int
		want     []string
		captured int
		err      string
	}{
		{name: "reorders", from: 1, to: 0, want: []string{"b", "a"}, captured: 1},
		{name: "same index", from: 1, to: 1, want: []string{"a", "b"}, captured: 0},
		{name: "out of range", from: 2, to: 0, want: []string{"a", "b"}, err: "move from: index 2"},
		{name: "save fails", saveErr: errors.New("read only"), from: 1, to: 0, want: []string{"a", "b"}, captured: 1, err: "read only"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			ctx := context.Background()
			store := &listStore{list: ab}

			qry, err := actionfilter.NewQuery(ctx, "funnel", store, nopLogger{}, nil)
			require.NoError(t, err)
			store.saveErr = tc.saveErr

			var captured int
			list, err := runMove(ctx, qry, func(string) { captured++ }, tc.from, tc.to)

			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				assert.Nil(t, list)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, ids(list))
			}
			assert.Equal(t, tc.want, ids(qry.Filters()))
			assert.Equal(t, tc.want, ids(store.list))
			assert.Equal(t, tc.captured, captured)
		})
	}
}

func TestPrintList(t *testing.T) {

	var out bytes.Buffer
	printList(&out, nil)
	assert.Equal(t, "no filters\n", out.String())

	out.Reset()
	printList(&out, nt.FilterList{
		{Type: nt.Events, ID: "$pageview", Name: "Pageview", Order: 0, Math: nt.Total},
	})
	assert.Equal(t, "0\tevents\t$pageview\tPageview\ttotal\n", out.String())
}

func TestPersonCommand(t *testing.T) {

	path := filepath.Join(t.TempDir(), "persons.json")
	writeFile(t, path, `[
  {"is_identified": true, "properties": {"email": "a@b.c"}},
  {"is_identified": false, "distinct_ids": ["anon-12345678"]}
]`)

	var out bytes.Buffer
	cmd := newPersonCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "a@b.c")
	assert.Contains(t, out.String(), "Unidentified user 45678")
}

func ids(list nt.FilterList) (out []string) {
	for _, entry := range list {
		out = append(out, entry.ID)
	}
	return
}
