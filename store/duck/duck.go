package duck

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "actionfilter/entity"
)

// Duck persists query filters and the event catalog in duckdb.
type Duck struct {
	db     *sql.DB
	logger nt.Logger
	path   string
}

// New opens the database at path, in memory when path is empty.
func New(ctx context.Context, lgr nt.Logger, path string) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open duck at %q", path)
		return
	}

	err = migrate(ctx, db)
	if err != nil {
		db.Close()
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
		path:   path,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the path of the database
func (dk *Duck) Name() string {
	if dk.path == "" {
		return "memory"
	}
	return dk.path
}

// LoadFilters returns a query's filters by position
func (dk *Duck) LoadFilters(ctx context.Context, query string) (list nt.FilterList, err error) {

	rows, err := dk.db.QueryContext(ctx, `
		SELECT type, id, name, math, properties
		FROM filters
		WHERE query = ?
		ORDER BY position
	`, query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query filters")
		return
	}
	defer rows.Close()

	list = nt.FilterList{}
	for rows.Next() {
		var entry nt.FilterEntry
		var typ, math, props string

		err = rows.Scan(&typ, &entry.ID, &entry.Name, &math, &props)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan filter")
			return
		}

		entry.Type = nt.EntityType(typ)
		entry.Math = nt.MathType(math)
		entry.Order = len(list)

		err = json.Unmarshal([]byte(props), &entry.Properties)
		if err != nil {
			err = errors.Wrapf(err, "failed to unmarshal properties for %s", entry.ID)
			return
		}

		list = append(list, entry)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating filters")
	return
}

// SaveFilters replaces a query's filters
func (dk *Duck) SaveFilters(ctx context.Context, query string, list nt.FilterList) (err error) {

	tx, err := dk.db.BeginTx(ctx, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to begin")
		return
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, "DELETE FROM filters WHERE query = ?", query)
	if err != nil {
		err = errors.Wrapf(err, "failed to clear filters")
		return
	}

	for i, entry := range list {
		var props []byte
		props, err = json.Marshal(entry.Properties)
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal properties for %s", entry.ID)
			return
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO filters (query, position, type, id, name, math, properties)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, query, i, string(entry.Type), entry.ID, entry.Name, string(entry.Math), string(props))
		if err != nil {
			err = errors.Wrapf(err, "failed to insert filter")
			return
		}
	}

	err = tx.Commit()
	err = errors.Wrapf(err, "failed to commit")
	return
}

// LoadEvents replaces the event catalog from a newline delimited json file of {"name": ...}
func (dk *Duck) LoadEvents(ctx context.Context, path string) (err error) {

	_, err = dk.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE OR REPLACE TABLE event_names AS
		SELECT DISTINCT name
		FROM read_json('%s',
			columns={name: 'VARCHAR'},
			format='newline_delimited')
		WHERE name IS NOT NULL
	`, path))
	if err != nil {
		err = errors.Wrapf(err, "failed to load events from %s", path)
		return
	}

	dk.logger.Info(ctx, "loaded events", "path", path)
	return
}

// LoadActions replaces the action catalog from a newline delimited json file of {"id": ..., "name": ...}
func (dk *Duck) LoadActions(ctx context.Context, path string) (err error) {

	_, err = dk.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE OR REPLACE TABLE actions AS
		SELECT id, name
		FROM read_json('%s',
			columns={id: 'VARCHAR', name: 'VARCHAR'},
			format='newline_delimited')
		WHERE id IS NOT NULL
	`, path))
	if err != nil {
		err = errors.Wrapf(err, "failed to load actions from %s", path)
		return
	}

	dk.logger.Info(ctx, "loaded actions", "path", path)
	return
}

// AddEventNames adds names to the event catalog
func (dk *Duck) AddEventNames(ctx context.Context, names ...string) (err error) {

	for _, name := range names {
		_, err = dk.db.ExecContext(ctx, "INSERT INTO event_names (name) VALUES (?)", name)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert event name")
			return
		}
	}
	return
}

// EventNames returns the event catalog, sorted
func (dk *Duck) EventNames(ctx context.Context) (names []string, err error) {

	rows, err := dk.db.QueryContext(ctx, "SELECT name FROM event_names ORDER BY name")
	if err != nil {
		err = errors.Wrapf(err, "failed to query event names")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			err = errors.Wrapf(err, "failed to scan event name")
			return
		}
		names = append(names, name)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating event names")
	return
}

// Actions returns the action catalog, sorted by name
func (dk *Duck) Actions(ctx context.Context) (actions []nt.Action, err error) {

	rows, err := dk.db.QueryContext(ctx, "SELECT id, name FROM actions ORDER BY name, id")
	if err != nil {
		err = errors.Wrapf(err, "failed to query actions")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var act nt.Action
		var name sql.NullString
		if err = rows.Scan(&act.ID, &name); err != nil {
			err = errors.Wrapf(err, "failed to scan action")
			return
		}
		act.Name = name.String
		actions = append(actions, act)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating actions")
	return
}

// unexported

func migrate(ctx context.Context, db *sql.DB) (err error) {

	// position is not a key, duckdb checks keys eagerly within a transaction
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS filters (
			query VARCHAR NOT NULL,
			position INTEGER NOT NULL,
			type VARCHAR NOT NULL,
			id VARCHAR NOT NULL,
			name VARCHAR NOT NULL,
			math VARCHAR NOT NULL,
			properties VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS event_names (name VARCHAR)`,
		`CREATE TABLE IF NOT EXISTS actions (id VARCHAR, name VARCHAR)`,
	}

	for _, stmt := range stmts {
		_, err = db.ExecContext(ctx, stmt)
		if err != nil {
			err = errors.Wrapf(err, "failed to migrate")
			return
		}
	}
	return
}
