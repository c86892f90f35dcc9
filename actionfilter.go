package actionfilter

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"actionfilter/edible"
	nt "actionfilter/entity"
	"actionfilter/mirror"
)

// Store specifies a backing datastore.
type Store interface {
	// LoadFilters returns the persisted filters of a query, empty when there are none
	LoadFilters(ctx context.Context, query string) (list nt.FilterList, err error)
	// SaveFilters replaces the persisted filters of a query
	SaveFilters(ctx context.Context, query string, list nt.FilterList) (err error)
	// EventNames returns the catalog of event names
	EventNames(ctx context.Context) (names []string, err error)
	// Actions returns the catalog of saved actions
	Actions(ctx context.Context) (actions []nt.Action, err error)
}

// Query owns the filter list of one query definition.
// It persists every update and notifies subscribers with a snapshot.
type Query struct {
	name   string
	store  Store
	logger nt.Logger

	mu          sync.Mutex
	filters     nt.FilterList
	subscribers map[int]func(nt.FilterList)
	nextSub     int
}

// NewQuery loads the named query from store, seeding it from def when nothing is persisted.
// def may be nil.
func NewQuery(ctx context.Context, name string, store Store, lgr nt.Logger, def *Definition) (qry *Query, err error) {

	list, err := store.LoadFilters(ctx, name)
	if err != nil {
		err = errors.Wrapf(err, "failed to load filters for %s", name)
		return
	}

	qry = &Query{
		name:        name,
		store:       store,
		logger:      lgr,
		filters:     edible.Renumber(list),
		subscribers: map[int]func(nt.FilterList){},
	}

	if len(list) == 0 && def != nil {
		lgr.Info(ctx, "seeding query", "query", name, "count", len(def.List()))

		err = qry.SetFilters(ctx, def.List())
		if err != nil {
			qry = nil
		}
	}
	return
}

// Name returns the query's name
func (qry *Query) Name() string {
	return qry.name
}

// Filters returns a snapshot of the current list.
func (qry *Query) Filters() nt.FilterList {
	qry.mu.Lock()
	defer qry.mu.Unlock()

	return edible.Renumber(qry.filters)
}

// SetFilters persists list and makes it current.
// Subscribers are notified after the store accepts it.
func (qry *Query) SetFilters(ctx context.Context, list nt.FilterList) (err error) {

	list = edible.Renumber(list)

	err = qry.store.SaveFilters(ctx, qry.name, list)
	if err != nil {
		err = errors.Wrapf(err, "failed to save filters for %s", qry.name)
		return
	}

	qry.mu.Lock()
	qry.filters = list
	subs := make([]func(nt.FilterList), 0, len(qry.subscribers))
	for _, fn := range qry.subscribers {
		subs = append(subs, fn)
	}
	qry.mu.Unlock()

	qry.logger.Info(ctx, "saved filters", "query", qry.name, "count", len(list))

	for _, fn := range subs {
		fn(edible.Renumber(list))
	}
	return
}

// Setter adapts SetFilters for a mirror, logging any failure.
func (qry *Query) Setter(ctx context.Context) mirror.Setter {
	return func(list nt.FilterList) {
		err := qry.SetFilters(ctx, list)
		if err != nil {
			qry.logger.Error(ctx, "failed to set filters", err)
		}
	}
}

// Subscribe registers fn for updates and returns a func to unregister it.
func (qry *Query) Subscribe(fn func(nt.FilterList)) (unsubscribe func()) {
	qry.mu.Lock()
	defer qry.mu.Unlock()

	id := qry.nextSub
	qry.nextSub++
	qry.subscribers[id] = fn

	return func() {
		qry.mu.Lock()
		defer qry.mu.Unlock()

		delete(qry.subscribers, id)
	}
}

// Capture returns a telemetry callback that logs each event.
func Capture(ctx context.Context, lgr nt.Logger) mirror.Capture {
	return func(event string) {
		lgr.Info(ctx, "captured", "event", event)
	}
}
