package main

import (
	"context"
	"io"

	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"

	"actionfilter"
	"actionfilter/eventname"
	"actionfilter/filter"
	"actionfilter/store/duck"
	"actionfilter/util"
)

const cfgMode = 0644

var sampleConfig = []byte(`# afedit configuration
db_path: afedit.duckdb
log_path: afedit.log
max_log_len: 999
query: funnel
# events_file: events.ndjson
# actions_file: actions.ndjson
# seed_file: query.yaml
`)

// Config is the application configuration read from yaml.
type Config struct {
	DbPath      string `yaml:"db_path"`
	LogPath     string `yaml:"log_path"`
	MaxLogLen   int    `yaml:"max_log_len"`
	Query       string `yaml:"query"`
	EventsFile  string `yaml:"events_file,omitempty"`
	ActionsFile string `yaml:"actions_file,omitempty"`
	SeedFile    string `yaml:"seed_file,omitempty"`
}

// app bundles what the commands share.
type app struct {
	ctx     context.Context
	logger  *sabot.Sabot
	logFile io.WriteCloser
	duck    *duck.Duck
	query   *actionfilter.Query
	choices []filter.Choice
}

// loadConfig reads cfg from path, writing a sample there first if needed.
func loadConfig(path string) (cfg *Config, wrote bool, err error) {

	wrote, err = util.SampleConfig(sampleConfig, path, cfgMode)
	if err != nil {
		return
	}

	cfg = &Config{}
	err = util.LoadYaml(cfg, path)
	return
}

// setup opens the log, the store and the query named in cfg.
func setup(ctx context.Context, cfg *Config) (ap *app, err error) {

	logFile, err := util.OpenLog(cfg.LogPath, cfgMode)
	if err != nil {
		return
	}
	lgr := &sabot.Sabot{Writer: logFile, MaxLen: cfg.MaxLogLen}
	ctx = lgr.WithFields(ctx, "app_id", "afedit", "query", cfg.Query)

	lgr.Info(ctx, "starting up", "config", cfg, "version", version)

	dk, err := duck.New(ctx, lgr, cfg.DbPath)
	if err != nil {
		logFile.Close()
		return
	}

	ap = &app{
		ctx:     ctx,
		logger:  lgr,
		logFile: logFile,
		duck:    dk,
	}
	defer func() {
		if err != nil {
			ap.close()
			ap = nil
		}
	}()

	if cfg.EventsFile != "" {
		err = dk.LoadEvents(ctx, cfg.EventsFile)
		if err != nil {
			return
		}
	}
	if cfg.ActionsFile != "" {
		err = dk.LoadActions(ctx, cfg.ActionsFile)
		if err != nil {
			return
		}
	}

	var def *actionfilter.Definition
	if cfg.SeedFile != "" {
		def, err = actionfilter.LoadDefinition(cfg.SeedFile)
		if err != nil {
			return
		}
	}

	ap.query, err = actionfilter.NewQuery(ctx, cfg.Query, dk, lgr, def)
	if err != nil {
		return
	}

	ap.choices, err = loadChoices(ctx, dk)
	return
}

func (ap *app) close() {
	ap.duck.Close()
	ap.logFile.Close()
}

func loadChoices(ctx context.Context, store actionfilter.Store) (choices []filter.Choice, err error) {

	names, err := store.EventNames(ctx)
	if err != nil {
		err = errors.Wrapf(err, "failed to get event names")
		return
	}

	actions, err := store.Actions(ctx)
	if err != nil {
		err = errors.Wrapf(err, "failed to get actions")
		return
	}

	choices = filter.NewChoices(actions, eventname.Grouped(names))
	return
}
