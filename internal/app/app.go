package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/ctxlog"
	"github.com/specialistvlad/treegrid/internal/forestindex"
	"github.com/specialistvlad/treegrid/internal/tree"
)

// Forest is a built forest of records together with its id index.
type Forest struct {
	Roots []*tree.Node[*config.Record]
	Index *forestindex.Store[string, *config.Record]
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Logs go to logW.
// A nil loader selects one from cfg.Format.
func NewApp(logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger, err := newLogger(cfg, logW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	if loader == nil {
		loader = loaderFor(cfg.Format)
	}
	return &App{
		logger: logger,
		config: cfg,
		loader: loader,
	}, nil
}

// Context attaches the application's logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Build loads every record and links them into a forest.
func (a *App) Build(ctx context.Context) (*Forest, error) {
	return a.build(a.Context(ctx))
}

// build expects ctx to already carry the app's logger, possibly with extra
// attributes added by the caller.
func (a *App) build(ctx context.Context) (*Forest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading records...", "paths", a.config.RecordsPaths, "format", a.config.Format)

	model, err := a.loader.Load(ctx, a.config.RecordsPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	logger.Debug("Records loaded.", "record_count", len(model.Records))

	roots, err := tree.BuildForest(model.Records, config.RecordID, config.RecordParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to build forest: %w", describeSource(err, model.Records))
	}

	index, err := forestindex.New(roots, config.RecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to index forest: %w", err)
	}
	logger.Info("Forest built.", "root_count", len(roots), "node_count", index.Len())

	return &Forest{Roots: roots, Index: index}, nil
}

// describeSource appends the source location of the offending record to a
// construction error.
func describeSource(err error, records []*config.Record) error {
	pos := -1
	switch e := err.(type) {
	case *tree.SelfParentError[string]:
		pos = e.Index
	case *tree.DuplicateIDError[string]:
		pos = e.Index
	case *tree.DanglingParentError[string]:
		pos = e.Index
	case *tree.CycleError[string]:
		if len(e.Indexes) > 0 {
			pos = e.Indexes[0]
		}
	}
	if pos < 0 || pos >= len(records) || records[pos].Source == "" {
		return err
	}
	return fmt.Errorf("%w (at %s)", err, records[pos].Source)
}
