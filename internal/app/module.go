// Package app is the fx composition root for one-shot export runs.
package app

import (
	"context"

	"github.com/wxarchive/wxexport/internal/config"
	"github.com/wxarchive/wxexport/internal/export"
	"github.com/wxarchive/wxexport/internal/logging"
	"github.com/wxarchive/wxexport/internal/store"
	"github.com/wxarchive/wxexport/internal/timerange"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved invocation passed to the fx module.
type Params struct {
	MessageDBPath string
	ContactDBPath string // empty = no contact store, summaries synthesized
	OutputPath    string // empty = derive the default exports/ path
	Range         *timerange.Range
	LogPath       string // empty = the default ~/.wxexport log path
}

// Module returns the fx module composing logger, stores, and exporter.
// Store connections are closed by the lifecycle on shutdown, on both
// success and failure paths.
func Module(p Params) fx.Option {
	return fx.Module("export",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideMessageDB,
			provideContactDB,
			provideExporter,
		),
	)
}

// Run builds the dependency graph, executes one export, and tears the
// graph down. Returns the written artifact path ("" when nothing
// matched).
func Run(p Params) (string, error) {
	var ex *export.Exporter
	fxApp := fx.New(
		fx.NopLogger,
		Module(p),
		fx.Populate(&ex),
	)
	if err := fxApp.Err(); err != nil {
		return "", err
	}

	ctx := context.Background()
	if err := fxApp.Start(ctx); err != nil {
		return "", err
	}
	defer func() { _ = fxApp.Stop(ctx) }()

	return ex.Export(p.Range, p.OutputPath)
}

func provideLogger(p Params) (*zap.Logger, error) {
	logPath := p.LogPath
	if logPath == "" {
		logPath = config.LogPath()
	}
	return logging.New(logPath)
}

func provideMessageDB(p Params, lc fx.Lifecycle, logger *zap.Logger) (*store.MessageDB, error) {
	db, err := store.OpenMessageDB(p.MessageDBPath, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("message store opened", zap.String("path", p.MessageDBPath))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return db.Close() },
	})
	return db, nil
}

func provideContactDB(p Params, lc fx.Lifecycle, logger *zap.Logger) (*store.ContactDB, error) {
	if p.ContactDBPath == "" {
		logger.Warn("no contact store configured, contact summaries will be synthesized")
		return nil, nil
	}
	db, err := store.OpenContactDB(p.ContactDBPath)
	if err != nil {
		return nil, err
	}
	logger.Info("contact store opened", zap.String("path", p.ContactDBPath))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return db.Close() },
	})
	return db, nil
}

func provideExporter(messages *store.MessageDB, contacts *store.ContactDB, logger *zap.Logger) *export.Exporter {
	return export.New(messages, contacts, logger)
}
