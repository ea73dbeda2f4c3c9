package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/nodewire/caps"
	"github.com/vk/nodewire/graph"
	"github.com/vk/nodewire/internal/ctxlog"
	"github.com/vk/nodewire/manifest"
	"github.com/vk/nodewire/scene"
	"github.com/vk/nodewire/tag"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *graph.Registry
	factory  *scene.Factory
	file     *manifest.File
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Failures to load or validate the manifest are fatal startup errors and
// panic; the entrypoint recovers and turns them into a clean exit.
func NewApp(outW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	tags := tag.NewApplicator(tag.NewRegistry())
	caps.RegisterAll(tags)
	logger.Debug("Built-in capabilities registered.", "count", len(tags.Names()))

	file, err := loadManifest(ctx, appConfig.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load manifest: %w", err))
	}
	logger.Debug("Manifest loaded.", "nodes", len(file.Nodes), "wires", len(file.Wires))

	if err := file.Validate(ctx, tags); err != nil {
		panic(err)
	}
	logger.Debug("Manifest validation passed.")

	registry := graph.NewRegistry(logger)
	return &App{
		outW:     outW,
		logger:   logger,
		registry: registry,
		factory:  scene.NewFactory(registry, tags, logger),
		file:     file,
	}
}

// Registry returns the application's graph registry. This is primarily for
// testing.
func (a *App) Registry() *graph.Registry {
	return a.registry
}

// loadManifest accepts either a single .hcl file or a directory tree.
func loadManifest(ctx context.Context, path string) (*manifest.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	loader := manifest.NewLoader()
	if info.IsDir() {
		return loader.LoadDir(ctx, path)
	}
	return loader.LoadFile(path)
}
