package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Booklab/TimelineBundle/internal/config"
	"github.com/Booklab/TimelineBundle/internal/ctxlog"
	"github.com/Booklab/TimelineBundle/internal/engine"
	"github.com/Booklab/TimelineBundle/internal/locator"
	"github.com/Booklab/TimelineBundle/internal/registry"
	"github.com/Booklab/TimelineBundle/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *config.Model
	registry  *registry.Registry
	extension *render.Extension
	hydrator  *locator.Hydrator
}

// NewApp is the constructor for the main application. Rendered actions are
// written to outW and logs to logW. Modules add locators on top of the core
// ones. A nil loader is replaced by LoaderFor(appConfig.ConfigPaths).
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = LoaderFor(appConfig.ConfigPaths)
	}
	cfgModel, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.", "actions", len(cfgModel.Actions))

	reg := registry.New()
	for _, mod := range append(coreModules(cfgModel), modules...) {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules)+1)

	hydrator := locator.NewHydrator(ctx, locator.FilterUnresolved(appConfig.FilterUnresolved))
	if err := reg.Attach(ctx, hydrator, cfgModel.Timeline.Locators); err != nil {
		// A locator named in configuration but never compiled in.
		panic(err)
	}

	eng := engine.New(ctx, os.DirFS(appConfig.TemplatesPath))
	t := cfgModel.Timeline
	extension := render.New(ctx, eng, render.Settings{
		Path:         t.Path,
		Fallback:     t.Fallback,
		I18nFallback: t.I18nFallback,
	}, t.Resources...)
	logger.Debug("Renderer configured.", "templates", appConfig.TemplatesPath, "resources", t.Resources)

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfgModel,
		registry:  reg,
		extension: extension,
		hydrator:  hydrator,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Extension returns the application's renderer.
func (a *App) Extension() *render.Extension {
	return a.extension
}
