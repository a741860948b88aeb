package app

import (
	"context"
	"fmt"

	"github.com/Booklab/TimelineBundle/internal/config"
	"github.com/Booklab/TimelineBundle/internal/ctxlog"
	"github.com/Booklab/TimelineBundle/internal/timeline"
)

// Run hydrates every configured action and writes its rendering, one per
// line, in declaration order. The first failing render stops the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	refs := make(map[[2]string]*timeline.Component)
	defs := make(map[*timeline.Action]*config.Action, len(a.config.Actions))
	actions := make([]*timeline.Action, 0, len(a.config.Actions))
	for _, def := range a.config.Actions {
		action := def.NewAction(refs)
		defs[action] = def
		actions = append(actions, action)
	}

	actions, err := a.hydrator.Hydrate(ctx, actions...)
	if err != nil {
		return fmt.Errorf("hydration failed: %w", err)
	}
	if len(actions) == 0 {
		a.logger.Warn("No actions to render.")
		return nil
	}

	a.logger.Info("Rendering actions.", "count", len(actions))
	for _, action := range actions {
		def := defs[action]
		out, err := a.render(action, def)
		a.extension.Forget(action)
		if err != nil {
			return fmt.Errorf("rendering action %q %q: %w", def.Verb, def.Name, err)
		}
		if _, err := fmt.Fprintln(a.outW, out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		a.logger.Debug("Action rendered.", "verb", def.Verb, "name", def.Name, "bytes", len(out))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// render picks the render mode from the action definition: a locale wins
// over a context, which wins over a forced template.
func (a *App) render(action *timeline.Action, def *config.Action) (string, error) {
	if len(def.Theme) > 0 {
		a.extension.SetTheme(action, def.Theme...)
	}
	switch {
	case def.Locale != "":
		return a.extension.RenderLocalized(action, def.Locale)
	case def.Context != "":
		return a.extension.RenderContextual(action, def.Context, def.Format)
	default:
		return a.extension.RenderTimeline(action, def.Template)
	}
}
