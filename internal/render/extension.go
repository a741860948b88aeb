package render

import (
	"context"
	"html/template"
	"log/slog"
	"slices"
	"sync"

	"github.com/Booklab/TimelineBundle/internal/ctxlog"
	"github.com/Booklab/TimelineBundle/internal/engine"
	"github.com/Booklab/TimelineBundle/internal/timeline"
	"github.com/google/uuid"
)

// Engine is the templating capability the Extension relies on.
type Engine interface {
	Load(name string) (*engine.Resource, error)
	Render(name string, vars map[string]any) (string, error)
	Compose(blocks map[string]*engine.Block) (*engine.BlockSet, error)
	Funcs(funcs template.FuncMap)
}

// Settings is the configuration read by the coordinator. An empty Fallback
// or I18nFallback means "not configured".
type Settings struct {
	Path         string
	Fallback     string
	I18nFallback string
}

// Extension renders actions and their components.
//
// The block cache, the themes and the pending-render stack are guarded by
// one mutex that is never held while a template executes or a resource is
// loaded. Pending-render frames are keyed by action identity and render
// signature, so renders of different actions may run concurrently. One
// action must not be rendered from several goroutines at once.
type Extension struct {
	engine    Engine
	settings  Settings
	resources []string
	logger    *slog.Logger

	mu     sync.Mutex
	blocks map[uuid.UUID]*BlockMap
	themes map[uuid.UUID][]string
	stack  renderStack
}

// New creates an Extension over eng and registers its template functions
// on it. resources are the global block resources, in override order.
func New(ctx context.Context, eng Engine, settings Settings, resources ...string) *Extension {
	x := &Extension{
		engine:    eng,
		settings:  settings,
		resources: slices.Clone(resources),
		logger:    ctxlog.FromContext(ctx),
		blocks:    make(map[uuid.UUID]*BlockMap),
		themes:    make(map[uuid.UUID][]string),
		stack:     make(renderStack),
	}
	eng.Funcs(x.FuncMap())
	return x
}

// Settings returns the configuration the Extension was built with.
func (x *Extension) Settings() Settings {
	return x.settings
}

// FuncMap returns the template functions backed by the Extension:
//
//	timeline                  RenderContextual(action, [context], [format])
//	timeline_render           RenderTimeline(action, [template])
//	timeline_component_render RenderComponent(action, component, [variables...])
//	i18n_timeline_render      RenderLocalized(action, [locale])
//	timeline_action_theme     SetTheme(action, resources...)
func (x *Extension) FuncMap() template.FuncMap {
	return template.FuncMap{
		"timeline": func(action *timeline.Action, args ...string) (template.HTML, error) {
			out, err := x.RenderContextual(action, arg(args, 0), arg(args, 1))
			return template.HTML(out), err
		},
		"timeline_render": func(action *timeline.Action, args ...string) (template.HTML, error) {
			out, err := x.RenderTimeline(action, arg(args, 0))
			return template.HTML(out), err
		},
		"timeline_component_render": x.RenderComponent,
		"i18n_timeline_render": func(action *timeline.Action, args ...string) (template.HTML, error) {
			out, err := x.RenderLocalized(action, arg(args, 0))
			return template.HTML(out), err
		},
		"timeline_action_theme": func(action *timeline.Action, resources ...string) string {
			x.SetTheme(action, resources...)
			return ""
		},
	}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
