package locator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/Booklab/TimelineBundle/internal/ctxlog"
	"github.com/Booklab/TimelineBundle/internal/timeline"
)

// Hydrator runs locators over the entity components of actions.
type Hydrator struct {
	locators         []Locator
	filterUnresolved bool
	logger           *slog.Logger
}

// Option configures a Hydrator.
type Option func(*Hydrator)

// FilterUnresolved makes Hydrate drop every action that still has an
// unhydrated entity component once all locators have run.
func FilterUnresolved(filter bool) Option {
	return func(h *Hydrator) {
		h.filterUnresolved = filter
	}
}

// NewHydrator creates a Hydrator without locators.
func NewHydrator(ctx context.Context, opts ...Option) *Hydrator {
	h := &Hydrator{logger: ctxlog.FromContext(ctx)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AddLocator appends l. Locators are consulted in the order they were added.
func (h *Hydrator) AddLocator(l Locator) {
	h.locators = append(h.locators, l)
}

// Locators returns the registered locators in consultation order.
func (h *Hydrator) Locators() []Locator {
	return slices.Clone(h.locators)
}

// Hydrate loads the data of every unhydrated entity component of actions and
// returns the actions to render. The same component shared by several
// actions is located once.
func (h *Hydrator) Hydrate(ctx context.Context, actions ...*timeline.Action) ([]*timeline.Action, error) {
	byModel := make(map[string][]*timeline.Component)
	seen := make(map[*timeline.Component]bool)
	for _, action := range actions {
		for _, c := range action.Entities() {
			if c.Hydrated() || seen[c] {
				continue
			}
			seen[c] = true
			byModel[c.Model] = append(byModel[c.Model], c)
		}
	}

	for _, model := range slices.Sorted(maps.Keys(byModel)) {
		components := byModel[model]
		l := h.locatorFor(model)
		if l == nil {
			h.logger.Warn("No locator supports model, components stay unhydrated.", "model", model, "components", len(components))
			continue
		}
		if err := l.Locate(ctx, model, components); err != nil {
			return nil, fmt.Errorf("locating %d %q components: %w", len(components), model, err)
		}
		h.logger.Debug("Components located.", "model", model, "components", len(components))
	}

	if !h.filterUnresolved {
		return actions, nil
	}
	kept := make([]*timeline.Action, 0, len(actions))
	for _, action := range actions {
		if resolved(action) {
			kept = append(kept, action)
			continue
		}
		h.logger.Info("Action dropped, an entity component could not be located.", "action", action.ID, "verb", action.Verb)
	}
	return kept, nil
}

func (h *Hydrator) locatorFor(model string) Locator {
	for _, l := range h.locators {
		if l.Supports(model) {
			return l
		}
	}
	return nil
}

func resolved(action *timeline.Action) bool {
	for _, c := range action.Entities() {
		if !c.Hydrated() {
			return false
		}
	}
	return true
}
