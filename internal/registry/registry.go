package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Booklab/TimelineBundle/internal/ctxlog"
	"github.com/Booklab/TimelineBundle/internal/locator"
)

// Module is the interface implemented by everything that contributes
// locators to a Registry.
type Module interface {
	Register(r *Registry)
}

// Registry holds the locators of one application instance.
type Registry struct {
	locators map[string]locator.Locator
	tagged   []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{locators: make(map[string]locator.Locator)}
}

// Register stores l under id. Registering the same id twice is a
// programming error and panics.
func (r *Registry) Register(id string, l locator.Locator) {
	if _, exists := r.locators[id]; exists {
		panic(fmt.Sprintf("locator with id '%s' already registered", id))
	}
	slog.Debug("Registering locator.", "id", id)
	r.locators[id] = l
}

// RegisterTagged stores l under id and marks it to be attached to every
// hydrator, whatever the configuration says.
func (r *Registry) RegisterTagged(id string, l locator.Locator) {
	r.Register(id, l)
	r.tagged = append(r.tagged, id)
}

// Lookup returns the locator registered under id.
func (r *Registry) Lookup(id string) (locator.Locator, bool) {
	l, ok := r.locators[id]
	return l, ok
}

// Attach adds the tagged locators, then the configured ones, to h. Each
// distinct id is attached once, at its first position.
func (r *Registry) Attach(ctx context.Context, h *locator.Hydrator, configured []string) error {
	if err := r.Validate(ctx, configured); err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]bool)
	ids := append(append([]string(nil), r.tagged...), configured...)
	for _, id := range ids {
		if seen[id] {
			logger.Debug("Locator already attached, skipping.", "id", id)
			continue
		}
		seen[id] = true
		h.AddLocator(r.locators[id])
	}
	logger.Debug("Locators attached.", "count", len(seen))
	return nil
}
