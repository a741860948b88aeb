package testutil

import (
	"context"
	"sync"

	"github.com/Booklab/TimelineBundle/internal/locator"
	"github.com/Booklab/TimelineBundle/internal/registry"
	"github.com/Booklab/TimelineBundle/internal/timeline"
)

// RecordingLocator serves fixed entity data and records the identifiers it
// was asked for, per model.
type RecordingLocator struct {
	static *locator.Static

	mu    sync.Mutex
	Calls map[string][]string
}

// NewRecordingLocator creates a locator serving data, keyed by model then
// identifier.
func NewRecordingLocator(data map[string]map[string]any) *RecordingLocator {
	s := locator.NewStatic()
	for model, byID := range data {
		for id, v := range byID {
			s.Add(model, id, v)
		}
	}
	return &RecordingLocator{static: s, Calls: make(map[string][]string)}
}

// Supports implements locator.Locator.
func (r *RecordingLocator) Supports(model string) bool {
	return r.static.Supports(model)
}

// Locate implements locator.Locator.
func (r *RecordingLocator) Locate(ctx context.Context, model string, components []*timeline.Component) error {
	r.mu.Lock()
	for _, c := range components {
		r.Calls[model] = append(r.Calls[model], c.Identifier)
	}
	r.mu.Unlock()
	return r.static.Locate(ctx, model, components)
}

// LocatorModule registers one locator under ID, tagged or not.
type LocatorModule struct {
	ID      string
	Tagged  bool
	Locator locator.Locator
}

// Register implements registry.Module.
func (m *LocatorModule) Register(r *registry.Registry) {
	if m.Tagged {
		r.RegisterTagged(m.ID, m.Locator)
		return
	}
	r.Register(m.ID, m.Locator)
}
