package locator

import (
	"context"

	"github.com/Booklab/TimelineBundle/internal/timeline"
)

// Static serves entity data held in memory, keyed by model and identifier.
// It backs the fixture entities declared in configuration.
type Static struct {
	entities map[string]map[string]any
}

// NewStatic creates an empty Static locator.
func NewStatic() *Static {
	return &Static{entities: make(map[string]map[string]any)}
}

// Add stores data for the entity identified by model and identifier.
func (s *Static) Add(model, identifier string, data any) *Static {
	byID, ok := s.entities[model]
	if !ok {
		byID = make(map[string]any)
		s.entities[model] = byID
	}
	byID[identifier] = data
	return s
}

// Supports is true when at least one entity of model was added.
func (s *Static) Supports(model string) bool {
	_, ok := s.entities[model]
	return ok
}

// Locate implements Locator.
func (s *Static) Locate(_ context.Context, model string, components []*timeline.Component) error {
	byID := s.entities[model]
	for _, c := range components {
		if data, ok := byID[c.Identifier]; ok && data != nil {
			c.Data = data
		}
	}
	return nil
}
