package locator

import (
	"context"

	"github.com/Booklab/TimelineBundle/internal/timeline"
)

// Locator loads the data of entity components of one model.
type Locator interface {
	// Supports reports whether the locator can load entities of model.
	Supports(model string) bool
	// Locate sets Data on every component it can find. Components it cannot
	// find are left untouched.
	Locate(ctx context.Context, model string, components []*timeline.Component) error
}
