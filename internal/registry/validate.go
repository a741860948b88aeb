package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/Booklab/TimelineBundle/internal/ctxlog"
)

// Validate checks that every configured locator id has been registered.
func (r *Registry) Validate(ctx context.Context, configured []string) error {
	var errs []string
	for _, id := range configured {
		if _, ok := r.locators[id]; !ok {
			errs = append(errs, fmt.Sprintf("locator '%s' is configured but not registered", id))
		}
	}

	if len(errs) > 0 {
		ctxlog.FromContext(ctx).Error("Registry validation failed.", "errors", errs)
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
