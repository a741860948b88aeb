package timeline

import (
	"sort"

	"github.com/google/uuid"
)

// Action is one timeline entry.
type Action struct {
	// ID is the owned identity used to key per-action caches. Two actions
	// with identical data still have distinct IDs.
	ID   uuid.UUID
	Verb string

	// Attributes carries free-form extra data for templates.
	Attributes map[string]any

	components map[string]any
}

// NewAction creates an action for verb with a fresh identity.
func NewAction(verb string) *Action {
	return &Action{
		ID:         uuid.New(),
		Verb:       verb,
		Attributes: make(map[string]any),
		components: make(map[string]any),
	}
}

// SetComponent stores the value for a named component. The value is either
// a *Component (an entity reference) or a plain value rendered as text.
func (a *Action) SetComponent(key string, value any) *Action {
	if a.components == nil {
		a.components = make(map[string]any)
	}
	a.components[key] = value
	return a
}

// Component returns the raw value stored for key, or nil.
func (a *Action) Component(key string) any {
	return a.components[key]
}

// ComponentKeys returns the names of all components in sorted order.
func (a *Action) ComponentKeys() []string {
	keys := make([]string, 0, len(a.components))
	for key := range a.components {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Entities returns the entity components of the action, ordered by
// component key.
func (a *Action) Entities() []*Component {
	var entities []*Component
	for _, key := range a.ComponentKeys() {
		if c, ok := a.components[key].(*Component); ok && c != nil {
			entities = append(entities, c)
		}
	}
	return entities
}
