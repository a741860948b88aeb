package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Booklab/TimelineBundle/internal/timeline"
)

// Model is the unified representation of everything the renderer reads from
// configuration: its settings, the fixture entities and the actions to render.
type Model struct {
	Timeline *Timeline
	Entities []*Entity
	Actions  []*Action
}

// Timeline holds the renderer settings. Empty strings mean "not set".
type Timeline struct {
	Path         string
	Fallback     string
	I18nFallback string
	Resources    []string
	Locators     []string
}

// Entity is a fixture served by the static locator.
type Entity struct {
	Model      string
	Identifier string
	Data       any
}

// Action describes one action to render and how to render it.
type Action struct {
	Verb       string
	Name       string
	Context    string
	Format     string
	Locale     string
	Template   string
	Theme      []string
	Components []*Component
}

// Component is either an entity reference (Model and Identifier) or a plain
// Text value.
type Component struct {
	Key        string
	Model      string
	Identifier string
	Text       any
}

// Merge appends the entities and actions of other to m. At most one of the
// two may carry timeline settings.
func (m *Model) Merge(other *Model) error {
	if other.Timeline != nil {
		if m.Timeline != nil {
			return errors.New("timeline settings are declared more than once")
		}
		m.Timeline = other.Timeline
	}
	m.Entities = append(m.Entities, other.Entities...)
	m.Actions = append(m.Actions, other.Actions...)
	return nil
}

// Validate checks the cross-references of the model.
func (m *Model) Validate() error {
	var errs []string
	if m.Timeline == nil {
		errs = append(errs, "a timeline block is required")
	} else if m.Timeline.Path == "" {
		errs = append(errs, "timeline: path must not be empty")
	}

	names := make(map[string]bool)
	for _, a := range m.Actions {
		id := a.Verb + "." + a.Name
		if names[id] {
			errs = append(errs, fmt.Sprintf("action %q is declared more than once", id))
		}
		names[id] = true
		for _, c := range a.Components {
			switch {
			case c.Model != "" && c.Identifier == "":
				errs = append(errs, fmt.Sprintf("action %q, component %q: model without identifier", id, c.Key))
			case c.Model == "" && c.Identifier != "":
				errs = append(errs, fmt.Sprintf("action %q, component %q: identifier without model", id, c.Key))
			case c.Model != "" && c.Text != nil:
				errs = append(errs, fmt.Sprintf("action %q, component %q: text cannot be combined with model", id, c.Key))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// NewAction builds the timeline action described by a. Entity components
// share one *timeline.Component per model and identifier through refs, so a
// locator fills each entity once.
func (a *Action) NewAction(refs map[[2]string]*timeline.Component) *timeline.Action {
	action := timeline.NewAction(a.Verb)
	action.Attributes["name"] = a.Name
	for _, c := range a.Components {
		if c.Model == "" {
			action.SetComponent(c.Key, c.Text)
			continue
		}
		key := [2]string{c.Model, c.Identifier}
		ref, ok := refs[key]
		if !ok {
			ref = timeline.NewComponent(c.Model, c.Identifier)
			refs[key] = ref
		}
		action.SetComponent(c.Key, ref)
	}
	return action
}
