package hcl

import (
	"fmt"

	"github.com/Booklab/TimelineBundle/internal/config"
)

func translateTimeline(t *timelineBlock) *config.Timeline {
	return &config.Timeline{
		Path:         t.Path,
		Fallback:     t.Fallback,
		I18nFallback: t.I18nFallback,
		Resources:    t.Resources,
		Locators:     t.Locators,
	}
}

func translateEntity(e *entityBlock) (*config.Entity, error) {
	data, err := plainValue(e.Data)
	if err != nil {
		return nil, fmt.Errorf("entity %q %q: data: %w", e.Model, e.Identifier, err)
	}
	return &config.Entity{Model: e.Model, Identifier: e.Identifier, Data: data}, nil
}

func translateAction(a *actionBlock) (*config.Action, error) {
	action := &config.Action{
		Verb:     a.Verb,
		Name:     a.Name,
		Context:  a.Context,
		Format:   a.Format,
		Locale:   a.Locale,
		Template: a.Template,
		Theme:    a.Theme,
	}
	for _, c := range a.Components {
		text, err := plainValue(c.Text)
		if err != nil {
			return nil, fmt.Errorf("action %q %q, component %q: text: %w", a.Verb, a.Name, c.Key, err)
		}
		action.Components = append(action.Components, &config.Component{
			Key:        c.Key,
			Model:      c.Model,
			Identifier: c.Identifier,
			Text:       text,
		})
	}
	return action, nil
}
