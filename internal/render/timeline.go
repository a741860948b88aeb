package render

import (
	"errors"
	"fmt"

	"github.com/Booklab/TimelineBundle/internal/engine"
	"github.com/Booklab/TimelineBundle/internal/timeline"
)

const defaultFormat = "html"

// outcome classifies one attempt at rendering a template.
type outcome int

const (
	rendered outcome = iota
	notFound
	failed
)

type result struct {
	kind   outcome
	output string
	err    error
}

func (x *Extension) attempt(name string, params map[string]any) result {
	out, err := x.engine.Render(name, params)
	switch {
	case err == nil:
		return result{kind: rendered, output: out}
	case errors.Is(err, engine.ErrTemplateNotFound):
		return result{kind: notFound, err: err}
	default:
		return result{kind: failed, err: err}
	}
}

func parameters(action *timeline.Action) map[string]any {
	return map[string]any{"timeline": action}
}

// DefaultTemplate returns "<path>:<verb>.html.twig".
func (x *Extension) DefaultTemplate(action *timeline.Action) string {
	return fmt.Sprintf("%s:%s.html.twig", x.settings.Path, timeline.Lower(action.Verb))
}

// ContextualTemplate returns "<path>:<context>/<verb>.<format>.twig".
func (x *Extension) ContextualTemplate(action *timeline.Action, context, format string) string {
	return fmt.Sprintf("%s:%s/%s.%s.twig", x.settings.Path, context, timeline.Lower(action.Verb), format)
}

// LocalizedTemplate returns "<path>:<verb>.<locale>.html.twig".
func (x *Extension) LocalizedTemplate(action *timeline.Action, locale string) string {
	return fmt.Sprintf("%s:%s.%s.html.twig", x.settings.Path, timeline.Lower(action.Verb), locale)
}

// RenderDefault renders the default template of action.
func (x *Extension) RenderDefault(action *timeline.Action) (string, error) {
	return x.RenderTimeline(action, "")
}

// RenderTimeline renders name, or the default template of action when name
// is empty. A missing template is replaced by the configured fallback.
func (x *Extension) RenderTimeline(action *timeline.Action, name string) (string, error) {
	if name == "" {
		name = x.DefaultTemplate(action)
	}
	return x.renderOrFallback(name, parameters(action))
}

// RenderContextual renders the template of action for context and format.
// Without a context it renders the default template; format defaults to
// "html".
func (x *Extension) RenderContextual(action *timeline.Action, context, format string) (string, error) {
	if context == "" {
		return x.RenderDefault(action)
	}
	if format == "" {
		format = defaultFormat
	}
	return x.renderOrFallback(x.ContextualTemplate(action, context, format), parameters(action))
}

// RenderLocalized renders the template of action for locale, trying the
// i18n fallback locale and then the global fallback template when the
// previous template does not exist. Without a locale the i18n fallback
// locale is used.
func (x *Extension) RenderLocalized(action *timeline.Action, locale string) (string, error) {
	i18n := x.settings.I18nFallback
	if locale == "" {
		locale = i18n
	}
	params := parameters(action)

	first := x.attempt(x.LocalizedTemplate(action, locale), params)
	switch first.kind {
	case rendered:
		return first.output, nil
	case failed:
		return "", first.err
	}

	if locale != i18n && i18n != "" {
		x.logger.Debug("Localized template not found, trying fallback locale.", "locale", locale, "fallback_locale", i18n)
		second := x.attempt(x.LocalizedTemplate(action, i18n), params)
		switch second.kind {
		case rendered:
			return second.output, nil
		case failed:
			return "", second.err
		}
	}

	return x.fallback(first, params)
}

func (x *Extension) renderOrFallback(name string, params map[string]any) (string, error) {
	r := x.attempt(name, params)
	if r.kind == notFound {
		return x.fallback(r, params)
	}
	return r.output, r.err
}

// fallback renders the global fallback template, or returns the error of
// the attempt that led here when none is configured.
func (x *Extension) fallback(missed result, params map[string]any) (string, error) {
	if x.settings.Fallback == "" {
		return "", missed.err
	}
	x.logger.Debug("Template not found, rendering fallback.", "error", missed.err, "fallback", x.settings.Fallback)
	return x.engine.Render(x.settings.Fallback, params)
}
