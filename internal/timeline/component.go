package timeline

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Component references an entity by model and identifier. Data is filled in
// by a locator during hydration and stays nil until then.
type Component struct {
	Model      string
	Identifier string
	Data       any
}

// NewComponent returns an unhydrated entity reference.
func NewComponent(model, identifier string) *Component {
	return &Component{Model: model, Identifier: identifier}
}

// Hydrated reports whether a locator has attached data.
func (c *Component) Hydrated() bool {
	return c.Data != nil
}

// ComponentValue is what a template sees for one component of an action.
type ComponentValue struct {
	Value      any
	Model      string
	Identifier string
	Text       any
}

// IsEntity is true iff both the model and the identifier are present.
func (v ComponentValue) IsEntity() bool {
	return v.Model != "" && v.Identifier != ""
}

// Resolve derives the ComponentValue for key. Entity components expose
// their hydrated data as Value; anything else is exposed as both Value and
// Text.
func Resolve(action *Action, key string) ComponentValue {
	raw := action.Component(key)
	if c, ok := raw.(*Component); ok {
		if c == nil {
			return ComponentValue{}
		}
		return ComponentValue{
			Value:      c.Data,
			Model:      c.Model,
			Identifier: c.Identifier,
		}
	}
	return ComponentValue{Value: raw, Text: raw}
}

var namespaceSeparators = strings.NewReplacer(`\`, "_", "/", "_", ".", "_")

// NormalizeModel lower-cases a model name and replaces namespace
// separators with underscores, e.g. `Acme\Model` becomes "acme_model".
func NormalizeModel(model string) string {
	return namespaceSeparators.Replace(Lower(model))
}

// Lower lower-cases s without language-specific rules.
func Lower(s string) string {
	// Casers keep state, so one is built per call.
	return cases.Lower(language.Und).String(s)
}
