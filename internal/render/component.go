package render

import (
	"html/template"
	"strings"

	"github.com/Booklab/TimelineBundle/internal/timeline"
)

const componentSuffix = "_component"

// RenderComponent renders one component of action with the most specific
// block available. For a component carrying a model the chain probed is,
// most specific first:
//
//	_<model>_<component>_component
//	_<model>_default_component
//	<component>_component
//	action_component
//
// Extra variables are merged recursively over the component variables.
func (x *Extension) RenderComponent(action *timeline.Action, component string, variables ...map[string]any) (template.HTML, error) {
	value := timeline.Resolve(action, component)
	composed := componentVariables(action, component, value)
	for _, extra := range variables {
		composed = mergeVariables(composed, extra)
	}

	var custom string
	if value.Model != "" {
		custom = "_" + timeline.NormalizeModel(value.Model)
	}

	blocks, err := x.BlockMap(action)
	if err != nil {
		return "", err
	}

	f, index, leave := x.enter(action.ID, signature(custom, component), specificityChain(component, custom), composed)
	defer leave()

	probed := make([]string, 0, len(f.chain))
	for ; index >= 0; index-- {
		name := f.chain[index] + componentSuffix
		probed = append(probed, name)
		if !blocks.Has(name) {
			continue
		}

		data := x.choose(f, index)
		var out strings.Builder
		if err := blocks.set.Execute(&out, name, data); err != nil {
			return "", err
		}
		return template.HTML(out.String()), nil
	}

	return "", &NoMatchingBlockError{Component: component, Probed: probed}
}

// specificityChain lists the block prefixes for component, least specific
// first.
func specificityChain(component, custom string) []string {
	chain := []string{"action"}
	if component != "action" {
		chain = append(chain, component)
	}
	if custom != "" {
		chain = append(chain, custom+"_default", custom+"_"+component)
	}
	return chain
}

func componentVariables(action *timeline.Action, component string, value timeline.ComponentValue) map[string]any {
	vars := map[string]any{
		"value":      value.Value,
		"model":      value.Model,
		"identifier": value.Identifier,
		"id":         value.Identifier,
		"text":       value.Text,
		"type":       component,
		"action":     action,
	}
	if value.Model != "" {
		vars["normalized_model"] = timeline.NormalizeModel(value.Model)
	}
	return vars
}

// mergeVariables returns base overlaid with extra. Nested maps present on
// both sides are merged the same way instead of being replaced. Neither
// input is modified.
func mergeVariables(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range extra {
		if baseMap, ok := out[key].(map[string]any); ok {
			if extraMap, ok := value.(map[string]any); ok {
				out[key] = mergeVariables(baseMap, extraMap)
				continue
			}
		}
		out[key] = value
	}
	return out
}
