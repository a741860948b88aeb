package engine

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func builtinFuncs() template.FuncMap {
	return template.FuncMap{
		"dict":     dict,
		"markdown": markdown,
		"lower": func(s string) string {
			return cases.Lower(language.Und).String(s)
		},
	}
}

// dict builds a map from alternating keys and values, so templates can pass
// extra variables: {{timeline_component_render .timeline "subject" (dict "class" "big")}}.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments (%d)", len(pairs))
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %d is %T, not string", i/2, pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

var (
	markdownOnce     sync.Once
	markdownRenderer goldmark.Markdown
)

// markdown renders source as GitHub flavoured markdown. Raw HTML in the
// source is dropped by goldmark's default renderer.
func markdown(source any) (template.HTML, error) {
	markdownOnce.Do(func() {
		markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	if source == nil {
		return "", nil
	}
	var out bytes.Buffer
	if err := markdownRenderer.Convert([]byte(fmt.Sprint(source)), &out); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(out.String()), nil
}
