package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/Booklab/TimelineBundle/internal/config"
	"github.com/Booklab/TimelineBundle/internal/ctxlog"
	"github.com/Booklab/TimelineBundle/internal/fsutil"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions the loader reads from directories.
var Extensions = []string{".yaml", ".yml", ".json", ".jsonc"}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every file designated by paths and merges them into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.ResolvePaths(paths, Extensions...)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	for _, file := range files {
		part, err := readFile(file)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("YAML loading complete.", "files", len(files), "entities", len(model.Entities), "actions", len(model.Actions))
	return model, nil
}

func readFile(path string) (*config.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes one YAML document. Unknown keys are rejected.
func Parse(data []byte) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return doc.translate(), nil
}

func (d *document) translate() *config.Model {
	m := &config.Model{}
	if t := d.Timeline; t != nil {
		m.Timeline = &config.Timeline{
			Path:         t.Path,
			Fallback:     t.Fallback,
			I18nFallback: t.I18nFallback,
			Resources:    t.Resources,
			Locators:     t.Locators,
		}
	}
	for _, e := range d.Entities {
		m.Entities = append(m.Entities, &config.Entity{Model: e.Model, Identifier: e.Identifier, Data: e.Data})
	}
	for _, a := range d.Actions {
		action := &config.Action{
			Verb:     a.Verb,
			Name:     a.Name,
			Context:  a.Context,
			Format:   a.Format,
			Locale:   a.Locale,
			Template: a.Template,
			Theme:    a.Theme,
		}
		for _, key := range slices.Sorted(maps.Keys(a.Components)) {
			c := a.Components[key]
			action.Components = append(action.Components, &config.Component{
				Key:        key,
				Model:      c.Model,
				Identifier: c.Identifier,
				Text:       c.Text,
			})
		}
		m.Actions = append(m.Actions, action)
	}
	return m
}
