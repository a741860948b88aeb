package hcl

import (
	"context"
	"fmt"

	"github.com/Booklab/TimelineBundle/internal/config"
	"github.com/Booklab/TimelineBundle/internal/ctxlog"
	"github.com/Booklab/TimelineBundle/internal/fsutil"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file designated by paths and merges the blocks
// found into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.ResolvePaths(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if diags := checkUniqueBlocks(hclFile.Body, uniqueBlocks...); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		part, err := translate(&root)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "files", len(files), "entities", len(model.Entities), "actions", len(model.Actions))
	return model, nil
}

func translate(root *fileRoot) (*config.Model, error) {
	m := &config.Model{}
	if len(root.Timelines) > 0 {
		m.Timeline = translateTimeline(root.Timelines[0])
	}
	for _, e := range root.Entities {
		entity, err := translateEntity(e)
		if err != nil {
			return nil, err
		}
		m.Entities = append(m.Entities, entity)
	}
	for _, a := range root.Actions {
		action, err := translateAction(a)
		if err != nil {
			return nil, err
		}
		m.Actions = append(m.Actions, action)
	}
	return m, nil
}
