package render

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Booklab/TimelineBundle/internal/engine"
	"github.com/Booklab/TimelineBundle/internal/timeline"
)

// maxInheritanceDepth bounds the parent chain walked for one resource.
const maxInheritanceDepth = 32

// BlockMap is the flattened view of every block available to one action.
type BlockMap struct {
	blocks map[string]*engine.Block
	set    *engine.BlockSet
}

// Has reports whether a block called name is available.
func (m *BlockMap) Has(name string) bool {
	_, ok := m.blocks[name]
	return ok
}

// Block returns the block called name, or nil.
func (m *BlockMap) Block(name string) *engine.Block {
	return m.blocks[name]
}

// Names returns the available block names in sorted order.
func (m *BlockMap) Names() []string {
	return slices.Sorted(maps.Keys(m.blocks))
}

// BlockMap returns the block map of action, building it on first use from
// the global resources followed by the action's theme. Resources are loaded
// and composed without holding the Extension lock; a theme changed while the
// map was being built causes a rebuild.
func (x *Extension) BlockMap(action *timeline.Action) (*BlockMap, error) {
	for {
		x.mu.Lock()
		if m, ok := x.blocks[action.ID]; ok {
			x.mu.Unlock()
			return m, nil
		}
		theme := x.themes[action.ID]
		x.mu.Unlock()

		m, err := x.buildBlockMap(action, theme)
		if err != nil {
			return nil, err
		}

		x.mu.Lock()
		if cached, ok := x.blocks[action.ID]; ok {
			x.mu.Unlock()
			return cached, nil
		}
		if !slices.Equal(theme, x.themes[action.ID]) {
			x.mu.Unlock()
			x.logger.Debug("Theme changed while building block map, rebuilding.", "action", action.ID)
			continue
		}
		x.blocks[action.ID] = m
		x.mu.Unlock()
		return m, nil
	}
}

func (x *Extension) buildBlockMap(action *timeline.Action, theme []string) (*BlockMap, error) {
	names := append(slices.Clone(x.resources), theme...)
	merged := make(map[string]*engine.Block)
	for _, name := range names {
		resource, err := x.engine.Load(name)
		if err != nil {
			return nil, fmt.Errorf("loading block resource %q: %w", name, err)
		}
		blocks, err := flatten(resource)
		if err != nil {
			return nil, err
		}
		maps.Copy(merged, blocks)
	}

	set, err := x.engine.Compose(merged)
	if err != nil {
		return nil, fmt.Errorf("composing blocks of action %s: %w", action.ID, err)
	}

	x.logger.Debug("Block map built.", "action", action.ID, "resources", names, "blocks", len(merged))
	return &BlockMap{blocks: merged, set: set}, nil
}

// flatten merges the blocks of resource with those of its parent chain,
// children overriding parents.
func flatten(resource *engine.Resource) (map[string]*engine.Block, error) {
	var chain []*engine.Resource
	seen := make(map[*engine.Resource]bool)
	for current := resource; current != nil; current = current.Parent() {
		if seen[current] {
			return nil, fmt.Errorf("%w: %q reached twice from %q", engine.ErrInheritanceCycle, current.Name(), resource.Name())
		}
		if len(chain) == maxInheritanceDepth {
			return nil, fmt.Errorf("template %q inherits through more than %d parents", resource.Name(), maxInheritanceDepth)
		}
		seen[current] = true
		chain = append(chain, current)
	}

	blocks := make(map[string]*engine.Block)
	for i := len(chain) - 1; i >= 0; i-- {
		maps.Copy(blocks, chain[i].Blocks())
	}
	return blocks, nil
}

// SetTheme stores the theme resources of action and drops its cached block
// map. Other actions keep their cache entries.
func (x *Extension) SetTheme(action *timeline.Action, resources ...string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.themes[action.ID] = slices.Clone(resources)
	delete(x.blocks, action.ID)
}

// ClearTheme removes the theme of action and drops its cached block map.
func (x *Extension) ClearTheme(action *timeline.Action) {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.themes, action.ID)
	delete(x.blocks, action.ID)
}

// Forget releases everything the Extension holds for action. Hosts call it
// once an action will not be rendered again.
func (x *Extension) Forget(action *timeline.Action) {
	x.ClearTheme(action)
}
