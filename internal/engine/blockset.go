package engine

import (
	"fmt"
	"html/template"
	"io"
	"sort"
)

// BlockSet is a set of blocks composed into one executable namespace, so a
// block can call any other block of the set with {{template}}.
type BlockSet struct {
	set   *template.Template
	names map[string]struct{}
}

// Compose builds an executable set from blocks, keyed by block name.
func (e *Engine) Compose(blocks map[string]*Block) (*BlockSet, error) {
	set := template.New("blocks").Funcs(e.funcMap())
	names := make(map[string]struct{}, len(blocks))
	for name, block := range blocks {
		if _, err := set.AddParseTree(name, block.tree.Copy()); err != nil {
			return nil, fmt.Errorf("adding block %q from %q: %w", name, block.resource, err)
		}
		names[name] = struct{}{}
	}
	return &BlockSet{set: set, names: names}, nil
}

// Has reports whether the set contains a block called name.
func (b *BlockSet) Has(name string) bool {
	_, ok := b.names[name]
	return ok
}

// Names returns the block names in sorted order.
func (b *BlockSet) Names() []string {
	names := make([]string, 0, len(b.names))
	for name := range b.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute writes the output of block name applied to data.
func (b *BlockSet) Execute(w io.Writer, name string, data any) error {
	if !b.Has(name) {
		return fmt.Errorf("block %q is not defined", name)
	}
	return b.set.ExecuteTemplate(w, name, data)
}
