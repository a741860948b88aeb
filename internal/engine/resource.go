package engine

import (
	"fmt"
	"html/template"
	"maps"
	"regexp"
	"text/template/parse"
)

var extendsDirective = regexp.MustCompile(`^\s*\{\{-?\s*/\*\s*extends\s+"([^"]+)"\s*\*/\s*-?\}\}`)

// Block is one named fragment defined by a resource.
type Block struct {
	name     string
	resource string
	tree     *parse.Tree
}

// Name returns the block name.
func (b *Block) Name() string { return b.name }

// Resource returns the name of the resource that defines the block.
func (b *Block) Resource() string { return b.resource }

// Resource is a loaded template document.
type Resource struct {
	name   string
	body   *parse.Tree
	blocks map[string]*Block
	parent *Resource
}

// Name returns the template name the resource was loaded under.
func (r *Resource) Name() string { return r.name }

// Blocks returns the blocks defined locally by the resource. Inherited
// blocks are not included.
func (r *Resource) Blocks() map[string]*Block { return maps.Clone(r.blocks) }

// Parent returns the resource this one extends, or nil.
func (r *Resource) Parent() *Resource { return r.parent }

// parseResource parses src and returns the resource together with the name
// of its parent, if the source declares one.
func parseResource(name, src string, funcs template.FuncMap) (*Resource, string, error) {
	var parent string
	if match := extendsDirective.FindStringSubmatch(src); match != nil {
		parent = match[1]
	}

	set, err := template.New(name).Funcs(funcs).Parse(src)
	if err != nil {
		return nil, "", fmt.Errorf("parsing template %q: %w", name, err)
	}

	r := &Resource{name: name, blocks: make(map[string]*Block)}
	for _, t := range set.Templates() {
		if t.Tree == nil || t.Tree.Root == nil {
			continue
		}
		if t.Name() == name {
			if !parse.IsEmptyTree(t.Tree.Root) {
				r.body = t.Tree
			}
			continue
		}
		r.blocks[t.Name()] = &Block{name: t.Name(), resource: name, tree: t.Tree}
	}
	return r, parent, nil
}
