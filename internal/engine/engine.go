package engine

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/Booklab/TimelineBundle/internal/ctxlog"
)

// Engine loads and executes templates from a file system. Loaded resources
// and composed template sets are cached for the lifetime of the engine.
type Engine struct {
	fsys   fs.FS
	logger *slog.Logger

	mu       sync.Mutex
	funcs    template.FuncMap
	loaded   map[string]*Resource
	composed map[string]*template.Template
}

// New creates an engine reading templates from fsys. The logger is taken
// from ctx.
func New(ctx context.Context, fsys fs.FS) *Engine {
	return &Engine{
		fsys:     fsys,
		logger:   ctxlog.FromContext(ctx),
		funcs:    builtinFuncs(),
		loaded:   make(map[string]*Resource),
		composed: make(map[string]*template.Template),
	}
}

// Funcs adds functions available to every template. Templates are checked
// against the function map when they are parsed, so functions must be added
// before the first template that uses them is loaded.
func (e *Engine) Funcs(funcs template.FuncMap) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for name, fn := range funcs {
		e.funcs[name] = fn
	}
}

func (e *Engine) funcMap() template.FuncMap {
	e.mu.Lock()
	defer e.mu.Unlock()
	return maps.Clone(e.funcs)
}

// Load returns the resource called name, loading its parent chain first.
func (e *Engine) Load(name string) (*Resource, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load(name, nil)
}

func (e *Engine) load(name string, children []string) (*Resource, error) {
	if r, ok := e.loaded[name]; ok {
		return r, nil
	}
	if slices.Contains(children, name) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInheritanceCycle, strings.Join(children, " -> "), name)
	}

	path := Path(name)
	src, err := fs.ReadFile(e.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Name: name, Path: path}
		}
		return nil, fmt.Errorf("reading template %q: %w", name, err)
	}

	r, parentName, err := parseResource(name, string(src), e.funcs)
	if err != nil {
		return nil, err
	}
	if parentName != "" {
		parent, err := e.load(parentName, append(children, name))
		if err != nil {
			return nil, fmt.Errorf("loading parent of %q: %w", name, err)
		}
		r.parent = parent
	}

	e.loaded[name] = r
	e.logger.Debug("Template loaded.", "name", name, "path", path, "blocks", len(r.blocks), "parent", parentName)
	return r, nil
}

// Render executes the template called name with vars.
func (e *Engine) Render(name string, vars map[string]any) (string, error) {
	set, err := e.renderSet(name)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	if err := set.ExecuteTemplate(&out, name, vars); err != nil {
		return "", fmt.Errorf("rendering template %q: %w", name, err)
	}
	return out.String(), nil
}

// renderSet composes the layout of the outermost ancestor with every block
// of the chain, children overriding parents.
func (e *Engine) renderSet(name string) (*template.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if set, ok := e.composed[name]; ok {
		return set, nil
	}

	r, err := e.load(name, nil)
	if err != nil {
		return nil, err
	}

	var chain []*Resource
	for current := r; current != nil; current = current.parent {
		chain = append(chain, current)
	}

	set := template.New(name).Funcs(e.funcs)
	blocks := make(map[string]*Block)
	var body *Block
	for i := len(chain) - 1; i >= 0; i-- {
		if body == nil && chain[i].body != nil {
			body = &Block{name: name, resource: chain[i].name, tree: chain[i].body}
		}
		for blockName, block := range chain[i].blocks {
			blocks[blockName] = block
		}
	}
	if body == nil {
		return nil, fmt.Errorf("template %q has no body to render", name)
	}

	if _, err := set.AddParseTree(name, body.tree.Copy()); err != nil {
		return nil, fmt.Errorf("composing template %q: %w", name, err)
	}
	for blockName, block := range blocks {
		if blockName == name {
			continue
		}
		if _, err := set.AddParseTree(blockName, block.tree.Copy()); err != nil {
			return nil, fmt.Errorf("composing block %q of template %q: %w", blockName, name, err)
		}
	}

	e.composed[name] = set
	return set, nil
}
