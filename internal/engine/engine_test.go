package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(files map[string]string) *Engine {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return New(context.Background(), fsys)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "acme/like.html.twig", Path("acme:like.html.twig"))
	assert.Equal(t, "Acme/components.html.twig", Path("Acme::components.html.twig"))
	assert.Equal(t, "acme/wall/like.json.twig", Path("acme:wall/like.json.twig"))
	assert.Equal(t, "plain.html.twig", Path("plain.html.twig"))
}

func TestLoad_BlocksAndParent(t *testing.T) {
	e := newTestEngine(map[string]string{
		"acme/base.html.twig": `{{define "action_component"}}base{{end}}{{define "subject_component"}}base subject{{end}}`,
		"acme/child.html.twig": `{{/* extends "acme:base.html.twig" */}}
{{define "subject_component"}}child subject{{end}}`,
	})

	child, err := e.Load("acme:child.html.twig")
	require.NoError(t, err)

	assert.Equal(t, "acme:child.html.twig", child.Name())
	assert.Len(t, child.Blocks(), 1)
	assert.Contains(t, child.Blocks(), "subject_component")
	require.NotNil(t, child.Parent())
	assert.Equal(t, "acme:base.html.twig", child.Parent().Name())
	assert.Len(t, child.Parent().Blocks(), 2)
	assert.Nil(t, child.Parent().Parent())

	again, err := e.Load("acme:child.html.twig")
	require.NoError(t, err)
	assert.Same(t, child, again, "resources are cached")
}

func TestLoad_NotFound(t *testing.T) {
	e := newTestEngine(nil)

	_, err := e.Load("acme:missing.html.twig")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "acme/missing.html.twig", notFound.Path)
}

func TestLoad_MissingParentIsNotFound(t *testing.T) {
	e := newTestEngine(map[string]string{
		"acme/child.html.twig": `{{/* extends "acme:gone.html.twig" */}}{{define "x"}}x{{end}}`,
	})

	_, err := e.Load("acme:child.html.twig")

	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestLoad_InheritanceCycle(t *testing.T) {
	e := newTestEngine(map[string]string{
		"acme/a.html.twig": `{{/* extends "acme:b.html.twig" */}}{{define "a"}}a{{end}}`,
		"acme/b.html.twig": `{{/* extends "acme:a.html.twig" */}}{{define "b"}}b{{end}}`,
	})

	_, err := e.Load("acme:a.html.twig")

	assert.ErrorIs(t, err, ErrInheritanceCycle)
	assert.False(t, errors.Is(err, ErrTemplateNotFound))
}

func TestLoad_ParseErrorIsFatal(t *testing.T) {
	e := newTestEngine(map[string]string{
		"acme/broken.html.twig": `{{define "x"}}unterminated`,
	})

	_, err := e.Load("acme:broken.html.twig")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTemplateNotFound))
}

func TestRender_LayoutWithChildBlocks(t *testing.T) {
	e := newTestEngine(map[string]string{
		"acme/layout.html.twig": `<p>{{block "content" .}}default{{end}}</p>`,
		"acme/page.html.twig": `{{/* extends "acme:layout.html.twig" */}}
{{define "content"}}hello {{.name}}{{end}}`,
	})

	out, err := e.Render("acme:page.html.twig", map[string]any{"name": "bob"})
	require.NoError(t, err)
	assert.Equal(t, "<p>hello bob</p>", out)

	out, err = e.Render("acme:layout.html.twig", map[string]any{"name": "bob"})
	require.NoError(t, err)
	assert.Equal(t, "<p>default</p>", out)
}

func TestRender_EscapesValues(t *testing.T) {
	e := newTestEngine(map[string]string{
		"acme/like.html.twig": `<b>{{.name}}</b>`,
	})

	out, err := e.Render("acme:like.html.twig", map[string]any{"name": "<script>"})

	require.NoError(t, err)
	assert.Equal(t, "<b>&lt;script&gt;</b>", out)
}

func TestRender_NotFound(t *testing.T) {
	_, err := newTestEngine(nil).Render("acme:like.html.twig", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCompose_ExecutesBlocksAcrossResources(t *testing.T) {
	e := newTestEngine(map[string]string{
		"acme/a.html.twig": `{{define "greeting"}}hi {{template "name" .}}{{end}}`,
		"acme/b.html.twig": `{{define "name"}}{{.who}}{{end}}`,
	})
	a, err := e.Load("acme:a.html.twig")
	require.NoError(t, err)
	b, err := e.Load("acme:b.html.twig")
	require.NoError(t, err)

	blocks := a.Blocks()
	for name, block := range b.Blocks() {
		blocks[name] = block
	}
	set, err := e.Compose(blocks)
	require.NoError(t, err)

	assert.True(t, set.Has("greeting"))
	assert.False(t, set.Has("missing"))
	assert.Equal(t, []string{"greeting", "name"}, set.Names())

	var out strings.Builder
	require.NoError(t, set.Execute(&out, "greeting", map[string]any{"who": "ann"}))
	assert.Equal(t, "hi ann", out.String())

	assert.Error(t, set.Execute(&out, "missing", nil))
}

func TestFuncs_AvailableToLaterTemplates(t *testing.T) {
	e := newTestEngine(map[string]string{
		"acme/shout.html.twig": `{{shout .word}}`,
	})
	e.Funcs(map[string]any{"shout": func(s string) string { return s + "!" }})

	out, err := e.Render("acme:shout.html.twig", map[string]any{"word": "hey"})

	require.NoError(t, err)
	assert.Equal(t, "hey!", out)
}
