package render

import (
	"errors"
	"testing"

	"github.com/Booklab/TimelineBundle/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const components = "acme:components.html.twig"

func TestSpecificityChain(t *testing.T) {
	assert.Equal(t, []string{"action"}, specificityChain("action", ""))
	assert.Equal(t, []string{"action", "subject"}, specificityChain("subject", ""))
	assert.Equal(t,
		[]string{"action", "subject", "_acme_model_default", "_acme_model_subject"},
		specificityChain("subject", "_acme_model"))
}

func TestRenderComponent_GenericBlock(t *testing.T) {
	x := newTestExtension(t, map[string]string{
		"acme/components.html.twig": `{{define "action_component"}}[{{.type}}:{{with .text}}{{.}}{{end}}]{{end}}`,
	}, Settings{Path: "acme"}, components)
	action := likeAction()

	out, err := x.RenderComponent(action, "complement")
	require.NoError(t, err)
	assert.Equal(t, "[complement:a photo]", string(out))

	out, err = x.RenderComponent(action, "subject")
	require.NoError(t, err, "an entity component degrades to the generic block")
	assert.Equal(t, "[subject:]", string(out))
}

func TestRenderComponent_MostSpecificWins(t *testing.T) {
	blocks := map[string]string{
		"action":              `{{define "action_component"}}action{{end}}`,
		"subject":             `{{define "subject_component"}}subject{{end}}`,
		"_acme_model_default": `{{define "_acme_model_default_component"}}model default {{.value.name}}{{end}}`,
		"_acme_model_subject": `{{define "_acme_model_subject_component"}}model subject {{.identifier}}{{end}}`,
	}

	tests := []struct {
		name    string
		present []string
		want    string
	}{
		{"all blocks", []string{"action", "subject", "_acme_model_default", "_acme_model_subject"}, "model subject 42"},
		{"model default over component", []string{"action", "subject", "_acme_model_default"}, "model default Chuck"},
		{"model default over action", []string{"action", "_acme_model_default"}, "model default Chuck"},
		{"component over action", []string{"action", "subject"}, "subject"},
		{"action only", []string{"action"}, "action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var src string
			for _, key := range tt.present {
				src += blocks[key]
			}
			x := newTestExtension(t, map[string]string{"acme/components.html.twig": src}, Settings{Path: "acme"}, components)

			out, err := x.RenderComponent(likeAction(), "subject")

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestRenderComponent_NoMatchingBlock(t *testing.T) {
	x := newTestExtension(t, map[string]string{
		"acme/components.html.twig": `{{define "unrelated"}}x{{end}}`,
	}, Settings{Path: "acme"}, components)
	action := timeline.NewAction("comment").
		SetComponent("comment", timeline.NewComponent(`Acme\Model`, "7"))

	_, err := x.RenderComponent(action, "comment")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatchingBlock))
	var noMatch *NoMatchingBlockError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, []string{
		"_acme_model_comment_component",
		"_acme_model_default_component",
		"comment_component",
		"action_component",
	}, noMatch.Probed)
	assert.Contains(t, err.Error(), `"_acme_model_comment_component", "_acme_model_default_component", "comment_component", "action_component"`)
	assert.Zero(t, x.pending(), "a failed render leaves no frame behind")
}

func TestRenderComponent_Idempotent(t *testing.T) {
	x := newTestExtension(t, map[string]string{
		"acme/components.html.twig": `{{define "_acme_model_subject_component"}}{{.value.name}} #{{.id}} ({{.normalized_model}}){{end}}`,
	}, Settings{Path: "acme"}, components)
	action := likeAction()

	first, err := x.RenderComponent(action, "subject")
	require.NoError(t, err)
	second, err := x.RenderComponent(action, "subject")
	require.NoError(t, err)

	assert.Equal(t, "Chuck #42 (acme_model)", string(first))
	assert.Equal(t, first, second)
}

func TestRenderComponent_ExtraVariablesMergedRecursively(t *testing.T) {
	x := newTestExtension(t, map[string]string{
		"acme/components.html.twig": `{{define "_acme_model_default_component"}}{{.value.name}}/{{.value.role}}/{{.class}}/{{.type}}{{end}}`,
	}, Settings{Path: "acme"}, components)

	out, err := x.RenderComponent(likeAction(), "subject", map[string]any{
		"value": map[string]any{"role": "admin"},
		"class": "big",
	})

	require.NoError(t, err)
	assert.Equal(t, "Chuck/admin/big/subject", string(out))
}

func TestRenderComponent_ReentrantRenderUsesLessSpecificBlock(t *testing.T) {
	x := newTestExtension(t, map[string]string{
		"acme/components.html.twig": `
{{define "_acme_model_subject_component"}}[{{timeline_component_render .action "subject" (dict "mood" "happy")}}]{{end}}
{{define "action_component"}}generic {{.mood}}{{end}}`,
	}, Settings{Path: "acme"}, components)

	out, err := x.RenderComponent(likeAction(), "subject")

	require.NoError(t, err)
	assert.Equal(t, "[generic happy]", string(out))
	assert.Zero(t, x.pending())
}

func TestRenderComponent_ReentrantRenderTwice(t *testing.T) {
	x := newTestExtension(t, map[string]string{
		"acme/components.html.twig": `
{{define "complement_component"}}[{{timeline_component_render .action "complement"}}|{{timeline_component_render .action "complement"}}]{{end}}
{{define "action_component"}}{{.text}}{{end}}`,
	}, Settings{Path: "acme"}, components)

	out, err := x.RenderComponent(likeAction(), "complement")

	require.NoError(t, err)
	assert.Equal(t, "[a photo|a photo]", string(out))
	assert.Zero(t, x.pending())
}

func TestRenderComponent_SelfRecursionIsBounded(t *testing.T) {
	x := newTestExtension(t, map[string]string{
		"acme/components.html.twig": `{{define "action_component"}}again {{timeline_component_render .action "action"}}{{end}}`,
	}, Settings{Path: "acme"}, components)

	_, err := x.RenderComponent(likeAction(), "action")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatchingBlock)
	assert.Zero(t, x.pending())
}

func TestRenderComponent_SubComponents(t *testing.T) {
	x := newTestExtension(t, map[string]string{
		"acme/components.html.twig": `
{{define "action_component"}}{{timeline_component_render .action "subject"}} likes {{timeline_component_render .action "complement"}}{{end}}
{{define "subject_component"}}{{.value.name}}{{end}}
{{define "complement_component"}}{{.text}}{{end}}`,
	}, Settings{Path: "acme"}, components)

	out, err := x.RenderComponent(likeAction(), "action")

	require.NoError(t, err)
	assert.Equal(t, "Chuck likes a photo", string(out))
}

func TestMergeVariables(t *testing.T) {
	base := map[string]any{
		"value": map[string]any{"a": 1, "b": 2},
		"x":     1,
	}
	extra := map[string]any{
		"value": map[string]any{"b": 3},
		"y":     "new",
	}

	merged := mergeVariables(base, extra)

	assert.Equal(t, map[string]any{
		"value": map[string]any{"a": 1, "b": 3},
		"x":     1,
		"y":     "new",
	}, merged)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, base["value"], "inputs are not modified")
}

func TestMergeVariables_ScalarReplacesMap(t *testing.T) {
	merged := mergeVariables(map[string]any{"value": map[string]any{"a": 1}}, map[string]any{"value": "flat"})
	assert.Equal(t, "flat", merged["value"])
}
