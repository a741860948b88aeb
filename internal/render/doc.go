// Package render turns timeline actions into text. It owns the three parts
// of rendering that are more than glue:
//
//   - the block cache, which flattens the global template resources and an
//     action's theme into one block map per action;
//   - the specificity resolver, which picks the most specific block able to
//     render one component of an action and walks back towards the generic
//     "action_component" block;
//   - the render coordinator, which picks the top-level template of an
//     action and falls back through contextual, localized and global
//     fallback templates.
//
// Templates reach back into the Extension through the functions returned
// by FuncMap, so a component block may render sub-components, or the less
// specific block of its own component.
package render
