package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// uniqueBlocks lists the top-level block types that may appear at most once
// per file.
var uniqueBlocks = []string{"timeline"}

// checkUniqueBlocks reports a diagnostic for every repeated block of the
// given types.
func checkUniqueBlocks(body hcl.Body, types ...string) hcl.Diagnostics {
	schema := &hcl.BodySchema{}
	for _, t := range types {
		schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{Type: t})
	}
	content, _, diags := body.PartialContent(schema)
	for _, t := range types {
		_, dup := findUniqueBlock(content.Blocks, t)
		diags = append(diags, dup...)
	}
	return diags
}

// findUniqueBlock searches blocks for the block of type name. It returns a
// diagnostic for every block after the first one. If no block is found, it
// returns nil.
func findUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != name {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + name + "\" block",
				Detail:   "Only one \"" + name + "\" block is allowed; the first one is at " + found.DefRange.String() + ".",
				Subject:  &block.DefRange,
			})
			continue
		}
		found = block
	}

	return found, diags
}
