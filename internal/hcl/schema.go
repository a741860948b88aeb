package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Timelines []*timelineBlock `hcl:"timeline,block"`
	Entities  []*entityBlock   `hcl:"entity,block"`
	Actions   []*actionBlock   `hcl:"action,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type timelineBlock struct {
	Path         string   `hcl:"path"`
	Fallback     string   `hcl:"fallback,optional"`
	I18nFallback string   `hcl:"i18n_fallback,optional"`
	Resources    []string `hcl:"resources,optional"`
	Locators     []string `hcl:"locators,optional"`
}

type entityBlock struct {
	Model      string         `hcl:"model,label"`
	Identifier string         `hcl:"identifier,label"`
	Data       hcl.Expression `hcl:"data,optional"`
}

type actionBlock struct {
	Verb       string            `hcl:"verb,label"`
	Name       string            `hcl:"name,label"`
	Context    string            `hcl:"context,optional"`
	Format     string            `hcl:"format,optional"`
	Locale     string            `hcl:"locale,optional"`
	Template   string            `hcl:"template,optional"`
	Theme      []string          `hcl:"theme,optional"`
	Components []*componentBlock `hcl:"component,block"`
}

type componentBlock struct {
	Key        string         `hcl:"key,label"`
	Model      string         `hcl:"model,optional"`
	Identifier string         `hcl:"identifier,optional"`
	Text       hcl.Expression `hcl:"text,optional"`
}
