package yamlconf

type document struct {
	Timeline *timelineDoc `yaml:"timeline"`
	Entities []entityDoc  `yaml:"entities"`
	Actions  []actionDoc  `yaml:"actions"`
}

type timelineDoc struct {
	Path         string   `yaml:"path"`
	Fallback     string   `yaml:"fallback"`
	I18nFallback string   `yaml:"i18n_fallback"`
	Resources    []string `yaml:"resources"`
	Locators     []string `yaml:"locators"`
}

type entityDoc struct {
	Model      string `yaml:"model"`
	Identifier string `yaml:"identifier"`
	Data       any    `yaml:"data"`
}

type actionDoc struct {
	Verb       string                  `yaml:"verb"`
	Name       string                  `yaml:"name"`
	Context    string                  `yaml:"context"`
	Format     string                  `yaml:"format"`
	Locale     string                  `yaml:"locale"`
	Template   string                  `yaml:"template"`
	Theme      []string                `yaml:"theme"`
	Components map[string]componentDoc `yaml:"components"`
}

type componentDoc struct {
	Model      string `yaml:"model"`
	Identifier string `yaml:"identifier"`
	Text       any    `yaml:"text"`
}
