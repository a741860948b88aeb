package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths   []string // hcl, yaml or json files and directories
	TemplatesPath string   // root of the template tree

	LogFormat        string
	LogLevel         string
	FilterUnresolved bool
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("ConfigPaths is a required configuration field and cannot be empty")
	}
	if cfg.TemplatesPath == "" {
		return nil, errors.New("TemplatesPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
