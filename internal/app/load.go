package app

import (
	"path/filepath"
	"slices"

	"github.com/Booklab/TimelineBundle/internal/config"
	"github.com/Booklab/TimelineBundle/internal/hcl"
	"github.com/Booklab/TimelineBundle/internal/yamlconf"
)

// LoaderFor picks the configuration loader for paths. The YAML loader is
// used when any path is a file with one of its extensions; anything else,
// directories included, goes to the HCL loader.
func LoaderFor(paths []string) config.Loader {
	for _, p := range paths {
		if slices.Contains(yamlconf.Extensions, filepath.Ext(p)) {
			return yamlconf.NewLoader()
		}
	}
	return hcl.NewLoader()
}
