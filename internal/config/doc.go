// Package config defines the format-agnostic configuration model of the
// renderer, along with the Loader interface implemented by each concrete
// format.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete loaders, for HCL and for YAML or JSON, live in separate packages.
package config
