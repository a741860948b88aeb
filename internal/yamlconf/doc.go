// Package yamlconf implements config.Loader for YAML files. JSON and JSONC
// files are accepted as well: comments and trailing commas are stripped and
// the remaining JSON is read as the YAML subset it is.
package yamlconf
