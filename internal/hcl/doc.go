// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file parsing, HCL-to-model translation
// and conversion of literal attribute values into plain Go values.
package hcl
