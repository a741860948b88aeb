// Package registry keeps the locators compiled into the binary, keyed by
// service identifier, and wires them into a Hydrator.
//
// Locators reach the hydrator from two sources: tagged registrations, which
// are always attached, and the identifiers listed in configuration. A
// locator named by both is attached once.
package registry
