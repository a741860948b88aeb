// Package locator fills entity components with their data before actions
// are rendered. A Hydrator collects the unhydrated components of a batch of
// actions, groups them by model and hands each group to the first Locator
// that supports the model.
package locator
