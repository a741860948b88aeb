// Package timeline holds the domain types the rendering core reads: an
// Action (subject performed verb on object), its named components, and the
// ComponentValue derived from one component when a template asks for it.
//
// Actions are owned by whoever produced them. The rendering core never
// mutates an Action beyond its Attributes; it only keys caches by Action.ID.
package timeline
