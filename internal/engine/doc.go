// Package engine is the templating collaborator of the rendering core. It
// loads template resources from an fs.FS, exposes the named blocks each
// resource defines together with its single parent, and executes whole
// templates or individual blocks with html/template.
//
// # Names
//
// Templates are addressed with the bundle notation "ns:dir/file.html.twig".
// Every ':' separates a directory, empty segments are ignored, so
// "Acme::components.html.twig" and "Acme:components.html.twig" both read
// "Acme/components.html.twig".
//
// # Inheritance
//
// A resource declares its parent with a leading comment directive:
//
//	{{/* extends "acme:layout.html.twig" */}}
//
// Blocks not defined locally are inherited from the parent chain, and a
// whole-template render executes the body of the outermost ancestor.
package engine
