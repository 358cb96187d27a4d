// Package yamltag loads YAML documents with pluggable custom tags.
//
// A Loader keeps a registry of Tag handlers keyed by tag name. While a
// document is constructed, every node carrying a registered tag is handed to
// its handler together with a TagContext, which gives access to the Loader
// itself, the Constructor of the current document and the origin directory
// relative paths are resolved against.
//
// The include package provides the !include handler built on this mechanism:
//
//	loader := yamltag.New()
//	include.Register(loader)
//
//	value, err := loader.LoadFromPath("config/main.yml")
//
// # Errors
//
// Every load operation fails with an *Error. It carries the cause and, when
// known, the Mark of the node being processed. Errors raised by tag handlers
// get the mark of the tagged node, so an error from a nested file renders the
// positions of every inclusion on the way:
//
//	given no path
//	in "config/inner.yml", line 1, column 1
//	in "config/main.yml", line 3, column 8
//
// Use errors.Is and errors.As to inspect causes.
//
// # Multiple documents
//
// LoadAll and LoadAllFromPath return a Documents sequence. Documents are
// parsed and constructed one at a time as the sequence is pulled, so a broken
// document fails only when it is reached. An explicit empty document yields
// nil. The backing file is closed once the sequence is exhausted or closed.
package yamltag
