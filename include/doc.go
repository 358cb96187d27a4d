// Package include provides tags that pull other files into a document.
//
// The !include tag takes a path relative to the including document:
//
//	database: !include database.yml
//	services: !include services/*.yml
//
// A path containing glob metacharacters ("*", "?" or a non-empty bracket
// class) is a wildcard: it yields a list with one value per matching file,
// in the order the file system reports them, and an empty list when nothing
// matches. "**" matches any number of directories. Any other path yields the
// value of the single file it names.
//
// Included files are loaded with the same Loader, so they may include files
// themselves, relative to their own directory.
//
// !include.raw yields file contents as strings and !include.data decodes
// files according to their extension.
package include
