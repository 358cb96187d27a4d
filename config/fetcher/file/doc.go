// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read through a yamltag.FileSystem at construction time and
// cached, so subsequent calls to Fetch return the same data without touching
// the file system again. Origin reports the directory of the file, which is
// what the YAML parser needs to resolve relative !include paths.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("config/app.yaml", yamltag.OSFileSystem())()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Directories fail with an error wrapping yamltag.ErrPathIsDirectory.
package file
