// Package logging builds the structured loggers used by loaders and Fx modules.
// Records are written with log/slog as JSON by default, or as text.
package logging
