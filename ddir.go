// Package ddir provides a personal annotation tool for filesystem paths.
// It maps human-readable descriptions to directory paths: exact
// descriptions attached to a single path, and pattern descriptions
// attached to a parent directory and applied to its direct children by
// wildcard substitution. The mapping persists as a JSON document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, slog/).
package ddir
