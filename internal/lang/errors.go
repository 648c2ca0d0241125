package lang

import "errors"

// Sentinel errors returned by internal/lang, in the same one-per-failure-mode
// style as internal/align/errors.go and the teacher's dijkstra package.
var (
	// ErrUnknownLanguage is returned when no Descriptor is registered for
	// the requested name.
	ErrUnknownLanguage = errors.New("lang: no descriptor registered for this language name")

	// ErrNoDescriptorForPath is returned when a file's extension matches
	// no registered Descriptor.
	ErrNoDescriptorForPath = errors.New("lang: no descriptor matches this file's extension")

	// ErrInvalidDescriptor is returned when a loaded Descriptor fails
	// struct validation (see descriptor.go's validator tags).
	ErrInvalidDescriptor = errors.New("lang: descriptor failed validation")

	// ErrBadRegex is returned when one of a Descriptor's pattern strings
	// fails to compile.
	ErrBadRegex = errors.New("lang: descriptor contains an invalid regular expression")

	// ErrTreeSitterUnavailable is returned when Descriptor.Backend is
	// BackendTreeSitter but no tree-sitter grammar is registered for it.
	ErrTreeSitterUnavailable = errors.New("lang: no tree-sitter grammar registered for this descriptor")
)
