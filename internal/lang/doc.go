// Package lang turns source text into the syntax-node forests that
// internal/align compares: it owns the notion of "what counts as an atom,
// a comment, or a delimiter in this language" and the two ways of
// answering that question (a regex lexer, or a tree-sitter grammar).
//
// A Descriptor is the declarative half of a language: the regexes/file
// extensions/backend choice that say how to carve up a file. loader.go
// resolves a Descriptor from either an embedded default (languages/*.yaml)
// or a user override discovered via the XDG config directories. build.go
// and treesitter.go are the two Builders that turn a Descriptor plus
// source text into a frozen []*syntax.Node forest.
//
// Complexity: building is O(N) in the length of the source text for the
// regex lexer (one left-to-right scan), and whatever the underlying
// tree-sitter C parser guarantees (documented as near-linear) for the
// tree-sitter backend.
package lang
