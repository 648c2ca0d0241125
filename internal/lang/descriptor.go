package lang

// Backend selects how a Descriptor's source text is turned into a syntax
// forest: a hand-rolled regex lexer, or a tree-sitter grammar.
type Backend uint8

const (
	// BackendRegex tokenises with Descriptor's Atom/Comment/Open/Close
	// regex lists (lexer.go, build.go). The only backend that works for
	// every Descriptor, since it requires no external grammar.
	BackendRegex Backend = iota
	// BackendTreeSitter delegates to a registered tree-sitter grammar
	// (treesitter.go). Only descriptors with a grammar registered in
	// treeSitterGrammars support this.
	BackendTreeSitter
)

// Descriptor declares how one language's source text maps onto atoms and
// delimited lists (spec §2's "Parsing is out of scope" note: Descriptor is
// the seam between a real parser/lexer and the syntax-node model this
// module operates on).
//
// All four regex lists are tried at every lexer position and the longest
// match wins; a tie in length goes to the class that comes first in the
// fixed order comment, atom, open, close — so that, for instance, a
// line-comment marker that also matches an operator regex to the same
// length is never misclassified (spec §6's lexer tie-break rule). Each
// list holds alternatives for one token class; within a list the longest
// match wins, and of equally long matches the earlier pattern wins.
type Descriptor struct {
	// Name is the descriptor's registry key, e.g. "go", "json".
	Name string `yaml:"name" validate:"required"`
	// Extensions lists the file extensions (including the leading dot)
	// this descriptor claims, e.g. [".go"].
	Extensions []string `yaml:"extensions" validate:"required,min=1,dive,required"`
	// Backend selects the builder used for this descriptor.
	Backend Backend `yaml:"-" validate:"-"`

	// CommentPatterns match comment atoms. Tried before AtomPatterns so a
	// comment marker is never mistaken for an operator atom.
	CommentPatterns []string `yaml:"comments" validate:"dive,required"`
	// AtomPatterns match ordinary atoms: identifiers, literals, operators.
	AtomPatterns []string `yaml:"atoms" validate:"required,min=1,dive,required"`
	// OpenPatterns match list-opening delimiters: "(", "{", "[", and the
	// like.
	OpenPatterns []string `yaml:"open_delimiters" validate:"required,min=1,dive,required"`
	// ClosePatterns match list-closing delimiters. loader.go requires as
	// many close patterns as open patterns, but Build does not pair them
	// by index: any close token closes the innermost open list.
	ClosePatterns []string `yaml:"close_delimiters" validate:"required,min=1,dive,required"`
}

// delimiterCountsMatch reports whether OpenPatterns and ClosePatterns are
// the same length, the one cross-field invariant go-playground/validator
// has no built-in tag for on slices. Checked explicitly by loader.go
// alongside the struct tag validation.
func (d Descriptor) delimiterCountsMatch() bool {
	return len(d.OpenPatterns) == len(d.ClosePatterns)
}
