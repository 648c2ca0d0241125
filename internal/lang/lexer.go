package lang

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenKind classifies one lexed token.
type tokenKind uint8

const (
	tokenComment tokenKind = iota
	tokenAtom
	tokenOpen
	tokenClose
)

// token is one lexed unit of source text: its class, the exact text
// matched, and the 1-based line it starts on.
type token struct {
	kind    tokenKind
	content string
	line    int
	// delimIndex is the index into the Descriptor's Open/ClosePatterns
	// list this token matched, valid only for tokenOpen/tokenClose.
	// build.go does not consult it: a close token always closes the
	// innermost open list, whichever close pattern it matched.
	delimIndex int
}

// compiledDescriptor is a Descriptor with every pattern pre-compiled and
// anchored to match only at the start of the remaining input, so the
// lexer never accidentally matches partway through a later token.
type compiledDescriptor struct {
	comments []*regexp.Regexp
	atoms    []*regexp.Regexp
	opens    []*regexp.Regexp
	closes   []*regexp.Regexp
}

func compile(d Descriptor) (*compiledDescriptor, error) {
	c := &compiledDescriptor{}
	var err error
	if c.comments, err = compileAnchored(d.CommentPatterns); err != nil {
		return nil, err
	}
	if c.atoms, err = compileAnchored(d.AtomPatterns); err != nil {
		return nil, err
	}
	if c.opens, err = compileAnchored(d.OpenPatterns); err != nil {
		return nil, err
	}
	if c.closes, err = compileAnchored(d.ClosePatterns); err != nil {
		return nil, err
	}
	return c, nil
}

func compileAnchored(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(`\A(?:` + p + `)`)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadRegex, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// classMatch is the longest match a token class offers at the current
// scan position, or the zero value if the class matched nothing.
type classMatch struct {
	text       string
	patternIdx int
	ok         bool
}

// longestMatch returns the longest match among patterns at the start of
// remaining, and which pattern produced it.
func longestMatch(patterns []*regexp.Regexp, remaining string) classMatch {
	best := classMatch{}
	for i, re := range patterns {
		loc := re.FindStringIndex(remaining)
		if loc == nil {
			continue
		}
		if !best.ok || loc[1] > len(best.text) {
			best = classMatch{text: remaining[:loc[1]], patternIdx: i, ok: true}
		}
	}
	return best
}

// lex tokenises src according to c. Classes are tried in the fixed
// priority order comment, atom, open, close; within and across classes
// the longest match at the current position wins, with that priority
// order breaking ties of equal length (spec §6's lexer tie-break rule).
// Whitespace between tokens is skipped silently.
//
// Complexity: O(N) scan positions, each trying O(P) patterns where P is
// the descriptor's total pattern count — effectively O(N) for any
// realistic, small, fixed pattern set.
func lex(c *compiledDescriptor, src string) []token {
	var tokens []token
	line := 1
	pos := 0

	for pos < len(src) {
		remaining := src[pos:]

		if r := remaining[0]; r == ' ' || r == '\t' || r == '\r' {
			pos++
			continue
		}
		if remaining[0] == '\n' {
			pos++
			line++
			continue
		}

		comment := longestMatch(c.comments, remaining)
		atom := longestMatch(c.atoms, remaining)
		open := longestMatch(c.opens, remaining)
		close_ := longestMatch(c.closes, remaining)

		kind, match, ok := pickWinner(comment, atom, open, close_)
		if !ok {
			// No pattern matches here; treat the single rune as an atom
			// so a descriptor gap can't wedge the lexer. A well-formed
			// descriptor's atom pattern set should make this unreachable
			// for valid input.
			_, size := utf8.DecodeRuneInString(remaining)
			kind, match = tokenAtom, classMatch{text: remaining[:size], ok: true}
		}

		tokens = append(tokens, token{
			kind:       kind,
			content:    match.text,
			line:       line,
			delimIndex: match.patternIdx,
		})
		line += strings.Count(match.text, "\n")
		pos += len(match.text)
	}

	return tokens
}

// pickWinner applies the class-priority tie-break to the four candidate
// matches, in comment/atom/open/close order.
func pickWinner(comment, atom, open, close_ classMatch) (tokenKind, classMatch, bool) {
	type candidate struct {
		kind  tokenKind
		match classMatch
	}
	candidates := []candidate{
		{tokenComment, comment},
		{tokenAtom, atom},
		{tokenOpen, open},
		{tokenClose, close_},
	}

	var bestLen = -1
	var winner candidate
	var found bool
	for _, cand := range candidates {
		if !cand.match.ok {
			continue
		}
		if len(cand.match.text) > bestLen {
			bestLen = len(cand.match.text)
			winner = cand
			found = true
		}
	}
	return winner.kind, winner.match, found
}
