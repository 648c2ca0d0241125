package syntax

import "errors"

// Sentinel errors for the syntax package.
var (
	// ErrEmptyOpenOrClose indicates a List was constructed with an empty
	// open or close delimiter string; lists always have concrete delimiter
	// text, even a synthetic "UNCLOSED" one (see internal/lang).
	ErrEmptyOpenOrClose = errors.New("syntax: list requires non-empty open and close delimiter text")

	// ErrAlreadyFrozen is the panic value Freeze raises when called again
	// on a root it already froze. Freezing is a one-shot, post-construction
	// step; re-running it is a caller bug, not a recoverable condition.
	ErrAlreadyFrozen = errors.New("syntax: node metadata already frozen")
)

// errChangeAlreadySet is not a returned error: writing a Change slot twice
// is a programming-invariant violation (spec §7) and panics rather than
// propagating, exactly like a double-close on a channel.
const errChangeAlreadySet = "syntax: change slot already set for node %d (kind=%v, existing=%v)"
