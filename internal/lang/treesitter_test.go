package lang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTreeSitter_UnknownGrammarReturnsSentinel(t *testing.T) {
	d := Descriptor{Name: "cobol", Backend: BackendTreeSitter}
	_, err := BuildTreeSitter(context.Background(), d, []byte("IDENTIFICATION DIVISION."))
	assert.ErrorIs(t, err, ErrTreeSitterUnavailable)
}

func TestBuildTreeSitter_ParsesGoSource(t *testing.T) {
	d := Descriptor{Name: "go", Backend: BackendTreeSitter}
	forest, err := BuildTreeSitter(context.Background(), d, []byte("package main\n\nfunc main() {}\n"))
	if err != nil {
		t.Fatalf("BuildTreeSitter: %v", err)
	}
	if len(forest) == 0 {
		t.Fatal("expected at least one top-level node")
	}
	assert.True(t, forest[0].IsList())
}
