package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_LoadsEmbeddedGoDescriptor(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	d, err := reg.ByName("go")
	require.NoError(t, err)
	assert.Equal(t, "go", d.Name)
	assert.Contains(t, d.Extensions, ".go")
	assert.Equal(t, BackendRegex, d.Backend)
}

func TestRegistry_ByPath_ResolvesByExtension(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	d, err := reg.ByPath("/tmp/example/main.go")
	require.NoError(t, err)
	assert.Equal(t, "go", d.Name)
}

func TestRegistry_ByPath_UnknownExtension(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	_, err = reg.ByPath("/tmp/example/main.rs")
	assert.ErrorIs(t, err, ErrNoDescriptorForPath)
}

func TestRegistry_ByName_Unknown(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	_, err = reg.ByName("cobol")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestDecodeDescriptor_RejectsMissingAtoms(t *testing.T) {
	data := []byte(`
name: broken
extensions: [".brk"]
open_delimiters: ["("]
close_delimiters: [")"]
`)
	_, err := decodeDescriptor(data)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestDecodeDescriptor_RejectsMismatchedDelimiterCounts(t *testing.T) {
	data := []byte(`
name: broken
extensions: [".brk"]
atoms: ["[a-z]+"]
open_delimiters: ["(", "{"]
close_delimiters: [")"]
`)
	_, err := decodeDescriptor(data)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestDecodeDescriptor_RejectsInvalidYAML(t *testing.T) {
	_, err := decodeDescriptor([]byte("not: [valid"))
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestDecodeDescriptor_AcceptsMinimalValidDescriptor(t *testing.T) {
	data := []byte(`
name: tiny
extensions: [".tny"]
atoms: ["[a-z]+"]
open_delimiters: ["("]
close_delimiters: [")"]
`)
	d, err := decodeDescriptor(data)
	require.NoError(t, err)
	assert.Equal(t, "tiny", d.Name)
	assert.Empty(t, d.CommentPatterns)
}
