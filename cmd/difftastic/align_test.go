package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maekawatoshiki/difftastic/internal/lang"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildForest_ResolvesByExtensionAndBuilds(t *testing.T) {
	registry, err := lang.NewRegistry()
	require.NoError(t, err)

	viper.Set("lang", "")
	viper.Set("backend", "regex")
	defer viper.Reset()

	path := writeTempFile(t, "example.go", "package main\n")
	forest, err := buildForest(registry, path)
	require.NoError(t, err)
	assert.NotEmpty(t, forest)
}

func TestResolveDescriptor_ExplicitLangOverridesExtension(t *testing.T) {
	registry, err := lang.NewRegistry()
	require.NoError(t, err)

	viper.Set("lang", "go")
	viper.Set("backend", "regex")
	defer viper.Reset()

	d, err := resolveDescriptor(registry, "/tmp/whatever.unknown")
	require.NoError(t, err)
	assert.Equal(t, "go", d.Name)
}

func TestResolveDescriptor_TreeSitterBackendOverridesDescriptorBackend(t *testing.T) {
	registry, err := lang.NewRegistry()
	require.NoError(t, err)

	viper.Set("lang", "go")
	viper.Set("backend", "treesitter")
	defer viper.Reset()

	d, err := resolveDescriptor(registry, "/tmp/whatever.go")
	require.NoError(t, err)
	assert.Equal(t, lang.BackendTreeSitter, d.Backend)
}
