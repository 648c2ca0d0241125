package lang

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed languages/*.yaml
var builtinDescriptors embed.FS

// xdgConfigSubdir is where a user's own descriptor overrides live, found
// via the XDG base directory spec: $XDG_CONFIG_HOME/difftastic/languages,
// falling back through adrg/xdg's standard search path.
const xdgConfigSubdir = "difftastic/languages"

var structValidator = validator.New()

// Registry holds every Descriptor known to one Align run: the bundled
// defaults, plus any user overrides found under the XDG config directory.
// A Registry is safe for concurrent read-only use once built; it is never
// mutated after NewRegistry returns.
type Registry struct {
	byName map[string]Descriptor
	byExt  map[string]Descriptor
}

// NewRegistry loads every embedded descriptor under languages/*.yaml, then
// overlays any same-named descriptor found under the user's XDG config
// directory (difftastic/languages/*.yaml) — the override replaces the
// built-in entirely, it does not merge field by field.
func NewRegistry() (*Registry, error) {
	reg := &Registry{
		byName: make(map[string]Descriptor),
		byExt:  make(map[string]Descriptor),
	}

	entries, err := builtinDescriptors.ReadDir("languages")
	if err != nil {
		return nil, fmt.Errorf("lang: reading embedded descriptors: %w", err)
	}
	for _, entry := range entries {
		data, err := builtinDescriptors.ReadFile(filepath.Join("languages", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("lang: reading embedded descriptor %s: %w", entry.Name(), err)
		}
		d, err := decodeDescriptor(data)
		if err != nil {
			return nil, fmt.Errorf("lang: embedded descriptor %s: %w", entry.Name(), err)
		}
		reg.add(d)
	}

	overrideDir, err := xdg.SearchConfigFile(xdgConfigSubdir)
	if err != nil {
		// No override directory present; the bundled defaults stand as-is.
		return reg, nil
	}
	matches, _ := filepath.Glob(filepath.Join(overrideDir, "*.yaml"))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("lang: reading override descriptor %s: %w", path, err)
		}
		d, err := decodeDescriptor(data)
		if err != nil {
			return nil, fmt.Errorf("lang: override descriptor %s: %w", path, err)
		}
		reg.add(d)
	}

	return reg, nil
}

// decodeDescriptor parses one YAML document, then validates it with
// go-playground/validator's struct tags plus the one cross-field
// invariant validator can't express (delimiterCountsMatch).
func decodeDescriptor(data []byte) (Descriptor, error) {
	var raw struct {
		Name       string   `yaml:"name"`
		Ext        []string `yaml:"extensions"`
		Comments   []string `yaml:"comments"`
		Atoms      []string `yaml:"atoms"`
		OpenDelim  []string `yaml:"open_delimiters"`
		CloseDelim []string `yaml:"close_delimiters"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Descriptor{}, fmt.Errorf("lang: %w: %v", ErrInvalidDescriptor, err)
	}

	d := Descriptor{
		Name:            raw.Name,
		Extensions:      raw.Ext,
		Backend:         BackendRegex,
		CommentPatterns: raw.Comments,
		AtomPatterns:    raw.Atoms,
		OpenPatterns:    raw.OpenDelim,
		ClosePatterns:   raw.CloseDelim,
	}

	if err := structValidator.Struct(d); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	if !d.delimiterCountsMatch() {
		return Descriptor{}, fmt.Errorf("%w: %d open delimiters but %d close delimiters",
			ErrInvalidDescriptor, len(d.OpenPatterns), len(d.ClosePatterns))
	}

	return d, nil
}

// add registers d under its name and every extension it claims, replacing
// any existing entry with the same key.
func (r *Registry) add(d Descriptor) {
	r.byName[d.Name] = d
	for _, ext := range d.Extensions {
		r.byExt[ext] = d
	}
}

// ByName looks up a descriptor by its registered name, e.g. "go".
func (r *Registry) ByName(name string) (Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return d, nil
}

// ByPath looks up a descriptor by a file path's extension.
func (r *Registry) ByPath(path string) (Descriptor, error) {
	ext := filepath.Ext(path)
	d, ok := r.byExt[ext]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrNoDescriptorForPath, ext)
	}
	return d, nil
}
