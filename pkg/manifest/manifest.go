package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the element definition file of a stele site. It declares
// which element kinds exist and which ingredients they carry.
type Manifest struct {
	Elements []Definition `yaml:"elements"`
}

// Definition declares one element kind.
type Definition struct {
	// Name identifies the element kind, e.g. "article_teaser".
	Name string `yaml:"name"`

	// Tag is the preferred wrapper tag hint for templates. Optional.
	Tag string `yaml:"tag,omitempty"`

	// Tags are taxonomy tags attached to every instance.
	Tags []string `yaml:"tags,omitempty"`

	// Ingredients declare the element's content slots.
	Ingredients []IngredientDef `yaml:"ingredients"`
}

// IngredientDef declares one content slot of an element kind.
type IngredientDef struct {
	Role     string         `yaml:"role"`
	Type     string         `yaml:"type"`
	Default  any            `yaml:"default,omitempty"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// knownTypes mirrors the ingredient types Build accepts. Kept here so
// manifests fail at load time, not at first render.
var knownTypes = map[string]bool{
	"text":     true,
	"headline": true,
	"richtext": true,
	"picture":  true,
	"link":     true,
	"boolean":  true,
	"datetime": true,
	"html":     true,
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks element names are unique and non-empty, roles are
// unique per element, and ingredient types are known.
func (m *Manifest) Validate() error {
	seen := map[string]bool{}
	for _, def := range m.Elements {
		if def.Name == "" {
			return fmt.Errorf("manifest: element with empty name")
		}
		if seen[def.Name] {
			return fmt.Errorf("manifest: duplicate element %q", def.Name)
		}
		seen[def.Name] = true

		roles := map[string]bool{}
		for _, ing := range def.Ingredients {
			if ing.Role == "" {
				return fmt.Errorf("manifest: element %q has an ingredient with empty role", def.Name)
			}
			if roles[ing.Role] {
				return fmt.Errorf("manifest: element %q has duplicate role %q", def.Name, ing.Role)
			}
			roles[ing.Role] = true
			if !knownTypes[ing.Type] {
				return fmt.Errorf("manifest: element %q role %q has unknown type %q", def.Name, ing.Role, ing.Type)
			}
		}
	}
	return nil
}

// Definition returns the element definition with the given name.
func (m *Manifest) Definition(name string) (Definition, bool) {
	for _, def := range m.Elements {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// Names returns the defined element names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Elements))
	for _, def := range m.Elements {
		names = append(names, def.Name)
	}
	return names
}
