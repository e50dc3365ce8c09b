// Package config loads the roadmap definition: the fixed, ordered list
// of phases and items that item indices are assigned against. A
// default definition ships embedded; users may override it with
// ~/.waymark/roadmap.yaml.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/waymark/internal/models"
)

//go:embed roadmap.yaml
var defaultRoadmapYAML []byte

// Roadmap is the static checklist definition. Item identity is the
// index within the flattened item list, so reordering the definition
// remaps persisted state; the definition is expected to stay fixed.
type Roadmap struct {
	Title  string  `yaml:"title"`
	Phases []Phase `yaml:"phases"`
}

// Phase is one group of items sharing a progress percentage.
type Phase struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Items flattens the definition into the ordered item list. Indices
// are assigned in document order.
func (r *Roadmap) Items() []models.ItemDefinition {
	var defs []models.ItemDefinition
	for _, phase := range r.Phases {
		for _, label := range phase.Items {
			defs = append(defs, models.ItemDefinition{
				Index: len(defs),
				Label: label,
				Phase: phase.ID,
			})
		}
	}
	return defs
}

// PhaseName returns the display name for a phase id, falling back to
// the id itself.
func (r *Roadmap) PhaseName(id string) string {
	for _, phase := range r.Phases {
		if phase.ID == id {
			return phase.Name
		}
	}
	return id
}

// ParseRoadmap parses a YAML roadmap definition.
func ParseRoadmap(data []byte) (*Roadmap, error) {
	var roadmap Roadmap
	if err := yaml.Unmarshal(data, &roadmap); err != nil {
		return nil, fmt.Errorf("failed to parse roadmap definition: %w", err)
	}

	if len(roadmap.Items()) == 0 {
		return nil, fmt.Errorf("roadmap definition contains no items")
	}

	seen := make(map[string]bool)
	for _, phase := range roadmap.Phases {
		if seen[phase.ID] {
			return nil, fmt.Errorf("duplicate phase id %q in roadmap definition", phase.ID)
		}
		seen[phase.ID] = true
	}

	return &roadmap, nil
}

// DefaultYAML returns the embedded default definition, used by init
// to scaffold a user override.
func DefaultYAML() []byte {
	return defaultRoadmapYAML
}

// OverridePath returns the location of the optional user-supplied
// roadmap definition.
func OverridePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".waymark", "roadmap.yaml"), nil
}

// LoadRoadmap returns the user override if present, otherwise the
// embedded default definition.
func LoadRoadmap() (*Roadmap, error) {
	path, err := OverridePath()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			roadmap, parseErr := ParseRoadmap(data)
			if parseErr != nil {
				return nil, fmt.Errorf("invalid roadmap override at %s: %w", path, parseErr)
			}
			return roadmap, nil
		}
	}

	return ParseRoadmap(defaultRoadmapYAML)
}
