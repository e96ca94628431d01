// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
//
//	id: "05"
//	name: Corridor
//	max_turns: 6
//	rows:
//	  - "W   T"
//	  - "W WWW"
//
// Rows must be quoted to keep leading spaces.
type YAMLLevel struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	MaxTurns int      `yaml:"max_turns,omitempty"`
	Rows     []string `yaml:"rows"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	MaxTurns int
	Rows     []string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s: no rows", yl.ID)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	return Level{
		ID:       yl.ID,
		Name:     name,
		MaxTurns: yl.MaxTurns,
		Rows:     yl.Rows,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}

// splitRows breaks layout text into rows, dropping one trailing newline.
func splitRows(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
