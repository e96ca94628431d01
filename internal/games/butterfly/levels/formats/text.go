package formats

import (
	"fmt"
	"strings"
)

// ParseText parses a plain layout file: one row per line, top row first.
// Lines starting with '#' are comments. A "# name: ..." comment sets the
// level name and "# max_turns: N" overrides the turn budget.
func ParseText(id string, data []byte) (Level, error) {
	level := Level{ID: id, Name: id}
	for _, line := range splitRows(string(data)) {
		if !strings.HasPrefix(line, "#") {
			level.Rows = append(level.Rows, line)
			continue
		}
		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "name":
			level.Name = value
		case "max_turns":
			if _, err := fmt.Sscanf(value, "%d", &level.MaxTurns); err != nil {
				return Level{}, fmt.Errorf("max_turns %q: %w", value, err)
			}
		}
	}
	if len(level.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s: no rows", id)
	}
	return level, nil
}
