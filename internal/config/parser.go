package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse reads key=value lines. Blank lines and lines starting with # are
// skipped, a " #" starts a trailing comment, and a value wrapped in double
// quotes is unquoted. The last occurrence of a key wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			return nil, fmt.Errorf("config: line %d: missing '=' in %q", i+1, trimmed)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = parseValue(value)
	}

	return cfg, nil
}

func parseValue(raw string) string {
	value := strings.TrimSpace(raw)

	if len(value) >= 2 && strings.HasPrefix(value, "\"") {
		if end := strings.Index(value[1:], "\""); end >= 0 {
			return value[1 : end+1]
		}
	}

	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return value
}

// quoteValue wraps values containing spaces so Parse keeps them intact.
func quoteValue(value string) string {
	if strings.ContainsAny(value, " #") || strings.HasPrefix(value, "\"") {
		return "\"" + value + "\""
	}
	return value
}
