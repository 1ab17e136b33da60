package config

import "strings"

// Set replaces the value of key in lines, keeping any trailing comment,
// or appends key=value when the key is absent. It reports whether the key
// was already present. A commented-out "# key=" placeholder is replaced
// in place.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + quoteValue(value)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		k, oldValue, found := strings.Cut(trimmed, "=")
		if !found || strings.TrimSpace(k) != key {
			continue
		}

		if idx := strings.Index(oldValue, " #"); idx >= 0 && !strings.HasPrefix(strings.TrimSpace(oldValue), "\"") {
			lines[i] = entry + " " + strings.TrimSpace(oldValue[idx:])
		} else {
			lines[i] = entry
		}
		return lines, true
	}

	placeholder := "# " + key + "="
	for i, line := range lines {
		if strings.TrimSpace(line) == placeholder {
			lines[i] = entry
			return lines, false
		}
	}

	return append(lines, entry), false
}

// Unset removes every key=value line for key. Comments are kept.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		k, _, found := strings.Cut(trimmed, "=")
		if found && strings.TrimSpace(k) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}
