package config

// Defaults maps every key to its default value (in code, not persisted).
var Defaults = func() map[string]func() string {
	m := make(map[string]func() string, len(Keys))
	for _, key := range Keys {
		m[key.Name] = func() string { return key.Default }
	}
	return m
}()

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg, err := load()
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
// An unreadable or malformed file yields the defaults alone.
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := load()
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
