package config

// Provider exposes the config file as a value, for code that takes its
// configuration as a dependency. Writes hold the config lock.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set sets a configuration value.
func (p *Provider) Set(key, value string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

// Unset removes a configuration value. It reports whether the key was set.
func (p *Provider) Unset(key string) (bool, error) {
	var removed bool
	err := WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, removed = Unset(lines, key)
		return WriteLines(lines)
	})
	return removed, err
}
