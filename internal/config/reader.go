package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/twig/internal/log"
	"github.com/footprint-tools/twig/internal/paths"
)

// ReadLines returns the raw lines of the config file, creating it with
// the default values on first use.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults creates config lines with default values, one
// section at a time.
func initializeDefaults() []string {
	lines := []string{
		"# twig configuration",
		"# Edit values below or use: /config set <key> <value>",
	}

	for _, section := range Sections() {
		lines = append(lines, "", "# "+section)
		for _, key := range Keys {
			if key.Section != section {
				continue
			}
			if key.HideIfEmpty {
				lines = append(lines, "# "+key.Name+"=")
				continue
			}
			lines = append(lines, key.Name+"="+quoteValue(key.Default))
		}
	}

	return lines
}
