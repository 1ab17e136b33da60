package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/twig/internal/paths"
)

// WriteLines replaces the config file with lines. The content goes to a
// temporary file in the same directory that is synced and renamed over
// the old file, so readers see either version whole.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return writeFileAtomic(configPath, b.String())
}

func writeFileAtomic(path, content string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("config: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0600); err != nil {
		return fmt.Errorf("config: chmod temp file: %w", err)
	}
	if _, err = tmp.WriteString(content); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("config: sync: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("config: close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config: replace %s: %w", path, err)
	}
	return nil
}
