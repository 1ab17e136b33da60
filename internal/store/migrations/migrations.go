// Package migrations applies the numbered SQL files of the history
// database in order, recording each in schema_migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/twig/internal/log"
)

//go:embed sql/*.sql
var embedded embed.FS

// Migration is one NN_description.sql file.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

func (m Migration) String() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

const createSchemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations sorted by version.
func Load() ([]Migration, error) {
	return loadFS(embedded)
}

// loadFS reads sql/*.sql from fsys. Versions must be unique.
func loadFS(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(names))
	for _, name := range names {
		base := path.Base(name)
		version, description, err := parseFilename(base)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", base, err)
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", base, err)
		}
		all = append(all, Migration{Version: version, Description: description, SQL: string(content)})
	}

	slices.SortFunc(all, func(a, b Migration) int { return a.Version - b.Version })
	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("duplicate version %d: %s and %s", all[i].Version, all[i-1].Description, all[i].Description)
		}
	}
	return all, nil
}

// parseFilename splits "NN_description.sql".
func parseFilename(name string) (int, string, error) {
	num, description, found := strings.Cut(strings.TrimSuffix(name, ".sql"), "_")
	if !found || description == "" {
		return 0, "", errors.New("invalid format, expected NN_description.sql")
	}
	version, err := strconv.Atoi(num)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number: %w", err)
	}
	return version, description, nil
}

// Run applies every embedded migration newer than the current version.
func Run(db *sql.DB) error {
	all, err := Load()
	if err != nil {
		return err
	}
	return apply(db, all)
}

func apply(db *sql.DB, all []Migration) error {
	pending, err := pendingOf(db, all)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := applyOne(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m, err)
		}
		log.Info("store: applied migration %s", m)
	}
	return nil
}

// applyOne runs m and records it in one transaction.
func applyOne(db *sql.DB, m Migration) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err = tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest applied version, 0 on a new
// database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(createSchemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns the embedded migrations not yet applied.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	return pendingOf(db, all)
}

func pendingOf(db *sql.DB, all []Migration) ([]Migration, error) {
	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}
	i, _ := slices.BinarySearchFunc(all, current+1, func(m Migration, v int) int { return m.Version - v })
	return all[i:], nil
}
