package store

import (
	"github.com/footprint-tools/twig/internal/paths"
)

// DBPath returns the location of the history database.
func DBPath() string {
	return paths.HistoryDBPath()
}
