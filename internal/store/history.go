package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/twig/internal/log"
)

// Entry is one line typed into the console.
type Entry struct {
	ID        int64
	SessionID string
	Line      string
	Outcome   Outcome
	CreatedAt time.Time
}

// HistoryFilter narrows List. Zero fields match everything.
type HistoryFilter struct {
	SessionID string
	Outcome   *Outcome
	Since     *time.Time
	Limit     int
}

// NewSessionID returns a fresh identifier grouping the lines of one
// console run.
func NewSessionID() string {
	return uuid.NewString()
}

// Append records line and returns its id.
func (s *Store) Append(sessionID, line string, outcome Outcome) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO history (session_id, line, outcome_id, created_at) VALUES (?, ?, ?, ?)`,
		sessionID,
		line,
		int(outcome),
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		log.Error("store: append history failed: %v (session=%s)", err, sessionID)
		return 0, fmt.Errorf("append history: %w", err)
	}
	return res.LastInsertId()
}

// List returns matching entries, newest first.
func (s *Store) List(filter HistoryFilter) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.SessionID != "" {
		clauses = append(clauses, "session_id = ?")
		args = append(args, filter.SessionID)
	}
	if filter.Outcome != nil {
		clauses = append(clauses, "outcome_id = ?")
		args = append(args, int(*filter.Outcome))
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.RFC3339Nano))
	}

	var query strings.Builder
	query.WriteString(`SELECT id, session_id, line, outcome_id, created_at FROM history`)
	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY id DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query.String(), args...)
	if err != nil {
		log.Error("store: list history query failed: %v", err)
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var (
			e         Entry
			outcomeID int
			ts        string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &outcomeID, &ts); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse history time %q: %w", ts, err)
		}
		e.Outcome = Outcome(outcomeID)
		e.CreatedAt = t
		out = append(out, e)
	}

	return out, rows.Err()
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	return s.List(HistoryFilter{Limit: limit})
}

// Lines returns the text of up to limit recent entries, oldest first, the
// order a line editor replays them in.
func (s *Store) Lines(limit int) ([]string, error) {
	entries, err := s.Recent(limit)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[len(entries)-1-i] = e.Line
	}
	return lines, nil
}

// Prune deletes all but the newest keep entries and returns how many
// were removed.
func (s *Store) Prune(keep int) (int64, error) {
	res, err := s.db.Exec(
		`DELETE FROM history WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		log.Error("store: prune history failed: %v", err)
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return res.RowsAffected()
}
