package store

import (
	"fmt"
	"time"

	"github.com/ivanz/interq/internal/session"
)

// AppendSession records a finished session. Implements session.SessionLog.
func (s *Store) AppendSession(rec session.SessionRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, user_name, started_at, ended_at, answered, correct)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.User,
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.EndedAt.UTC().Format(time.RFC3339),
		rec.Answered, rec.Correct,
	)
	if err != nil {
		return fmt.Errorf("append session %s: %w", rec.ID, err)
	}
	return nil
}

// Sessions returns the user's finished sessions, most recent first.
func (s *Store) Sessions(user string) ([]session.SessionRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, user_name, started_at, ended_at, answered, correct
		FROM sessions WHERE user_name = ? ORDER BY started_at DESC`, user)
	if err != nil {
		return nil, fmt.Errorf("sessions for %q: %w", user, err)
	}
	defer rows.Close()

	var out []session.SessionRecord
	for rows.Next() {
		var rec session.SessionRecord
		var started, ended string
		if err := rows.Scan(&rec.ID, &rec.User, &started, &ended, &rec.Answered, &rec.Correct); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", started, err)
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339, ended); err != nil {
			return nil, fmt.Errorf("parse ended_at %q: %w", ended, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SessionCount returns how many sessions the user has finished.
func (s *Store) SessionCount(user string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sessions WHERE user_name = ?", user,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("session count for %q: %w", user, err)
	}
	return n, nil
}
