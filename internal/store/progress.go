package store

import (
	"fmt"

	"github.com/ivanz/interq/internal/bank"
)

// Progress loads the user's full question_id -> correct mapping. The result
// is a fresh map on every call; callers own it.
func (s *Store) Progress(user string) (map[bank.QuestionID]bool, error) {
	rows, err := s.db.Query(
		"SELECT question_id, correct FROM progress WHERE user_name = ?", user,
	)
	if err != nil {
		return nil, fmt.Errorf("progress for %q: %w", user, err)
	}
	defer rows.Close()

	out := make(map[bank.QuestionID]bool)
	for rows.Next() {
		var id int
		var correct bool
		if err := rows.Scan(&id, &correct); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out[bank.QuestionID(id)] = correct
	}
	return out, rows.Err()
}

// SetProgress replaces the user's stored mapping with the given snapshot in
// a single transaction. The write blocks until committed; there is no
// batching and a failure propagates to the caller.
func (s *Store) SetProgress(user string, progress map[bank.QuestionID]bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set progress for %q: %w", user, err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO progress (user_name, question_id, correct) VALUES (?, ?, ?)
		ON CONFLICT (user_name, question_id) DO UPDATE SET correct = excluded.correct
	`)
	if err != nil {
		return fmt.Errorf("prepare progress upsert: %w", err)
	}
	defer stmt.Close()

	for id, correct := range progress {
		if _, err := stmt.Exec(user, int(id), correct); err != nil {
			return fmt.Errorf("upsert progress %d for %q: %w", id, user, err)
		}
	}
	return tx.Commit()
}
