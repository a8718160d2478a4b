package store

import (
	"database/sql"
	"fmt"
	"time"
)

// dateLayout is the stored form of the last-enter date. Only the day
// matters for the visit message.
const dateLayout = "2006-01-02"

// CreateUser inserts a new user with zeroed statistics. Name validation
// happens before this call; the store only enforces uniqueness.
func (s *Store) CreateUser(name string) error {
	_, err := s.db.Exec("INSERT INTO users (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("create user %q: %w", name, err)
	}
	return nil
}

// ListUsers returns all user names in creation order.
func (s *Store) ListUsers() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM users ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// UserExists reports whether a user with the given name exists. Names are
// case-sensitive.
func (s *Store) UserExists(name string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM users WHERE name = ?", name).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user %q: %w", name, err)
	}
	return true, nil
}

// DeleteUser removes the user and all dependent rows.
func (s *Store) DeleteUser(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete user %q: %w", name, err)
	}
	defer tx.Rollback()

	// ON DELETE CASCADE covers these, but the explicit deletes keep the
	// store correct when foreign keys are off (e.g. a hand-copied DB).
	if _, err := tx.Exec("DELETE FROM progress WHERE user_name = ?", name); err != nil {
		return fmt.Errorf("delete progress for %q: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM sessions WHERE user_name = ?", name); err != nil {
		return fmt.Errorf("delete sessions for %q: %w", name, err)
	}

	res, err := tx.Exec("DELETE FROM users WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete user %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// LastEnter returns the user's last visit date, or nil when the user has
// never started a session.
func (s *Store) LastEnter(name string) (*time.Time, error) {
	var raw sql.NullString
	err := s.db.QueryRow("SELECT last_enter FROM users WHERE name = ?", name).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("last enter for %q: %w", name, err)
	}
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw.String)
	if err != nil {
		return nil, fmt.Errorf("parse last enter %q: %w", raw.String, err)
	}
	return &t, nil
}

// SetLastEnter stores the user's visit date (day precision).
func (s *Store) SetLastEnter(name string, day time.Time) error {
	res, err := s.db.Exec(
		"UPDATE users SET last_enter = ? WHERE name = ?",
		day.Format(dateLayout), name,
	)
	if err != nil {
		return fmt.Errorf("set last enter for %q: %w", name, err)
	}
	return requireUser(res)
}

// Duration returns the user's cumulative interview time in seconds.
func (s *Store) Duration(name string) (int64, error) {
	var secs int64
	err := s.db.QueryRow("SELECT duration_secs FROM users WHERE name = ?", name).Scan(&secs)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("duration for %q: %w", name, err)
	}
	return secs, nil
}

// SetDuration stores the user's cumulative interview time in seconds.
func (s *Store) SetDuration(name string, secs int64) error {
	res, err := s.db.Exec(
		"UPDATE users SET duration_secs = ? WHERE name = ?",
		secs, name,
	)
	if err != nil {
		return fmt.Errorf("set duration for %q: %w", name, err)
	}
	return requireUser(res)
}

func requireUser(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
