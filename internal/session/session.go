package session

import (
	"database/sql"
	"fmt"
)

// currentUserKey is the fixed settings key holding the persisted session.
const currentUserKey = "current_user"

// Store persists the current session's user id in the settings table so
// a restarted process can restore who was logged in. This is the only
// entity-adjacent state that survives a restart.
type Store struct {
	db *sql.DB
}

// NewStore creates a session store on an opened database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save records the user id under the fixed key, replacing any previous
// record.
func (s *Store) Save(userID string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		currentUserKey, userID,
	)
	if err != nil {
		return fmt.Errorf("saving session record: %w", err)
	}
	return nil
}

// Load returns the persisted user id, or "" if none is recorded.
func (s *Store) Load() (string, error) {
	var userID string
	err := s.db.QueryRow(
		`SELECT value FROM settings WHERE key = ?`, currentUserKey,
	).Scan(&userID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading session record: %w", err)
	}
	return userID, nil
}

// Clear removes the persisted record. Clearing an absent record is a
// no-op.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, currentUserKey)
	if err != nil {
		return fmt.Errorf("clearing session record: %w", err)
	}
	return nil
}
