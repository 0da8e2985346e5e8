package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Entity state is deliberately not
// persisted; the database only holds small key/value records such as the
// current session user and the JWT signing secret.
const schema = `
CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
