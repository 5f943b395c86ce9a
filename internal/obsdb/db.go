// Package obsdb reads a run's sqlite pointing log and stores generated
// run reports back into it.
package obsdb

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// Open opens an existing pointing log. The file must already exist:
// opening a missing path would otherwise silently create an empty
// database.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("pointing log %q: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pointing log %q: %w", path, err)
	}

	return &DB{db}, nil
}
