package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var schemaFS embed.FS

// MigrateUp applies the schema scripts that create the tasks and
// records tables. Applying them to an up-to-date database is a no-op.
func MigrateUp(db *sql.DB) error { return runSchemaScripts(db, ".up.sql") }

// MigrateDown drops the tasks and records tables.
func MigrateDown(db *sql.DB) error { return runSchemaScripts(db, ".down.sql") }

// resetSchema tears the schema down and rebuilds it empty. Logged data
// does not survive a reset.
func resetSchema(db *sql.DB) error {
	if err := MigrateDown(db); err != nil {
		return err
	}
	return MigrateUp(db)
}

func runSchemaScripts(db *sql.DB, suffix string) error {
	names, err := fs.Glob(schemaFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob schema scripts: %w", err)
	}
	// Script files carry a numeric prefix; apply them in order.
	sort.Strings(names)
	for _, name := range names {
		script, err := schemaFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}
