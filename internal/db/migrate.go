package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/stanza/internal/phonetics"
)

// Migrate runs all schema migrations. Statements are idempotent, so it is
// safe to call on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillRhymingParts(db); err != nil {
		return fmt.Errorf("backfilling rhyming parts: %w", err)
	}
	return nil
}

// migrateBackfillRhymingParts fills rhyming_part for rows written before
// the column existed. The rhyming part of a pronunciation is computed in Go,
// so rows are read and updated one by one.
func migrateBackfillRhymingParts(db *sql.DB) error {
	ctx := context.Background()
	rows, err := db.QueryContext(ctx,
		`SELECT word, variant, phones FROM pronunciations WHERE rhyming_part = ''`)
	if err != nil {
		return fmt.Errorf("listing pronunciations: %w", err)
	}
	type pending struct {
		word    string
		variant int
		phones  string
	}
	var todo []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.word, &p.variant, &p.phones); err != nil {
			rows.Close()
			return err
		}
		todo = append(todo, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, p := range todo {
		if _, err := db.ExecContext(ctx,
			`UPDATE pronunciations SET rhyming_part = ? WHERE word = ? AND variant = ?`,
			phonetics.RhymingPart(p.phones), p.word, p.variant); err != nil {
			return fmt.Errorf("updating %s(%d): %w", p.word, p.variant, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS vocabulary_words (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		category  TEXT NOT NULL CHECK(category <> ''),
		word      TEXT NOT NULL CHECK(word <> ''),
		UNIQUE(category, word)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_vocabulary_words_category ON vocabulary_words(category)`,

	`CREATE TABLE IF NOT EXISTS pronunciations (
		word     TEXT NOT NULL,
		variant  INTEGER NOT NULL DEFAULT 0,
		phones   TEXT NOT NULL,
		PRIMARY KEY (word, variant)
	)`,

	`ALTER TABLE pronunciations ADD COLUMN rhyming_part TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_pronunciations_rhyming_part ON pronunciations(rhyming_part)`,

	`CREATE TABLE IF NOT EXISTS lexicon_imports (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL CHECK(kind IN ('vocabulary','dictionary')),
		source      TEXT NOT NULL DEFAULT '',
		entries     INTEGER NOT NULL DEFAULT 0,
		imported_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_lexicon_imports_imported ON lexicon_imports(imported_at)`,
}
