package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stanza/internal/db"
	"github.com/alexanderramin/stanza/internal/phonetics"
)

// SQLitePronunciationRepo implements PronunciationRepo using a SQLite database.
type SQLitePronunciationRepo struct {
	db db.DBTX
}

// NewSQLitePronunciationRepo creates a new SQLitePronunciationRepo.
func NewSQLitePronunciationRepo(conn db.DBTX) *SQLitePronunciationRepo {
	return &SQLitePronunciationRepo{db: conn}
}

// ReplaceAll deletes every stored pronunciation and inserts entries.
// Repeated words become numbered variants in entry order.
func (r *SQLitePronunciationRepo) ReplaceAll(ctx context.Context, entries []phonetics.Entry) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pronunciations`); err != nil {
		return fmt.Errorf("clearing pronunciations: %w", err)
	}

	const cols = 4
	variants := make(map[string]int)
	batch := make([]any, 0, maxBatchRows*cols)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		query := `INSERT OR REPLACE INTO pronunciations (word, variant, phones, rhyming_part) VALUES ` +
			placeholders(len(batch)/cols, cols)
		if _, err := r.db.ExecContext(ctx, query, batch...); err != nil {
			return fmt.Errorf("inserting pronunciations: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	for _, e := range entries {
		word := phonetics.NormalizeWord(e.Word)
		if word == "" || e.Phones == "" {
			continue
		}
		v := variants[word]
		variants[word] = v + 1
		batch = append(batch, word, v, e.Phones, phonetics.RhymingPart(e.Phones))
		if len(batch)/cols >= maxBatchRows {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

// PhonesForWord returns the variants of word in variant order, or nil.
func (r *SQLitePronunciationRepo) PhonesForWord(ctx context.Context, word string) ([]string, error) {
	return r.queryStrings(ctx,
		`SELECT phones FROM pronunciations WHERE word = ? ORDER BY variant`,
		phonetics.NormalizeWord(word))
}

// WordsByRhymingPart returns the distinct words with a variant ending in
// part, sorted.
func (r *SQLitePronunciationRepo) WordsByRhymingPart(ctx context.Context, part string) ([]string, error) {
	return r.queryStrings(ctx,
		`SELECT DISTINCT word FROM pronunciations WHERE rhyming_part = ? ORDER BY word`, part)
}

// Count is the number of distinct words stored.
func (r *SQLitePronunciationRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT word) FROM pronunciations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting pronunciations: %w", err)
	}
	return n, nil
}

func (r *SQLitePronunciationRepo) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying pronunciations: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning pronunciation: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
