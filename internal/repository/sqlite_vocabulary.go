package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stanza/internal/db"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/vocabulary"
)

// SQLiteVocabularyRepo implements VocabularyRepo using a SQLite database.
type SQLiteVocabularyRepo struct {
	db db.DBTX
}

// NewSQLiteVocabularyRepo creates a new SQLiteVocabularyRepo.
func NewSQLiteVocabularyRepo(conn db.DBTX) *SQLiteVocabularyRepo {
	return &SQLiteVocabularyRepo{db: conn}
}

// ReplaceAll deletes the stored words and inserts src. Run it inside a
// UnitOfWork so a failed import leaves the previous vocabulary in place.
func (r *SQLiteVocabularyRepo) ReplaceAll(ctx context.Context, src *vocabulary.Source) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vocabulary_words`); err != nil {
		return fmt.Errorf("clearing vocabulary: %w", err)
	}

	var batch []any
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		query := `INSERT INTO vocabulary_words (category, word) VALUES ` + placeholders(len(batch)/2, 2)
		if _, err := r.db.ExecContext(ctx, query, batch...); err != nil {
			return fmt.Errorf("inserting vocabulary words: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	for _, cw := range src.Categories() {
		for _, w := range cw.Words {
			batch = append(batch, string(cw.Category), w)
			if len(batch)/2 >= maxBatchRows {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
	return flush()
}

func (r *SQLiteVocabularyRepo) Load(ctx context.Context) (*vocabulary.Source, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, word FROM vocabulary_words ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying vocabulary: %w", err)
	}
	defer rows.Close()

	src := vocabulary.NewSource()
	for rows.Next() {
		var category, word string
		if err := rows.Scan(&category, &word); err != nil {
			return nil, fmt.Errorf("scanning vocabulary word: %w", err)
		}
		src.Add(domain.Category(category), word)
	}
	return src, rows.Err()
}

func (r *SQLiteVocabularyRepo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM vocabulary_words GROUP BY category ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("counting vocabulary: %w", err)
	}
	defer rows.Close()

	var out []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		var category string
		if err := rows.Scan(&category, &c.Words); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		c.Category = domain.Category(category)
		out = append(out, c)
	}
	return out, rows.Err()
}
