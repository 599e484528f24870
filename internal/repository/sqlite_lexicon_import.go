package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/stanza/internal/db"
	"github.com/alexanderramin/stanza/internal/domain"
)

// SQLiteLexiconImportRepo implements LexiconImportRepo using a SQLite database.
type SQLiteLexiconImportRepo struct {
	db db.DBTX
}

// NewSQLiteLexiconImportRepo creates a new SQLiteLexiconImportRepo.
func NewSQLiteLexiconImportRepo(conn db.DBTX) *SQLiteLexiconImportRepo {
	return &SQLiteLexiconImportRepo{db: conn}
}

const lexiconImportColumns = `id, kind, source, entries, imported_at`

func (r *SQLiteLexiconImportRepo) Create(ctx context.Context, imp *domain.LexiconImport) error {
	query := `INSERT INTO lexicon_imports (` + lexiconImportColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		imp.ID,
		string(imp.Kind),
		imp.Source,
		imp.Entries,
		imp.ImportedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting lexicon import: %w", err)
	}
	return nil
}

func (r *SQLiteLexiconImportRepo) GetByID(ctx context.Context, id string) (*domain.LexiconImport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+lexiconImportColumns+` FROM lexicon_imports WHERE id = ?`, id)
	return scanLexiconImport(row)
}

func (r *SQLiteLexiconImportRepo) Latest(ctx context.Context, kind domain.LexiconKind) (*domain.LexiconImport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+lexiconImportColumns+` FROM lexicon_imports WHERE kind = ?
		ORDER BY imported_at DESC, rowid DESC LIMIT 1`, string(kind))
	return scanLexiconImport(row)
}

func (r *SQLiteLexiconImportRepo) ListRecent(ctx context.Context, limit int) ([]*domain.LexiconImport, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+lexiconImportColumns+` FROM lexicon_imports
		ORDER BY imported_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying lexicon imports: %w", err)
	}
	defer rows.Close()

	var out []*domain.LexiconImport
	for rows.Next() {
		imp, err := scanLexiconImport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, imp)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLexiconImport(row rowScanner) (*domain.LexiconImport, error) {
	var (
		imp        domain.LexiconImport
		kind       string
		importedAt string
	)
	if err := row.Scan(&imp.ID, &kind, &imp.Source, &imp.Entries, &importedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lexicon import: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning lexicon import: %w", err)
	}
	imp.Kind = domain.LexiconKind(kind)
	imp.ImportedAt = parseTime(importedAt)
	return &imp, nil
}
