package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, image_filename, text, owner_id, folder_id, storage_path, image_size, content_type, created_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Filename,
		&d.Text,
		&d.OwnerID,
		&d.FolderID,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO ocr_results (image_filename, text, owner_id, storage_path, image_size, content_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.Filename,
		doc.Text,
		doc.OwnerID,
		doc.StoragePath,
		doc.Size,
		doc.ContentType,
	)
	return scanDocument(row)
}

// FindByOwner fetches a single document by id scoped to its owner.
func (r *DocumentPostgres) FindByOwner(ctx context.Context, ownerID, id int64) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM ocr_results
		WHERE id = $1 AND owner_id = $2
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id, ownerID))
}

// ListByOwner returns all documents owned by ownerID, newest id first.
func (r *DocumentPostgres) ListByOwner(ctx context.Context, ownerID int64) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM ocr_results
		WHERE owner_id = $1
		ORDER BY id DESC
	`
	return r.queryDocuments(ctx, q, ownerID)
}

// Search matches the query as a case-insensitive substring against the fields
// selected by scope, OR-combined for ScopeAll, newest id first.
func (r *DocumentPostgres) Search(ctx context.Context, ownerID int64, query string, scope repository.SearchScope) ([]model.Document, error) {
	var cond string
	switch scope {
	case repository.ScopeFilename:
		cond = `image_filename ILIKE $2`
	case repository.ScopeContent:
		cond = `text ILIKE $2`
	default:
		cond = `(image_filename ILIKE $2 OR text ILIKE $2)`
	}
	q := `
		SELECT ` + documentColumns + `
		FROM ocr_results
		WHERE owner_id = $1 AND ` + cond + `
		ORDER BY id DESC
	`
	return r.queryDocuments(ctx, q, ownerID, "%"+query+"%")
}

// FoldersFor returns the association folder sets for the given document ids.
func (r *DocumentPostgres) FoldersFor(ctx context.Context, docIDs []int64) (map[int64][]model.FolderRef, error) {
	out := make(map[int64][]model.FolderRef)
	if len(docIDs) == 0 {
		return out, nil
	}
	q := fmt.Sprintf(`
		SELECT df.document_id, f.id, f.name
		FROM document_folders df
		JOIN folders f ON f.id = df.folder_id
		WHERE df.document_id IN (%s)
		ORDER BY df.document_id, f.id
	`, placeholders(len(docIDs), 1))
	rows, err := r.db.QueryContext(ctx, q, int64Args(docIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var docID int64
		var ref model.FolderRef
		if err := rows.Scan(&docID, &ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		out[docID] = append(out[docID], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites filename and text for an owned document.
func (r *DocumentPostgres) Update(ctx context.Context, ownerID, id int64, filename, text string) error {
	const q = `
		UPDATE ocr_results
		SET image_filename = $1, text = $2
		WHERE id = $3 AND owner_id = $4
	`
	res, err := r.db.ExecContext(ctx, q, filename, text, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Move sets or clears the primary folder pointer for an owned document.
func (r *DocumentPostgres) Move(ctx context.Context, ownerID, id int64, folderID *int64) error {
	const q = `
		UPDATE ocr_results
		SET folder_id = $1
		WHERE id = $2 AND owner_id = $3
	`
	res, err := r.db.ExecContext(ctx, q, folderID, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ReplaceFolders swaps the document's entire association set in one transaction.
func (r *DocumentPostgres) ReplaceFolders(ctx context.Context, docID int64, folderIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const qClear = `DELETE FROM document_folders WHERE document_id = $1`
	if _, err := tx.ExecContext(ctx, qClear, docID); err != nil {
		return err
	}

	const qInsert = `INSERT INTO document_folders (document_id, folder_id) VALUES ($1, $2)`
	for _, fid := range folderIDs {
		if _, err := tx.ExecContext(ctx, qInsert, docID, fid); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes an owned document row. Join rows go by referential cascade.
func (r *DocumentPostgres) Delete(ctx context.Context, ownerID, id int64) error {
	const q = `DELETE FROM ocr_results WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Recent returns the owner's most recent documents, newest id first.
func (r *DocumentPostgres) Recent(ctx context.Context, ownerID int64, limit int) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM ocr_results
		WHERE owner_id = $1
		ORDER BY id DESC
		LIMIT $2
	`
	return r.queryDocuments(ctx, q, ownerID, limit)
}

// CountByOwner returns the number of documents owned by ownerID.
func (r *DocumentPostgres) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM ocr_results WHERE owner_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, ownerID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// TextStats returns total and average extracted-text lengths for the owner.
func (r *DocumentPostgres) TextStats(ctx context.Context, ownerID int64) (repository.TextStats, error) {
	const q = `
		SELECT COALESCE(SUM(LENGTH(text)), 0), COALESCE(AVG(LENGTH(text)), 0)::BIGINT
		FROM ocr_results
		WHERE owner_id = $1
	`
	var st repository.TextStats
	if err := r.db.QueryRowContext(ctx, q, ownerID).Scan(&st.TotalChars, &st.AvgChars); err != nil {
		return repository.TextStats{}, err
	}
	return st, nil
}

// Filenames returns all stored filenames for the owner.
func (r *DocumentPostgres) Filenames(ctx context.Context, ownerID int64) ([]string, error) {
	const q = `SELECT image_filename FROM ocr_results WHERE owner_id = $1`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *DocumentPostgres) queryDocuments(ctx context.Context, q string, args ...any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// requireRow translates a zero-row mutation into sql.ErrNoRows so callers can
// treat missing and not-owned rows uniformly.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
