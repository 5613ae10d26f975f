package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/repository"
)

// FolderPostgres is a PostgreSQL implementation of repository.FolderRepository.
type FolderPostgres struct {
	db *sql.DB
}

// NewFolderPostgres creates a new FolderPostgres repository.
func NewFolderPostgres(db *sql.DB) *FolderPostgres {
	return &FolderPostgres{db: db}
}

var _ repository.FolderRepository = (*FolderPostgres)(nil)

// Create inserts a new folder row and returns the stored record.
func (r *FolderPostgres) Create(ctx context.Context, folder *model.Folder) (*model.Folder, error) {
	const q = `
		INSERT INTO folders (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, name, owner_id, created_at
	`
	row := r.db.QueryRowContext(ctx, q, folder.Name, folder.OwnerID)
	var out model.Folder
	if err := row.Scan(&out.ID, &out.Name, &out.OwnerID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByOwner returns all folders owned by ownerID.
func (r *FolderPostgres) ListByOwner(ctx context.Context, ownerID int64) ([]model.Folder, error) {
	const q = `
		SELECT id, name, owner_id, created_at
		FROM folders
		WHERE owner_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Folder, 0)
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.OwnerID, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByOwner fetches a folder by id scoped to its owner.
func (r *FolderPostgres) FindByOwner(ctx context.Context, ownerID, id int64) (*model.Folder, error) {
	const q = `
		SELECT id, name, owner_id, created_at
		FROM folders
		WHERE id = $1 AND owner_id = $2
	`
	row := r.db.QueryRowContext(ctx, q, id, ownerID)
	var f model.Folder
	if err := row.Scan(&f.ID, &f.Name, &f.OwnerID, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// CountOwned reports how many of the given folder ids belong to ownerID.
func (r *FolderPostgres) CountOwned(ctx context.Context, ownerID int64, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := fmt.Sprintf(
		`SELECT COUNT(*) FROM folders WHERE owner_id = $1 AND id IN (%s)`,
		placeholders(len(ids), 2),
	)
	args := append([]any{ownerID}, int64Args(ids)...)
	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountByOwner returns the number of folders owned by ownerID.
func (r *FolderPostgres) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM folders WHERE owner_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, ownerID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Delete removes a folder after detaching the primary folder pointer from
// every document that references it. Both steps run in one transaction; join
// rows in document_folders are removed by ON DELETE CASCADE.
func (r *FolderPostgres) Delete(ctx context.Context, ownerID, id int64) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var folderID int64
	const qFind = `SELECT id FROM folders WHERE id = $1 AND owner_id = $2`
	if err := tx.QueryRowContext(ctx, qFind, id, ownerID).Scan(&folderID); err != nil {
		return 0, err
	}

	const qDetach = `UPDATE ocr_results SET folder_id = NULL WHERE folder_id = $1`
	res, err := tx.ExecContext(ctx, qDetach, id)
	if err != nil {
		return 0, err
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	const qDelete = `DELETE FROM folders WHERE id = $1`
	if _, err := tx.ExecContext(ctx, qDelete, id); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(moved), nil
}

// Stats returns primary-pointer document counts per folder, keeping folders
// with zero documents via the outer join.
func (r *FolderPostgres) Stats(ctx context.Context, ownerID int64) ([]repository.FolderStat, error) {
	const q = `
		SELECT f.id, f.name, COUNT(d.id)
		FROM folders f
		LEFT JOIN ocr_results d ON d.folder_id = f.id
		WHERE f.owner_id = $1
		GROUP BY f.id, f.name
		ORDER BY f.id
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]repository.FolderStat, 0)
	for rows.Next() {
		var s repository.FolderStat
		if err := rows.Scan(&s.FolderID, &s.FolderName, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
