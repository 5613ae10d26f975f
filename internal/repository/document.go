package repository

import (
	"context"

	"github.com/chou-ng-coder/ocr-website/internal/model"
)

// DocumentRepository defines data access for OCR result rows using SQL only.
// All reads and mutations are scoped to an owner; not-found and not-owned are
// indistinguishable (both surface as sql.ErrNoRows).
type DocumentRepository interface {
	// Create inserts a new document row and returns the stored record.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByOwner returns a document by id when owned by ownerID.
	FindByOwner(ctx context.Context, ownerID, id int64) (*model.Document, error)

	// ListByOwner returns all documents owned by ownerID, newest id first.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Document, error)

	// Search returns the owner's documents whose filename and/or text contain
	// the query as a case-insensitive substring, newest id first. Scope
	// selects the matched fields; ScopeAll uses OR semantics.
	Search(ctx context.Context, ownerID int64, query string, scope SearchScope) ([]model.Document, error)

	// FoldersFor returns the association folder sets for the given document
	// ids, keyed by document id. Documents with no associations are absent
	// from the map.
	FoldersFor(ctx context.Context, docIDs []int64) (map[int64][]model.FolderRef, error)

	// Update overwrites filename and text. Returns sql.ErrNoRows when the
	// document is absent or not owned.
	Update(ctx context.Context, ownerID, id int64, filename, text string) error

	// Move sets the primary folder pointer (nil detaches). Folder ownership is
	// checked by the caller. Returns sql.ErrNoRows when the document is absent
	// or not owned.
	Move(ctx context.Context, ownerID, id int64, folderID *int64) error

	// ReplaceFolders replaces the entire many-to-many association set for a
	// document inside one transaction. Folder ownership is checked by the
	// caller. Passing an empty set clears all associations.
	ReplaceFolders(ctx context.Context, docID int64, folderIDs []int64) error

	// Delete removes a document row. Returns sql.ErrNoRows when absent or not
	// owned.
	Delete(ctx context.Context, ownerID, id int64) error

	// Recent returns the owner's most recent documents, newest id first.
	Recent(ctx context.Context, ownerID int64, limit int) ([]model.Document, error)

	// CountByOwner returns the number of documents owned by ownerID.
	CountByOwner(ctx context.Context, ownerID int64) (int, error)

	// TextStats returns the total and average extracted-text length over the
	// owner's documents. Both are zero when the owner has no documents.
	TextStats(ctx context.Context, ownerID int64) (TextStats, error)

	// Filenames returns all stored filenames for the owner.
	Filenames(ctx context.Context, ownerID int64) ([]string, error)
}
