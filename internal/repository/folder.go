package repository

import (
	"context"

	"github.com/chou-ng-coder/ocr-website/internal/model"
)

// FolderRepository defines data access for folders.
// Every query is scoped to an owner; rows belonging to other owners are
// invisible at this layer.
type FolderRepository interface {
	// Create inserts a new folder row and returns the stored record.
	Create(ctx context.Context, folder *model.Folder) (*model.Folder, error)

	// ListByOwner returns all folders owned by ownerID.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Folder, error)

	// FindByOwner returns a folder by id when owned by ownerID.
	// Returns sql.ErrNoRows when absent or owned by someone else.
	FindByOwner(ctx context.Context, ownerID, id int64) (*model.Folder, error)

	// CountOwned reports how many of the given folder ids are owned by ownerID.
	CountOwned(ctx context.Context, ownerID int64, ids []int64) (int, error)

	// CountByOwner returns the number of folders owned by ownerID.
	CountByOwner(ctx context.Context, ownerID int64) (int, error)

	// Delete removes a folder in one transaction: documents pointing to it as
	// their primary folder are detached (folder_id set to NULL) and the join
	// rows are removed by referential cascade. Returns the number of documents
	// detached, or sql.ErrNoRows when the folder is absent or not owned.
	Delete(ctx context.Context, ownerID, id int64) (documentsMoved int, err error)

	// Stats returns the per-folder primary-pointer document counts for
	// ownerID, including folders that hold zero documents.
	Stats(ctx context.Context, ownerID int64) ([]FolderStat, error)
}
