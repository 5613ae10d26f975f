package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/repository"
)

// FolderInfo is a folder together with how many documents point at it.
type FolderInfo struct {
	model.Folder
	DocumentCount int `json:"document_count"`
}

// FolderDeleteResult reports what a folder deletion touched.
type FolderDeleteResult struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DocumentsMoved int    `json:"documents_moved"`
}

// FolderService defines the use cases around folders.
type FolderService interface {
	// Create adds a folder owned by the given user.
	Create(ctx context.Context, ownerID int64, name string) (*model.Folder, error)

	// List returns the owner's folders, newest first, each with its
	// primary-pointer document count.
	List(ctx context.Context, ownerID int64) ([]FolderInfo, error)

	// Delete removes an owned folder. Documents pointing at it as their
	// primary folder are detached, not deleted.
	Delete(ctx context.Context, ownerID, id int64) (*FolderDeleteResult, error)
}

type folderService struct {
	repo repository.FolderRepository
}

// NewFolderService constructs a FolderService.
func NewFolderService(repo repository.FolderRepository) FolderService {
	return &folderService{repo: repo}
}

func (s *folderService) Create(ctx context.Context, ownerID int64, name string) (*model.Folder, error) {
	if err := validation.Validate(name, validation.Required, validation.Length(1, 255)); err != nil {
		return nil, fmt.Errorf("%w: folder name: %v", ErrValidation, err)
	}
	folder, err := s.repo.Create(ctx, &model.Folder{Name: name, OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return folder, nil
}

func (s *folderService) List(ctx context.Context, ownerID int64) ([]FolderInfo, error) {
	folders, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	stats, err := s.repo.Stats(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("folder stats: %w", err)
	}

	counts := make(map[int64]int, len(stats))
	for _, st := range stats {
		counts[st.FolderID] = st.Count
	}

	out := make([]FolderInfo, 0, len(folders))
	for _, f := range folders {
		out = append(out, FolderInfo{Folder: f, DocumentCount: counts[f.ID]})
	}
	return out, nil
}

func (s *folderService) Delete(ctx context.Context, ownerID, id int64) (*FolderDeleteResult, error) {
	folder, err := s.repo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find folder: %w", err)
	}

	moved, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete folder: %w", err)
	}
	return &FolderDeleteResult{ID: folder.ID, Name: folder.Name, DocumentsMoved: moved}, nil
}
