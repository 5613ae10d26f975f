package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/repository"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindByOwner(ctx context.Context, ownerID, id int64) (*model.Document, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Document, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentRepository) Search(ctx context.Context, ownerID int64, query string, scope repository.SearchScope) ([]model.Document, error) {
	args := m.Called(ctx, ownerID, query, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentRepository) FoldersFor(ctx context.Context, docIDs []int64) (map[int64][]model.FolderRef, error) {
	args := m.Called(ctx, docIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]model.FolderRef), args.Error(1)
}

func (m *MockDocumentRepository) Update(ctx context.Context, ownerID, id int64, filename, text string) error {
	args := m.Called(ctx, ownerID, id, filename, text)
	return args.Error(0)
}

func (m *MockDocumentRepository) Move(ctx context.Context, ownerID, id int64, folderID *int64) error {
	args := m.Called(ctx, ownerID, id, folderID)
	return args.Error(0)
}

func (m *MockDocumentRepository) ReplaceFolders(ctx context.Context, docID int64, folderIDs []int64) error {
	args := m.Called(ctx, docID, folderIDs)
	return args.Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, ownerID, id int64) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) Recent(ctx context.Context, ownerID int64, limit int) ([]model.Document, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockDocumentRepository) TextStats(ctx context.Context, ownerID int64) (repository.TextStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(repository.TextStats), args.Error(1)
}

func (m *MockDocumentRepository) Filenames(ctx context.Context, ownerID int64) ([]string, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
