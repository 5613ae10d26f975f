package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/repository"
)

type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(ctx context.Context, folder *model.Folder) (*model.Folder, error) {
	args := m.Called(ctx, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Folder, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) FindByOwner(ctx context.Context, ownerID, id int64) (*model.Folder, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) CountOwned(ctx context.Context, ownerID int64, ids []int64) (int, error) {
	args := m.Called(ctx, ownerID, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockFolderRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockFolderRepository) Delete(ctx context.Context, ownerID, id int64) (int, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Int(0), args.Error(1)
}

func (m *MockFolderRepository) Stats(ctx context.Context, ownerID int64) ([]repository.FolderStat, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FolderStat), args.Error(1)
}
