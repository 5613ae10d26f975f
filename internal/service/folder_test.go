package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/repository"
	repoMocks "github.com/chou-ng-coder/ocr-website/internal/repository/mocks"
)

func TestFolderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockFolderRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(f *model.Folder) bool {
			return f.Name == "Receipts" && f.OwnerID == 7
		})).Return(&model.Folder{ID: 1, Name: "Receipts", OwnerID: 7}, nil)

		svc := NewFolderService(mRepo)
		folder, err := svc.Create(ctx, 7, "Receipts")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), folder.ID)
	})

	t.Run("empty name", func(t *testing.T) {
		svc := NewFolderService(new(repoMocks.MockFolderRepository))
		_, err := svc.Create(ctx, 7, "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("name too long", func(t *testing.T) {
		svc := NewFolderService(new(repoMocks.MockFolderRepository))
		_, err := svc.Create(ctx, 7, strings.Repeat("x", 256))
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestFolderService_List(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockFolderRepository)
	mRepo.On("ListByOwner", ctx, int64(7)).
		Return([]model.Folder{{ID: 2, Name: "Receipts"}, {ID: 1, Name: "Work"}}, nil)
	mRepo.On("Stats", ctx, int64(7)).
		Return([]repository.FolderStat{
			{FolderID: 1, FolderName: "Work", Count: 4},
			{FolderID: 2, FolderName: "Receipts", Count: 0},
		}, nil)

	svc := NewFolderService(mRepo)
	out, err := svc.List(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, []FolderInfo{
		{Folder: model.Folder{ID: 2, Name: "Receipts"}, DocumentCount: 0},
		{Folder: model.Folder{ID: 1, Name: "Work"}, DocumentCount: 4},
	}, out)
}

func TestFolderService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("reports moved documents", func(t *testing.T) {
		mRepo := new(repoMocks.MockFolderRepository)
		mRepo.On("FindByOwner", ctx, int64(7), int64(2)).
			Return(&model.Folder{ID: 2, Name: "Receipts", OwnerID: 7}, nil)
		mRepo.On("Delete", ctx, int64(7), int64(2)).Return(3, nil)

		svc := NewFolderService(mRepo)
		res, err := svc.Delete(ctx, 7, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Receipts", res.Name)
		assert.Equal(t, 3, res.DocumentsMoved)
	})

	t.Run("not owned", func(t *testing.T) {
		mRepo := new(repoMocks.MockFolderRepository)
		mRepo.On("FindByOwner", ctx, int64(7), int64(2)).Return(nil, sql.ErrNoRows)

		svc := NewFolderService(mRepo)
		_, err := svc.Delete(ctx, 7, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
