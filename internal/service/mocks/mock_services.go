package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Process(ctx context.Context, ownerID int64, filename string, content []byte) (*service.ProcessResult, error) {
	args := m.Called(ctx, ownerID, filename, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessResult), args.Error(1)
}

func (m *MockDocumentService) History(ctx context.Context, ownerID int64) ([]model.DocumentWithFolders, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentWithFolders), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, ownerID, id int64) (*model.Document, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Image(ctx context.Context, ownerID, id int64) ([]byte, string, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockDocumentService) Search(ctx context.Context, ownerID int64, query, scope string) ([]model.DocumentWithFolders, error) {
	args := m.Called(ctx, ownerID, query, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentWithFolders), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, ownerID, id int64, filename, text string) error {
	args := m.Called(ctx, ownerID, id, filename, text)
	return args.Error(0)
}

func (m *MockDocumentService) Move(ctx context.Context, ownerID, id int64, folderID *int64) error {
	args := m.Called(ctx, ownerID, id, folderID)
	return args.Error(0)
}

func (m *MockDocumentService) SetFolders(ctx context.Context, ownerID, id int64, folderIDs []int64) ([]model.FolderRef, error) {
	args := m.Called(ctx, ownerID, id, folderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FolderRef), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, ownerID, id int64) (string, error) {
	args := m.Called(ctx, ownerID, id)
	return args.String(0), args.Error(1)
}

type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) Create(ctx context.Context, ownerID int64, name string) (*model.Folder, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) List(ctx context.Context, ownerID int64) ([]service.FolderInfo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.FolderInfo), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, ownerID, id int64) (*service.FolderDeleteResult, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FolderDeleteResult), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context, ownerID int64) (*service.Dashboard, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *MockAnalyticsService) UserSummary(ctx context.Context, user *model.User) (*service.Summary, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Summary), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, ownerID, id int64, format string) (*service.ExportResult, error) {
	args := m.Called(ctx, ownerID, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
