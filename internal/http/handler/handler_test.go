package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chou-ng-coder/ocr-website/internal/http/middleware"
	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/service"
	serviceMocks "github.com/chou-ng-coder/ocr-website/internal/service/mocks"
)

var testUser = &model.User{ID: 7, Username: "alice"}

// withUser injects the authenticated account the way middleware.Authenticate
// would, without going through token resolution.
func withUser(user *model.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserLocalKey, user)
		return c.Next()
	}
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		decodeBody(t, resp, &body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func formRequest(target string, fields url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(fields.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func TestSignup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAuthService)
		mockSvc.On("Signup", mock.Anything, "alice", "s3cret1").
			Return(&model.User{ID: 1, Username: "alice"}, nil)

		app := fiber.New()
		app.Post("/signup", Signup(mockSvc))

		resp, _ := app.Test(formRequest("/signup", url.Values{"username": {"alice"}, "password": {"s3cret1"}}))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "alice", body["username"])
	})

	t.Run("validation error", func(t *testing.T) {
		app := fiber.New()
		app.Post("/signup", Signup(new(serviceMocks.MockAuthService)))

		resp, _ := app.Test(formRequest("/signup", url.Values{"username": {"al"}, "password": {"s3cret1"}}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAuthService)
		mockSvc.On("Signup", mock.Anything, "alice", "s3cret1").
			Return(nil, service.ErrConflict)

		app := fiber.New()
		app.Post("/signup", Signup(mockSvc))

		resp, _ := app.Test(formRequest("/signup", url.Values{"username": {"alice"}, "password": {"s3cret1"}}))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body errorPayload
		decodeBody(t, resp, &body)
		assert.Equal(t, "CONFLICT", body.Error.Code)
	})
}

func TestIssueToken(t *testing.T) {
	t.Run("issues bearer token", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAuthService)
		mockSvc.On("Login", mock.Anything, "alice", "s3cret1").Return("signed-token", nil)

		app := fiber.New()
		app.Post("/token", IssueToken(mockSvc))

		resp, _ := app.Test(formRequest("/token", url.Values{"username": {"alice"}, "password": {"s3cret1"}}))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "signed-token", body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAuthService)
		mockSvc.On("Login", mock.Anything, "alice", "wrong").
			Return("", service.ErrUnauthorized)

		app := fiber.New()
		app.Post("/token", IssueToken(mockSvc))

		resp, _ := app.Test(formRequest("/token", url.Values{"username": {"alice"}, "password": {"wrong"}}))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
	})
}

func multipartUpload(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/ocr", &buf)
	req.Header.Set(fiber.HeaderContentType, mw.FormDataContentType())
	return req
}

func TestUploadOCR(t *testing.T) {
	newApp := func(mockSvc *serviceMocks.MockDocumentService) *fiber.App {
		app := fiber.New()
		app.Post("/ocr", withUser(testUser), UploadOCR(mockSvc))
		return app
	}

	t.Run("created", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Process", mock.Anything, int64(7), "receipt.png", []byte("imagebytes")).
			Return(&service.ProcessResult{ID: 3, Filename: "receipt.png", Text: "hello", TextLength: 5}, nil)

		resp, _ := newApp(mockSvc).Test(multipartUpload(t, "file", "receipt.png", []byte("imagebytes")))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "hello", body["extracted_text"])
		assert.Equal(t, float64(5), body["text_length"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("file missing", func(t *testing.T) {
		resp, _ := newApp(new(serviceMocks.MockDocumentService)).
			Test(multipartUpload(t, "not-file", "x.png", []byte("y")))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("file too large", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Process", mock.Anything, int64(7), "big.png", mock.Anything).
			Return(nil, service.ErrFileTooLarge)

		resp, _ := newApp(mockSvc).Test(multipartUpload(t, "file", "big.png", []byte("zzz")))
		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run("processing failed", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Process", mock.Anything, int64(7), "scan.png", mock.Anything).
			Return(nil, service.ErrProcessingFailed)

		resp, _ := newApp(mockSvc).Test(multipartUpload(t, "file", "scan.png", []byte("zzz")))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var body errorPayload
		decodeBody(t, resp, &body)
		assert.Equal(t, "PROCESSING_FAILED", body.Error.Code)
	})
}

func TestHistory(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	mockSvc.On("History", mock.Anything, int64(7)).
		Return([]model.DocumentWithFolders{
			{Document: model.Document{ID: 1, Filename: "a.png"}, Folders: []model.FolderRef{}},
			{Document: model.Document{ID: 2, Filename: "b.png"}, Folders: []model.FolderRef{{ID: 4, Name: "Receipts"}}},
		}, nil)

	app := fiber.New()
	app.Get("/ocr/history", withUser(testUser), History(mockSvc))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/ocr/history", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["results"], 2)
}

func TestUpdateDocument(t *testing.T) {
	newApp := func(mockSvc *serviceMocks.MockDocumentService) *fiber.App {
		app := fiber.New()
		app.Put("/ocr/:id/update", withUser(testUser), UpdateDocument(mockSvc))
		return app
	}
	jsonReq := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, "/ocr/3/update", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return req
	}

	t.Run("updated", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Update", mock.Anything, int64(7), int64(3), "renamed.png", "new body").Return(nil)

		resp, _ := newApp(mockSvc).Test(jsonReq(`{"filename":"renamed.png","text":"new body"}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Document updated successfully", body["msg"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing filename", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)

		resp, _ := newApp(mockSvc).Test(jsonReq(`{"filename":"","text":"new body"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		decodeBody(t, resp, &body)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		mockSvc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not owned", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Update", mock.Anything, int64(7), int64(3), "renamed.png", "").
			Return(service.ErrNotFound)

		resp, _ := newApp(mockSvc).Test(jsonReq(`{"filename":"renamed.png","text":""}`))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetDocument(t *testing.T) {
	newApp := func(mockSvc *serviceMocks.MockDocumentService) *fiber.App {
		app := fiber.New()
		app.Get("/ocr/:id", withUser(testUser), GetDocument(mockSvc))
		return app
	}

	t.Run("found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Get", mock.Anything, int64(7), int64(3)).
			Return(&model.Document{ID: 3, Filename: "receipt.png", Text: "hello", StoragePath: "images/k.png"}, nil)

		resp, _ := newApp(mockSvc).Test(httptest.NewRequest(http.MethodGet, "/ocr/3", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, true, body["has_image"])
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Get", mock.Anything, int64(7), int64(3)).Return(nil, service.ErrNotFound)

		resp, _ := newApp(mockSvc).Test(httptest.NewRequest(http.MethodGet, "/ocr/3", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)

		resp, _ := newApp(mockSvc).Test(httptest.NewRequest(http.MethodGet, "/ocr/abc", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		decodeBody(t, resp, &body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
		mockSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative id", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)

		resp, _ := newApp(mockSvc).Test(httptest.NewRequest(http.MethodGet, "/ocr/-1", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	mockSvc.On("Image", mock.Anything, int64(7), int64(3)).
		Return([]byte("jpegbytes"), "image/jpeg", nil)

	app := fiber.New()
	app.Get("/ocr/:id/image", withUser(testUser), GetImage(mockSvc))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/ocr/3/image", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get(fiber.HeaderContentType))
}

func TestSearchDocuments(t *testing.T) {
	newApp := func(mockSvc *serviceMocks.MockDocumentService) *fiber.App {
		app := fiber.New()
		app.Post("/ocr/search", withUser(testUser), SearchDocuments(mockSvc))
		return app
	}
	jsonReq := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/ocr/search", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return req
	}

	t.Run("results with total", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Search", mock.Anything, int64(7), "invoice", "filename").
			Return([]model.DocumentWithFolders{
				{Document: model.Document{ID: 1, Filename: "invoice.png"}, Folders: []model.FolderRef{}},
			}, nil)

		resp, _ := newApp(mockSvc).Test(jsonReq(`{"query":"invoice","search_type":"filename"}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, float64(1), body["total"])
		assert.Len(t, body["results"], 1)
	})

	t.Run("empty query", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDocumentService)
		mockSvc.On("Search", mock.Anything, int64(7), "", "all").
			Return(nil, service.ErrEmptyQuery)

		resp, _ := newApp(mockSvc).Test(jsonReq(`{"query":"","search_type":"all"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestMoveDocument(t *testing.T) {
	app := fiber.New()
	mockSvc := new(serviceMocks.MockDocumentService)
	app.Put("/ocr/:id/move", withUser(testUser), MoveDocument(mockSvc))

	t.Run("detach to uncategorized", func(t *testing.T) {
		mockSvc.On("Move", mock.Anything, int64(7), int64(3), (*int64)(nil)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/ocr/3/move", strings.NewReader(`{"folder_id":null}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Document moved to Uncategorized", body["msg"])
	})

	t.Run("into folder", func(t *testing.T) {
		fid := int64(2)
		mockSvc.On("Move", mock.Anything, int64(7), int64(3), &fid).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/ocr/3/move", strings.NewReader(`{"folder_id":2}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestSetDocumentFolders(t *testing.T) {
	app := fiber.New()
	mockSvc := new(serviceMocks.MockDocumentService)
	app.Put("/ocr/:id/folders", withUser(testUser), SetDocumentFolders(mockSvc))

	mockSvc.On("SetFolders", mock.Anything, int64(7), int64(3), []int64{1, 2}).
		Return([]model.FolderRef{{ID: 1, Name: "Work"}, {ID: 2, Name: "Receipts"}}, nil)

	req := httptest.NewRequest(http.MethodPut, "/ocr/3/folders", strings.NewReader(`{"folder_ids":[1,2]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Len(t, body["folders"], 2)
}

func TestDownloadDocument(t *testing.T) {
	newApp := func(mockSvc *serviceMocks.MockExportService) *fiber.App {
		app := fiber.New()
		app.Get("/ocr/:id/download", withUser(testUser), DownloadDocument(mockSvc))
		return app
	}

	t.Run("defaults to txt", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockExportService)
		mockSvc.On("Export", mock.Anything, int64(7), int64(3), "txt").
			Return(&service.ExportResult{
				Filename:    "receipt.txt",
				ContentType: "text/plain; charset=utf-8",
				Content:     []byte("hello"),
			}, nil)

		resp, _ := newApp(mockSvc).Test(httptest.NewRequest(http.MethodGet, "/ocr/3/download", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, `attachment; filename="receipt.txt"`, resp.Header.Get(fiber.HeaderContentDisposition))
	})

	t.Run("invalid format", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockExportService)
		mockSvc.On("Export", mock.Anything, int64(7), int64(3), "docx").
			Return(nil, service.ErrInvalidFormat)

		resp, _ := newApp(mockSvc).Test(httptest.NewRequest(http.MethodGet, "/ocr/3/download?format=docx", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	mockSvc.On("Delete", mock.Anything, int64(7), int64(3)).Return("receipt.png", nil)

	app := fiber.New()
	app.Delete("/ocr/:id", withUser(testUser), DeleteDocument(mockSvc))

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/ocr/3", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Document 'receipt.png' deleted successfully", body["msg"])
}

func TestFolderHandlers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockFolderService)
		mockSvc.On("Create", mock.Anything, int64(7), "Receipts").
			Return(&model.Folder{ID: 1, Name: "Receipts"}, nil)

		app := fiber.New()
		app.Post("/folders", withUser(testUser), CreateFolder(mockSvc))

		req := httptest.NewRequest(http.MethodPost, "/folders", strings.NewReader(`{"name":"Receipts"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("delete reports moved documents", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockFolderService)
		mockSvc.On("Delete", mock.Anything, int64(7), int64(2)).
			Return(&service.FolderDeleteResult{ID: 2, Name: "Receipts", DocumentsMoved: 3}, nil)

		app := fiber.New()
		app.Delete("/folders/:id", withUser(testUser), DeleteFolder(mockSvc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/folders/2", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, float64(3), body["documents_moved"])
	})
}

func TestUserSummary(t *testing.T) {
	t.Run("digest", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAnalyticsService)
		mockSvc.On("UserSummary", mock.Anything, testUser).
			Return(&service.Summary{TotalDocuments: 3, TotalFolders: 1, LastActivity: "Recent"}, nil)

		app := fiber.New()
		app.Get("/analytics/summary", withUser(testUser), UserSummary(mockSvc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/analytics/summary", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body service.Summary
		decodeBody(t, resp, &body)
		assert.Equal(t, 3, body.TotalDocuments)
	})

	t.Run("best effort on failure", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAnalyticsService)
		mockSvc.On("UserSummary", mock.Anything, testUser).
			Return(nil, service.ErrAnalyticsUnavailable)

		app := fiber.New()
		app.Get("/analytics/summary", withUser(testUser), UserSummary(mockSvc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/analytics/summary", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Unable to fetch user summary", body["error"])
	})
}

func TestDashboardStats(t *testing.T) {
	t.Run("payload", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAnalyticsService)
		mockSvc.On("Dashboard", mock.Anything, int64(7)).
			Return(&service.Dashboard{
				Overview: service.Overview{TotalDocuments: 10, TotalFolders: 4, DocumentsThisMonth: 3},
			}, nil)

		app := fiber.New()
		app.Get("/analytics/dashboard", withUser(testUser), DashboardStats(mockSvc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/analytics/dashboard", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body service.Dashboard
		decodeBody(t, resp, &body)
		assert.Equal(t, 10, body.Overview.TotalDocuments)
	})

	t.Run("unavailable", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAnalyticsService)
		mockSvc.On("Dashboard", mock.Anything, int64(7)).
			Return(nil, service.ErrAnalyticsUnavailable)

		app := fiber.New()
		app.Get("/analytics/dashboard", withUser(testUser), DashboardStats(mockSvc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/analytics/dashboard", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
