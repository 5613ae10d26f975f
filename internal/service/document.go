package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	// Upload validation decodes the image header; register the formats the
	// OCR engine accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/chou-ng-coder/ocr-website/internal/config"
	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/ocr"
	"github.com/chou-ng-coder/ocr-website/internal/repository"
	"github.com/chou-ng-coder/ocr-website/internal/storage"
)

// Extracted text shorter than this (after trimming) triggers the combined
// Vietnamese+English retry.
const minConfidentTextLen = 10

// ProcessResult is returned after a successful upload-and-recognize cycle.
type ProcessResult struct {
	ID         int64  `json:"id"`
	Filename   string `json:"filename"`
	Text       string `json:"extracted_text"`
	TextLength int    `json:"text_length"`
}

// DocumentService defines the use cases around stored OCR documents.
type DocumentService interface {
	// Process validates the upload, runs text recognition, stores the image
	// bytes in object storage and the result row in the database. Storage is
	// rolled back if the database insert fails.
	Process(ctx context.Context, ownerID int64, filename string, content []byte) (*ProcessResult, error)

	// History returns the owner's documents, newest first, each annotated
	// with its folder memberships.
	History(ctx context.Context, ownerID int64) ([]model.DocumentWithFolders, error)

	// Get returns a single owned document.
	Get(ctx context.Context, ownerID, id int64) (*model.Document, error)

	// Image returns the stored image bytes and their content type.
	Image(ctx context.Context, ownerID, id int64) ([]byte, string, error)

	// Search matches the owner's documents against a query within the given
	// scope ("all", "filename" or "content").
	Search(ctx context.Context, ownerID int64, query, scope string) ([]model.DocumentWithFolders, error)

	// Update overwrites filename and extracted text.
	Update(ctx context.Context, ownerID, id int64, filename, text string) error

	// Move repoints the document's primary folder; nil detaches it.
	Move(ctx context.Context, ownerID, id int64, folderID *int64) error

	// SetFolders replaces the document's folder memberships wholesale. All
	// referenced folders must belong to the owner or nothing changes.
	SetFolders(ctx context.Context, ownerID, id int64, folderIDs []int64) ([]model.FolderRef, error)

	// Delete removes the document row and its stored image, returning the
	// filename for the confirmation message.
	Delete(ctx context.Context, ownerID, id int64) (string, error)
}

type documentService struct {
	repo    repository.DocumentRepository
	folders repository.FolderRepository
	store   storage.Storage
	engine  ocr.Engine

	maxBytes  int64
	languages []string
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(repo repository.DocumentRepository, folders repository.FolderRepository, store storage.Storage, engine ocr.Engine, cfg config.OCRConfig) DocumentService {
	return &documentService{
		repo:      repo,
		folders:   folders,
		store:     store,
		engine:    engine,
		maxBytes:  int64(cfg.MaxUploadMB) << 20,
		languages: cfg.Languages,
	}
}

func (s *documentService) Process(ctx context.Context, ownerID int64, filename string, content []byte) (*ProcessResult, error) {
	if int64(len(content)) > s.maxBytes {
		return nil, fmt.Errorf("%w: limit is %dMB", ErrFileTooLarge, s.maxBytes>>20)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("%w: unreadable image: %v", ErrProcessingFailed, err)
	}

	text, err := s.recognize(ctx, content)
	if err != nil {
		return nil, err
	}

	key := filepath.ToSlash(filepath.Join("images", uuid.New().String()+filepath.Ext(filename)))
	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(content), storage.PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: imageContentType(filename),
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc, err := s.repo.Create(ctx, &model.Document{
		Filename:    filename,
		Text:        text,
		OwnerID:     ownerID,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	return &ProcessResult{
		ID:         doc.ID,
		Filename:   doc.Filename,
		Text:       doc.Text,
		TextLength: len(doc.Text),
	}, nil
}

// recognize runs the retry policy: configured languages first, the combined
// vie+eng pair when the result looks too short, and English alone as the
// last resort when recognition errors out.
func (s *documentService) recognize(ctx context.Context, content []byte) (string, error) {
	res, err := s.engine.Recognize(ctx, ocr.Input{Image: content, Languages: s.languages})
	if err == nil && len(strings.TrimSpace(res.PlainText)) < minConfidentTextLen {
		res, err = s.engine.Recognize(ctx, ocr.Input{Image: content, Languages: []string{"vie", "eng"}})
	}
	if err != nil {
		res, err = s.engine.Recognize(ctx, ocr.Input{Image: content, Languages: []string{"eng"}})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrProcessingFailed, err)
		}
	}
	return res.PlainText, nil
}

func (s *documentService) History(ctx context.Context, ownerID int64) ([]model.DocumentWithFolders, error) {
	docs, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return s.annotate(ctx, docs)
}

func (s *documentService) Get(ctx context.Context, ownerID, id int64) (*model.Document, error) {
	doc, err := s.repo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return doc, nil
}

func (s *documentService) Image(ctx context.Context, ownerID, id int64) ([]byte, string, error) {
	doc, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}
	if doc.StoragePath == "" {
		return nil, "", ErrNotFound
	}

	rc, _, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	return content, imageContentType(doc.Filename), nil
}

func (s *documentService) Search(ctx context.Context, ownerID int64, query, scope string) ([]model.DocumentWithFolders, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if scope == "" {
		scope = string(repository.ScopeAll)
	}
	sc := repository.SearchScope(scope)
	switch sc {
	case repository.ScopeAll, repository.ScopeFilename, repository.ScopeContent:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}

	docs, err := s.repo.Search(ctx, ownerID, query, sc)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	return s.annotate(ctx, docs)
}

func (s *documentService) Update(ctx context.Context, ownerID, id int64, filename, text string) error {
	if err := s.repo.Update(ctx, ownerID, id, filename, text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

func (s *documentService) Move(ctx context.Context, ownerID, id int64, folderID *int64) error {
	if folderID != nil {
		if _, err := s.folders.FindByOwner(ctx, ownerID, *folderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("find folder: %w", err)
		}
	}
	if err := s.repo.Move(ctx, ownerID, id, folderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("move document: %w", err)
	}
	return nil
}

func (s *documentService) SetFolders(ctx context.Context, ownerID, id int64, folderIDs []int64) ([]model.FolderRef, error) {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return nil, err
	}
	if len(folderIDs) > 0 {
		owned, err := s.folders.CountOwned(ctx, ownerID, folderIDs)
		if err != nil {
			return nil, fmt.Errorf("verify folders: %w", err)
		}
		if owned != len(folderIDs) {
			return nil, ErrNotFound
		}
	}
	if err := s.repo.ReplaceFolders(ctx, id, folderIDs); err != nil {
		return nil, fmt.Errorf("replace folders: %w", err)
	}

	byDoc, err := s.repo.FoldersFor(ctx, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}
	refs := byDoc[id]
	if refs == nil {
		refs = []model.FolderRef{}
	}
	return refs, nil
}

func (s *documentService) Delete(ctx context.Context, ownerID, id int64) (string, error) {
	doc, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return "", err
	}
	if doc.StoragePath != "" {
		if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
			return "", fmt.Errorf("delete from storage: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("delete document: %w", err)
	}
	return doc.Filename, nil
}

// annotate attaches folder memberships to each document.
func (s *documentService) annotate(ctx context.Context, docs []model.Document) ([]model.DocumentWithFolders, error) {
	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	byDoc, err := s.repo.FoldersFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}

	out := make([]model.DocumentWithFolders, 0, len(docs))
	for _, d := range docs {
		folders := byDoc[d.ID]
		if folders == nil {
			folders = []model.FolderRef{}
		}
		out = append(out, model.DocumentWithFolders{Document: d, Folders: folders})
	}
	return out, nil
}

// imageContentType maps a stored filename to the content type served back to
// the browser. Unknown extensions default to PNG.
func imageContentType(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
