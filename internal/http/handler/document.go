package handler

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/chou-ng-coder/ocr-website/internal/http/middleware"
	"github.com/chou-ng-coder/ocr-website/internal/service"
)

// errInvalidID signals an unparseable :id route parameter. Callers map it to
// a 400 themselves; pathID never writes to the response.
var errInvalidID = errors.New("invalid id")

// pathID parses the :id route parameter.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// UploadOCR accepts a multipart image (field name: file), runs text
// recognition and stores the result.
func UploadOCR(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
		}

		user := middleware.CurrentUser(c)
		res, err := docSvc.Process(c.UserContext(), user.ID, fh.Filename, content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"msg":            "OCR processing completed",
			"id":             res.ID,
			"filename":       res.Filename,
			"extracted_text": res.Text,
			"text_length":    res.TextLength,
		})
	}
}

// History lists the caller's documents, newest first, with folder memberships.
func History(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		docs, err := docSvc.History(c.UserContext(), user.ID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"results": docs,
			"total":   len(docs),
		})
	}
}

// GetDocument returns a single owned document.
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		user := middleware.CurrentUser(c)
		doc, err := docSvc.Get(c.UserContext(), user.ID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"id":        doc.ID,
			"filename":  doc.Filename,
			"text":      doc.Text,
			"has_image": doc.StoragePath != "",
		})
	}
}

// GetImage streams the originally uploaded image back to the browser.
func GetImage(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		user := middleware.CurrentUser(c)
		content, contentType, err := docSvc.Image(c.UserContext(), user.ID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, contentType)
		return c.Send(content)
	}
}

type updateDocumentRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

func (r updateDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Filename, validation.Required, validation.Length(1, 255)),
	)
}

// UpdateDocument overwrites filename and extracted text.
func UpdateDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req updateDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := req.Validate(); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}

		user := middleware.CurrentUser(c)
		if err := docSvc.Update(c.UserContext(), user.ID, id, req.Filename, req.Text); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"msg": "Document updated successfully"})
	}
}

type moveDocumentRequest struct {
	FolderID *int64 `json:"folder_id"`
}

// MoveDocument repoints the document's primary folder; null detaches it.
func MoveDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req moveDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user := middleware.CurrentUser(c)
		if err := docSvc.Move(c.UserContext(), user.ID, id, req.FolderID); err != nil {
			return writeServiceError(c, err)
		}
		msg := "Document moved to Uncategorized"
		if req.FolderID != nil {
			msg = "Document moved successfully"
		}
		return c.JSON(fiber.Map{"msg": msg})
	}
}

type documentFoldersRequest struct {
	FolderIDs []int64 `json:"folder_ids"`
}

// SetDocumentFolders replaces the document's folder memberships wholesale.
func SetDocumentFolders(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req documentFoldersRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.FolderIDs == nil {
			req.FolderIDs = []int64{}
		}

		user := middleware.CurrentUser(c)
		folders, err := docSvc.SetFolders(c.UserContext(), user.ID, id, req.FolderIDs)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"msg":     "Document folders updated successfully",
			"folders": folders,
		})
	}
}

type searchRequest struct {
	Query      string `json:"query"`
	SearchType string `json:"search_type"`
}

// SearchDocuments matches the caller's documents against a query.
func SearchDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user := middleware.CurrentUser(c)
		docs, err := docSvc.Search(c.UserContext(), user.ID, req.Query, req.SearchType)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"results": docs,
			"total":   len(docs),
		})
	}
}

// DownloadDocument exports a document in the requested format
// (?format=txt|csv|pdf, defaulting to txt) as an attachment.
func DownloadDocument(exportSvc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		format := c.Query("format", "txt")

		user := middleware.CurrentUser(c)
		res, err := exportSvc.Export(c.UserContext(), user.ID, id, format)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, res.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
		return c.Send(res.Content)
	}
}

// DeleteDocument removes a document and its stored image.
func DeleteDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		user := middleware.CurrentUser(c)
		filename, err := docSvc.Delete(c.UserContext(), user.ID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"msg": fmt.Sprintf("Document '%s' deleted successfully", filename),
			"id":  id,
		})
	}
}
