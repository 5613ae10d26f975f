package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/chou-ng-coder/ocr-website/internal/http/middleware"
	"github.com/chou-ng-coder/ocr-website/internal/service"
)

type createFolderRequest struct {
	Name string `json:"name"`
}

// CreateFolder adds a folder owned by the caller.
func CreateFolder(folderSvc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user := middleware.CurrentUser(c)
		folder, err := folderSvc.Create(c.UserContext(), user.ID, req.Name)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(folder)
	}
}

// ListFolders returns the caller's folders, newest first.
func ListFolders(folderSvc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		folders, err := folderSvc.List(c.UserContext(), user.ID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(folders)
	}
}

// DeleteFolder removes a folder; documents inside are detached, not deleted.
func DeleteFolder(folderSvc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		user := middleware.CurrentUser(c)
		res, err := folderSvc.Delete(c.UserContext(), user.ID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"msg":             fmt.Sprintf("Folder '%s' deleted successfully", res.Name),
			"id":              res.ID,
			"documents_moved": res.DocumentsMoved,
		})
	}
}
