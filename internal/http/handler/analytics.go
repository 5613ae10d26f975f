package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chou-ng-coder/ocr-website/internal/http/middleware"
	"github.com/chou-ng-coder/ocr-website/internal/service"
)

// DashboardStats returns the full statistics payload for the caller.
func DashboardStats(analyticsSvc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		dashboard, err := analyticsSvc.Dashboard(c.UserContext(), user.ID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dashboard)
	}
}

// UserSummary returns the lightweight account digest. Unlike the dashboard,
// the digest is best-effort: failures degrade to an error body, not a 5xx.
func UserSummary(analyticsSvc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		summary, err := analyticsSvc.UserSummary(c.UserContext(), user)
		if err != nil {
			return c.JSON(fiber.Map{"error": "Unable to fetch user summary"})
		}
		return c.JSON(summary)
	}
}
