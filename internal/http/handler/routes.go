package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/chou-ng-coder/ocr-website/internal/http/middleware"
	"github.com/chou-ng-coder/ocr-website/internal/service"
)

// Services bundles everything the routes need.
type Services struct {
	Auth      service.AuthService
	Documents service.DocumentService
	Folders   service.FolderService
	Analytics service.AnalyticsService
	Export    service.ExportService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Everything
// below the auth barrier is scoped to the authenticated account.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/signup", Signup(svcs.Auth))
	app.Post("/token", IssueToken(svcs.Auth))

	authed := app.Group("", middleware.Authenticate(svcs.Auth))

	authed.Post("/signout", Signout())

	authed.Post("/ocr", UploadOCR(svcs.Documents))

	// Static segments must precede the :id routes
	authed.Get("/ocr/history", History(svcs.Documents))
	authed.Post("/ocr/search", SearchDocuments(svcs.Documents))

	authed.Get("/ocr/:id", GetDocument(svcs.Documents))
	authed.Put("/ocr/:id/update", UpdateDocument(svcs.Documents))
	authed.Delete("/ocr/:id", DeleteDocument(svcs.Documents))
	authed.Get("/ocr/:id/image", GetImage(svcs.Documents))
	authed.Put("/ocr/:id/move", MoveDocument(svcs.Documents))
	authed.Put("/ocr/:id/folders", SetDocumentFolders(svcs.Documents))
	authed.Get("/ocr/:id/download", DownloadDocument(svcs.Export))

	authed.Post("/folders", CreateFolder(svcs.Folders))
	authed.Get("/folders", ListFolders(svcs.Folders))
	authed.Delete("/folders/:id", DeleteFolder(svcs.Folders))

	authed.Get("/analytics/dashboard", DashboardStats(svcs.Analytics))
	authed.Get("/analytics/summary", UserSummary(svcs.Analytics))
}
