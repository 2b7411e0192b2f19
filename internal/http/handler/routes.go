package handler

import (
	"github.com/gofiber/fiber/v2"

	"portalapi/internal/gate"
	"portalapi/internal/http/middleware"
	"portalapi/internal/service"
	"portalapi/internal/session"
	"portalapi/internal/storage"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; all portal rules live in the service layer.
func RegisterRoutes(app *fiber.App, svc service.PortalService, g *gate.Service, sessions *session.Store, store storage.Storage) {
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

	app.Get("/health", HealthCheck(sessions))
	app.Get("/healthz", LivenessProbe())

	// Public portal: the notice board and document library need no gate.
	app.Get("/portal", GetPortal(svc))
	app.Get("/portal/announcements", GetAnnouncements(svc))
	app.Get("/portal/resources", GetResources(svc))
	app.Get("/portal/documents", GetDocuments(svc))

	app.Post("/auth/login", Login(g))
	app.Post("/auth/logout", Logout(g))

	// The resource list sits behind the teachers' gate; an admin token
	// opens it too.
	teachers := app.Group("/teachers", middleware.RequireGate(g, gate.AreaTeachers))
	teachers.Get("/resources", GetResources(svc))

	admin := app.Group("/admin", middleware.RequireGate(g, gate.AreaAdmin))
	admin.Get("/portal", GetAdminPortal(svc))
	admin.Post("/refresh", RefreshPortal(svc))
	admin.Post("/uploads", UploadFile(store))

	admin.Post("/announcements", CreateAnnouncement(svc))
	admin.Put("/announcements/:id", UpdateAnnouncement(svc))
	admin.Delete("/announcements/:id", DeleteAnnouncement(svc))

	admin.Post("/resources", CreateResource(svc))
	admin.Put("/resources/:id", UpdateResource(svc))
	admin.Delete("/resources/:id", DeleteResource(svc))

	admin.Post("/documents", CreateDocument(svc))
	admin.Put("/documents/:id", UpdateDocument(svc))
	admin.Delete("/documents/:id", DeleteDocument(svc))
}
