package handler

import (
	"github.com/gofiber/fiber/v2"

	"portalapi/internal/service"
)

// GetPortal serves the public portal snapshot: active records only, in
// display order. `?refresh=true` forces a remote refetch first.
func GetPortal(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.QueryBool("refresh") {
			if err := svc.Refresh(c.UserContext()); err != nil {
				return writeServiceError(c, err)
			}
		}
		data, err := svc.PublicPortal()
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(data)
	}
}

// GetAnnouncements serves the public notice board collection.
func GetAnnouncements(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.PublicPortal()
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(data.Announcements)
	}
}

// GetDocuments serves the public document library collection.
func GetDocuments(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.PublicPortal()
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(data.Documents)
	}
}

// GetResources serves the resource list behind the teachers' gate.
func GetResources(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.PublicPortal()
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(data.Resources)
	}
}

// GetAdminPortal serves the full collections for the admin panel,
// inactive records included.
func GetAdminPortal(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.Portal()
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(data)
	}
}

// RefreshPortal forces a full refetch-and-replace from the remote store.
func RefreshPortal(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
