package handler

import (
	"github.com/gofiber/fiber/v2"

	"portalapi/internal/model"
	"portalapi/internal/service"
)

// Admin CRUD handlers. Bodies are full records; the service assigns ids on
// create and ignores client-sent ids. Update takes the id from the path so
// it cannot drift from the body.

// CreateAnnouncement publishes a new announcement.
func CreateAnnouncement(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a model.Announcement
		if err := c.BodyParser(&a); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		created, err := svc.CreateAnnouncement(c.UserContext(), a)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateAnnouncement edits an existing announcement.
func UpdateAnnouncement(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a model.Announcement
		if err := c.BodyParser(&a); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		a.ID = c.Params("id")
		updated, err := svc.UpdateAnnouncement(c.UserContext(), a)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteAnnouncement removes an announcement.
func DeleteAnnouncement(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteAnnouncement(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CreateResource adds a resource to the teachers' list.
func CreateResource(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var r model.Resource
		if err := c.BodyParser(&r); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		created, err := svc.CreateResource(c.UserContext(), r)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateResource edits an existing resource.
func UpdateResource(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var r model.Resource
		if err := c.BodyParser(&r); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		r.ID = c.Params("id")
		updated, err := svc.UpdateResource(c.UserContext(), r)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteResource removes a resource.
func DeleteResource(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteResource(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CreateDocument adds a document library entry.
func CreateDocument(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var d model.DocumentItem
		if err := c.BodyParser(&d); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		created, err := svc.CreateDocument(c.UserContext(), d)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateDocument edits a document library entry.
func UpdateDocument(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var d model.DocumentItem
		if err := c.BodyParser(&d); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		d.ID = c.Params("id")
		updated, err := svc.UpdateDocument(c.UserContext(), d)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteDocument removes a document library entry.
func DeleteDocument(svc service.PortalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteDocument(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
