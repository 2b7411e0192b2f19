package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portalapi/internal/service"
	"portalapi/internal/sheet"
)

// writeServiceError maps portal service failures onto the error envelope.
//
// Validation failures never reached the remote store, so they come back as
// client errors. Transport failures and error envelopes are both upstream
// failures; the caller's local state was left unchanged and resubmitting
// is safe.
func writeServiceError(c *fiber.Ctx, err error) error {
	var remoteErr *sheet.RemoteError
	switch {
	case errors.Is(err, service.ErrNotLoaded):
		return writeError(c, fiber.StatusServiceUnavailable, "DATA_UNAVAILABLE", "portal data not loaded; try a refresh")
	case errors.Is(err, service.ErrIDRequired),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrURLRequired):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "record not found")
	case errors.As(err, &remoteErr):
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_REJECTED", remoteErr.Message)
	default:
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "remote store unavailable")
	}
}
