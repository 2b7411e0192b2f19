package handler

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portalapi/internal/storage"
)

// presignExpiry is the lifetime of upload download links. Seven days is
// the S3 presign ceiling; links written into sheet rows are regenerated
// when an admin re-saves the record.
const presignExpiry = 7 * 24 * time.Hour

type uploadResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// UploadFile receives a multipart file from the admin panel, stores it in
// the object store, and returns a download URL usable as an announcement
// attachment or document link. A nil store means uploads are not
// configured for this deployment.
func UploadFile(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "UPLOADS_DISABLED", "object storage not configured")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		key := "uploads/" + uuid.New().String() + filepath.Ext(fh.Filename)
		info, err := store.Put(c.UserContext(), key, f, storage.PutOptions{
			Size:        fh.Size,
			ContentType: ct,
			Metadata:    map[string]string{"original-filename": fh.Filename},
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		url, err := store.PresignGet(c.UserContext(), key, presignExpiry)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(uploadResponse{
			Key:         info.Key,
			URL:         url,
			Size:        info.Size,
			ContentType: info.ContentType,
		})
	}
}
