package handlers

import (
	"log"
	"net/http"

	"github.com/artemkap/goblog/backend/internal/storage"
	"github.com/labstack/echo/v4"
)

// UploadHandler handles multipart uploads to local disk
type UploadHandler struct {
	storage *storage.LocalStorage
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store *storage.LocalStorage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// Upload persists the uploaded "image" file and returns its access path
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file field 'image'")
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload file")
	}
	defer src.Close()

	url, err := h.storage.Save(fileHeader.Filename, src)
	if err != nil {
		log.Printf("Failed to save uploaded file: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload file")
	}

	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

// SignedUploadHandler hands out pre-signed object-storage upload URLs
type SignedUploadHandler struct {
	storage *storage.SignedURLStorage
}

// NewSignedUploadHandler creates a new SignedUploadHandler
func NewSignedUploadHandler(store *storage.SignedURLStorage) *SignedUploadHandler {
	return &SignedUploadHandler{storage: store}
}

// SignURL mints a fresh pre-signed PUT URL for direct client upload
func (h *SignedUploadHandler) SignURL(c echo.Context) error {
	url, err := h.storage.SignUploadURL(c.Request().Context())
	if err != nil {
		log.Printf("Failed to sign upload URL: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to sign upload URL")
	}

	return c.JSON(http.StatusOK, echo.Map{"uploadURL": url})
}
