package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/YCK-art/knowly/middleware"
	"github.com/YCK-art/knowly/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler serves profile media uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadPhoto stores a profile photo and returns its public URL. The file
// is staged on local disk before handing it to the storage backend.
func (h *StorageHandler) UploadPhoto(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		logger.Error("Failed to stage uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	folder := "profiles/" + middleware.AccountID(c)
	url, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, folder)
	if err != nil {
		logger.Error("Photo upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
