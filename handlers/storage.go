package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"sufra/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles media upload endpoints. The form core only ever
// stores the returned URL; nothing about the file content is validated here.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted buckets for file uploads.
var allowedBuckets = map[string]bool{
	"images": true,
	"videos": true,
}

// UploadFileHandler handles branch media uploads and returns the stored URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	fileType := c.Param("type")
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'images' and 'videos'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := fileType + "s/" + bucket

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, fileType, publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"downloadURL": downloadURL,
	})
}

// GetDownloadURLHandler generates a public download URL for uploaded media.
func (h *StorageHandler) GetDownloadURLHandler(c *gin.Context) {
	fileType := c.Param("type")
	bucket := c.Param("bucket")
	filename := c.Param("filename")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'images' and 'videos'"})
		return
	}

	destPath := fileType + "s/" + bucket + "/" + filename

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	url, err := h.StorageSvc.GetDownloadURL(c, fileType, destPath, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}
