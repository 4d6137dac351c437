package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adjei-dev/stagepress/internal/config"
	"github.com/adjei-dev/stagepress/internal/helpers"
	"github.com/adjei-dev/stagepress/internal/models"
)

// UploadFile writes the multipart "file" field to local disk under the
// configured upload directory and returns the public URL. Any authenticated
// session may upload, not just admins.
func UploadFile(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			respondError(c, fmt.Errorf("%w: no file provided", models.ErrValidation))
			return
		}

		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			respondError(c, err)
			return
		}

		filename := helpers.UploadFilename(file.Filename, time.Now())
		if err := c.SaveUploadedFile(file, filepath.Join(cfg.UploadDir, filename)); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + filename})
	}
}
