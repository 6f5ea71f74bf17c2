package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetapp/internal/services"
)

// UploadFile accepts a multipart upload under the "file" field and
// records it as a banner candidate.
func UploadFile(f *services.FileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		file, err := f.Store(c.Request.Context(), header)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
			return
		}

		c.JSON(http.StatusOK, file)
	}
}
