package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/cmd/api/dto"
	"github.com/Hasini-Stu/tasknew/internal/logger"
	"github.com/Hasini-Stu/tasknew/storage"
)

// UploadImageHandler is the explicit second step of the image flow: upload
// the selected file to blob storage and hand back the durable URL the client
// embeds in its post.
func UploadImageHandler(uploader storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "no image file provided"})
			return
		}
		defer file.Close()

		url, err := uploader.Upload(c.Request.Context(), header.Filename, file)
		if err != nil {
			logger.ErrorWithFields("image upload failed", logger.Fields{
				"filename": header.Filename,
				"error":    err.Error(),
			})
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to upload image"})
			return
		}

		c.JSON(http.StatusOK, dto.UploadResponseDTO{URL: url})
	}
}
