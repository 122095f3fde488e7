package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/types"
	"github.com/gin-gonic/gin"
)

// uploadPost hands out a short-lived write capability for a new photo. The
// client uploads the bytes straight to the blob store and then registers the
// record with a separate POST /photos.
func (h handlers) uploadPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Bad request: %v", err),
			})
			return
		}

		if err := validateUploadRequest(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Bad request: %v", err),
			})
			return
		}

		key := blob.NewKey(req.Title, time.Now())

		uploadURL, err := h.blobs.IssueWriteURL(c.Request.Context(), key, blob.WriteURLTTL)
		if err != nil {
			h.logger.Error("failed to generate upload URL", "request_id", c.GetString("request-id"), "key", key, "error", blobError{err})
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to generate upload URL",
			})
			return
		}

		c.JSON(http.StatusOK, types.UploadResponse{
			UploadURL: uploadURL,
			BlobKey:   key,
		})
	}
}
