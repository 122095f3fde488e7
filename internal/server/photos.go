package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/types"
	"github.com/gin-gonic/gin"
)

func (h handlers) photosGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			photos []types.Photo
			err    error
		)

		if category := c.Query("category"); category != "" {
			photos, err = h.catalog.ListByCategory(c.Request.Context(), category)
		} else {
			photos, err = h.catalog.List(c.Request.Context())
		}
		if err != nil {
			h.logger.Error("failed to fetch photos", "request_id", c.GetString("request-id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to fetch photos",
			})
			return
		}

		c.JSON(http.StatusOK, photos)
	}
}

func (h handlers) featuredGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		photos, err := h.catalog.ListFeatured(c.Request.Context())
		if err != nil {
			h.logger.Error("failed to fetch featured photos", "request_id", c.GetString("request-id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to fetch featured photos",
			})
			return
		}

		c.JSON(http.StatusOK, photos)
	}
}

func (h handlers) photoGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parsePhotoID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Invalid photo ID: %v", err),
			})
			return
		}

		photo, err := h.catalog.Get(c.Request.Context(), id)
		if err != nil {
			var notExists types.ErrPhotoNotExists
			if errors.As(err, &notExists) {
				c.JSON(http.StatusNotFound, gin.H{
					"message": "Photo not found",
				})
				return
			}
			h.logger.Error("failed to fetch photo", "request_id", c.GetString("request-id"), "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to fetch photo",
			})
			return
		}

		c.JSON(http.StatusOK, photo)
	}
}

func (h handlers) photoPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft types.PhotoDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Bad request: %v", err),
			})
			return
		}

		if err := validateDraft(draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Bad request: %v", err),
			})
			return
		}

		photo, err := h.catalog.Create(c.Request.Context(), draft)
		if err != nil {
			var invalid types.ErrInvalidCategory
			if errors.As(err, &invalid) {
				c.JSON(http.StatusBadRequest, gin.H{
					"message": fmt.Sprintf("Bad request: %v", err),
				})
				return
			}
			h.logger.Error("failed to create photo", "request_id", c.GetString("request-id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to create photo",
			})
			return
		}

		c.JSON(http.StatusOK, photo)
	}
}

func (h handlers) photoDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parsePhotoID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Invalid photo ID: %v", err),
			})
			return
		}

		err = h.catalog.Delete(c.Request.Context(), id)
		if err != nil {
			var notExists types.ErrPhotoNotExists
			if errors.As(err, &notExists) {
				c.JSON(http.StatusNotFound, gin.H{
					"message": "Photo not found",
				})
				return
			}
			h.logger.Error("failed to delete photo", "request_id", c.GetString("request-id"), "id", id, "error", blobError{err})
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to delete photo",
			})
			return
		}

		c.Status(http.StatusOK)
	}
}

// parsePhotoID accepts any integer; ids the store never issued simply miss
// the lookup and come back as not found.
func parsePhotoID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return id, nil
}
