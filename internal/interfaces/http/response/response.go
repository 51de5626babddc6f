package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/pkg/utils"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping domain errors to HTTP statuses
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)
	c.JSON(appErr.Status, gin.H{
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// Paginated sends a list response with pagination metadata
func Paginated(c *gin.Context, status int, key string, items interface{}, page, limit int, total int64) {
	meta := utils.CalculateMeta(total, page, limit)
	c.JSON(status, gin.H{
		key: items,
		"pagination": gin.H{
			"page":       meta.Page,
			"limit":      meta.Limit,
			"total":      meta.TotalCount,
			"totalPages": meta.TotalPages,
		},
	})
}
