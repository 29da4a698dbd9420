package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorKey is the field every error body carries
const ErrorKey = "message err"

// SuccessResponse writes data as the JSON body with status 200
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// EntityResponse wraps a single record under its entity name, e.g. {"patient": {...}}
func EntityResponse(c *gin.Context, name string, entity interface{}) {
	c.JSON(http.StatusOK, gin.H{name: entity})
}

// ErrorResponse sends the standard error JSON body
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{ErrorKey: message})
}
