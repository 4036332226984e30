package response

import (
	"github.com/gin-gonic/gin"

	domainerrors "digimart.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response mapped from a domain error
func Error(c *gin.Context, err error) {
	status := domainerrors.HTTPStatus(err)

	message := err.Error()
	if appErr, ok := err.(*domainerrors.AppError); ok {
		message = appErr.Message
	}

	c.JSON(status, gin.H{
		"error": message,
	})
}

// ErrorWithStatus sends an error response with a specific status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}
