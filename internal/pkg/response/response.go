// Package response writes the API's uniform JSON envelope.
package response

import "github.com/gin-gonic/gin"

// Success replies {"success": true, "data": ...}.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error replies {"success": false, "error": {"code", "message"}}. Codes are
// stable machine-readable identifiers such as VALIDATION_ERROR or NOT_FOUND.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
