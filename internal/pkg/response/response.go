package response

import "github.com/gin-gonic/gin"

// Handlers return rows (or small ad-hoc objects) directly; failures
// are a flat {"error": "..."} body the frontend reads verbatim.

func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func OK(c *gin.Context) {
	c.JSON(200, gin.H{"ok": true})
}
