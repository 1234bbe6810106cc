package response

import "github.com/gin-gonic/gin"

// OK renders the flat success envelope used across the API: the payload
// fields are merged next to "success" rather than nested under "data",
// matching what the gallery and admin front-ends consume.
func OK(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
