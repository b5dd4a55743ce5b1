package response

import "github.com/gin-gonic/gin"

// Detail writes a {"detail": "..."} body, the shape used for generic
// not-found and authorization failures.
func Detail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}

// FieldError writes a field-scoped validation error, e.g.
// {"room_number": ["Room 101 is not available."]}.
func FieldError(c *gin.Context, statusCode int, field, message string) {
	c.JSON(statusCode, gin.H{field: []string{message}})
}

// FieldErrors writes several field-scoped messages at once.
func FieldErrors(c *gin.Context, statusCode int, fields map[string][]string) {
	body := gin.H{}
	for field, messages := range fields {
		body[field] = messages
	}
	c.JSON(statusCode, body)
}
