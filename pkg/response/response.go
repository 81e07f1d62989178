package response

import "github.com/gin-gonic/gin"

// Message writes a bare {"message": ...} body. Error bodies must be stable
// across requests (login failures are compared byte-for-byte by clients and
// tests), so no timestamps or request ids are included.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// ValidationErrors writes the per-field violation map produced by the
// validation package as {"errors": {field: message}}.
func ValidationErrors(c *gin.Context, status int, details map[string]string) {
	c.JSON(status, gin.H{"errors": details})
}

// AbortMessage writes a message body and stops the handler chain.
func AbortMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
