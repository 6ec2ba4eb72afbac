package httpHandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses an integer path parameter, writing a 400 itself when the
// value is missing or not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
