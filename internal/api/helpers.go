package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// abortWithError sends a JSON error response and stops the handler chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// parseDateParam parses a YYYY-MM-DD query/body value.
func parseDateParam(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, value, time.UTC)
}
