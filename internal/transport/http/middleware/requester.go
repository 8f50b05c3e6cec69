package middleware

import (
	"github.com/gin-gonic/gin"
)

// Requester copies the requester id from the route parameter into the request context,
// where the access log and handlers pick it up.
func Requester(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.Param(param); id != "" {
			c.Set(UserIDKey, id)
			GetRequestContext(c).UserID = id
		}
		c.Next()
	}
}

// GetRequesterID returns the requester stored by Requester.
func GetRequesterID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
