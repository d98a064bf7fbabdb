package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the id the auth middleware stored on the context.
// Zero means the request never passed authentication.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
