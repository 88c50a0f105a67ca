package jwt

import (
	"github.com/gin-gonic/gin"
)

func GetPayload(c *gin.Context) (claims *Claims, exist bool) {
	payload, _ := c.Get("payload")
	claims, exist = payload.(*Claims)
	return
}
