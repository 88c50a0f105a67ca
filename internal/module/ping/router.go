package ping

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/response"
)

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"message": "pong",
			"version": "1.0.0",
		})
	})
}
