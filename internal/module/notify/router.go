package notify

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
)

func (m *ModuleNotify) InitRouter(r *gin.RouterGroup) {
	notifyGroup := r.Group("/notify")

	notifyGroup.Use(middleware.Auth(1))
	{
		notifyGroup.POST("/digest", SendDigest)
	}
}
