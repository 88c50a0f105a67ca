package settings

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
)

func (m *ModuleSettings) InitRouter(r *gin.RouterGroup) {
	settingsGroup := r.Group("/settings")

	settingsGroup.Use(middleware.Auth(0))
	{
		settingsGroup.GET("/window", GetWindow)
	}

	settingsGroup.Use(middleware.Auth(1))
	{
		settingsGroup.PUT("/window", SetWindow)
	}
}
