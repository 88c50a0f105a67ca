package sheet

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
)

func (m *ModuleSheet) InitRouter(r *gin.RouterGroup) {
	sheetGroup := r.Group("/sheet")

	sheetGroup.Use(middleware.Auth(0))
	{
		sheetGroup.GET("/export", Export)
	}

	sheetGroup.Use(middleware.Auth(1))
	{
		sheetGroup.POST("/import", Import)
	}
}
