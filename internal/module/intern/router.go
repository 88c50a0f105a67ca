package intern

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
)

func (m *ModuleIntern) InitRouter(r *gin.RouterGroup) {
	internGroup := r.Group("/intern")

	internGroup.Use(middleware.Auth(0))
	{
		internGroup.GET("/list", ListInterns)
		internGroup.GET("/get/:id", GetIntern)
	}

	internGroup.Use(middleware.Auth(1))
	{
		internGroup.POST("/create", CreateIntern)
		internGroup.PUT("/update/:id", UpdateIntern)
		internGroup.DELETE("/delete/:id", DeleteIntern)
	}
}
