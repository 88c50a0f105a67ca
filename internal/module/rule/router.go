package rule

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
)

func (m *ModuleRule) InitRouter(r *gin.RouterGroup) {
	ruleGroup := r.Group("/rule")

	ruleGroup.Use(middleware.Auth(0))
	{
		ruleGroup.GET("/list", ListRules)
	}

	ruleGroup.Use(middleware.Auth(1))
	{
		ruleGroup.POST("/create", CreateRule)
		ruleGroup.PUT("/update/:id", UpdateRule)
		ruleGroup.DELETE("/delete/:id", DeleteRule)
	}
}
