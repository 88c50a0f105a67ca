package audit

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
)

func (m *ModuleAudit) InitRouter(r *gin.RouterGroup) {
	auditGroup := r.Group("/audit")

	auditGroup.Use(middleware.Auth(1))
	{
		auditGroup.GET("/list", ListEntries)
		auditGroup.GET("/export", ExportEntries)
	}
}
