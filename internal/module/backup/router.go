package backup

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
)

func (m *ModuleBackup) InitRouter(r *gin.RouterGroup) {
	backupGroup := r.Group("/backup")

	backupGroup.Use(middleware.Auth(1))
	{
		backupGroup.GET("/download", Download)
		backupGroup.POST("/s3", UploadToS3)
	}
}
