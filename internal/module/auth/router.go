package auth

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
)

func (m *ModuleAuth) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")

	// Login is the only unauthenticated endpoint besides ping.
	authGroup.POST("/login", Login)

	authGroup.Use(middleware.Auth(1))
	{
		authGroup.PUT("/password", ChangePassword)
	}
}
