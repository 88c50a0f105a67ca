package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"controle-estagiarios/internal/global/cache"
	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/jwt"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/model"
	"controle-estagiarios/tools"
)

// LoginReq carries the single admin password of the system.
type LoginReq struct {
	Password string `json:"password" binding:"required"`
}

// Login validates the admin password against the stored hash and issues
// a JWT. Repeated failures trip a Redis-backed lockout when Redis is
// configured.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind login request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if cache.LoginThrottled(c.Request.Context()) {
		log.Warn("login locked out", "client_ip", c.ClientIP())
		response.Fail(c, response.ErrTooManyRequests)
		return
	}

	hash := database.GetSetting(model.SettingAdminPassword, "")
	if hash == "" {
		log.Error("admin password missing from settings")
		response.Fail(c, response.ErrInternal)
		return
	}

	if !tools.PasswordCompare(req.Password, hash) {
		cache.RegisterFailedLogin(c.Request.Context())
		log.Warn("wrong admin password", "client_ip", c.ClientIP())
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	cache.ResetLoginAttempts(c.Request.Context())
	log.Info("admin logged in", "client_ip", c.ClientIP())

	response.Success(c, map[string]interface{}{
		"token": jwt.CreateToken(jwt.Payload{
			Subject: "admin",
			RoleID:  1,
		}),
		"role_id": 1,
	})
}

// ChangePasswordReq carries a password rotation request.
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword rotates the admin password after checking the current
// one. Requires an authenticated admin token.
func ChangePassword(c *gin.Context) {
	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind change password request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := validatePasswordStrength(req.NewPassword); err != nil {
		log.Warn("weak new password rejected")
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	hash := database.GetSetting(model.SettingAdminPassword, "")
	if !tools.PasswordCompare(req.OldPassword, hash) {
		log.Warn("wrong old password on rotation", "client_ip", c.ClientIP())
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	if err := database.SetSetting(model.SettingAdminPassword, tools.PasswordEncrypt(req.NewPassword)); err != nil {
		log.Error("failed to store new password", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	database.Audit("SENHA ALTERADA", "senha de administrador atualizada")
	log.Info("admin password rotated")
	response.Success(c)
}

func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve ter no mínimo 8 caracteres")
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		switch {
		case strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", char):
			hasLetter = true
		case strings.ContainsRune("0123456789", char):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("a senha deve conter letras e números")
	}
	return nil
}
