package settings

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/model"
)

// GetWindow returns the upcoming-renewal warning window in days.
func GetWindow(c *gin.Context) {
	response.Success(c, gin.H{
		"upcoming_window_days": database.UpcomingWindowDays(),
	})
}

// SetWindowReq carries the new window value.
type SetWindowReq struct {
	UpcomingWindowDays int `json:"upcoming_window_days" binding:"required"`
}

// SetWindow updates the warning window. Statuses are always computed at
// read time, so the change takes effect on the next listing.
func SetWindow(c *gin.Context) {
	var req SetWindowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind window request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.UpcomingWindowDays < 1 || req.UpcomingWindowDays > 365 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("janela deve estar entre 1 e 365 dias"))
		return
	}

	if err := database.SetSetting(model.SettingUpcomingWindowDays, strconv.Itoa(req.UpcomingWindowDays)); err != nil {
		log.Error("failed to store window", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	database.Audit("CONFIGURAÇÃO ALTERADA", fmt.Sprintf("proximos_dias = %d", req.UpcomingWindowDays))
	log.Info("upcoming window updated", "days", req.UpcomingWindowDays)

	response.Success(c)
}
