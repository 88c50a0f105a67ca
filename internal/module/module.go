package module

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/module/audit"
	"controle-estagiarios/internal/module/auth"
	"controle-estagiarios/internal/module/backup"
	"controle-estagiarios/internal/module/intern"
	"controle-estagiarios/internal/module/notify"
	"controle-estagiarios/internal/module/ping"
	"controle-estagiarios/internal/module/rule"
	"controle-estagiarios/internal/module/settings"
	"controle-estagiarios/internal/module/sheet"
	"controle-estagiarios/internal/module/university"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&auth.ModuleAuth{},
		&intern.ModuleIntern{},
		&rule.ModuleRule{},
		&settings.ModuleSettings{},
		&university.ModuleUniversity{},
		&sheet.ModuleSheet{},
		&audit.ModuleAudit{},
		&backup.ModuleBackup{},
		&notify.ModuleNotify{},
	})
}
