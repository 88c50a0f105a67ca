package audit

import (
	"log/slog"

	"controle-estagiarios/internal/global/logger"
)

var log *slog.Logger

type ModuleAudit struct{}

func (m *ModuleAudit) GetName() string {
	return "Audit"
}

func (m *ModuleAudit) Init() {
	log = logger.New("AuditAPI")
}

func selfInit() {
	m := &ModuleAudit{}
	m.Init()
}
