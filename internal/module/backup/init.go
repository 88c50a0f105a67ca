package backup

import (
	"log/slog"

	"controle-estagiarios/internal/global/logger"
)

var log *slog.Logger

type ModuleBackup struct{}

func (m *ModuleBackup) GetName() string {
	return "Backup"
}

func (m *ModuleBackup) Init() {
	log = logger.New("Backup")
}

func selfInit() {
	m := &ModuleBackup{}
	m.Init()
}
