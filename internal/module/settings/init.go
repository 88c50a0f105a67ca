package settings

import (
	"log/slog"

	"controle-estagiarios/internal/global/logger"
)

var log *slog.Logger

type ModuleSettings struct{}

func (m *ModuleSettings) GetName() string {
	return "Settings"
}

func (m *ModuleSettings) Init() {
	log = logger.New("Settings")
}

func selfInit() {
	m := &ModuleSettings{}
	m.Init()
}
