package notify

import (
	"log/slog"

	"controle-estagiarios/internal/global/logger"
)

var log *slog.Logger

type ModuleNotify struct{}

func (m *ModuleNotify) GetName() string {
	return "Notify"
}

func (m *ModuleNotify) Init() {
	log = logger.New("Notify")
}

func selfInit() {
	m := &ModuleNotify{}
	m.Init()
}
