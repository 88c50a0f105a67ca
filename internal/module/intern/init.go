package intern

import (
	"log/slog"

	"controle-estagiarios/internal/global/logger"
)

var log *slog.Logger

type ModuleIntern struct{}

func (m *ModuleIntern) GetName() string {
	return "Intern"
}

func (m *ModuleIntern) Init() {
	log = logger.New("Intern")
}

func selfInit() {
	m := &ModuleIntern{}
	m.Init()
}
