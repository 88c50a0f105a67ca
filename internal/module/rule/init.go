package rule

import (
	"log/slog"

	"controle-estagiarios/internal/global/logger"
)

var log *slog.Logger

type ModuleRule struct{}

func (m *ModuleRule) GetName() string {
	return "Rule"
}

func (m *ModuleRule) Init() {
	log = logger.New("Rule")
}

func selfInit() {
	m := &ModuleRule{}
	m.Init()
}
