package sheet

import (
	"log/slog"

	"controle-estagiarios/internal/global/logger"
)

var log *slog.Logger

type ModuleSheet struct{}

func (m *ModuleSheet) GetName() string {
	return "Sheet"
}

func (m *ModuleSheet) Init() {
	log = logger.New("Sheet")
}

func selfInit() {
	m := &ModuleSheet{}
	m.Init()
}
