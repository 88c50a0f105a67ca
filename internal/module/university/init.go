package university

import (
	"log/slog"

	"controle-estagiarios/internal/global/logger"
)

var log *slog.Logger

type ModuleUniversity struct{}

func (m *ModuleUniversity) GetName() string {
	return "University"
}

func (m *ModuleUniversity) Init() {
	log = logger.New("University")
}

func selfInit() {
	m := &ModuleUniversity{}
	m.Init()
}
