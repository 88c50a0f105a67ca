package server

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"controle-estagiarios/config"
	"controle-estagiarios/internal/global/cache"
	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/httpclient"
	"controle-estagiarios/internal/global/logger"
	"controle-estagiarios/internal/global/middleware"
	"controle-estagiarios/internal/module"
	"controle-estagiarios/tools"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	database.Init()
	cache.Init()
	httpclient.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
