package config

import (
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init loads config.yaml (searched in the working directory and /etc/estagiarios)
// and then applies CE_* environment overrides on top.
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/estagiarios")

		setDefaults(v)

		if err := v.ReadInConfig(); err != nil {
			// No file is fine, defaults plus environment carry the config.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				panic(err)
			}
		}

		cfg := &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			panic(err)
		}
		if err := envconfig.Process("CE", cfg); err != nil {
			panic(err)
		}

		if cfg.Mode != ModeRelease {
			cfg.Mode = ModeDebug
		}
		cfg.Prefix = strings.Trim(cfg.Prefix, "/")

		instance = cfg
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("prefix", "api")
	v.SetDefault("mode", "debug")
	v.SetDefault("admin.initial_password", "123456")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.file", "estagiarios.db")
	v.SetDefault("jwt.access_secret", "estagiarios-dev-secret")
	v.SetDefault("jwt.access_expire", 7200)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)
}

// Get returns the loaded config; Init must have run first.
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}
