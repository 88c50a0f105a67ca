package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host    string `mapstructure:"host" envconfig:"HOST"`
	Port    string `mapstructure:"port" envconfig:"PORT"`
	Prefix  string `mapstructure:"prefix" envconfig:"PREFIX"`
	Mode    Mode   `mapstructure:"mode" envconfig:"MODE"`
	Admin   Admin  `mapstructure:"admin"`
	DB      DB     `mapstructure:"db"`
	Redis   Redis  `mapstructure:"redis"`
	JWT     JWT    `mapstructure:"jwt"`
	Log     Log    `mapstructure:"log"`
	S3      S3     `mapstructure:"s3"`
	Webhook Webhook `mapstructure:"webhook"`
}

// Admin seeds the single administrator account of the original system.
// The password is only used on first boot; afterwards the (hashed) value
// stored in the settings table wins.
type Admin struct {
	InitialPassword string `mapstructure:"initial_password" envconfig:"INITIAL_PASSWORD"`
}

type DB struct {
	// Driver is "sqlite" (default, single-file store) or "mysql".
	Driver   string `mapstructure:"driver" envconfig:"DRIVER"`
	File     string `mapstructure:"file" envconfig:"FILE"`
	Host     string `mapstructure:"host" envconfig:"HOST"`
	Port     string `mapstructure:"port" envconfig:"PORT"`
	Username string `mapstructure:"username" envconfig:"USERNAME"`
	Password string `mapstructure:"password" envconfig:"PASSWORD"`
	DBName   string `mapstructure:"db_name" envconfig:"DB_NAME"`
}

type Redis struct {
	Host     string `mapstructure:"host" envconfig:"HOST"`
	Port     string `mapstructure:"port" envconfig:"PORT"`
	Password string `mapstructure:"password" envconfig:"PASSWORD"`
	DB       int    `mapstructure:"db" envconfig:"DB"`
}

type JWT struct {
	AccessSecret string `mapstructure:"access_secret" envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `mapstructure:"access_expire" envconfig:"ACCESS_EXPIRE"`
}

type Log struct {
	FilePath   string `mapstructure:"file_path" envconfig:"LOG_FILE_PATH"`
	Level      string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	MaxSize    int    `mapstructure:"max_size" envconfig:"LOG_MAX_SIZE"`
	MaxBackups int    `mapstructure:"max_backups" envconfig:"LOG_MAX_BACKUPS"`
	MaxAge     int    `mapstructure:"max_age" envconfig:"LOG_MAX_AGE"`
	Compress   bool   `mapstructure:"compress" envconfig:"LOG_COMPRESS"`
}

type S3 struct {
	Endpoint     string `mapstructure:"endpoint" envconfig:"ENDPOINT"`
	Bucket       string `mapstructure:"bucket" envconfig:"BUCKET"`
	Region       string `mapstructure:"region" envconfig:"REGION"`
	AccessKey    string `mapstructure:"access_key" envconfig:"ACCESS_KEY"`
	SecretKey    string `mapstructure:"secret_key" envconfig:"SECRET_KEY"`
	Prefix       string `mapstructure:"prefix" envconfig:"PREFIX"`
	UsePathStyle bool   `mapstructure:"path_style" envconfig:"PATH_STYLE"`
}

// Webhook receives the renewal digest posted by the notify module.
type Webhook struct {
	URL string `mapstructure:"url" envconfig:"URL"`
}
