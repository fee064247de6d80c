package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string          `yaml:"env" env:"ENV" env-default:"local"`
	DatabaseUrl string          `yaml:"database_url" env:"DATABASE_URL" env-required:"true"`
	MaxConns    int32           `yaml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"4"`
	Server      ServerConfig    `yaml:"http"`
	JWT         JWTSecret       `yaml:"jwt"`
	Stats       StatsConfig     `yaml:"stats"`
	Scheduler   SchedulerConfig `yaml:"scheduler"`
	Mail        MailConfig      `yaml:"mail"`
	Log         LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Port           string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env-default:"15s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type JWTSecret struct {
	Secret string `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
}

type StatsConfig struct {
	Workers  int    `yaml:"workers" env:"STATS_WORKERS" env-default:"4"`
	Timezone string `yaml:"timezone" env:"STATS_TIMEZONE" env-default:"Local"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m"`
}

type MailConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:"reports@localhost"`
}

type LogConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	File       string `yaml:"file" env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env-default:"100"`
	MaxBackups int    `yaml:"max_backups" env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env-default:"28"`
}

// Location resolves the timezone used for day boundaries in statistics.
func (c StatsConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func MustLoad() *Config {
	path := fetchConfigPath()

	if path == "" {
		panic("Config file not found in path")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("Config file not found in path: " + path)
	}

	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	var config Config
	log.Printf("Loading config from %s", path)
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, err
	}
	if _, err := config.Stats.Location(); err != nil {
		return nil, err
	}
	return &config, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = "./config/local.yaml"
	}

	return res
}
