package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

var ErrConfigPathIsEmpty = errors.New("config path is empty")

type Config struct {
	App        `yaml:"app"`
	Logger     `yaml:"log"`
	Database   `yaml:"database"`
	Redis      `yaml:"redis"`
	HTTPServer `yaml:"http_server"`
	Mailer     `yaml:"mailer"`
}

type App struct {
	ServiceName string `yaml:"service_name"`
	Version     string `yaml:"version"`
}

type Logger struct {
	Level      string   `yaml:"level"`
	FormatJSON bool     `yaml:"format_json"`
	Rotation   Rotation `yaml:"rotation"`
}

type Rotation struct {
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

type Database struct {
	Host           string        `yaml:"host" env:"DB_HOST"`
	Port           uint16        `yaml:"port" env:"DB_PORT"`
	User           string        `yaml:"user" env:"DB_USER"`
	Password       string        `yaml:"password" env:"DB_PASSWORD"`
	Name           string        `yaml:"name" env:"DB_NAME"`
	SSLMode        string        `yaml:"ssl_mode"`
	MaxConns       int32         `yaml:"max_conns"`
	MinConns       int32         `yaml:"min_conns"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	MaxConnIdle    time.Duration `yaml:"max_conn_idle"`
	Migration      Migration     `yaml:"migration"`
}

type Migration struct {
	Path      string `yaml:"path"`
	AutoApply bool   `yaml:"auto_apply"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST"`
	Port     uint16 `yaml:"port" env:"REDIS_PORT"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
}

type HTTPServer struct {
	Host      string    `yaml:"host"`
	Port      uint16    `yaml:"port" env:"PORT"`
	BasePath  string    `yaml:"base_path"`
	Timeout   Timeout   `yaml:"timeout"`
	CORS      CORS      `yaml:"cors"`
	RateLimit RateLimit `yaml:"rate_limit"`
	MaxBody   int64     `yaml:"max_body"`
}

type Timeout struct {
	Request time.Duration `yaml:"request"`
	Read    time.Duration `yaml:"read"`
	Write   time.Duration `yaml:"write"`
	Idle    time.Duration `yaml:"idle"`
}

type CORS struct {
	Enabled          bool          `yaml:"enabled"`
	AllowAllOrigins  bool          `yaml:"allow_all_origins"`
	AllowOrigins     []string      `yaml:"allow_origins"`
	AllowMethods     []string      `yaml:"allow_methods"`
	AllowHeaders     []string      `yaml:"allow_headers"`
	ExposeHeaders    []string      `yaml:"expose_headers"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	MaxAge           time.Duration `yaml:"max_age"`
}

type RateLimit struct {
	Enabled     bool          `yaml:"enabled"`
	MaxRequests int64         `yaml:"max_requests"`
	Window      time.Duration `yaml:"window"`
}

type Mailer struct {
	Host         string `yaml:"host" env:"SMTP_HOST"`
	Port         int    `yaml:"port" env:"SMTP_PORT"`
	Username     string `yaml:"username" env:"SMTP_USER"`
	Password     string `yaml:"password" env:"SMTP_PASS"`
	From         string `yaml:"from"`
	UseTLS       bool   `yaml:"use_tls"`
	AdminEmail   string `yaml:"admin_email" env:"ADMIN_EMAIL"`
	NotifyPolicy string `yaml:"notify_policy"`
}

func MustLoadConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}

	return cfg
}

func LoadConfig() (*Config, error) {
	path := fetchConfigPath()
	if path == "" {
		return nil, ErrConfigPathIsEmpty
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var config Config

	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &config, nil
}

func MustPrintConfig(cfg *Config) {
	if err := PrintConfig(cfg); err != nil {
		panic(err)
	}
}

func PrintConfig(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	println(string(data))

	return nil
}

func fetchConfigPath() string {
	var result string

	flag.StringVar(&result, "config", "", "Path to config file")
	flag.Parse()

	if result == "" {
		result = os.Getenv("CONFIG_PATH")
	}

	return result
}
