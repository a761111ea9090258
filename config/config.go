package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Secret string `yaml:"secret"`
}

type DBConfig struct {
	Type   string `yaml:"type"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Name   string `yaml:"name"`
	User   string `yaml:"user"`
	Passwd string `yaml:"passwd"`
	Debug  bool   `yaml:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system"`
	Web      WebConfig `yaml:"web"`
	Database DBConfig  `yaml:"database"`
	Logger   LogConfig `yaml:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "stocktrack",
		Location: "Asia/Shanghai",
		Workdir:  "/var/stocktrack",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1816,
		Secret: "9b6de5cc-0731-1203-xxtt-0f568ac9da37",
	},
	Database: DBConfig{
		Type: "sqlite",
		Host: "127.0.0.1",
		Port: 5432,
		Name: "stocktrack",
		User: "postgres",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/stocktrack/stocktrack.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v == "true" || v == "1" || v == "on")
	}
}

// LoadConfig reads the YAML config file if present, then applies
// STOCKTRACK_* environment overrides. A missing file is not an error;
// the defaults above apply.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig

	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse config file")
		}
	}

	_ = godotenv.Load()

	setEnvValue("STOCKTRACK_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("STOCKTRACK_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvBoolValue("STOCKTRACK_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("STOCKTRACK_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("STOCKTRACK_WEB_SECRET", func(v string) { cfg.Web.Secret = v })

	setEnvValue("STOCKTRACK_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("STOCKTRACK_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("STOCKTRACK_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("STOCKTRACK_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("STOCKTRACK_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("STOCKTRACK_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvValue("STOCKTRACK_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	return cfg, nil
}

// InitDirs creates the working directory layout.
func (c *AppConfig) InitDirs() error {
	return os.MkdirAll(filepath.Join(c.System.Workdir, "data"), 0o755)
}
