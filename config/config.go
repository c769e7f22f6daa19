package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	JwtSecret string `yaml:"jwt_secret" json:"jwt_secret"`
}

type DBConfig struct {
	Type    string `yaml:"type" json:"type"`
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	Name    string `yaml:"name" json:"name"`
	User    string `yaml:"user" json:"user"`
	Passwd  string `yaml:"passwd" json:"passwd"`
	MaxConn int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int   `yaml:"idle_conn" json:"idle_conn"`
	Debug   bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	Filename   string `yaml:"filename" json:"filename"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
}

// MediaConfig points at the headless CMS used for image storage.
type MediaConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint"`
	Token    string `yaml:"token" json:"token"`
}

type AppConfig struct {
	System   SysConfig   `yaml:"system" json:"system"`
	Web      WebConfig   `yaml:"web" json:"web"`
	Database DBConfig    `yaml:"database" json:"database"`
	Logger   LogConfig   `yaml:"logger" json:"logger"`
	Media    MediaConfig `yaml:"media" json:"media"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "catalogd",
		Location: "Asia/Jakarta",
		Workdir:  "/var/catalogd",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      1816,
		JwtSecret: "9b6de5cc-0731-bb10-catalogd",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "catalogd",
		User:     "postgres",
		Passwd:   "catalogd",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		Filename:   "/var/catalogd/catalogd.log",
		FileEnable: true,
	},
	Media: MediaConfig{
		Endpoint: "http://127.0.0.1:1337",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads the YAML configuration file and applies environment
// overrides. A missing file falls back to DefaultAppConfig.
func LoadConfig(cfile string) *AppConfig {
	// load .env if present, ignore when absent
	_ = godotenv.Load()

	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if _, err := os.Stat(cfile); err == nil {
			data, err := os.ReadFile(cfile)
			if err == nil {
				_ = yaml.Unmarshal(data, cfg)
			}
		}
	}

	setEnvValue("CATALOGD_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("CATALOGD_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvBoolValue("CATALOGD_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("CATALOGD_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("CATALOGD_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("CATALOGD_WEB_JWT_SECRET", func(v string) { cfg.Web.JwtSecret = v })

	setEnvValue("CATALOGD_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("CATALOGD_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("CATALOGD_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("CATALOGD_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("CATALOGD_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("CATALOGD_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("CATALOGD_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvValue("CATALOGD_MEDIA_ENDPOINT", func(v string) { cfg.Media.Endpoint = v })
	setEnvValue("CATALOGD_MEDIA_TOKEN", func(v string) { cfg.Media.Token = v })

	cfg.initDirs()
	return cfg
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(filepath.Join(c.System.Workdir), 0755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "logs"), 0755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "data"), 0755)
}
