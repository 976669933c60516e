package config

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SystemConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host          string `yaml:"host" json:"host"`
	Port          int    `yaml:"port" json:"port"`
	Secret        string `yaml:"secret" json:"secret"`
	UploadDir     string `yaml:"upload_dir" json:"upload_dir"`
	SessionMaxAge int    `yaml:"session_max_age" json:"session_max_age"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type SmtpConfig struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
}

type NotifyConfig struct {
	WebhookURL    string     `yaml:"webhook_url" json:"webhook_url"`
	WhatsappPhone string     `yaml:"whatsapp_phone" json:"whatsapp_phone"`
	Workers       int        `yaml:"workers" json:"workers"`
	Smtp          SmtpConfig `yaml:"smtp" json:"smtp"`
}

type AppConfig struct {
	System SystemConfig `yaml:"system" json:"system"`
	Web    WebConfig    `yaml:"web" json:"web"`
	Logger LoggerConfig `yaml:"logger" json:"logger"`
	Notify NotifyConfig `yaml:"notify" json:"notify"`
}

var DefaultAppConfig = &AppConfig{
	System: SystemConfig{
		Appid:    "Showcase",
		Location: "Asia/Kolkata",
		Workdir:  "/var/showcase",
		Debug:    true,
	},
	Web: WebConfig{
		Host:          "0.0.0.0",
		Port:          1860,
		Secret:        "9b6de5cc-showcase-1e24-9ff2b45lead8b",
		UploadDir:     "public/properties",
		SessionMaxAge: 1800,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/showcase/showcase.log",
	},
	Notify: NotifyConfig{
		Workers: 4,
	},
}

func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(path.Join(c.System.Workdir), 0o755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "data"), 0o755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "backup"), 0o755)
	_ = os.MkdirAll(c.Web.UploadDir, 0o755)
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

// LoadConfig loads the yaml configuration file, falling back to defaults
// when the file is absent. Environment variables override file values.
func LoadConfig(cfile string) *AppConfig {
	// development defaults under the current directory
	if cfile == "" {
		cfile = "showcase.yml"
	}
	cfg := DefaultAppConfig
	if _, err := os.Stat(cfile); err == nil {
		data, err := os.ReadFile(cfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read config error: %v\n", err)
		} else if err = yaml.Unmarshal(data, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "parse config error: %v\n", err)
		}
	}

	setEnvValue("SHOWCASE_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("SHOWCASE_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("SHOWCASE_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("SHOWCASE_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("SHOWCASE_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("SHOWCASE_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvValue("SHOWCASE_NOTIFY_WEBHOOK_URL", func(v string) { cfg.Notify.WebhookURL = v })
	setEnvValue("SHOWCASE_NOTIFY_WHATSAPP_PHONE", func(v string) { cfg.Notify.WhatsappPhone = v })

	return cfg
}
