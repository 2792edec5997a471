package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	ApiAddr        string `yaml:"api_addr"`         // backend listen address
	WebAddr        string `yaml:"web_addr"`         // frontend listen address
	ApiBaseURL     string `yaml:"api_base_url"`     // where the frontend reaches the backend
	ThreadTTLHours int    `yaml:"thread_ttl_hours"` // threads idle longer than this get deleted
	TitleMaxLen    int    `yaml:"title_max_len"`
	ContentMaxLen  int    `yaml:"content_max_len"`
	LogLevel       string `yaml:"log_level"`
	LogJSON        bool   `yaml:"log_json"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

// ThreadTTL is the idle window after which a thread becomes eligible for deletion.
func (c *Config) ThreadTTL() time.Duration {
	return time.Duration(c.Public.ThreadTTLHours) * time.Hour
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.ApiAddr == "" {
		c.Public.ApiAddr = ":8080"
	}
	if c.Public.WebAddr == "" {
		c.Public.WebAddr = ":8081"
	}
	if c.Public.ApiBaseURL == "" {
		c.Public.ApiBaseURL = "http://localhost:8080"
	}
	if c.Public.ThreadTTLHours <= 0 {
		c.Public.ThreadTTLHours = 12
	}
	if c.Public.TitleMaxLen <= 0 {
		c.Public.TitleMaxLen = 100
	}
	if c.Public.ContentMaxLen <= 0 {
		c.Public.ContentMaxLen = 4000
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
}
