package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type ScryfallConfig struct {
	BaseURL     string        `yaml:"baseUrl" validate:"required"`
	MinInterval time.Duration `yaml:"minInterval" validate:"required|min:1"`
	Timeout     time.Duration `yaml:"timeout"`
}

type CacheTTLConfig struct {
	CardTTL  time.Duration `yaml:"cardTTL" validate:"required|min:1"`
	PriceTTL time.Duration `yaml:"priceTTL" validate:"required|min:1"`
}

type StoreConfig struct {
	Dir        string        `yaml:"dir" validate:"required|unixPath"`
	GCInterval time.Duration `yaml:"gcInterval"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type ResponseCacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName       string
	Debug         bool
	Path          string
	WebServer     Server              `yaml:"webServer"`
	Scryfall      ScryfallConfig      `yaml:"scryfall"`
	Cache         CacheTTLConfig      `yaml:"cache"`
	Store         StoreConfig         `yaml:"store"`
	Logger        LoggerConfig        `yaml:"logger"`
	ResponseCache ResponseCacheConfig `yaml:"responseCache"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}
