package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cardmirror/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Scryfall: structures.ScryfallConfig{
			BaseURL:     "https://api.scryfall.com",
			MinInterval: 100 * time.Millisecond,
		},
		Cache: structures.CacheTTLConfig{
			CardTTL:  180 * 24 * time.Hour,
			PriceTTL: 24 * time.Hour,
		},
		Store: structures.StoreConfig{
			Dir: "/var/lib/cardmirror",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingBaseURL(t *testing.T) {
	c := validConfig()
	c.Scryfall.BaseURL = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroCardTTL(t *testing.T) {
	c := validConfig()
	c.Cache.CardTTL = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
