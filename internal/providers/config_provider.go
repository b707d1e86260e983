package providers

import (
	"cardmirror/internal/structures"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "CARDMIRROR_LOG_LEVEL")
	viper.BindEnv("scryfall.baseUrl", "CARDMIRROR_API_BASE_URL")
	viper.BindEnv("scryfall.minInterval", "CARDMIRROR_API_MIN_INTERVAL")
	viper.BindEnv("cache.cardTTL", "CARDMIRROR_CARD_TTL")
	viper.BindEnv("cache.priceTTL", "CARDMIRROR_PRICE_TTL")
	viper.BindEnv("store.dir", "CARDMIRROR_STORE_DIR")
	viper.BindEnv("responseCache.enabled", "CARDMIRROR_RESPONSE_CACHE_ENABLED")
	viper.BindEnv("responseCache.size", "CARDMIRROR_RESPONSE_CACHE_SIZE")

	viper.SetDefault("scryfall.baseUrl", "https://api.scryfall.com")
	viper.SetDefault("scryfall.minInterval", "100ms")
	viper.SetDefault("cache.cardTTL", "4320h")
	viper.SetDefault("cache.priceTTL", "24h")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "CardMirror"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
