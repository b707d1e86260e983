//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"cardmirror/internal"
	"cardmirror/internal/controllers"
	"cardmirror/internal/providers"
	"cardmirror/internal/scryfall"
	"cardmirror/internal/services"
	"cardmirror/internal/storage"
	"cardmirror/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewStoreProvider,
		providers.NewMetricsProvider,

		storage.NewZstdCompressor,
		storage.NewScheduler,
		scryfall.NewPacer,
		scryfall.NewClient,
		services.NewCardCacheService,
		services.NewCardService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
