package internal

import (
	"net/http"

	"cardmirror/internal/controllers"
	"cardmirror/internal/providers"
	"cardmirror/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/card", http.HandlerFunc(apiController.GetCard))
	routers.Get("/search", http.HandlerFunc(apiController.Search))
	routers.Get("/autocomplete", http.HandlerFunc(apiController.Autocomplete))
	routers.Post("/import", http.HandlerFunc(apiController.Import))
	routers.Post("/export", http.HandlerFunc(apiController.Export))
	routers.Post("/invalidate", http.HandlerFunc(apiController.Invalidate))
	return routers
}
