//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/controllers"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/providers"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/services"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewKeystoreProvider,
		providers.NewMetricsProvider,
		providers.NewLedgerProvider,

		services.NewNFTService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
