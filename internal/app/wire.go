//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/daymade/medscribe/internal/api/server"
)

// InitializeServer builds the HTTP server with every dependency resolved
// from the environment.
func InitializeServer() (*server.Server, error) {
	wire.Build(
		provideServerEnvConfig,
		provideZapLogger,
		provideHTTPLogger,
		providePrompts,
		provideRegistry,
		provideStats,
		provideMetrics,
		provideRunner,
		provideStager,
		provideSessions,
		provideArchive,
		provideContainer,
		provideServerConfig,
		server.NewServer,
	)
	return nil, nil
}

// InitializeCLI builds the pieces shared by the process and batch commands.
func InitializeCLI() (*CLI, error) {
	wire.Build(
		provideServerEnvConfig,
		provideZapLogger,
		providePrompts,
		provideRegistry,
		provideStats,
		provideCLIRunner,
		provideStager,
		NewCLI,
	)
	return nil, nil
}
