//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"smart-search-agent/internal/domain"
	"smart-search-agent/internal/infrastructure"
	"smart-search-agent/internal/interfaces"
	"smart-search-agent/internal/interfaces/httpserver/routes"
)

func CreateApplication(ctx context.Context) (*Application, func(), error) {
	wire.Build(
		domain.DomainProvider,
		infrastructure.InfrastructureProvider,
		routes.RoutesProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
