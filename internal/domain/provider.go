package domain

import (
	"github.com/google/wire"

	domainsearch "smart-search-agent/internal/domain/search"
	"smart-search-agent/internal/domain/searchconfig"
)

// DomainProvider provides all domain services
var DomainProvider = wire.NewSet(
	domainsearch.NewSearchService,
	wire.Bind(new(domainsearch.ConfigProvider), new(*searchconfig.Resolver)),
)
