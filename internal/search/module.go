package search

import (
	apphttp "address_search_backend/internal/http"
	"address_search_backend/internal/search/client"
	"address_search_backend/internal/search/handler"
	"address_search_backend/internal/search/service"
	"address_search_backend/platform/config"
	"address_search_backend/platform/logger"
	"address_search_backend/platform/validator"
)

// ModuleConfig combines the config interfaces the search module needs.
type ModuleConfig interface {
	config.ProviderConfig
	config.SearchConfig
}

// Module wires the address search HTTP routes.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

func NewModule(cfg ModuleConfig, log *logger.Logger, val *validator.Validator) (*Module, error) {
	providerClient := client.New(cfg, log)
	svc, err := service.New(providerClient, cfg, log)
	if err != nil {
		return nil, err
	}
	h := handler.New(svc, val, log)

	return &Module{handler: h, svc: svc}, nil
}

func (m *Module) Name() string {
	return "search"
}

// Service exposes the module's search service to other domains.
func (m *Module) Service() AddressSearchService {
	return m.svc
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/addresses/search")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
