// Package handler exposes the address search HTTP endpoint.
package handler

import (
	"address_search_backend/internal/search/domain"
	"address_search_backend/internal/search/service"
	"address_search_backend/internal/search/transport"
	"address_search_backend/platform/apperr"
	"address_search_backend/platform/httpkit"
	"address_search_backend/platform/logger"
	"address_search_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Search)
}

// Search handles GET /api/v1/addresses/search?q=...&limit=...&country=...
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.HandleError(c, h.log, apperr.Wrap(apperr.KindInvalidInput, "invalid request", err))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, h.log, apperr.Wrap(apperr.KindInvalidInput, err.Error(), err))
		return
	}

	result, err := h.svc.Search(c.Request.Context(), domain.RawQuery{
		Text:    req.Query,
		Limit:   req.Limit,
		Country: req.Country,
	})
	if httpkit.HandleError(c, h.log, err) {
		return
	}

	httpkit.OK(c, transport.NewSearchResponse(result))
}
