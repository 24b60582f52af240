package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "vehicle_quotation/internal/adapter/http/dto/response"
	"vehicle_quotation/internal/infrastructure/logging"
	"vehicle_quotation/internal/usecase"
)

// CatalogHandler exposes the read side of the catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	log     *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{usecase: uc, log: logging.OrNop(log).With(zap.String("component", "catalog.handler"))}
}

// ListOptions godoc
//
// @Summary List optionals
// @Tags catalog
// @Produce json
// @Success 200 {array} response.OptionResponse
// @Router /optionals [get]
func (h *CatalogHandler) ListOptions(c *gin.Context) {
	options, err := h.usecase.ListOptions(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOptions(options))
}

// ListVehicles godoc
//
// @Summary List vehicles
// @Tags catalog
// @Produce json
// @Success 200 {array} response.VehicleResponse
// @Router /vehicles [get]
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.usecase.ListVehicles(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

// ListVariations godoc
//
// @Summary List the variations of a vehicle
// @Tags catalog
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {array} response.VariationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /vehicles/{id}/variations [get]
func (h *CatalogHandler) ListVariations(c *gin.Context) {
	variations, err := h.usecase.ListVariations(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVariations(variations))
}
