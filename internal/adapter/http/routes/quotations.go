package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_quotation/internal/adapter/http/handlers"
)

const (
	PathQuotations = "/quotations"
	PathVehicles   = "/vehicles"
	PathOptionals  = "/optionals"
)

func addQuotationRoutes(rg *gin.RouterGroup, h *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("", h.ListQuotations)
		quotations.GET("/search", h.SearchQuotations)
		quotations.GET("/:id", h.GetQuotation)
		quotations.GET("/:id/pdf", h.GetQuotationDocument)
		quotations.POST("", h.CreateQuotation)
		quotations.PUT("/:id", h.UpdateQuotation)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathOptionals, h.ListOptions)

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:id/variations", h.ListVariations)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
