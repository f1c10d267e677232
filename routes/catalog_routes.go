package routes

import (
	"github.com/gin-gonic/gin"

	"voltdrive/internal/handlers"
)

// SetupCatalogRoutes sets up routes for browsing the vehicle catalog
func SetupCatalogRoutes(r *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", catalogHandler.ListVehicles)
		vehicles.GET("/:slug", catalogHandler.GetVehicle)
	}

	// Kept off /vehicles: a static sibling of the :slug wildcard would not route.
	catalog := r.Group("/catalog")
	{
		catalog.GET("/featured", catalogHandler.ListFeatured)
		catalog.GET("/filters", catalogHandler.GetFilterMetadata)
	}
}
