package routes

import (
	"net/http"
	"time"

	"pawspa/handlers"
	"pawspa/middleware"
	"pawspa/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterCatalogRoutes registers the public grooming catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/packages", handlers.GetPackages)
		catalog.GET("/packages/:packageID", handlers.GetPackageByID)
		catalog.GET("/services", handlers.GetSingleServices)
		catalog.GET("/addons", handlers.GetAddOns)
		catalog.GET("/weight-tiers", handlers.GetWeightTiers)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r)
	RegisterBookingRoutes(r, bh)
}
