package routes

import (
	"fitness-catalog/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(router *gin.Engine, products *handlers.ProductHandler, status *handlers.StatusHandler) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/", handlers.Root)
		api.POST("/status", status.CreateStatusCheck)
		api.GET("/status", status.ListStatusChecks)

		api.POST("/products", products.CreateProduct)
		api.GET("/products", products.ListProducts)
		api.GET("/products/featured", products.FeaturedProducts)
		api.GET("/products/category/:category", products.ProductsByCategory)
		api.GET("/products/:id", products.GetProduct)
		api.PUT("/products/:id", products.UpdateProduct)
		api.DELETE("/products/:id", products.DeleteProduct)
		api.POST("/products/seed", products.SeedProducts)
	}
}
