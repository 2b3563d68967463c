package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"efmode-api-io/api/controllers"
	"efmode-api-io/api/middleware"
	"efmode-api-io/api/store"
)

func InitRoute(s store.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorsMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/", controllers.Root())
	router.GET("/test", controllers.TestDatabase(s))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/products", controllers.GetAllProducts(s))
		api.POST("/products", controllers.CreateProduct(s))
		api.GET("/collections", controllers.GetAllCollections(s))
		api.POST("/collections", controllers.CreateCollection(s))
		api.GET("/reviews", controllers.GetAllReviews(s))
		api.POST("/reviews", controllers.CreateReview(s))
		api.GET("/gallery", controllers.GetAllGalleryItems(s))
		api.POST("/gallery", controllers.CreateGalleryItem(s))
		api.POST("/contact", controllers.CreateContactMessage(s))
		api.POST("/orders", controllers.CreateOrder(s))
		api.POST("/bookings", controllers.CreateBooking(s))
	}

	return router
}
