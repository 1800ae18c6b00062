package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/internal/config"
	"storefront-api/internal/handlers"
	"storefront-api/internal/mailer"
	"storefront-api/internal/middleware"
	"storefront-api/internal/repository"
)

// RegisterRoutes wires the collections, repositories and handlers onto the
// router. cfg.AdminToken gates every /admin route.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, dispatcher *mailer.Dispatcher) {
	products := repository.NewProductRepository(db.Collection("products"))
	business := repository.NewBusinessRepository(db.Collection("business"))
	orders := repository.NewOrderRepository(db.Collection("inkorders"))

	productHandler := handlers.NewProductHandler(products)
	businessHandler := handlers.NewBusinessHandler(business)
	orderHandler := handlers.NewOrderHandler(orders, business, dispatcher)
	healthHandler := handlers.NewHealthHandler(db, cfg.MongoURI != "")

	router.GET("/", healthHandler.Root)
	router.GET("/test", healthHandler.Diagnostics)
	router.GET("/products", productHandler.List)
	router.GET("/business", businessHandler.Get)
	router.POST("/orders/ink", orderHandler.Create)

	admin := router.Group("/admin", middleware.RequireAdmin(cfg.AdminToken))
	{
		admin.GET("/products", productHandler.AdminList)
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)
		admin.GET("/business", businessHandler.AdminGet)
		admin.PUT("/business", businessHandler.Upsert)
	}
}
