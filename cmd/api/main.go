package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/config"
	"storefront-api/internal/database"
	"storefront-api/internal/mailer"
	"storefront-api/internal/routes"
)

const notificationQueueSize = 64

func main() {
	cfg := config.LoadConfig()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDB)

	if cfg.SMTP.Host == "" {
		log.Println("SMTP_HOST not set, order notifications are disabled")
	}
	dispatcher := mailer.NewDispatcher(mailer.New(cfg.SMTP), notificationQueueSize)
	dispatcher.Start()
	defer dispatcher.Stop()

	router := gin.Default()
	routes.RegisterRoutes(router, db, cfg, dispatcher)

	log.Println("server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
