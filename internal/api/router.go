package api

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"wanderlust/backend/internal/api/handlers"
	"wanderlust/backend/internal/api/middleware"
	"wanderlust/backend/internal/config"
	"wanderlust/backend/internal/email"
	"wanderlust/backend/internal/services"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, db *mongo.Database, sender email.Sender) *gin.Engine {
	enquiryService := services.NewEnquiryService(db)
	notificationService := services.NewNotificationService(cfg, sender)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	contactHandler := handlers.NewRestContactHandler(enquiryService, notificationService, cfg.AppName)

	r.POST("/api/contact", contactHandler.SubmitEnquiry)
	r.GET("/", contactHandler.Healthcheck)

	return r
}
