package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"wanderlust/backend/internal/api"
	"wanderlust/backend/internal/cache"
	"wanderlust/backend/internal/config"
	"wanderlust/backend/internal/db"
	"wanderlust/backend/internal/email"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database. A missing URI or unreachable store is a warning,
	// not a fatal error: the server keeps running and enquiry submissions
	// fail at persistence time until the store is configured.
	var mongoClient *mongo.Client
	var mongoDb *mongo.Database
	if cfg.MongoURI == "" {
		log.Println("WARNING: MONGODB_URI is not set. Mongo connection will fail until configured.")
	} else {
		mongoClient, mongoDb, err = db.ConnectDB(cfg.MongoURI, cfg.MongoDbName)
		if err != nil {
			log.Printf("MongoDB connection error: %v", err)
		} else {
			defer func() {
				if err := db.DisconnectDB(mongoClient); err != nil {
					log.Printf("Error disconnecting from MongoDB: %v", err)
				}
			}()
		}
	}

	if !cfg.MailConfigured() {
		log.Println("WARNING: MAIL_USER, MAIL_PASSWORD, or ADMIN_EMAIL missing. Notification emails will be skipped until configured.")
	}

	// Initialize Email Sender
	var primaryEmailSender email.Sender
	if os.Getenv("MOCK_SERVICES") == "true" {
		log.Println("MOCK_SERVICES enabled: Using Redis email sender.")
		redisClient, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("MOCK_SERVICES enabled but Redis is unavailable: %v", err)
		}
		defer func() {
			if err := cache.DisconnectRedis(redisClient); err != nil {
				log.Printf("Error disconnecting from Redis: %v", err)
			}
		}()
		primaryEmailSender = email.NewRedisSender(redisClient)
	} else {
		primaryEmailSender = email.NewSMTPSender(cfg)
	}

	// Setup Composite Email Sender. It always includes the primary sender;
	// a file sink is added when LOG_EMAILS points at a log path.
	compositeSender := email.NewCompositeEmailSender(primaryEmailSender)
	if logEmailsPath := os.Getenv("LOG_EMAILS"); logEmailsPath != "" {
		fileSender, err := email.NewFileEmailSender(logEmailsPath)
		if err != nil {
			log.Printf("WARNING: Failed to initialize file email sender (LOG_EMAILS='%s'): %v. Proceeding without file logging.", logEmailsPath, err)
		} else {
			compositeSender.AddSender(fileSender)
		}
	}

	router := api.SetupRouter(cfg, mongoDb, compositeSender)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server listening on port %s\n", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	fmt.Printf("\nReceived signal: %s. Shutting down gracefully...\n", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	fmt.Println("Server gracefully stopped")
}
