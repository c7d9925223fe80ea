package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/kchitera56/bakholokoe-website/internal/api"
	"github.com/kchitera56/bakholokoe-website/internal/cache"
	"github.com/kchitera56/bakholokoe-website/internal/config"
	"github.com/kchitera56/bakholokoe-website/internal/db"
	"github.com/kchitera56/bakholokoe-website/internal/email"
	"github.com/kchitera56/bakholokoe-website/internal/storage"
	"github.com/kchitera56/bakholokoe-website/internal/tasks"
)

var runMode = flag.String("m", "all", "Run mode: 'web' (HTTP site), 'worker' (email delivery), 'all' (default)")

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*runMode)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database
	mongoClient, mongoDb, err := db.ConnectDB(cfg.MongoURI, cfg.MongoDbName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.DisconnectDB(mongoClient); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := db.EnsureReviewUserIndex(ctx, mongoDb); err != nil {
			log.Printf("WARNING: %v", err)
		}
		cancel()
	}

	// Initialize Redis (task broker, mock email store)
	redisClient, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() {
		if err := cache.DisconnectRedis(redisClient); err != nil {
			log.Printf("Error disconnecting from Redis: %v", err)
		}
	}()

	// Initialize Email Sender
	var primaryEmailSender email.Sender
	if os.Getenv("MOCK_SERVICES") == "true" {
		log.Println("MOCK_SERVICES enabled: Using Redis email sender.")
		primaryEmailSender = email.NewRedisSender(redisClient, cfg)
	} else {
		primaryEmailSender = email.NewSMTPSender(cfg)
	}

	// The composite sender always includes the primary sender; a file logger is
	// added when LOG_EMAILS points at a path.
	compositeSender := email.NewCompositeEmailSender(primaryEmailSender)
	if logEmailsPath := os.Getenv("LOG_EMAILS"); logEmailsPath != "" {
		fileSender, err := email.NewFileEmailSender(logEmailsPath, cfg)
		if err != nil {
			log.Printf("WARNING: Failed to initialize file email sender (LOG_EMAILS='%s'): %v. Proceeding without file logging.", logEmailsPath, err)
		} else {
			compositeSender.AddSender(fileSender)
			log.Printf("File email logger enabled at %s", logEmailsPath)
		}
	}
	finalEmailSender := email.Sender(compositeSender)

	// Gallery storage (S3), degrades to empty when unconfigured
	galleryStorage, err := storage.NewGalleryStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize gallery storage: %v", err)
	}

	// Task client for enqueuing notification emails
	taskClient := tasks.NewClient(redisClient)
	defer taskClient.Close()
	notifier := tasks.NewNotifier(cfg, taskClient)

	var wg sync.WaitGroup

	var webSrv *http.Server
	var workerSrv *asynq.Server

	log.Printf("Starting application in '%s' mode...", cfg.RunMode)

	webMode := func() {
		router := api.SetupRouter(cfg, mongoDb, notifier, galleryStorage)
		webSrv = &http.Server{
			Addr:    ":" + cfg.WebPort,
			Handler: router,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Printf("Web server listening on :%s", cfg.WebPort)
			if err := webSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Web server ListenAndServe error: %v", err)
			}
			log.Println("Web server stopped.")
		}()
	}

	workerMode := func() {
		processor := tasks.NewTaskProcessor(cfg, finalEmailSender)
		workerSrv = tasks.NewServer(redisClient)
		mux := tasks.NewMux(processor)
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Println("Email delivery worker starting...")
			if err := workerSrv.Run(mux); err != nil {
				log.Fatalf("Worker server error: %v", err)
			}
			log.Println("Worker server stopped.")
		}()
	}

	switch cfg.RunMode {
	case "web":
		webMode()
	case "worker":
		workerMode()
	case "all":
		webMode()
		workerMode()
	default:
		log.Fatalf("Invalid run mode specified: %s.", cfg.RunMode)
	}

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down gracefully...", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if webSrv != nil {
		if err := webSrv.Shutdown(ctxShutdown); err != nil {
			log.Printf("Web server shutdown error: %v", err)
		}
	}
	if workerSrv != nil {
		workerSrv.Shutdown()
	}

	wg.Wait()
	log.Println("Server gracefully stopped")
}
