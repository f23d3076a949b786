package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"reptileshop/internal/adapter/api"
	"reptileshop/internal/adapter/api/handler"
	apimiddleware "reptileshop/internal/adapter/api/middleware"
	"reptileshop/internal/adapter/api/router"
	"reptileshop/internal/adapter/repository"
	"reptileshop/internal/infrastructure/auth"
	"reptileshop/internal/infrastructure/queue"
	"reptileshop/internal/infrastructure/storage"
	"reptileshop/internal/usecase"
	"reptileshop/pkg/config"
	"reptileshop/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	// Emails go through RabbitMQ when it is configured; otherwise they are
	// sent directly through Mailgun from the request path.
	var notifier usecase.Notifier
	if cfg.RabbitMQURL != "" {
		publisher, err := queue.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		notifier = publisher
	} else {
		notifier = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender, cfg.MailSenderName)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	forumRepo := repository.NewFirestoreForumRepository(firestoreClient)
	cartRepo := repository.NewRedisCartRepository(redisClient, time.Duration(cfg.CartTTLHours)*time.Hour)

	jwtManager := auth.NewJWTManager(
		cfg.JWTSecret,
		time.Duration(cfg.JWTExpiry)*time.Second,
		time.Duration(cfg.ResetExpiry)*time.Second,
	)

	authUseCase := usecase.NewAuthUseCase(userRepo, jwtManager, notifier, cfg.BaseURL)
	userUseCase := usecase.NewUserUseCase(userRepo, cfg.ProtectedAdminEmail)
	productUseCase := usecase.NewProductUseCase(productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, cartRepo, notifier)
	forumUseCase := usecase.NewForumUseCase(forumRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)

	handler.Setup(authUseCase, userUseCase, productUseCase, orderUseCase, forumUseCase, cartUseCase)
	handler.SetupFileHandler(storageClient)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtManager)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
