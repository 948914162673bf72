package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"utsav/activity-service/internal/config"
	"utsav/activity-service/internal/handler"
	"utsav/activity-service/internal/repository"
	"utsav/activity-service/internal/services"
	"utsav/activity-service/internal/utils"
)

func main() {
	baseCtx := context.Background()
	ctx, shutdownManager := utils.NewShutdownManager(baseCtx)
	shutdownManager.StartListening()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	db := mongoClient.Database(cfg.MongoDBName)

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("Invalid Redis URL:", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing Redis connection...")
		return rdb.Close()
	})

	savedItemRepo := repository.NewSavedItemRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	orderRepo := repository.NewPlacedOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Unique (user_id, item_id) indexes back the one-saved-item-per-user and
	// one-review-per-user invariants.
	if err := savedItemRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create saved_items indexes:", err)
	}
	if err := reviewRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create reviews indexes:", err)
	}

	notifier := utils.NewNotificationClient(cfg.NotifiServiceURL)

	savedItemService := services.NewSavedItemService(savedItemRepo, userRepo, rdb)
	reviewService := services.NewReviewService(reviewRepo, userRepo, rdb)
	bookingService := services.NewBookingService(orderRepo, userRepo, notifier)

	savedItemHandler := handler.NewSavedItemHandler(savedItemService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	activity := router.Group("/api/activity")
	{
		activity.GET("/getAllReviews/:itemId", reviewHandler.GetAllReviews)
		activity.POST("/verifyUserBeforeBooking", bookingHandler.VerifyUserBeforeBooking)
		activity.POST("/bookVenue", bookingHandler.BookVenue)

		protected := activity.Group("/")
		protected.Use(utils.AuthMiddleware(cfg.AuthServiceURL))
		{
			protected.POST("/saveItem", savedItemHandler.SaveItem)
			protected.DELETE("/removeItem/:id", savedItemHandler.RemoveItem)
			protected.GET("/getSavedItems", savedItemHandler.GetSavedItems)
			protected.GET("/checkVenue/:id", savedItemHandler.CheckVenue)
			protected.POST("/saveReview", reviewHandler.SaveReview)
			protected.DELETE("/deleteReview/:id", reviewHandler.DeleteReview)
			protected.GET("/fetchAllReviews", reviewHandler.FetchAllReviews)
			protected.GET("/fetchPlacedOrdersData", bookingHandler.FetchPlacedOrdersData)
		}
	}

	server := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Activity service running on %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	select {}
}
