package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"digimart.backend/internal/config"
	"digimart.backend/internal/infrastructure/repositories"
	"digimart.backend/internal/infrastructure/storage"
	"digimart.backend/internal/interfaces/http/handlers"
	"digimart.backend/internal/interfaces/http/middleware"
	"digimart.backend/internal/usecases"
	"digimart.backend/pkg/jwt"
	"digimart.backend/pkg/logger"
	"digimart.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	openBucket      = storage.OpenBucketStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bucketStore, err := openBucket(ctx, cfg.Blob.BucketURL)
	if err != nil {
		return fmt.Errorf("failed to open blob bucket: %w", err)
	}
	defer bucketStore.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	sellerUsecase := usecases.NewSellerUsecase(userRepo)
	productUsecase := usecases.NewProductUsecase(productRepo, userRepo, bucketStore, cfg.Upload)
	catalogUsecase := usecases.NewCatalogUsecase(productRepo)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, productRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	sellerHandler := handlers.NewSellerHandler(sellerUsecase)
	adminHandler := handlers.NewAdminHandler(sellerUsecase, productUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	reviewHandler := handlers.NewReviewHandler(reviewUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		sellerHandler:  sellerHandler,
		adminHandler:   adminHandler,
		productHandler: productHandler,
		catalogHandler: catalogHandler,
		reviewHandler:  reviewHandler,
		authMiddleware: authMiddleware,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down server...")
		cancel()
	}()

	log.Printf("DigiMart backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
