package main

import (
	"log"
	"net/http"

	_ "rockschool/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rockschool/internal/auth"
	"rockschool/internal/cache"
	"rockschool/internal/config"
	"rockschool/internal/db"
	"rockschool/internal/handler"
	"rockschool/internal/model"
	"rockschool/internal/payments"
	"rockschool/internal/repository"
	"rockschool/internal/router"
	"rockschool/internal/service"
)

// @title School of Rock API
// @version 1.0
// @description Music school booking API with class listings, cart, and payment settlement.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET must be set")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	log.Println("database connected")

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ClassListing{},
		&model.InstructorListing{},
		&model.CartItem{},
		&model.Review{},
		&model.PaymentRecord{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	classRepo := repository.NewClassRepository(gormDB)
	instructorRepo := repository.NewInstructorRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	// Initialize auth and provider clients
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	provider := payments.NewClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey)

	// Initialize services
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(classRepo, instructorRepo, reviewRepo, cacheClient)
	cartService := service.NewCartService(cartRepo, classRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, cartRepo, provider, cfg.PaymentCurrency)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(jwtService)
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	seedHandler := handler.NewSeedHandler(catalogService)

	// Register routes
	router.Register(
		e,
		cfg,
		userService,
		authHandler,
		userHandler,
		catalogHandler,
		cartHandler,
		paymentHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("server port: %s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
