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

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/app/echo-server/router"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/business/ai"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/business/orders"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/business/product"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/business/scoring"
	userService "github.com/talha-dycoders/Intelligent-ecommerce-app/business/user"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/internal/middleware"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/internal/repository/notification"
	psqlRepo "github.com/talha-dycoders/Intelligent-ecommerce-app/internal/repository/postgres"
	redisRepo "github.com/talha-dycoders/Intelligent-ecommerce-app/internal/repository/redis"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/internal/rest"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/config"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/database"
	redisdb "github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/database/redis"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/logger"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/metrics"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Intelligent Ecommerce API", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init scoring engine
	engine, err := scoring.NewEngine()
	if err != nil {
		logger.Fatal("Failed to build scoring engine", "error", err)
	}

	// Init service
	aiSvc := ai.NewAIService(productsRepo, userRepo, engine)
	usrService := userService.NewUserService(userRepo, validate, mailjetEmail, sessionRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	productSvc := product.NewProductService(productsRepo, engine)
	ordersSvc := orders.NewOrdersService(ordersRepo, productsRepo)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	productHandler := rest.NewProductHandler(productSvc)
	ordersHandler := rest.NewOrdersHandler(ordersSvc)
	aiHandler := rest.NewAIHandler(aiSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithSessions(sessionRepo)
	adminOnly := middleware.AdminOnly()
	selfOrAdmin := middleware.SelfOrAdmin()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly, selfOrAdmin)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupOrdersRoutes(api, ordersHandler, authRequired, adminOnly)
	router.SetupAIRoutes(api, aiHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
