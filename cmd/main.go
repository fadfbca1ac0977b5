package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adminapp "github.com/afribrok/marketplace-bff/application/admin"
	billingapp "github.com/afribrok/marketplace-bff/application/billing"
	inquiryapp "github.com/afribrok/marketplace-bff/application/inquiry"
	listingapp "github.com/afribrok/marketplace-bff/application/listing"
	settingsapp "github.com/afribrok/marketplace-bff/application/settings"
	userapp "github.com/afribrok/marketplace-bff/application/user"
	"github.com/afribrok/marketplace-bff/cmd/config"
	redisclient "github.com/afribrok/marketplace-bff/cmd/redis"
	_ "github.com/afribrok/marketplace-bff/docs"
	adminRepo "github.com/afribrok/marketplace-bff/repository/admin"
	authRepo "github.com/afribrok/marketplace-bff/repository/auth"
	billingRepo "github.com/afribrok/marketplace-bff/repository/billing"
	inquiryRepo "github.com/afribrok/marketplace-bff/repository/inquiry"
	listingRepo "github.com/afribrok/marketplace-bff/repository/listing"
	redisRepo "github.com/afribrok/marketplace-bff/repository/redis"
	settingsRepo "github.com/afribrok/marketplace-bff/repository/settings"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/afribrok/marketplace-bff/thirdparty/rabbitmq"
	"github.com/afribrok/marketplace-bff/transport"
	"github.com/afribrok/marketplace-bff/utils/logger"
	validatorx "github.com/afribrok/marketplace-bff/utils/validator"
	"go.uber.org/zap"
)

// @title AFRIBROK MARKETPLACE BFF
// @version 1.0
// @description Backend-for-frontend for the AfriBrok marketplace and admin console
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("api", cfg.API.BaseURL))

	validatorx.Init()

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set, token claims are read unverified for route gating")
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Events are optional; apps skip publishing when the publisher is nil
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	apiClient := marketapi.New(nil, cfg.API.BaseURL, cfg.API.Timeout)

	// Initialize repositories
	ListingRepo := listingRepo.NewListingRepository(apiClient)
	InquiryRepo := inquiryRepo.NewInquiryRepository(apiClient)
	SettingsRepo := settingsRepo.NewSettingsRepository(apiClient)
	AdminRepo := adminRepo.NewAdminRepository(apiClient)
	BillingRepo := billingRepo.NewBillingRepository(apiClient)
	AuthRepo := authRepo.NewAuthRepository(apiClient)
	RedisRepo := redisRepo.NewRepository()

	httpTransport := transport.NewTransport(&transport.RestHandler{
		Config:      cfg,
		UserApp:     userapp.NewUserApp(cfg, AuthRepo, RedisRepo),
		ListingApp:  listingapp.NewListingApp(ListingRepo),
		InquiryApp:  inquiryapp.NewInquiryApp(InquiryRepo, publisher),
		SettingsApp: settingsapp.NewSettingsApp(SettingsRepo, publisher),
		AdminApp:    adminapp.NewAdminApp(AdminRepo, publisher),
		BillingApp:  billingapp.NewBillingApp(BillingRepo),
		Ping:        redisclient.Ping,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
