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

	"verifyme.backend/internal/config"
	"verifyme.backend/internal/infrastructure/jobs"
	"verifyme.backend/internal/infrastructure/repositories"
	"verifyme.backend/internal/interfaces/http/handlers"
	"verifyme.backend/internal/interfaces/http/middleware"
	"verifyme.backend/internal/usecases"
	"verifyme.backend/pkg/crypto"
	"verifyme.backend/pkg/jwt"
	"verifyme.backend/pkg/logger"
	"verifyme.backend/pkg/mail"
	"verifyme.backend/pkg/redis"
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
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize data-at-rest encryption
	secretbox, err := crypto.NewSecretbox(cfg.Security.DataEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize secretbox: %w", err)
	}

	// Initialize repositories
	companyRepo := repositories.NewCompanyRepository(db)
	channelRepo := repositories.NewChannelRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	attemptRepo := repositories.NewAttemptRepository(db, secretbox)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize mailer
	mailer := mail.NewMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.FrontendURL,
	)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(companyRepo, jwtService, mailer, sessionStore, cfg.Verify.TokenExpiry, cfg.JWT.RefreshExpiry)
	channelUsecase := usecases.NewChannelUsecase(channelRepo)
	verifyUsecase := usecases.NewVerifyUsecase(channelRepo, companyRepo, attemptRepo)
	bulkUsecase := usecases.NewBulkUsecase(channelRepo, usecases.NewStubChecker(), cfg.Verify.WorkerCount, cfg.Verify.AttemptTimeout)
	reportUsecase := usecases.NewReportUsecase(reportRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	channelHandler := handlers.NewChannelHandler(channelUsecase)
	verifyHandler := handlers.NewVerifyHandler(verifyUsecase)
	csvHandler := handlers.NewCSVHandler(bulkUsecase)
	reportHandler := handlers.NewReportHandler(reportUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewTokenExpiryJob(companyRepo)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimiter(ctx, cfg.RateLimit.APIRequests, cfg.RateLimit.APIInterval))

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:    authHandler,
		channelHandler: channelHandler,
		verifyHandler:  verifyHandler,
		csvHandler:     csvHandler,
		reportHandler:  reportHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
		verifyLimiter:  middleware.RateLimiter(ctx, cfg.RateLimit.VerifyRequests, cfg.RateLimit.VerifyInterval),
		botDetection:   middleware.BotDetection(),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Verify.me Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/api/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
