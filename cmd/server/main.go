package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"docledger/internal/application/services"
	"docledger/internal/config"
	deliveryhttp "docledger/internal/delivery/http"
	"docledger/internal/infrastructure/db"
	"docledger/internal/infrastructure/mailer"
	"docledger/internal/infrastructure/sessions"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	conn, err := db.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.Migrate(conn); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate schema")
	}
	if err := db.SeedCategories(conn); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed categories")
	}

	var sessionStore sessions.Store
	if cfg.RedisURL != "" {
		redisStore, err := sessions.NewRedisStore(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisStore.Close()
		sessionStore = redisStore
		logger.Info().Msg("sessions backed by redis")
	} else {
		// Single-instance fallback; multi-instance deployments must set
		// REDIS_URL or use sticky routing.
		sessionStore = sessions.NewMemoryStore()
		logger.Warn().Msg("REDIS_URL not set, sessions kept in process memory")
	}
	sessionManager := sessions.NewManager(sessionStore, cfg.SecretKey, cfg.SessionTTL)

	var notifier mailer.Notifier = mailer.NoopNotifier{}
	if cfg.SendGridAPIKey != "" {
		notifier = mailer.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.MailSenderName, cfg.MailSenderAddr)
	} else {
		logger.Warn().Msg("SENDGRID_API_KEY not set, notifications disabled")
	}

	userRepo := db.NewUserRepository(conn)
	categoryRepo := db.NewCategoryRepository(conn)
	memoRepo := db.NewMemoRepository(conn)
	invoiceRepo := db.NewInvoiceRepository(conn)

	authService := services.NewAuthService(userRepo, categoryRepo, sessionManager, logger)
	memoService := services.NewMemoService(memoRepo, notifier, logger)
	invoiceService := services.NewInvoiceService(invoiceRepo, notifier, logger)
	categoryService := services.NewCategoryService(categoryRepo)
	companyService := services.NewCompanyService(memoRepo, invoiceRepo)

	e := deliveryhttp.NewRouter(authService, memoService, invoiceService, categoryService, companyService, deliveryhttp.RouterConfig{
		AuthRateLimit: cfg.AuthRateLimit,
		AuthRateBurst: cfg.AuthRateBurst,
		Logger:        logger,
	})

	logger.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := e.Start(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
