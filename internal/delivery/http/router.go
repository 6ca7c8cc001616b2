package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"docledger/internal/application/services"
)

// RouterConfig carries the delivery-level knobs.
type RouterConfig struct {
	// AuthRateLimit / AuthRateBurst throttle /signup and /login per client
	// address.
	AuthRateLimit float64
	AuthRateBurst int
	Logger        zerolog.Logger
}

// requestLogger emits one structured line per request through the shared
// zerolog pipeline.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// NewRouter assembles the echo instance with the full route table.
func NewRouter(
	auth *services.AuthService,
	memos *services.MemoService,
	invoices *services.InvoiceService,
	categories *services.CategoryService,
	companies *services.CompanyService,
	cfg RouterConfig,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))
	e.Use(middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(loggerContextKey, cfg.Logger)
			return next(c)
		}
	})

	authHandler := NewAuthHandler(auth)
	memoHandler := NewMemoHandler(memos)
	invoiceHandler := NewInvoiceHandler(invoices)
	directoryHandler := NewDirectoryHandler(categories, companies)

	authRequired := requireAuth(auth)
	authThrottle := middleware.RateLimiter(
		middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(cfg.AuthRateLimit),
			Burst: cfg.AuthRateBurst,
		}),
	)

	// Auth surface.
	e.POST("/signup", authHandler.Signup, authThrottle)
	e.POST("/login", authHandler.Login, authThrottle)
	e.DELETE("/logout", authHandler.Logout)
	e.GET("/check", authHandler.Check)

	// Memos. Listing is public and partitioned by company; mutation needs a
	// session.
	e.GET("/memos", memoHandler.ListByCompany)
	e.POST("/memos", memoHandler.Create, authRequired)
	e.GET("/api/memos/:id", memoHandler.Get)
	e.PATCH("/api/memos/:id", memoHandler.Update, authRequired)
	e.DELETE("/api/memos/:id", memoHandler.Delete, authRequired)
	e.GET("/api/memos/:id/future", memoHandler.ListByUser)

	// Invoices.
	e.GET("/invoices", invoiceHandler.ListByCompany)
	e.POST("/invoices", invoiceHandler.Create, authRequired)
	e.GET("/api/invoices/:id", invoiceHandler.Get)
	e.PATCH("/api/invoices/:id", invoiceHandler.Update, authRequired)
	e.DELETE("/api/invoices/:id", invoiceHandler.Delete, authRequired)
	e.GET("/api/invoices/:id/future", invoiceHandler.ListByUser)

	// Reference data.
	e.GET("/api/categories", directoryHandler.ListCategories)
	e.GET("/api/companies/:id", directoryHandler.ListCompanies)

	return e
}
