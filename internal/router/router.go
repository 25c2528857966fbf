package router

import (
	"xman-api/internal/config"
	"xman-api/internal/database"
	"xman-api/internal/handlers"
	"xman-api/internal/middleware"
	"xman-api/internal/repositories"
	"xman-api/internal/services"

	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New wires repositories, services, and handlers into a configured Echo
// instance. Everything under /app and the session-scoped /api routes sits
// behind the session cookie middleware.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	profileRepo := repositories.NewProfileRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	incomeRepo := repositories.NewIncomeRepository(db.DB)
	presetRepo := repositories.NewPresetRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	sessionService := services.NewSessionService(&cfg.Session, cfg.IsProduction())
	authService := services.NewAuthService(userRepo, profileRepo, passwordService, tokenService, sessionService, metrics, cfg.Session.Secret, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	ledgerService := services.NewLedgerService(expenseRepo, incomeRepo, metrics, logger)
	overviewService := services.NewMonthOverviewService(expenseRepo, incomeRepo, categoryRepo, metrics, logger)
	profileService := services.NewProfileService(profileRepo, userRepo, logger)
	presetService := services.NewPresetService(presetRepo, logger)
	themeService := services.NewThemeService(&cfg.Session, cfg.IsProduction())

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, sessionService)
	dashboardHandler := handlers.NewDashboardHandler(overviewService)
	expenseHandler := handlers.NewExpenseHandler(ledgerService)
	incomeHandler := handlers.NewIncomeHandler(ledgerService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	profileHandler := handlers.NewProfileHandler(profileService)
	presetHandler := handlers.NewPresetHandler(presetService)
	themeHandler := handlers.NewThemeHandler(themeService, cfg.Session.ThemeCookie)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	// Global middleware
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics)
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))

	// Public routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	e.POST("/api/auth/callback", authHandler.Callback)

	e.GET("/api/theme", themeHandler.Get)
	e.POST("/api/set-theme", themeHandler.Set)

	// Session-protected routes
	app := e.Group("/app")
	app.Use(middleware.RequireSession(cfg.Session.CookieName, authService, sessionService))

	app.GET("/dashboard/:year/:month", dashboardHandler.GetMonthOverview)

	app.POST("/expenses/new", expenseHandler.Create)
	app.GET("/expenses/:id", expenseHandler.Get)
	app.POST("/expenses/:id/edit", expenseHandler.Update)
	app.POST("/expenses/delete", expenseHandler.Delete)

	app.POST("/income/new", incomeHandler.Create)
	app.GET("/income/:id", incomeHandler.Get)
	app.POST("/income/:id/edit", incomeHandler.Update)
	app.POST("/income/delete", incomeHandler.Delete)

	app.GET("/categories", categoryHandler.List)
	app.POST("/categories/new", categoryHandler.Create)
	app.POST("/categories/delete", categoryHandler.Delete)

	app.GET("/profile", profileHandler.Get)
	app.POST("/profile", profileHandler.Update)
	app.POST("/onboard", profileHandler.Onboard)

	app.GET("/presets", presetHandler.List)
	app.POST("/presets/new", presetHandler.Create)
	app.POST("/presets/delete", presetHandler.Delete)

	// Development-only seeding endpoint
	if cfg.IsDevelopment() {
		seedService := services.NewSeedService(userRepo, profileRepo, categoryRepo, ledgerService, passwordService, logger)
		devHandler := handlers.NewDevHandler(seedService)
		e.POST("/api/dev/seed", devHandler.SeedDemoData)
	}

	return e
}
