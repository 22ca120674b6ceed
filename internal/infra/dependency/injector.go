// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mintmind/backend/config"
	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/application/usecase/advisor"
	"github.com/mintmind/backend/internal/application/usecase/auth"
	"github.com/mintmind/backend/internal/application/usecase/dashboard"
	"github.com/mintmind/backend/internal/application/usecase/insight"
	"github.com/mintmind/backend/internal/application/usecase/pattern"
	"github.com/mintmind/backend/internal/application/usecase/planner"
	"github.com/mintmind/backend/internal/application/usecase/profile"
	"github.com/mintmind/backend/internal/application/usecase/transaction"
	"github.com/mintmind/backend/internal/infra/server/router"
	"github.com/mintmind/backend/internal/integration/adapters"
	"github.com/mintmind/backend/internal/integration/cache"
	"github.com/mintmind/backend/internal/integration/email"
	"github.com/mintmind/backend/internal/integration/email/templates"
	"github.com/mintmind/backend/internal/integration/entrypoint/controller"
	"github.com/mintmind/backend/internal/integration/entrypoint/middleware"
	"github.com/mintmind/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	AlertWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	alertQueueRepo := persistence.NewAlertEmailRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	adviceService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	clock := adapters.NewSystemClock()
	summaryCache := cache.NewSummaryCache(redisClient)
	breachNotifier := insight.NewBreachNotifier(alertQueueRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, summaryCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, summaryCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, userRepo, summaryCache, clock)
	dailySeriesUseCase := dashboard.NewGetDailySeriesUseCase(transactionRepo, clock)
	breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(transactionRepo, clock)

	// Create insight and pattern use cases
	transactionInsightUseCase := insight.NewGetTransactionInsightUseCase(transactionRepo, userRepo, breachNotifier, clock)
	insightSummaryUseCase := insight.NewGetInsightSummaryUseCase(transactionRepo, userRepo, clock)
	analyzePatternUseCase := pattern.NewAnalyzeCategoryUseCase(transactionRepo, clock)

	// Create planner use cases
	budgetUseCase := planner.NewCalculateBudgetUseCase(userRepo)
	sipUseCase := planner.NewCalculateSIPUseCase(userRepo)
	emiUseCase := planner.NewCalculateEMIUseCase(userRepo)
	goalPlanUseCase := planner.NewCreateGoalPlanUseCase(userRepo)

	// Create advisor use case
	advisorTracker := advisor.NewInMemoryProcessingTracker()
	chatUseCase := advisor.NewChatUseCase(userRepo, adviceService, advisorTracker)

	// Create profile use cases
	getProfileUseCase := profile.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(userRepo, summaryCache)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	dashboardController := controller.NewDashboardController(
		summaryUseCase,
		dailySeriesUseCase,
		breakdownUseCase,
	)

	insightController := controller.NewInsightController(
		transactionInsightUseCase,
		insightSummaryUseCase,
		analyzePatternUseCase,
	)

	plannerController := controller.NewPlannerController(
		budgetUseCase,
		sipUseCase,
		emiUseCase,
		goalPlanUseCase,
	)

	advisorController := controller.NewAdvisorController(chatUseCase)

	profileController := controller.NewProfileController(
		getProfileUseCase,
		updateProfileUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter, chatRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
		chatRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
		chatRateLimiter = middleware.NewRateLimiterWithConfig(10, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create the alert email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	alertWorker := email.NewWorker(
		alertQueueRepo,
		newEmailSender(&cfg.Email),
		renderer,
		email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		},
	)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		dashboardController,
		insightController,
		plannerController,
		advisorController,
		profileController,
		loginRateLimiter,
		chatRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		AlertWorker: alertWorker,
	}, nil
}

// newEmailSender returns the Resend client when an API key is configured and
// a mock sender otherwise, so local development works without credentials.
func newEmailSender(cfg *config.EmailConfig) adapter.EmailSender {
	if cfg.ResendAPIKey == "" {
		return email.NewMockEmailSender()
	}
	return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
}
