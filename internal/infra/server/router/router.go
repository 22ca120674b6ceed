// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mintmind/backend/internal/integration/entrypoint/controller"
	"github.com/mintmind/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	insightController     *controller.InsightController
	plannerController     *controller.PlannerController
	advisorController     *controller.AdvisorController
	profileController     *controller.ProfileController
	loginRateLimiter      *middleware.RateLimiter
	chatRateLimiter       *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	insightController *controller.InsightController,
	plannerController *controller.PlannerController,
	advisorController *controller.AdvisorController,
	profileController *controller.ProfileController,
	loginRateLimiter *middleware.RateLimiter,
	chatRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		insightController:     insightController,
		plannerController:     plannerController,
		advisorController:     advisorController,
		profileController:     profileController,
		loginRateLimiter:      loginRateLimiter,
		chatRateLimiter:       chatRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/daily-series", r.dashboardController.GetDailySeries)
				dashboard.GET("/category-breakdown", r.dashboardController.GetCategoryBreakdown)
			}
		}

		// Insight and pattern routes (require authentication)
		if r.insightController != nil && r.authMiddleware != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			{
				insights.GET("/transactions/:id", r.insightController.GetTransactionInsight)
				insights.GET("/summary", r.insightController.GetInsightSummary)
			}

			patterns := v1.Group("/patterns")
			patterns.Use(r.authMiddleware.Authenticate())
			{
				patterns.GET("/:category", r.insightController.AnalyzePattern)
			}
		}

		// Planner routes (require authentication)
		if r.plannerController != nil && r.authMiddleware != nil {
			planner := v1.Group("/planner")
			planner.Use(r.authMiddleware.Authenticate())
			{
				planner.POST("/budget", r.plannerController.CalculateBudget)
				planner.POST("/sip", r.plannerController.CalculateSIP)
				planner.POST("/emi", r.plannerController.CalculateEMI)
				planner.POST("/goal", r.plannerController.CreateGoalPlan)
			}
		}

		// Advisor routes (require authentication, rate limited)
		if r.advisorController != nil && r.authMiddleware != nil && r.chatRateLimiter != nil {
			advisor := v1.Group("/advisor")
			advisor.Use(r.authMiddleware.Authenticate())
			{
				advisor.POST("/chat", r.chatRateLimiter.Middleware(), r.advisorController.Chat)
			}
		}

		// Profile routes (require authentication)
		if r.profileController != nil && r.authMiddleware != nil {
			profile := v1.Group("/profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.GET("", r.profileController.Get)
				profile.PUT("", r.profileController.Update)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
