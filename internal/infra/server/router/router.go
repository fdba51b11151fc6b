// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/health-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/health-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	userController      *controller.UserController
	recordController    *controller.RecordController
	goalController      *controller.GoalController
	analyticsController *controller.AnalyticsController
	reportController    *controller.ReportController
	adviceController    *controller.AdviceController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	recordController *controller.RecordController,
	goalController *controller.GoalController,
	analyticsController *controller.AnalyticsController,
	reportController *controller.ReportController,
	adviceController *controller.AdviceController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		userController:      userController,
		recordController:    recordController,
		goalController:      goalController,
		analyticsController: analyticsController,
		reportController:    reportController,
		adviceController:    adviceController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
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

	// Setup routes
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

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.PUT("/me", r.userController.UpdateProfile)
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Record routes (require authentication)
		if r.recordController != nil && r.authMiddleware != nil {
			records := v1.Group("/records")
			records.Use(r.authMiddleware.Authenticate())
			{
				records.POST("/sleep", r.recordController.CreateSleep)
				records.GET("/sleep", r.recordController.ListSleep)
				records.DELETE("/sleep/:id", r.recordController.DeleteSleep)

				records.POST("/exercise", r.recordController.CreateExercise)
				records.GET("/exercise", r.recordController.ListExercise)
				records.DELETE("/exercise/:id", r.recordController.DeleteExercise)
				records.GET("/exercise/weekly-stats", r.recordController.WeeklyExerciseStats)

				records.POST("/diet", r.recordController.CreateDiet)
				records.GET("/diet", r.recordController.ListDiet)
				records.DELETE("/diet/:id", r.recordController.DeleteDiet)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.PUT("/general", r.goalController.UpsertGeneral)
				goals.GET("/general", r.goalController.GetGeneral)
				goals.POST("/exercise", r.goalController.CreateExercise)
				goals.GET("/exercise", r.goalController.ListExercise)
				goals.DELETE("/exercise/:id", r.goalController.DeleteExercise)
			}
		}

		// Dashboard and analytics routes (require authentication)
		if r.analyticsController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.analyticsController.GetDashboard)
			}

			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/sleep-trend", r.analyticsController.GetSleepTrend)
				analytics.GET("/correlation", r.analyticsController.GetCorrelation)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.POST("", r.reportController.Generate)
				reports.GET("", r.reportController.List)
			}
		}

		// Advice routes (require authentication)
		if r.adviceController != nil && r.authMiddleware != nil {
			advice := v1.Group("/advice")
			advice.Use(r.authMiddleware.Authenticate())
			{
				advice.GET("", r.adviceController.GetAdvice)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
