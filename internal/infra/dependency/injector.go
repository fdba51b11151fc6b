// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/health-tracker/backend/config"
	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/application/usecase/advice"
	"github.com/health-tracker/backend/internal/application/usecase/analytics"
	"github.com/health-tracker/backend/internal/application/usecase/auth"
	"github.com/health-tracker/backend/internal/application/usecase/goal"
	"github.com/health-tracker/backend/internal/application/usecase/record"
	"github.com/health-tracker/backend/internal/infra/server/router"
	"github.com/health-tracker/backend/internal/integration/adapters"
	"github.com/health-tracker/backend/internal/integration/cache"
	"github.com/health-tracker/backend/internal/integration/email"
	"github.com/health-tracker/backend/internal/integration/email/templates"
	"github.com/health-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/health-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/health-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil, in which case advice caching is disabled.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	sleepRepo := persistence.NewSleepRecordRepository(db)
	exerciseRepo := persistence.NewExerciseRecordRepository(db)
	dietRepo := persistence.NewDietRecordRepository(db)
	generalGoalRepo := persistence.NewGeneralGoalRepository(db)
	exerciseGoalRepo := persistence.NewExerciseGoalRepository(db)
	reportRepo := persistence.NewHealthReportRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	adviceService := adapters.NewGeminiService(cfg.Advice.GeminiAPIKey, cfg.Advice.GeminiModel)

	var adviceCache adapter.AdviceCache
	if redisClient != nil {
		adviceCache = cache.NewAdviceCache(redisClient)
	}

	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create record use cases
	createSleepUseCase := record.NewCreateSleepRecordUseCase(sleepRepo)
	listSleepUseCase := record.NewListSleepRecordsUseCase(sleepRepo)
	deleteSleepUseCase := record.NewDeleteSleepRecordUseCase(sleepRepo)
	createExerciseUseCase := record.NewCreateExerciseRecordUseCase(exerciseRepo, userRepo)
	listExerciseUseCase := record.NewListExerciseRecordsUseCase(exerciseRepo)
	deleteExerciseUseCase := record.NewDeleteExerciseRecordUseCase(exerciseRepo)
	weeklyStatsUseCase := record.NewWeeklyExerciseStatsUseCase(exerciseRepo)
	createDietUseCase := record.NewCreateDietRecordUseCase(dietRepo)
	listDietUseCase := record.NewListDietRecordsUseCase(dietRepo)
	deleteDietUseCase := record.NewDeleteDietRecordUseCase(dietRepo)

	// Create goal use cases
	upsertGeneralGoalUseCase := goal.NewUpsertGeneralGoalUseCase(generalGoalRepo)
	getGeneralGoalUseCase := goal.NewGetGeneralGoalUseCase(generalGoalRepo)
	createExerciseGoalUseCase := goal.NewCreateExerciseGoalUseCase(exerciseGoalRepo)
	listExerciseGoalsUseCase := goal.NewListExerciseGoalsUseCase(exerciseGoalRepo)
	deleteExerciseGoalUseCase := goal.NewDeleteExerciseGoalUseCase(exerciseGoalRepo)

	// Create analytics use cases
	getDashboardUseCase := analytics.NewGetDashboardUseCase(sleepRepo, exerciseRepo, dietRepo, generalGoalRepo, exerciseGoalRepo)
	predictTrendUseCase := analytics.NewPredictSleepTrendUseCase(sleepRepo)
	correlationUseCase := analytics.NewAnalyzeCorrelationUseCase(exerciseRepo, sleepRepo)
	generateReportUseCase := analytics.NewGenerateReportUseCase(sleepRepo, exerciseRepo, dietRepo, userRepo, reportRepo, emailService)
	listReportsUseCase := analytics.NewListReportsUseCase(reportRepo)

	// Create advice use cases
	getAdviceUseCase := advice.NewGetAdviceUseCase(sleepRepo, exerciseRepo, dietRepo, userRepo, adviceService, adviceCache)
	invalidateAdviceUseCase := advice.NewInvalidateAdviceUseCase(adviceCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		deleteAccountUseCase,
	)

	recordController := controller.NewRecordController(
		createSleepUseCase,
		listSleepUseCase,
		deleteSleepUseCase,
		createExerciseUseCase,
		listExerciseUseCase,
		deleteExerciseUseCase,
		weeklyStatsUseCase,
		createDietUseCase,
		listDietUseCase,
		deleteDietUseCase,
		invalidateAdviceUseCase,
	)

	goalController := controller.NewGoalController(
		upsertGeneralGoalUseCase,
		getGeneralGoalUseCase,
		createExerciseGoalUseCase,
		listExerciseGoalsUseCase,
		deleteExerciseGoalUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		getDashboardUseCase,
		predictTrendUseCase,
		correlationUseCase,
	)

	reportController := controller.NewReportController(
		generateReportUseCase,
		listReportsUseCase,
	)

	adviceController := controller.NewAdviceController(getAdviceUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		recordController,
		goalController,
		analyticsController,
		reportController,
		adviceController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
