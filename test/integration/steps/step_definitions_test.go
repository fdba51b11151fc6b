package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/health-tracker/backend/internal/application/usecase/advice"
	"github.com/health-tracker/backend/internal/application/usecase/analytics"
	"github.com/health-tracker/backend/internal/application/usecase/auth"
	"github.com/health-tracker/backend/internal/application/usecase/goal"
	"github.com/health-tracker/backend/internal/application/usecase/record"
	"github.com/health-tracker/backend/internal/infra/server/router"
	"github.com/health-tracker/backend/internal/integration/adapters"
	"github.com/health-tracker/backend/internal/integration/cache"
	"github.com/health-tracker/backend/internal/integration/email"
	"github.com/health-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/health-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/health-tracker/backend/internal/integration/persistence"
	"github.com/health-tracker/backend/internal/integration/persistence/model"
	"github.com/health-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	serverPort    int
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	lastRecordID  uuid.UUID
	lastGoalID    uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("health_tracker", map[string]any{
			"users":            &model.UserModel{},
			"refresh_tokens":   &model.RefreshTokenModel{},
			"sleep_records":    &model.SleepRecordModel{},
			"exercise_records": &model.ExerciseRecordModel{},
			"diet_records":     &model.DietRecordModel{},
			"general_goals":    &model.GeneralGoalModel{},
			"exercise_goals":   &model.ExerciseGoalModel{},
			"health_reports":   &model.HealthReportModel{},
			"email_queue":      &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Record setup steps
	ctx.Given(`^the user has (\d+) daily sleep records of ([\d.]+) hours$`, test.theUserHasDailySleepRecordsOf)
	ctx.Given(`^the user has (\d+) daily exercise records of (\d+) minutes$`, test.theUserHasDailyExerciseRecordsOf)
	ctx.Given(`^the user has a diet record of (\d+) calories eaten today$`, test.theUserHasADietRecordOfCalories)
	ctx.Given(`^the user has a sleep record from last night lasting ([\d.]+) hours$`, test.theUserHasASleepRecordFromLastNight)

	// Goal setup steps
	ctx.Given(`^the user has a general goal of ([\d.]+) sleep hours and (\d+) calories$`, test.theUserHasAGeneralGoal)
	ctx.Given(`^the user has an exercise goal of type "([^"]*)" with target (\d+)$`, test.theUserHasAnExerciseGoal)

	// Advice setup steps
	ctx.Given(`^advice "([^"]*)" is cached for the user$`, test.adviceIsCachedForTheUser)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.lastRecordID = uuid.Nil
	t.lastGoalID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			sleepRepo := persistence.NewSleepRecordRepository(testDB.DbConn)
			exerciseRepo := persistence.NewExerciseRecordRepository(testDB.DbConn)
			dietRepo := persistence.NewDietRecordRepository(testDB.DbConn)
			generalGoalRepo := persistence.NewGeneralGoalRepository(testDB.DbConn)
			exerciseGoalRepo := persistence.NewExerciseGoalRepository(testDB.DbConn)
			reportRepo := persistence.NewHealthReportRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services. The Gemini key is intentionally empty
			// so advice requests without a cache hit report not-configured.
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			adviceService := adapters.NewGeminiService("", "")
			adviceCache := cache.NewAdviceCache(mock.NewRedis())
			emailService := email.NewService(emailQueueRepo, "http://localhost:5173")

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
				return testDB != nil && testDB.DbConn != nil
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
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		Gender:       "male",
		Age:          30,
		HeightCm:     175.0,
		WeightKg:     70.0,
		BMI:          22.86,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokens("test@example.com")
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", "Test User "+email); err != nil {
			return err
		}
	} else {
		t.currentUserID = userModel.ID
	}

	return t.issueTokens(email)
}

func (t *testContext) issueTokens(email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "health-tracker",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "health-tracker",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

// theUserHasDailySleepRecordsOf seeds one sleep record per day, newest today.
// Sessions start at 01:00 so the start date, wake date, and any exercise
// seeded for the same day all land on the same calendar day.
func (t *testContext) theUserHasDailySleepRecordsOf(count int, hours float64) error {
	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		day := now.AddDate(0, 0, -i)
		sleepTime := time.Date(day.Year(), day.Month(), day.Day(), 1, 0, 0, 0, time.UTC)
		wakeupTime := sleepTime.Add(time.Duration(hours * float64(time.Hour)))

		recordModel := &model.SleepRecordModel{
			ID:            uuid.New(),
			UserID:        t.currentUserID,
			SleepTime:     sleepTime,
			WakeupTime:    wakeupTime,
			DurationHours: hours,
			CreatedAt:     now,
		}
		if err := t.db.DbConn.Create(recordModel).Error; err != nil {
			return err
		}
		t.lastRecordID = recordModel.ID
	}
	return nil
}

func (t *testContext) theUserHasDailyExerciseRecordsOf(count, minutes int) error {
	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		day := now.AddDate(0, 0, -i)
		exerciseTime := time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.UTC)

		recordModel := &model.ExerciseRecordModel{
			ID:              uuid.New(),
			UserID:          t.currentUserID,
			Type:            "running",
			DurationMinutes: float64(minutes),
			CaloriesBurned:  float64(minutes) * 7.0,
			ExerciseTime:    exerciseTime,
			CreatedAt:       now,
		}
		if err := t.db.DbConn.Create(recordModel).Error; err != nil {
			return err
		}
		t.lastRecordID = recordModel.ID
	}
	return nil
}

func (t *testContext) theUserHasADietRecordOfCalories(calories int) error {
	now := time.Now().UTC()
	recordModel := &model.DietRecordModel{
		ID:           uuid.New(),
		UserID:       t.currentUserID,
		FoodName:     "rice",
		MealType:     "lunch",
		PortionGrams: decimal.NewFromInt(200),
		Calories:     decimal.NewFromInt(int64(calories)),
		EatenAt:      now,
		CreatedAt:    now,
	}
	if err := t.db.DbConn.Create(recordModel).Error; err != nil {
		return err
	}
	t.lastRecordID = recordModel.ID
	return nil
}

func (t *testContext) theUserHasASleepRecordFromLastNight(hours float64) error {
	now := time.Now().UTC()
	sleepTime := time.Date(now.Year(), now.Month(), now.Day(), 1, 0, 0, 0, time.UTC)
	wakeupTime := sleepTime.Add(time.Duration(hours * float64(time.Hour)))

	recordModel := &model.SleepRecordModel{
		ID:            uuid.New(),
		UserID:        t.currentUserID,
		SleepTime:     sleepTime,
		WakeupTime:    wakeupTime,
		DurationHours: hours,
		CreatedAt:     now,
	}
	if err := t.db.DbConn.Create(recordModel).Error; err != nil {
		return err
	}
	t.lastRecordID = recordModel.ID
	return nil
}

func (t *testContext) theUserHasAGeneralGoal(sleepHours float64, calories int) error {
	now := time.Now().UTC()
	goalModel := &model.GeneralGoalModel{
		ID:                  uuid.New(),
		UserID:              t.currentUserID,
		TargetSleepHours:    sleepHours,
		TargetCalorieIntake: float64(calories),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theUserHasAnExerciseGoal(goalType string, target int) error {
	now := time.Now().UTC()
	goalModel := &model.ExerciseGoalModel{
		ID:          uuid.New(),
		UserID:      t.currentUserID,
		GoalType:    goalType,
		TargetValue: float64(target),
		Period:      "weekly",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(goalModel).Error; err != nil {
		return err
	}
	t.lastGoalID = goalModel.ID
	return nil
}

func (t *testContext) adviceIsCachedForTheUser(text string) error {
	key := fmt.Sprintf("advice:%s", t.currentUserID)
	return mock.NewRedis().Set(context.Background(), key, text, time.Hour).Err()
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

var daysAgoPattern = regexp.MustCompile(`\{\{days_ago:(\d+)\}\}`)
var hoursAgoPattern = regexp.MustCompile(`\{\{hours_ago:(\d+)\}\}`)

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{record_id}}", t.lastRecordID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.lastGoalID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())

	now := time.Now().UTC()
	content = strings.ReplaceAll(content, "{{now}}", now.Format(time.RFC3339))
	content = daysAgoPattern.ReplaceAllStringFunc(content, func(match string) string {
		days, _ := strconv.Atoi(daysAgoPattern.FindStringSubmatch(match)[1])
		return now.AddDate(0, 0, -days).Format(time.RFC3339)
	})
	content = hoursAgoPattern.ReplaceAllStringFunc(content, func(match string) string {
		hours, _ := strconv.Atoi(hoursAgoPattern.FindStringSubmatch(match)[1])
		return now.Add(-time.Duration(hours) * time.Hour).Format(time.RFC3339)
	})

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the created object's ID so later steps can reference it
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if _, isGoal := responseBody["goal_type"]; isGoal {
					t.lastGoalID = id
				} else {
					t.lastRecordID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replaceTokenPlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
