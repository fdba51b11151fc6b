// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/usecase/advice"
	"github.com/health-tracker/backend/internal/application/usecase/record"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
	"github.com/health-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/health-tracker/backend/internal/integration/entrypoint/middleware"
)

// RecordController handles sleep, exercise, and diet record endpoints.
type RecordController struct {
	createSleepUseCase    *record.CreateSleepRecordUseCase
	listSleepUseCase      *record.ListSleepRecordsUseCase
	deleteSleepUseCase    *record.DeleteSleepRecordUseCase
	createExerciseUseCase *record.CreateExerciseRecordUseCase
	listExerciseUseCase   *record.ListExerciseRecordsUseCase
	deleteExerciseUseCase *record.DeleteExerciseRecordUseCase
	weeklyStatsUseCase    *record.WeeklyExerciseStatsUseCase
	createDietUseCase     *record.CreateDietRecordUseCase
	listDietUseCase       *record.ListDietRecordsUseCase
	deleteDietUseCase     *record.DeleteDietRecordUseCase
	invalidateAdvice      *advice.InvalidateAdviceUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	createSleepUseCase *record.CreateSleepRecordUseCase,
	listSleepUseCase *record.ListSleepRecordsUseCase,
	deleteSleepUseCase *record.DeleteSleepRecordUseCase,
	createExerciseUseCase *record.CreateExerciseRecordUseCase,
	listExerciseUseCase *record.ListExerciseRecordsUseCase,
	deleteExerciseUseCase *record.DeleteExerciseRecordUseCase,
	weeklyStatsUseCase *record.WeeklyExerciseStatsUseCase,
	createDietUseCase *record.CreateDietRecordUseCase,
	listDietUseCase *record.ListDietRecordsUseCase,
	deleteDietUseCase *record.DeleteDietRecordUseCase,
	invalidateAdvice *advice.InvalidateAdviceUseCase,
) *RecordController {
	return &RecordController{
		createSleepUseCase:    createSleepUseCase,
		listSleepUseCase:      listSleepUseCase,
		deleteSleepUseCase:    deleteSleepUseCase,
		createExerciseUseCase: createExerciseUseCase,
		listExerciseUseCase:   listExerciseUseCase,
		deleteExerciseUseCase: deleteExerciseUseCase,
		weeklyStatsUseCase:    weeklyStatsUseCase,
		createDietUseCase:     createDietUseCase,
		listDietUseCase:       listDietUseCase,
		deleteDietUseCase:     deleteDietUseCase,
		invalidateAdvice:      invalidateAdvice,
	}
}

// CreateSleep handles POST /records/sleep requests.
func (c *RecordController) CreateSleep(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	var req dto.CreateSleepRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := record.CreateSleepRecordInput{
		UserID:     userID,
		SleepTime:  req.SleepTime,
		WakeupTime: req.WakeupTime,
	}

	output, err := c.createSleepUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	c.dropCachedAdvice(ctx, userID)

	ctx.JSON(http.StatusCreated, dto.ToSleepRecordResponse(output.Record))
}

// ListSleep handles GET /records/sleep requests.
func (c *RecordController) ListSleep(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	output, err := c.listSleepUseCase.Execute(ctx.Request.Context(), record.ListRecordsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve sleep records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSleepRecordListResponse(output.Records))
}

// DeleteSleep handles DELETE /records/sleep/:id requests.
func (c *RecordController) DeleteSleep(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
		})
		return
	}

	if err := c.deleteSleepUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		UserID:   userID,
		RecordID: recordID,
	}); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	c.dropCachedAdvice(ctx, userID)

	ctx.Status(http.StatusNoContent)
}

// CreateExercise handles POST /records/exercise requests.
func (c *RecordController) CreateExercise(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	var req dto.CreateExerciseRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := record.CreateExerciseRecordInput{
		UserID:          userID,
		Type:            entity.ExerciseType(req.Type),
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		ExerciseTime:    req.ExerciseTime,
	}

	output, err := c.createExerciseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	c.dropCachedAdvice(ctx, userID)

	ctx.JSON(http.StatusCreated, dto.ToExerciseRecordResponse(output.Record))
}

// ListExercise handles GET /records/exercise requests.
func (c *RecordController) ListExercise(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	output, err := c.listExerciseUseCase.Execute(ctx.Request.Context(), record.ListRecordsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve exercise records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExerciseRecordListResponse(output.Records))
}

// DeleteExercise handles DELETE /records/exercise/:id requests.
func (c *RecordController) DeleteExercise(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
		})
		return
	}

	if err := c.deleteExerciseUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		UserID:   userID,
		RecordID: recordID,
	}); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	c.dropCachedAdvice(ctx, userID)

	ctx.Status(http.StatusNoContent)
}

// WeeklyExerciseStats handles GET /records/exercise/weekly-stats requests.
func (c *RecordController) WeeklyExerciseStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	output, err := c.weeklyStatsUseCase.Execute(ctx.Request.Context(), record.WeeklyExerciseStatsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute weekly exercise stats",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyExerciseStatsResponse(output))
}

// CreateDiet handles POST /records/diet requests.
func (c *RecordController) CreateDiet(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	var req dto.CreateDietRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := record.CreateDietRecordInput{
		UserID:         userID,
		FoodName:       req.FoodName,
		Custom:         req.Custom,
		MealType:       entity.MealType(req.MealType),
		PortionGrams:   req.PortionGrams,
		ManualCalories: req.ManualCalories,
		EatenAt:        req.EatenAt,
	}

	output, err := c.createDietUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	c.dropCachedAdvice(ctx, userID)

	ctx.JSON(http.StatusCreated, dto.ToDietRecordResponse(output.Record))
}

// ListDiet handles GET /records/diet requests.
func (c *RecordController) ListDiet(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	output, err := c.listDietUseCase.Execute(ctx.Request.Context(), record.ListRecordsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve diet records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDietRecordListResponse(output.Records))
}

// DeleteDiet handles DELETE /records/diet/:id requests.
func (c *RecordController) DeleteDiet(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
		})
		return
	}

	if err := c.deleteDietUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		UserID:   userID,
		RecordID: recordID,
	}); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	c.dropCachedAdvice(ctx, userID)

	ctx.Status(http.StatusNoContent)
}

// dropCachedAdvice invalidates the user's cached advice after a record change.
func (c *RecordController) dropCachedAdvice(ctx *gin.Context, userID uuid.UUID) {
	if c.invalidateAdvice == nil {
		return
	}
	// Best effort, record writes must not fail on cache trouble.
	_ = c.invalidateAdvice.Execute(ctx.Request.Context(), userID)
}

func (c *RecordController) unauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(c.getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  recordErr.Code,
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func (c *RecordController) getStatusCodeForRecordError(code string) int {
	switch code {
	case string(domainerror.ErrCodeSleepNotFound),
		string(domainerror.ErrCodeExerciseNotFound),
		string(domainerror.ErrCodeDietNotFound):
		return http.StatusNotFound
	case string(domainerror.ErrCodeOverlappingSleep):
		return http.StatusConflict
	case string(domainerror.ErrCodeSleepUnauthorized),
		string(domainerror.ErrCodeExerciseUnauthorized),
		string(domainerror.ErrCodeDietUnauthorized):
		return http.StatusForbidden
	case string(domainerror.ErrCodeWakeBeforeSleep),
		string(domainerror.ErrCodeInvalidExerciseType),
		string(domainerror.ErrCodeInvalidDuration),
		string(domainerror.ErrCodeManualCalories),
		string(domainerror.ErrCodeUnknownFood),
		string(domainerror.ErrCodeInvalidMealType),
		string(domainerror.ErrCodeZeroCalories):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
