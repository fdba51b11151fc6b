// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/usecase/goal"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
	"github.com/health-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/health-tracker/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal endpoints.
type GoalController struct {
	upsertGeneralUseCase  *goal.UpsertGeneralGoalUseCase
	getGeneralUseCase     *goal.GetGeneralGoalUseCase
	createExerciseUseCase *goal.CreateExerciseGoalUseCase
	listExerciseUseCase   *goal.ListExerciseGoalsUseCase
	deleteExerciseUseCase *goal.DeleteExerciseGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	upsertGeneralUseCase *goal.UpsertGeneralGoalUseCase,
	getGeneralUseCase *goal.GetGeneralGoalUseCase,
	createExerciseUseCase *goal.CreateExerciseGoalUseCase,
	listExerciseUseCase *goal.ListExerciseGoalsUseCase,
	deleteExerciseUseCase *goal.DeleteExerciseGoalUseCase,
) *GoalController {
	return &GoalController{
		upsertGeneralUseCase:  upsertGeneralUseCase,
		getGeneralUseCase:     getGeneralUseCase,
		createExerciseUseCase: createExerciseUseCase,
		listExerciseUseCase:   listExerciseUseCase,
		deleteExerciseUseCase: deleteExerciseUseCase,
	}
}

// UpsertGeneral handles PUT /goals/general requests.
func (c *GoalController) UpsertGeneral(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpsertGeneralGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.UpsertGeneralGoalInput{
		UserID:              userID,
		TargetSleepHours:    req.TargetSleepHours,
		TargetCalorieIntake: req.TargetCalorieIntake,
	}

	output, err := c.upsertGeneralUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGeneralGoalResponse(output.Goal))
}

// GetGeneral handles GET /goals/general requests.
func (c *GoalController) GetGeneral(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getGeneralUseCase.Execute(ctx.Request.Context(), goal.GetGeneralGoalInput{UserID: userID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGeneralGoalResponse(output.Goal))
}

// CreateExercise handles POST /goals/exercise requests.
func (c *GoalController) CreateExercise(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateExerciseGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.CreateExerciseGoalInput{
		UserID:      userID,
		GoalType:    entity.ExerciseGoalType(req.GoalType),
		TargetValue: req.TargetValue,
	}
	if req.ExerciseType != nil {
		exerciseType := entity.ExerciseType(*req.ExerciseType)
		input.ExerciseType = &exerciseType
	}

	output, err := c.createExerciseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExerciseGoalResponse(output.Goal))
}

// ListExercise handles GET /goals/exercise requests.
func (c *GoalController) ListExercise(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listExerciseUseCase.Execute(ctx.Request.Context(), goal.ListExerciseGoalsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve exercise goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExerciseGoalListResponse(output.Goals))
}

// DeleteExercise handles DELETE /goals/exercise/:id requests.
func (c *GoalController) DeleteExercise(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	if err := c.deleteExerciseUseCase.Execute(ctx.Request.Context(), goal.DeleteExerciseGoalInput{
		UserID: userID,
		GoalID: goalID,
	}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidSleepTarget,
		domainerror.ErrCodeInvalidCalorieTarget,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeInvalidTargetValue,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
