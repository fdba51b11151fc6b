// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/health-tracker/backend/internal/application/usecase/analytics"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
	"github.com/health-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/health-tracker/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles dashboard and analytics endpoints.
type AnalyticsController struct {
	getDashboardUseCase *analytics.GetDashboardUseCase
	predictTrendUseCase *analytics.PredictSleepTrendUseCase
	correlationUseCase  *analytics.AnalyzeCorrelationUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	getDashboardUseCase *analytics.GetDashboardUseCase,
	predictTrendUseCase *analytics.PredictSleepTrendUseCase,
	correlationUseCase *analytics.AnalyzeCorrelationUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		getDashboardUseCase: getDashboardUseCase,
		predictTrendUseCase: predictTrendUseCase,
		correlationUseCase:  correlationUseCase,
	}
}

// GetDashboard handles GET /dashboard requests.
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), analytics.GetDashboardInput{UserID: userID})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// GetSleepTrend handles GET /analytics/sleep-trend requests.
func (c *AnalyticsController) GetSleepTrend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	horizonStr := ctx.DefaultQuery("horizon_days", "7")
	horizonDays, err := strconv.Atoi(horizonStr)
	if err != nil || horizonDays < 1 || horizonDays > 90 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "horizon_days must be an integer between 1 and 90",
		})
		return
	}

	output, err := c.predictTrendUseCase.Execute(ctx.Request.Context(), analytics.PredictSleepTrendInput{
		UserID:      userID,
		HorizonDays: horizonDays,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// GetCorrelation handles GET /analytics/correlation requests.
func (c *AnalyticsController) GetCorrelation(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.correlationUseCase.Execute(ctx.Request.Context(), analytics.AnalyzeCorrelationInput{UserID: userID})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		statusCode := http.StatusInternalServerError
		if domainerror.IsInsufficientData(err) {
			statusCode = http.StatusUnprocessableEntity
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
