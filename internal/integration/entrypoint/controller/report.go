// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/health-tracker/backend/internal/application/usecase/analytics"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
	"github.com/health-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/health-tracker/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles health report endpoints.
type ReportController struct {
	generateReportUseCase *analytics.GenerateReportUseCase
	listReportsUseCase    *analytics.ListReportsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateReportUseCase *analytics.GenerateReportUseCase,
	listReportsUseCase *analytics.ListReportsUseCase,
) *ReportController {
	return &ReportController{
		generateReportUseCase: generateReportUseCase,
		listReportsUseCase:    listReportsUseCase,
	}
}

// Generate handles POST /reports requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// The body is optional, an empty body means no email.
	var req dto.GenerateReportRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	output, err := c.generateReportUseCase.Execute(ctx.Request.Context(), analytics.GenerateReportInput{
		UserID:    userID,
		SendEmail: req.SendEmail,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate report",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHealthReportResponse(output.Report))
}

// List handles GET /reports requests.
func (c *ReportController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	limitStr := ctx.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "limit must be an integer between 1 and 100",
		})
		return
	}

	output, err := c.listReportsUseCase.Execute(ctx.Request.Context(), analytics.ListReportsInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve reports",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHealthReportListResponse(output.Reports))
}
