// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/health-tracker/backend/internal/application/usecase/advice"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
	"github.com/health-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/health-tracker/backend/internal/integration/entrypoint/middleware"
)

// AdviceController handles AI advice endpoints.
type AdviceController struct {
	getAdviceUseCase *advice.GetAdviceUseCase
}

// NewAdviceController creates a new advice controller instance.
func NewAdviceController(getAdviceUseCase *advice.GetAdviceUseCase) *AdviceController {
	return &AdviceController{
		getAdviceUseCase: getAdviceUseCase,
	}
}

// GetAdvice handles GET /advice requests.
func (c *AdviceController) GetAdvice(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getAdviceUseCase.Execute(ctx.Request.Context(), advice.GetAdviceInput{UserID: userID})
	if err != nil {
		c.handleAdviceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdviceResponse{
		Advice: output.Advice,
		Cached: output.Cached,
	})
}

// handleAdviceError handles advice errors and returns appropriate HTTP responses.
func (c *AdviceController) handleAdviceError(ctx *gin.Context, err error) {
	var adviceErr *domainerror.AdviceError
	if errors.As(err, &adviceErr) {
		statusCode := c.getStatusCodeForAdviceError(adviceErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: adviceErr.Message,
			Code:  string(adviceErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAdviceError maps advice error codes to HTTP status codes.
func (c *AdviceController) getStatusCodeForAdviceError(code domainerror.AdviceErrorCode) int {
	switch code {
	case domainerror.ErrCodeAdviceNotConfigured:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeAdviceRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeAdviceTimeout:
		return http.StatusGatewayTimeout
	case domainerror.ErrCodeAdviceUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
